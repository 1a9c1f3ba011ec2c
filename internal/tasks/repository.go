package tasks

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Repository defines persistence operations for tasks.
type Repository interface {
	List(ctx context.Context) ([]WithRefs, error)
	Get(ctx context.Context, id string) (*WithRefs, error)
	Create(ctx context.Context, task Task) (*WithRefs, error)
	Update(ctx context.Context, input UpdateInput) (*WithRefs, error)
	Delete(ctx context.Context, id string) (string, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const selectWithRefs = `
	SELECT t.id, t.title, t.description, t.status, t.priority, t.phase,
	       t.estimated_hours, t.logged_hours, t.due_date, t.project_id, t.assignee_id,
	       t.created_at, t.updated_at,
	       p.id, p.name, p.status,
	       a.id, a.name, a.email
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	LEFT JOIN users a ON a.id = t.assignee_id`

func scanWithRefs(row pgx.Row) (*WithRefs, error) {
	var rec WithRefs
	var aID, aName, aEmail *string
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Description, &rec.Status, &rec.Priority, &rec.Phase,
		&rec.EstimatedHours, &rec.LoggedHours, &rec.DueDate, &rec.ProjectID, &rec.AssigneeID,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.Project.ID, &rec.Project.Name, &rec.Project.Status,
		&aID, &aName, &aEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if aID != nil {
		rec.Assignee = &UserRef{ID: *aID, Name: *aName, Email: *aEmail}
	}
	return &rec, nil
}

// List returns all tasks newest first with project and assignee joined.
func (r *repository) List(ctx context.Context) ([]WithRefs, error) {
	rows, err := r.pool.Query(ctx, selectWithRefs+` ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []WithRefs
	for rows.Next() {
		rec, err := scanWithRefs(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *rec)
	}
	return tasks, rows.Err()
}

// Get returns one task by id.
func (r *repository) Get(ctx context.Context, id string) (*WithRefs, error) {
	return scanWithRefs(r.pool.QueryRow(ctx, selectWithRefs+` WHERE t.id = $1`, id))
}

// Create inserts the task and returns it with refs joined.
func (r *repository) Create(ctx context.Context, task Task) (*WithRefs, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, title, description, status, priority, phase, estimated_hours, logged_hours, due_date, project_id, assignee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10, NOW(), NOW())`,
		id, task.Title, task.Description, task.Status, task.Priority, task.Phase,
		task.EstimatedHours, task.DueDate, task.ProjectID, task.AssigneeID,
	)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	return r.Get(ctx, id)
}

// Update applies the non-nil fields and returns the updated record.
func (r *repository) Update(ctx context.Context, input UpdateInput) (*WithRefs, error) {
	sets := []string{}
	args := []any{}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if input.Title != nil {
		set("title", *input.Title)
	}
	if input.Description != nil {
		set("description", *input.Description)
	}
	if input.Status != nil {
		set("status", *input.Status)
	}
	if input.Priority != nil {
		set("priority", *input.Priority)
	}
	if input.Phase != nil {
		set("phase", *input.Phase)
	}
	if input.EstimatedHours != nil {
		set("estimated_hours", *input.EstimatedHours)
	}
	if input.LoggedHours != nil {
		set("logged_hours", *input.LoggedHours)
	}
	if input.DueDate != nil {
		set("due_date", *input.DueDate)
	}
	if input.AssigneeID != nil {
		set("assignee_id", *input.AssigneeID)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, input.ID)
	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.ErrNotFound
	}
	return r.Get(ctx, input.ID)
}

// Delete removes the task and returns its id.
func (r *repository) Delete(ctx context.Context, id string) (string, error) {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM tasks WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", shared.TranslateConstraint(err)
	}
	return deleted, nil
}
