package issues

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

// Repository defines persistence operations for issues.
type Repository interface {
	List(ctx context.Context) ([]WithRefs, error)
	Get(ctx context.Context, id string) (*WithRefs, error)
	Create(ctx context.Context, issue Issue) (*WithRefs, error)
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
	SELECT i.id, i.title, i.description, i.status, i.severity, i.due_date, i.location,
	       i.project_id, i.assignee_id, i.created_by_id, i.created_at, i.updated_at,
	       p.id, p.name, p.status,
	       a.id, a.name, a.email,
	       cb.id, cb.name, cb.email
	FROM issues i
	JOIN projects p ON p.id = i.project_id
	LEFT JOIN users a ON a.id = i.assignee_id
	JOIN users cb ON cb.id = i.created_by_id`

func scanWithRefs(row pgx.Row) (*WithRefs, error) {
	var rec WithRefs
	var aID, aName, aEmail *string
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Description, &rec.Status, &rec.Severity, &rec.DueDate, &rec.Location,
		&rec.ProjectID, &rec.AssigneeID, &rec.CreatedByID, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.Project.ID, &rec.Project.Name, &rec.Project.Status,
		&aID, &aName, &aEmail,
		&rec.CreatedBy.ID, &rec.CreatedBy.Name, &rec.CreatedBy.Email,
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

// List returns all issues newest first with related records joined.
func (r *repository) List(ctx context.Context) ([]WithRefs, error) {
	rows, err := r.pool.Query(ctx, selectWithRefs+` ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []WithRefs
	for rows.Next() {
		rec, err := scanWithRefs(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, *rec)
	}
	return issues, rows.Err()
}

// Get returns one issue by id.
func (r *repository) Get(ctx context.Context, id string) (*WithRefs, error) {
	return scanWithRefs(r.pool.QueryRow(ctx, selectWithRefs+` WHERE i.id = $1`, id))
}

// Create inserts the issue and returns it with refs joined.
func (r *repository) Create(ctx context.Context, issue Issue) (*WithRefs, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO issues (id, title, description, status, severity, due_date, location, project_id, assignee_id, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`,
		id, issue.Title, issue.Description, issue.Status, issue.Severity, issue.DueDate,
		issue.Location, issue.ProjectID, issue.AssigneeID, issue.CreatedByID,
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
	if input.Severity != nil {
		set("severity", *input.Severity)
	}
	if input.DueDate != nil {
		set("due_date", *input.DueDate)
	}
	if input.Location != nil {
		set("location", *input.Location)
	}
	if input.AssigneeID != nil {
		set("assignee_id", *input.AssigneeID)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, input.ID)
	query := `UPDATE issues SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.ErrNotFound
	}
	return r.Get(ctx, input.ID)
}

// Delete removes the issue and returns its id.
func (r *repository) Delete(ctx context.Context, id string) (string, error) {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM issues WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", shared.TranslateConstraint(err)
	}
	return deleted, nil
}
