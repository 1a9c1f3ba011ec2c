package projects

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

// Repository defines persistence operations for projects.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	GetDetail(ctx context.Context, id string) (*Detail, error)
	Create(ctx context.Context, project Project) (*WithRefs, error)
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

const withRefsColumns = `
	p.id, p.name, p.description, p.status, p.budget, p.actual_cost, p.percent_complete,
	p.start_date, p.end_date, p.client_id, p.manager_id, p.created_at, p.updated_at,
	c.id, c.name, c.contact_name, c.email, c.phone,
	u.id, u.name, u.email`

const withRefsFrom = `
	FROM projects p
	JOIN clients c ON c.id = p.client_id
	JOIN users u ON u.id = p.manager_id`

func scanWithRefs(row pgx.Row) (*WithRefs, error) {
	var rec WithRefs
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.Status, &rec.Budget, &rec.ActualCost, &rec.PercentComplete,
		&rec.StartDate, &rec.EndDate, &rec.ClientID, &rec.ManagerID, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.Client.ID, &rec.Client.Name, &rec.Client.ContactName, &rec.Client.Email, &rec.Client.Phone,
		&rec.Manager.ID, &rec.Manager.Name, &rec.Manager.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns all projects newest first, joined with client, manager and
// relation counts. No pagination: the full set is returned.
func (r *repository) List(ctx context.Context) ([]Summary, error) {
	query := `SELECT` + withRefsColumns + `,
	(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id),
	(SELECT COUNT(*) FROM issues i WHERE i.project_id = p.id),
	(SELECT COUNT(*) FROM invoices inv WHERE inv.project_id = p.id)` +
		withRefsFrom + `
	ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var s Summary
		err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.Status, &s.Budget, &s.ActualCost, &s.PercentComplete,
			&s.StartDate, &s.EndDate, &s.ClientID, &s.ManagerID, &s.CreatedAt, &s.UpdatedAt,
			&s.Client.ID, &s.Client.Name, &s.Client.ContactName, &s.Client.Email, &s.Client.Phone,
			&s.Manager.ID, &s.Manager.Name, &s.Manager.Email,
			&s.Counts.Tasks, &s.Counts.Issues, &s.Counts.Invoices,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *repository) getWithRefs(ctx context.Context, id string) (*WithRefs, error) {
	query := `SELECT` + withRefsColumns + withRefsFrom + ` WHERE p.id = $1`
	return scanWithRefs(r.pool.QueryRow(ctx, query, id))
}

// GetDetail returns one project with its full relation graph.
func (r *repository) GetDetail(ctx context.Context, id string) (*Detail, error) {
	rec, err := r.getWithRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := Detail{WithRefs: *rec}

	if detail.Tasks, err = r.projectTasks(ctx, id); err != nil {
		return nil, err
	}
	if detail.Issues, err = r.projectIssues(ctx, id); err != nil {
		return nil, err
	}
	if detail.Expenses, err = r.projectExpenses(ctx, id); err != nil {
		return nil, err
	}
	if detail.Invoices, err = r.projectInvoices(ctx, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *repository) projectTasks(ctx context.Context, projectID string) ([]TaskRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.title, t.status, t.priority, t.due_date, a.id, a.name, a.email
		FROM tasks t
		LEFT JOIN users a ON a.id = t.assignee_id
		WHERE t.project_id = $1
		ORDER BY t.created_at`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []TaskRow{}
	for rows.Next() {
		var t TaskRow
		var aID, aName, aEmail *string
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.Priority, &t.DueDate, &aID, &aName, &aEmail); err != nil {
			return nil, err
		}
		if aID != nil {
			t.Assignee = &UserRef{ID: *aID, Name: *aName, Email: *aEmail}
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *repository) projectIssues(ctx context.Context, projectID string) ([]IssueRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.title, i.status, i.severity, i.due_date,
		       a.id, a.name, a.email, cb.id, cb.name, cb.email
		FROM issues i
		LEFT JOIN users a ON a.id = i.assignee_id
		LEFT JOIN users cb ON cb.id = i.created_by_id
		WHERE i.project_id = $1
		ORDER BY i.created_at`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := []IssueRow{}
	for rows.Next() {
		var i IssueRow
		var aID, aName, aEmail, cbID, cbName, cbEmail *string
		if err := rows.Scan(&i.ID, &i.Title, &i.Status, &i.Severity, &i.DueDate, &aID, &aName, &aEmail, &cbID, &cbName, &cbEmail); err != nil {
			return nil, err
		}
		if aID != nil {
			i.Assignee = &UserRef{ID: *aID, Name: *aName, Email: *aEmail}
		}
		if cbID != nil {
			i.CreatedBy = &UserRef{ID: *cbID, Name: *cbName, Email: *cbEmail}
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

func (r *repository) projectExpenses(ctx context.Context, projectID string) ([]Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, description, amount, incurred_on
		FROM expenses WHERE project_id = $1 ORDER BY incurred_on`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []Expense{}
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.IncurredOn); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *repository) projectInvoices(ctx context.Context, projectID string) ([]InvoiceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT inv.id, inv.number, inv.amount, inv.status, inv.issued_on,
		       c.id, c.name, c.contact_name, c.email, c.phone
		FROM invoices inv
		JOIN clients c ON c.id = inv.client_id
		WHERE inv.project_id = $1
		ORDER BY inv.issued_on`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []InvoiceRow{}
	for rows.Next() {
		var i InvoiceRow
		if err := rows.Scan(&i.ID, &i.Number, &i.Amount, &i.Status, &i.IssuedOn,
			&i.Client.ID, &i.Client.Name, &i.Client.ContactName, &i.Client.Email, &i.Client.Phone); err != nil {
			return nil, err
		}
		invoices = append(invoices, i)
	}
	return invoices, rows.Err()
}

// Create inserts the project and returns it joined with client and manager.
func (r *repository) Create(ctx context.Context, project Project) (*WithRefs, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO projects (id, name, description, status, budget, start_date, end_date, client_id, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`,
		id, project.Name, project.Description, project.Status, project.Budget,
		project.StartDate, project.EndDate, project.ClientID, project.ManagerID,
	)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	return r.getWithRefs(ctx, id)
}

// Update applies the non-nil fields and returns the updated record. The row
// is replaced wholesale per field; concurrent writers follow last-write-wins.
func (r *repository) Update(ctx context.Context, input UpdateInput) (*WithRefs, error) {
	sets := []string{}
	args := []any{}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if input.Name != nil {
		set("name", *input.Name)
	}
	if input.Description != nil {
		set("description", *input.Description)
	}
	if input.Status != nil {
		set("status", *input.Status)
	}
	if input.Budget != nil {
		set("budget", *input.Budget)
	}
	if input.ActualCost != nil {
		set("actual_cost", *input.ActualCost)
	}
	if input.PercentComplete != nil {
		set("percent_complete", *input.PercentComplete)
	}
	if input.StartDate != nil {
		set("start_date", *input.StartDate)
	}
	if input.EndDate != nil {
		set("end_date", *input.EndDate)
	}
	if input.ClientID != nil {
		set("client_id", *input.ClientID)
	}
	if input.ManagerID != nil {
		set("manager_id", *input.ManagerID)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, input.ID)
	query := `UPDATE projects SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.ErrNotFound
	}
	return r.getWithRefs(ctx, input.ID)
}

// Delete removes the project and returns its id.
func (r *repository) Delete(ctx context.Context, id string) (string, error) {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM projects WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", shared.TranslateConstraint(err)
	}
	return deleted, nil
}
