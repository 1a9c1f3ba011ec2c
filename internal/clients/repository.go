package clients

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

// Repository defines persistence operations for clients.
type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, client Client) (*Client, error)
	Update(ctx context.Context, input UpdateInput) (*Client, error)
	Delete(ctx context.Context, id string) (string, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const clientColumns = `id, name, contact_name, email, phone, address, created_at, updated_at`

func scanClient(row pgx.Row) (*Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.Name, &c.ContactName, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all clients newest first.
func (r *repository) List(ctx context.Context) ([]Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// Get returns one client by id.
func (r *repository) Get(ctx context.Context, id string) (*Client, error) {
	return scanClient(r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
}

// Create inserts the client.
func (r *repository) Create(ctx context.Context, client Client) (*Client, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (id, name, contact_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		id, client.Name, client.ContactName, client.Email, client.Phone, client.Address,
	)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	return r.Get(ctx, id)
}

// Update applies the non-nil fields and returns the updated record.
func (r *repository) Update(ctx context.Context, input UpdateInput) (*Client, error) {
	sets := []string{}
	args := []any{}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if input.Name != nil {
		set("name", *input.Name)
	}
	if input.ContactName != nil {
		set("contact_name", *input.ContactName)
	}
	if input.Email != nil {
		set("email", *input.Email)
	}
	if input.Phone != nil {
		set("phone", *input.Phone)
	}
	if input.Address != nil {
		set("address", *input.Address)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, input.ID)
	query := `UPDATE clients SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.ErrNotFound
	}
	return r.Get(ctx, input.ID)
}

// Delete removes the client and returns its id. A client still referenced
// by projects or invoices fails with a constraint violation.
func (r *repository) Delete(ctx context.Context, id string) (string, error) {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM clients WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", shared.TranslateConstraint(err)
	}
	return deleted, nil
}
