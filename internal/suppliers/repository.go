package suppliers

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

// Repository defines persistence operations for suppliers.
type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id string) (*Supplier, error)
	Create(ctx context.Context, supplier Supplier) (*Supplier, error)
	Update(ctx context.Context, input UpdateInput) (*Supplier, error)
	Delete(ctx context.Context, id string) (string, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const supplierColumns = `id, name, contact_name, email, phone, address, created_at, updated_at`

func scanSupplier(row pgx.Row) (*Supplier, error) {
	var c Supplier
	err := row.Scan(&c.ID, &c.Name, &c.ContactName, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all suppliers newest first.
func (r *repository) List(ctx context.Context) ([]Supplier, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		c, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *c)
	}
	return suppliers, rows.Err()
}

// Get returns one supplier by id.
func (r *repository) Get(ctx context.Context, id string) (*Supplier, error) {
	return scanSupplier(r.pool.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
}

// Create inserts the supplier.
func (r *repository) Create(ctx context.Context, supplier Supplier) (*Supplier, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO suppliers (id, name, contact_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		id, supplier.Name, supplier.ContactName, supplier.Email, supplier.Phone, supplier.Address,
	)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	return r.Get(ctx, id)
}

// Update applies the non-nil fields and returns the updated record.
func (r *repository) Update(ctx context.Context, input UpdateInput) (*Supplier, error) {
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
	query := `UPDATE suppliers SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.ErrNotFound
	}
	return r.Get(ctx, input.ID)
}

// Delete removes the supplier and returns its id.
func (r *repository) Delete(ctx context.Context, id string) (string, error) {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM suppliers WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", shared.TranslateConstraint(err)
	}
	return deleted, nil
}
