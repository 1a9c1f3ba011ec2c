package inventory

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

// Repository defines persistence operations for inventory items.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	ListBelowMin(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, item Item) (*Item, error)
	Update(ctx context.Context, input UpdateInput) (*Item, error)
	Delete(ctx context.Context, id string) (string, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const itemColumns = `id, sku, name, description, uom, on_hand, min_qty, last_price, created_at, updated_at`

func scanItem(row pgx.Row) (*Item, error) {
	var item Item
	err := row.Scan(&item.ID, &item.SKU, &item.Name, &item.Description, &item.UOM,
		&item.OnHand, &item.MinQty, &item.LastPrice, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *repository) queryItems(ctx context.Context, query string) ([]Item, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// List returns all items ordered by SKU.
func (r *repository) List(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY sku`)
}

// ListBelowMin returns items whose on-hand quantity is under the reorder threshold.
func (r *repository) ListBelowMin(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE on_hand < min_qty ORDER BY sku`)
}

// Get returns one item by id.
func (r *repository) Get(ctx context.Context, id string) (*Item, error) {
	return scanItem(r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id))
}

// Create inserts the item. A duplicate SKU fails with a constraint violation.
func (r *repository) Create(ctx context.Context, item Item) (*Item, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inventory_items (id, sku, name, description, uom, on_hand, min_qty, last_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`,
		id, item.SKU, item.Name, item.Description, item.UOM, item.OnHand, item.MinQty, item.LastPrice,
	)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	return r.Get(ctx, id)
}

// Update applies the non-nil fields and returns the updated record.
func (r *repository) Update(ctx context.Context, input UpdateInput) (*Item, error) {
	sets := []string{}
	args := []any{}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if input.SKU != nil {
		set("sku", *input.SKU)
	}
	if input.Name != nil {
		set("name", *input.Name)
	}
	if input.Description != nil {
		set("description", *input.Description)
	}
	if input.UOM != nil {
		set("uom", *input.UOM)
	}
	if input.OnHand != nil {
		set("on_hand", *input.OnHand)
	}
	if input.MinQty != nil {
		set("min_qty", *input.MinQty)
	}
	if input.LastPrice != nil {
		set("last_price", *input.LastPrice)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, input.ID)
	query := `UPDATE inventory_items SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, shared.TranslateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.ErrNotFound
	}
	return r.Get(ctx, input.ID)
}

// Delete removes the item and returns its id.
func (r *repository) Delete(ctx context.Context, id string) (string, error) {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM inventory_items WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", shared.TranslateConstraint(err)
	}
	return deleted, nil
}
