package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository aggregates dashboard figures from the store.
type Repository interface {
	Collect(ctx context.Context) (*Summary, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// Collect runs the aggregation queries for one snapshot. Budget totals
// exclude cancelled projects.
func (r *repository) Collect(ctx context.Context) (*Summary, error) {
	summary := &Summary{ProjectStatusCounts: map[string]int{}}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.ProjectStatusCounts[status] = count
		summary.TotalProjects += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM issues WHERE status IN ('OPEN', 'IN_PROGRESS')`,
	).Scan(&summary.OpenIssues)
	if err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE due_date < NOW() AND status <> 'COMPLETED'`,
	).Scan(&summary.OverdueTasks)
	if err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_items WHERE on_hand < min_qty`,
	).Scan(&summary.LowStockItems)
	if err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(budget), 0), COALESCE(SUM(actual_cost), 0)
		FROM projects WHERE status <> 'CANCELLED'`,
	).Scan(&summary.TotalBudget, &summary.TotalActualCost)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
