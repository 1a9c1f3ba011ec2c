package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Service computes and caches the dashboard summary.
type Service struct {
	repo    Repository
	cache   *Cache
	group   singleflight.Group
	printer *message.Printer
}

// NewService constructs a Service. cache may be nil, in which case every
// call hits the store.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		printer: message.NewPrinter(language.English),
	}
}

// Summary returns the current snapshot. Concurrent callers share one
// computation per cache key.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	key, err := s.cache.BuildKey(ctx, "dashboard", "summary")
	if err != nil {
		return nil, err
	}

	resultChan := s.group.DoChan(key, func() (interface{}, error) {
		var summary Summary
		err := s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
			return s.collect(ctx)
		})
		if err != nil {
			return nil, err
		}
		return &summary, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Summary), nil
	}
}

// Invalidate discards cached snapshots so the next call recomputes.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

func (s *Service) collect(ctx context.Context) (*Summary, error) {
	summary, err := s.repo.Collect(ctx)
	if err != nil {
		return nil, err
	}
	summary.BudgetDisplay = s.formatAmount(summary.TotalBudget)
	summary.ActualCostDisplay = s.formatAmount(summary.TotalActualCost)
	summary.GeneratedAt = time.Now().UTC()
	return summary, nil
}

func (s *Service) formatAmount(v float64) string {
	return s.printer.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
