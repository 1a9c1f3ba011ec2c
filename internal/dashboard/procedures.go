package dashboard

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/rpc"
)

type refreshResult struct {
	Refreshed bool `json:"refreshed"`
}

// Procedures returns the dashboard procedures for router registration.
func Procedures(svc *Service) []rpc.Procedure {
	return []rpc.Procedure{
		rpc.NewProcedure("dashboard.summary", rpc.Protected(),
			func(ctx context.Context, rc rpc.Context, _ struct{}) (*Summary, error) {
				return svc.Summary(ctx)
			}),
		rpc.NewProcedure("dashboard.refresh", rpc.AdminOnly(),
			func(ctx context.Context, rc rpc.Context, _ struct{}) (refreshResult, error) {
				if err := svc.Invalidate(ctx); err != nil {
					return refreshResult{}, err
				}
				return refreshResult{Refreshed: true}, nil
			}),
	}
}
