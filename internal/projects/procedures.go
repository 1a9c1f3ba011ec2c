package projects

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/rpc"
)

type idInput struct {
	ID string `json:"id" validate:"required"`
}

type deleteResult struct {
	ID string `json:"id"`
}

// Procedures returns the project procedures for router registration.
// All five operations require an authenticated caller.
func Procedures(svc *Service) []rpc.Procedure {
	protected := rpc.Protected()
	return []rpc.Procedure{
		rpc.NewProcedure("projects.list", protected,
			func(ctx context.Context, rc rpc.Context, _ struct{}) ([]Summary, error) {
				return svc.List(ctx)
			}),
		rpc.NewProcedure("projects.getById", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (*Detail, error) {
				return svc.Get(ctx, in.ID)
			}),
		rpc.NewProcedure("projects.create", protected,
			func(ctx context.Context, rc rpc.Context, in CreateInput) (*WithRefs, error) {
				return svc.Create(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("projects.update", protected,
			func(ctx context.Context, rc rpc.Context, in UpdateInput) (*WithRefs, error) {
				return svc.Update(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("projects.delete", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (deleteResult, error) {
				id, err := svc.Delete(ctx, in.ID, rc.Identity.ID)
				return deleteResult{ID: id}, err
			}),
	}
}
