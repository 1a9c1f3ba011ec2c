package tasks

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

// Procedures returns the task procedures for router registration.
func Procedures(svc *Service) []rpc.Procedure {
	protected := rpc.Protected()
	return []rpc.Procedure{
		rpc.NewProcedure("tasks.list", protected,
			func(ctx context.Context, rc rpc.Context, _ struct{}) ([]WithRefs, error) {
				return svc.List(ctx)
			}),
		rpc.NewProcedure("tasks.getById", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (*WithRefs, error) {
				return svc.Get(ctx, in.ID)
			}),
		rpc.NewProcedure("tasks.create", protected,
			func(ctx context.Context, rc rpc.Context, in CreateInput) (*WithRefs, error) {
				return svc.Create(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("tasks.update", protected,
			func(ctx context.Context, rc rpc.Context, in UpdateInput) (*WithRefs, error) {
				return svc.Update(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("tasks.delete", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (deleteResult, error) {
				id, err := svc.Delete(ctx, in.ID, rc.Identity.ID)
				return deleteResult{ID: id}, err
			}),
	}
}
