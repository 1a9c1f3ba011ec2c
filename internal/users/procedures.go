package users

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

// Procedures returns the account management procedures, all restricted
// to administrators.
func Procedures(svc *Service) []rpc.Procedure {
	adminOnly := rpc.AdminOnly()
	return []rpc.Procedure{
		rpc.NewProcedure("users.list", adminOnly,
			func(ctx context.Context, rc rpc.Context, _ struct{}) ([]Account, error) {
				return svc.List(ctx)
			}),
		rpc.NewProcedure("users.getById", adminOnly,
			func(ctx context.Context, rc rpc.Context, in idInput) (*Account, error) {
				return svc.Get(ctx, in.ID)
			}),
		rpc.NewProcedure("users.create", adminOnly,
			func(ctx context.Context, rc rpc.Context, in CreateInput) (*Account, error) {
				return svc.Create(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("users.update", adminOnly,
			func(ctx context.Context, rc rpc.Context, in UpdateInput) (*Account, error) {
				return svc.Update(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("users.delete", adminOnly,
			func(ctx context.Context, rc rpc.Context, in idInput) (deleteResult, error) {
				id, err := svc.Delete(ctx, in.ID, rc.Identity.ID)
				return deleteResult{ID: id}, err
			}),
	}
}
