package inventory

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

// Procedures returns the inventory procedures for router registration.
func Procedures(svc *Service) []rpc.Procedure {
	protected := rpc.Protected()
	return []rpc.Procedure{
		rpc.NewProcedure("inventory.list", protected,
			func(ctx context.Context, rc rpc.Context, _ struct{}) ([]Item, error) {
				return svc.List(ctx)
			}),
		rpc.NewProcedure("inventory.lowStock", protected,
			func(ctx context.Context, rc rpc.Context, _ struct{}) ([]Item, error) {
				return svc.LowStock(ctx)
			}),
		rpc.NewProcedure("inventory.getById", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (*Item, error) {
				return svc.Get(ctx, in.ID)
			}),
		rpc.NewProcedure("inventory.create", protected,
			func(ctx context.Context, rc rpc.Context, in CreateInput) (*Item, error) {
				return svc.Create(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("inventory.update", protected,
			func(ctx context.Context, rc rpc.Context, in UpdateInput) (*Item, error) {
				return svc.Update(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("inventory.delete", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (deleteResult, error) {
				id, err := svc.Delete(ctx, in.ID, rc.Identity.ID)
				return deleteResult{ID: id}, err
			}),
	}
}
