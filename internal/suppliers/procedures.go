package suppliers

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

// Procedures returns the supplier procedures for router registration.
func Procedures(svc *Service) []rpc.Procedure {
	protected := rpc.Protected()
	return []rpc.Procedure{
		rpc.NewProcedure("suppliers.list", protected,
			func(ctx context.Context, rc rpc.Context, _ struct{}) ([]Supplier, error) {
				return svc.List(ctx)
			}),
		rpc.NewProcedure("suppliers.getById", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (*Supplier, error) {
				return svc.Get(ctx, in.ID)
			}),
		rpc.NewProcedure("suppliers.create", protected,
			func(ctx context.Context, rc rpc.Context, in CreateInput) (*Supplier, error) {
				return svc.Create(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("suppliers.update", protected,
			func(ctx context.Context, rc rpc.Context, in UpdateInput) (*Supplier, error) {
				return svc.Update(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("suppliers.delete", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (deleteResult, error) {
				id, err := svc.Delete(ctx, in.ID, rc.Identity.ID)
				return deleteResult{ID: id}, err
			}),
	}
}
