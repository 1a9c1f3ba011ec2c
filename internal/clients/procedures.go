package clients

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

// Procedures returns the client procedures for router registration.
func Procedures(svc *Service) []rpc.Procedure {
	protected := rpc.Protected()
	return []rpc.Procedure{
		rpc.NewProcedure("clients.list", protected,
			func(ctx context.Context, rc rpc.Context, _ struct{}) ([]Client, error) {
				return svc.List(ctx)
			}),
		rpc.NewProcedure("clients.getById", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (*Client, error) {
				return svc.Get(ctx, in.ID)
			}),
		rpc.NewProcedure("clients.create", protected,
			func(ctx context.Context, rc rpc.Context, in CreateInput) (*Client, error) {
				return svc.Create(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("clients.update", protected,
			func(ctx context.Context, rc rpc.Context, in UpdateInput) (*Client, error) {
				return svc.Update(ctx, in, rc.Identity.ID)
			}),
		rpc.NewProcedure("clients.delete", protected,
			func(ctx context.Context, rc rpc.Context, in idInput) (deleteResult, error) {
				id, err := svc.Delete(ctx, in.ID, rc.Identity.ID)
				return deleteResult{ID: id}, err
			}),
	}
}
