package suppliers

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Service wraps supplier business rules.
type Service struct {
	repo  Repository
	audit *shared.AuditLogger
}

// NewService constructs a Service. audit may be nil in tests.
func NewService(repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, audit: audit}
}

// List returns all suppliers newest first.
func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}

// Get returns one supplier by id.
func (s *Service) Get(ctx context.Context, id string) (*Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new supplier.
func (s *Service) Create(ctx context.Context, input CreateInput, actorID string) (*Supplier, error) {
	created, err := s.repo.Create(ctx, Supplier{
		Name:        input.Name,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "supplier.create", created.ID)
	return created, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, input UpdateInput, actorID string) (*Supplier, error) {
	updated, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "supplier.update", updated.ID)
	return updated, nil
}

// Delete removes a supplier and returns the removed id.
func (s *Service) Delete(ctx context.Context, id string, actorID string) (string, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.recordAudit(ctx, actorID, "supplier.delete", deleted)
	return deleted, nil
}

func (s *Service) recordAudit(ctx context.Context, actorID, action, entityID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "supplier",
		EntityID: entityID,
	})
}
