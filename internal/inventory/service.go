package inventory

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Service wraps inventory business rules.
type Service struct {
	repo  Repository
	audit *shared.AuditLogger
}

// NewService constructs a Service. audit may be nil in tests.
func NewService(repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, audit: audit}
}

// List returns all items ordered by SKU.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// LowStock returns items under their reorder threshold.
func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	return s.repo.ListBelowMin(ctx)
}

// Get returns one item by id.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new item.
func (s *Service) Create(ctx context.Context, input CreateInput, actorID string) (*Item, error) {
	created, err := s.repo.Create(ctx, Item{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		UOM:         input.UOM,
		OnHand:      input.OnHand,
		MinQty:      input.MinQty,
		LastPrice:   input.LastPrice,
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "inventory.create", created.ID)
	return created, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, input UpdateInput, actorID string) (*Item, error) {
	updated, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "inventory.update", updated.ID)
	return updated, nil
}

// Delete removes an item and returns the removed id.
func (s *Service) Delete(ctx context.Context, id string, actorID string) (string, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.recordAudit(ctx, actorID, "inventory.delete", deleted)
	return deleted, nil
}

func (s *Service) recordAudit(ctx context.Context, actorID, action, entityID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "inventory_item",
		EntityID: entityID,
	})
}
