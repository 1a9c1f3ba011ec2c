package projects

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Service wraps project business rules.
type Service struct {
	repo  Repository
	audit *shared.AuditLogger
}

// NewService constructs a Service. audit may be nil in tests.
func NewService(repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, audit: audit}
}

// List returns all projects newest first.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get returns one project with its full relation graph.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Create inserts a new project attributed to the caller. The manager id is
// always the actor's id: client-supplied managerId is discarded so a caller
// cannot attribute a project to someone else.
func (s *Service) Create(ctx context.Context, input CreateInput, actorID string) (*WithRefs, error) {
	status := input.Status
	if status == "" {
		status = StatusPlanning
	}
	created, err := s.repo.Create(ctx, Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ClientID:    input.ClientID,
		ManagerID:   actorID,
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "project.create", created.ID, map[string]any{"name": created.Name})
	return created, nil
}

// Update applies a partial update. Supplied managerId is honored here, in
// contrast to Create; only creation forces the caller's identity. There is
// no optimistic concurrency control: concurrent updates to the same row
// resolve last-write-wins in the store.
func (s *Service) Update(ctx context.Context, input UpdateInput, actorID string) (*WithRefs, error) {
	updated, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "project.update", updated.ID, nil)
	return updated, nil
}

// Delete removes a project and returns the removed id.
func (s *Service) Delete(ctx context.Context, id string, actorID string) (string, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.recordAudit(ctx, actorID, "project.delete", deleted, nil)
	return deleted, nil
}

func (s *Service) recordAudit(ctx context.Context, actorID, action, entityID string, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "project",
		EntityID: entityID,
		Meta:     meta,
	})
}
