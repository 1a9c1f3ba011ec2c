package issues

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Service wraps issue business rules.
type Service struct {
	repo  Repository
	audit *shared.AuditLogger
}

// NewService constructs a Service. audit may be nil in tests.
func NewService(repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, audit: audit}
}

// List returns all issues newest first.
func (s *Service) List(ctx context.Context) ([]WithRefs, error) {
	return s.repo.List(ctx)
}

// Get returns one issue by id.
func (s *Service) Get(ctx context.Context, id string) (*WithRefs, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new issue. The creator is always the calling identity.
func (s *Service) Create(ctx context.Context, input CreateInput, actorID string) (*WithRefs, error) {
	status := input.Status
	if status == "" {
		status = StatusOpen
	}
	severity := input.Severity
	if severity == "" {
		severity = SeverityMedium
	}
	created, err := s.repo.Create(ctx, Issue{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Severity:    severity,
		DueDate:     input.DueDate,
		Location:    input.Location,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
		CreatedByID: actorID,
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "issue.create", created.ID)
	return created, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, input UpdateInput, actorID string) (*WithRefs, error) {
	updated, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "issue.update", updated.ID)
	return updated, nil
}

// Delete removes an issue and returns the removed id.
func (s *Service) Delete(ctx context.Context, id string, actorID string) (string, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.recordAudit(ctx, actorID, "issue.delete", deleted)
	return deleted, nil
}

func (s *Service) recordAudit(ctx context.Context, actorID, action, entityID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "issue",
		EntityID: entityID,
	})
}
