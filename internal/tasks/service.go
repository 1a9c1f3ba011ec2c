package tasks

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Service wraps task business rules.
type Service struct {
	repo  Repository
	audit *shared.AuditLogger
}

// NewService constructs a Service. audit may be nil in tests.
func NewService(repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, audit: audit}
}

// List returns all tasks newest first.
func (s *Service) List(ctx context.Context) ([]WithRefs, error) {
	return s.repo.List(ctx)
}

// Get returns one task by id.
func (s *Service) Get(ctx context.Context, id string) (*WithRefs, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new task. Logged hours start at zero.
func (s *Service) Create(ctx context.Context, input CreateInput, actorID string) (*WithRefs, error) {
	status := input.Status
	if status == "" {
		status = StatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	created, err := s.repo.Create(ctx, Task{
		Title:          input.Title,
		Description:    input.Description,
		Status:         status,
		Priority:       priority,
		Phase:          input.Phase,
		EstimatedHours: input.EstimatedHours,
		DueDate:        input.DueDate,
		ProjectID:      input.ProjectID,
		AssigneeID:     input.AssigneeID,
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "task.create", created.ID)
	return created, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, input UpdateInput, actorID string) (*WithRefs, error) {
	updated, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "task.update", updated.ID)
	return updated, nil
}

// Delete removes a task and returns the removed id.
func (s *Service) Delete(ctx context.Context, id string, actorID string) (string, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.recordAudit(ctx, actorID, "task.delete", deleted)
	return deleted, nil
}

func (s *Service) recordAudit(ctx context.Context, actorID, action, entityID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "task",
		EntityID: entityID,
	})
}
