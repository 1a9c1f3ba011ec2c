package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Service wraps account management rules.
type Service struct {
	repo  Repository
	audit *shared.AuditLogger
}

// NewService constructs a Service. audit may be nil in tests.
func NewService(repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, audit: audit}
}

// List returns all accounts ordered by name.
func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

// Get returns one account by id.
func (s *Service) Get(ctx context.Context, id string) (*Account, error) {
	return s.repo.Get(ctx, id)
}

// Create hashes the supplied password and inserts the account.
func (s *Service) Create(ctx context.Context, input CreateInput, actorID string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, Account{
		Email: input.Email,
		Name:  input.Name,
		Role:  input.Role,
	}, string(hash))
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "user.create", created.ID)
	return created, nil
}

// Update applies a partial update, rehashing the password when one is supplied.
func (s *Service) Update(ctx context.Context, input UpdateInput, actorID string) (*Account, error) {
	var passwordHash *string
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		passwordHash = &h
	}
	updated, err := s.repo.Update(ctx, input, passwordHash)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, actorID, "user.update", updated.ID)
	return updated, nil
}

// Delete removes an account and returns the removed id.
func (s *Service) Delete(ctx context.Context, id string, actorID string) (string, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.recordAudit(ctx, actorID, "user.delete", deleted)
	return deleted, nil
}

func (s *Service) recordAudit(ctx context.Context, actorID, action, entityID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "user",
		EntityID: entityID,
	})
}
