package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sitedesk/sitedesk/internal/rpc"
	"github.com/sitedesk/sitedesk/internal/shared"
)

type mockRepository struct {
	accounts map[string]*Account
	hashes   map[string]string
	nextID   int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		accounts: make(map[string]*Account),
		hashes:   make(map[string]string),
		nextID:   1,
	}
}

func (m *mockRepository) List(ctx context.Context) ([]Account, error) {
	out := make([]Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return a, nil
}

func (m *mockRepository) Create(ctx context.Context, account Account, passwordHash string) (*Account, error) {
	for _, existing := range m.accounts {
		if existing.Email == account.Email {
			return nil, &shared.ConflictError{Constraint: "users_email_key"}
		}
	}
	account.ID = fmt.Sprintf("u-%d", m.nextID)
	m.nextID++
	account.IsActive = true
	stored := account
	m.accounts[account.ID] = &stored
	m.hashes[account.ID] = passwordHash
	return &stored, nil
}

func (m *mockRepository) Update(ctx context.Context, input UpdateInput, passwordHash *string) (*Account, error) {
	a, ok := m.accounts[input.ID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if input.Name != nil {
		a.Name = *input.Name
	}
	if input.Role != nil {
		a.Role = *input.Role
	}
	if input.IsActive != nil {
		a.IsActive = *input.IsActive
	}
	if passwordHash != nil {
		m.hashes[input.ID] = *passwordHash
	}
	return a, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) (string, error) {
	if _, ok := m.accounts[id]; !ok {
		return "", shared.ErrNotFound
	}
	delete(m.accounts, id)
	return id, nil
}

var _ Repository = (*mockRepository)(nil)

func TestCreateHashesPassword(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Email:    "new@construction.com",
		Name:     "New User",
		Role:     rpc.RoleEmployee,
		Password: "password123",
	}, "u-admin")
	require.NoError(t, err)

	hash := repo.hashes[created.ID]
	require.NotEqual(t, "password123", hash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("password123")))
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	input := CreateInput{
		Email:    "new@construction.com",
		Name:     "New User",
		Role:     rpc.RoleEmployee,
		Password: "password123",
	}
	_, err := svc.Create(context.Background(), input, "u-admin")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), input, "u-admin")
	var conflict *shared.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateWithoutPasswordKeepsHash(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Email:    "new@construction.com",
		Name:     "New User",
		Role:     rpc.RoleEmployee,
		Password: "password123",
	}, "u-admin")
	require.NoError(t, err)
	originalHash := repo.hashes[created.ID]

	name := "Renamed User"
	updated, err := svc.Update(context.Background(), UpdateInput{ID: created.ID, Name: &name}, "u-admin")
	require.NoError(t, err)
	require.Equal(t, "Renamed User", updated.Name)
	require.Equal(t, originalHash, repo.hashes[created.ID])
}

func TestUpdatePasswordReplacesHash(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Email:    "new@construction.com",
		Name:     "New User",
		Role:     rpc.RoleEmployee,
		Password: "password123",
	}, "u-admin")
	require.NoError(t, err)

	password := "betterpassword"
	_, err = svc.Update(context.Background(), UpdateInput{ID: created.ID, Password: &password}, "u-admin")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.hashes[created.ID]), []byte("betterpassword")))
}

func TestDeleteMissingAccount(t *testing.T) {
	svc := NewService(newMockRepository(), nil)

	_, err := svc.Delete(context.Background(), "u-missing", "u-admin")
	require.ErrorIs(t, err, shared.ErrNotFound)
}
