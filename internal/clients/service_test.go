package clients

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared"
)

type mockRepository struct {
	clients    map[string]*Client
	nextID     int
	referenced map[string]bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		clients:    make(map[string]*Client),
		referenced: make(map[string]bool),
		nextID:     1,
	}
}

func (m *mockRepository) List(ctx context.Context) ([]Client, error) {
	out := make([]Client, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (m *mockRepository) Create(ctx context.Context, client Client) (*Client, error) {
	for _, existing := range m.clients {
		if existing.Name == client.Name {
			return nil, &shared.ConflictError{Constraint: "clients_name_key"}
		}
	}
	client.ID = fmt.Sprintf("c-%d", m.nextID)
	m.nextID++
	stored := client
	m.clients[client.ID] = &stored
	return &stored, nil
}

func (m *mockRepository) Update(ctx context.Context, input UpdateInput) (*Client, error) {
	c, ok := m.clients[input.ID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	return c, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) (string, error) {
	if _, ok := m.clients[id]; !ok {
		return "", shared.ErrNotFound
	}
	if m.referenced[id] {
		return "", &shared.ConflictError{Constraint: "projects_client_id_fkey"}
	}
	delete(m.clients, id)
	return id, nil
}

var _ Repository = (*mockRepository)(nil)

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc := NewService(newMockRepository(), nil)

	_, err := svc.Create(context.Background(), CreateInput{Name: "ABC Construction Ltd"}, "u-actor")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{Name: "ABC Construction Ltd"}, "u-actor")
	var conflict *shared.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "clients_name_key", conflict.Constraint)
}

func TestDeleteReferencedClientConflicts(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{Name: "ABC Construction Ltd"}, "u-actor")
	require.NoError(t, err)
	repo.referenced[created.ID] = true

	_, err = svc.Delete(context.Background(), created.ID, "u-actor")
	var conflict *shared.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "projects_client_id_fkey", conflict.Constraint)
}

func TestUpdatePartial(t *testing.T) {
	svc := NewService(newMockRepository(), nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Name:  "ABC Construction Ltd",
		Email: "contact@abcconstruction.com",
	}, "u-actor")
	require.NoError(t, err)

	email := "accounts@abcconstruction.com"
	updated, err := svc.Update(context.Background(), UpdateInput{ID: created.ID, Email: &email}, "u-actor")
	require.NoError(t, err)
	require.Equal(t, email, updated.Email)
	require.Equal(t, "ABC Construction Ltd", updated.Name)
}
