package issues

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared"
)

type mockRepository struct {
	issues map[string]*Issue
	nextID int
}

func newMockRepository() *mockRepository {
	return &mockRepository{issues: make(map[string]*Issue), nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]WithRefs, error) {
	out := make([]WithRefs, 0, len(m.issues))
	for _, i := range m.issues {
		out = append(out, WithRefs{Issue: *i})
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*WithRefs, error) {
	i, ok := m.issues[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &WithRefs{Issue: *i}, nil
}

func (m *mockRepository) Create(ctx context.Context, issue Issue) (*WithRefs, error) {
	issue.ID = fmt.Sprintf("is-%d", m.nextID)
	m.nextID++
	stored := issue
	m.issues[issue.ID] = &stored
	return &WithRefs{Issue: stored}, nil
}

func (m *mockRepository) Update(ctx context.Context, input UpdateInput) (*WithRefs, error) {
	i, ok := m.issues[input.ID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if input.Status != nil {
		i.Status = *input.Status
	}
	if input.Severity != nil {
		i.Severity = *input.Severity
	}
	if input.AssigneeID != nil {
		i.AssigneeID = input.AssigneeID
	}
	return &WithRefs{Issue: *i}, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) (string, error) {
	if _, ok := m.issues[id]; !ok {
		return "", shared.ErrNotFound
	}
	delete(m.issues, id)
	return id, nil
}

var _ Repository = (*mockRepository)(nil)

func TestCreateForcesCreatorToCaller(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Title:     "Water Damage Found",
		ProjectID: "p-1",
	}, "u-actor")
	require.NoError(t, err)
	require.Equal(t, "u-actor", created.CreatedByID)
}

func TestCreateDefaults(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Title:     "Water Damage Found",
		ProjectID: "p-1",
	}, "u-actor")
	require.NoError(t, err)
	require.Equal(t, StatusOpen, created.Status)
	require.Equal(t, SeverityMedium, created.Severity)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Title:     "Water Damage Found",
		ProjectID: "p-1",
		Severity:  SeverityHigh,
	}, "u-actor")
	require.NoError(t, err)

	resolved := StatusResolved
	updated, err := svc.Update(context.Background(), UpdateInput{ID: created.ID, Status: &resolved}, "u-actor")
	require.NoError(t, err)
	require.Equal(t, StatusResolved, updated.Status)
	require.Equal(t, SeverityHigh, updated.Severity)
}

func TestDeleteMissingIssue(t *testing.T) {
	svc := NewService(newMockRepository(), nil)

	_, err := svc.Delete(context.Background(), "is-missing", "u-actor")
	require.ErrorIs(t, err, shared.ErrNotFound)
}
