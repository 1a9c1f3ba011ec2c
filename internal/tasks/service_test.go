package tasks

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared"
)

type mockRepository struct {
	tasks  map[string]*Task
	nextID int
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: make(map[string]*Task), nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]WithRefs, error) {
	out := make([]WithRefs, 0, len(m.tasks))
	for _, task := range m.tasks {
		out = append(out, WithRefs{Task: *task})
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*WithRefs, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &WithRefs{Task: *task}, nil
}

func (m *mockRepository) Create(ctx context.Context, task Task) (*WithRefs, error) {
	task.ID = fmt.Sprintf("t-%d", m.nextID)
	m.nextID++
	zero := 0.0
	task.LoggedHours = &zero
	stored := task
	m.tasks[task.ID] = &stored
	return &WithRefs{Task: stored}, nil
}

func (m *mockRepository) Update(ctx context.Context, input UpdateInput) (*WithRefs, error) {
	task, ok := m.tasks[input.ID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.LoggedHours != nil {
		task.LoggedHours = input.LoggedHours
	}
	if input.AssigneeID != nil {
		task.AssigneeID = input.AssigneeID
	}
	return &WithRefs{Task: *task}, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) (string, error) {
	if _, ok := m.tasks[id]; !ok {
		return "", shared.ErrNotFound
	}
	delete(m.tasks, id)
	return id, nil
}

var _ Repository = (*mockRepository)(nil)

func TestCreateDefaults(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Title:     "Electrical Installation",
		ProjectID: "p-1",
	}, "u-actor")
	require.NoError(t, err)
	require.Equal(t, StatusTodo, created.Status)
	require.Equal(t, PriorityMedium, created.Priority)
	require.NotNil(t, created.LoggedHours)
	require.Zero(t, *created.LoggedHours)
}

func TestCreateKeepsExplicitStatusAndPriority(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Title:     "Electrical Installation",
		ProjectID: "p-1",
		Status:    StatusInProgress,
		Priority:  PriorityHigh,
	}, "u-actor")
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, created.Status)
	require.Equal(t, PriorityHigh, created.Priority)
}

func TestUpdateLogsHours(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Title:     "Electrical Installation",
		ProjectID: "p-1",
	}, "u-actor")
	require.NoError(t, err)

	logged := 12.5
	status := StatusInProgress
	updated, err := svc.Update(context.Background(), UpdateInput{
		ID:          created.ID,
		Status:      &status,
		LoggedHours: &logged,
	}, "u-actor")
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, updated.Status)
	require.Equal(t, logged, *updated.LoggedHours)
}

func TestGetMissingTask(t *testing.T) {
	svc := NewService(newMockRepository(), nil)

	_, err := svc.Get(context.Background(), "t-missing")
	require.ErrorIs(t, err, shared.ErrNotFound)
}
