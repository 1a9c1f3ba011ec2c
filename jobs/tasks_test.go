package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

func TestLowStockScanTaskPayload(t *testing.T) {
	at := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)
	task, err := NewLowStockScanTask(at)
	require.NoError(t, err)
	require.Equal(t, TaskInventoryLowStock, task.Type())

	var payload LowStockScanPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	require.True(t, payload.ScheduledFor.Equal(at))
}

func TestSessionSweepTaskPayload(t *testing.T) {
	at := time.Date(2026, 8, 1, 3, 30, 0, 0, time.UTC)
	task, err := NewSessionSweepTask(at)
	require.NoError(t, err)
	require.Equal(t, TaskSessionSweep, task.Type())

	var payload SessionSweepPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	require.True(t, payload.ScheduledFor.Equal(at))
}

func TestLowStockScanSkipsRetryOnBadPayload(t *testing.T) {
	job := NewLowStockScanJob(nil, nil, slog.Default())
	task := asynq.NewTask(TaskInventoryLowStock, []byte("not json"))

	err := job.Handle(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestSessionSweepSkipsRetryOnBadPayload(t *testing.T) {
	job := NewSessionSweepJob(nil, slog.Default())
	task := asynq.NewTask(TaskSessionSweep, []byte("not json"))

	err := job.Handle(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}
