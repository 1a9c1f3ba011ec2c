package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/sitedesk/sitedesk/internal/auth"
)

// SessionSweepJob deletes expired session records from postgres. The redis
// copies expire on their own TTL.
type SessionSweepJob struct {
	auth   *auth.Service
	logger *slog.Logger
}

// NewSessionSweepJob constructs the job.
func NewSessionSweepJob(authService *auth.Service, logger *slog.Logger) *SessionSweepJob {
	return &SessionSweepJob{auth: authService, logger: logger}
}

// Handle processes TaskSessionSweep tasks.
func (j *SessionSweepJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload SessionSweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	removed, err := j.auth.SweepExpiredSessions(ctx)
	if err != nil {
		return err
	}
	j.logger.Info("session sweep complete", slog.Int64("removed", removed))
	return nil
}
