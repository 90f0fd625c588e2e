package jobs

import (
	"context"
	"time"

	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
)

// sessionMaxAge is how long an unfinished trivia session stays open
// before cleanup closes it without payout.
const sessionMaxAge = 24 * time.Hour

// SessionCleanupJob closes trivia sessions that were started and
// abandoned. Closed-by-cleanup sessions never pay out; the completion
// bonus requires finishing the round.
type SessionCleanupJob struct {
	trivia *repositories.TriviaRepository
}

func NewSessionCleanupJob(trivia *repositories.TriviaRepository) *SessionCleanupJob {
	return &SessionCleanupJob{trivia: trivia}
}

func (j *SessionCleanupJob) Run(ctx context.Context) {
	cutoff := time.Now().Add(-sessionMaxAge)
	sessions, err := j.trivia.StaleOpenSessions(ctx, cutoff, 200)
	if err != nil {
		logging.Error("Session cleanup query failed", "error", err.Error())
		return
	}

	closed := 0
	for i := range sessions {
		now := time.Now()
		sessions[i].CompletedAt = &now
		if err := j.trivia.SaveSession(ctx, &sessions[i]); err != nil {
			logging.Warn("Failed to close stale session", "session_id", sessions[i].ID, "error", err.Error())
			continue
		}
		closed++
	}
	if closed > 0 {
		logging.Info("Stale trivia sessions closed", "count", closed)
	}
}

func (j *SessionCleanupJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Run(ctx)
		}
	}
}
