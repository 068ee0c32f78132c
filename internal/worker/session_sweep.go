package worker

import (
	"context"

	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/metrics"
)

// SessionSweeper removes expired game sessions.
type SessionSweeper interface {
	SweepExpired(ctx context.Context) int
	ActiveSessions() int
}

// SessionSweepJob expires abandoned blackjack rounds and refreshes the
// session metrics.
type SessionSweepJob struct {
	sweeper SessionSweeper
}

// NewSessionSweepJob creates a new SessionSweepJob
func NewSessionSweepJob(sweeper SessionSweeper) *SessionSweepJob {
	return &SessionSweepJob{sweeper: sweeper}
}

func (j *SessionSweepJob) Name() string {
	return JobNameSessionSweep
}

func (j *SessionSweepJob) Process(ctx context.Context) error {
	removed := j.sweeper.SweepExpired(ctx)
	active := j.sweeper.ActiveSessions()

	metrics.BlackjackSessionsExpired.Add(float64(removed))
	metrics.BlackjackSessionsActive.Set(float64(active))

	logger.FromContext(ctx).Debug(LogMsgSessionSweepCompleted, "removed", removed, "active", active)
	return nil
}
