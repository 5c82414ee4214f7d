package jobs

import (
	"context"
	"fmt"
	"rewards-server/internal/observability"
	"time"
)

// DefaultTouchpointGrace keeps expired touchpoints around for a day before deleting them
const DefaultTouchpointGrace = 24 * time.Hour

// TouchpointSweepJob deletes touchpoints that expired more than a grace period ago
type TouchpointSweepJob struct {
	store    TouchpointSweeper
	logger   *observability.Logger
	interval time.Duration
	grace    time.Duration
	now      func() time.Time
}

// NewTouchpointSweepJob creates a new touchpoint sweep job
func NewTouchpointSweepJob(store TouchpointSweeper, logger *observability.Logger, interval, grace time.Duration) *TouchpointSweepJob {
	if interval == 0 {
		interval = time.Hour
	}
	if grace < 0 {
		grace = DefaultTouchpointGrace
	}

	return &TouchpointSweepJob{
		store:    store,
		logger:   logger,
		interval: interval,
		grace:    grace,
		now:      time.Now,
	}
}

// Name returns the job name
func (j *TouchpointSweepJob) Name() string {
	return "touchpoint_sweep"
}

// Schedule returns how often the job should run
func (j *TouchpointSweepJob) Schedule() time.Duration {
	return j.interval
}

// Run deletes expired touchpoints
func (j *TouchpointSweepJob) Run(ctx context.Context) error {
	deleted, err := j.store.DeleteExpiredTouchpoints(ctx, j.now().Add(-j.grace))
	if err != nil {
		return fmt.Errorf("failed to delete expired touchpoints: %w", err)
	}
	if deleted > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Deleted %d expired touchpoints", deleted))
	}
	return nil
}
