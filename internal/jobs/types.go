package jobs

import (
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeInteractionBatch = "rewards:interaction_batch"
	TypeSettlement       = "rewards:settlement"
	TypeTouchpointSweep  = "rewards:touchpoint_sweep"
)

// Queue names
const (
	QueueHigh = "high"
	QueueLow  = "low"
)

// TaskTypes maps scheduled job names to their task types
var TaskTypes = map[string]string{
	"interaction_batch": TypeInteractionBatch,
	"settlement":        TypeSettlement,
	"touchpoint_sweep":  TypeTouchpointSweep,
}

// NewPeriodicTask creates the task enqueued on every tick of a scheduled job. Uniqueness for one
// interval keeps a single logical run in flight; runs are not retried because the next tick
// picks up whatever was left pending.
func NewPeriodicTask(taskType string, interval time.Duration) *asynq.Task {
	queue := QueueHigh
	if taskType == TypeTouchpointSweep {
		queue = QueueLow
	}
	return asynq.NewTask(taskType, nil,
		asynq.Queue(queue),
		asynq.MaxRetry(0),
		asynq.Unique(interval),
		asynq.Timeout(interval),
	)
}
