package jobs

import (
	"context"
	"fmt"
	"rewards-server/internal/observability"
	"time"
)

// InteractionBatchJob processes unprocessed interaction logs on a schedule
type InteractionBatchJob struct {
	processor InteractionBatchProcessor
	logger    *observability.Logger
	interval  time.Duration
	minAge    time.Duration
	batchSize int
}

// NewInteractionBatchJob creates a new interaction batch job
func NewInteractionBatchJob(
	processor InteractionBatchProcessor,
	logger *observability.Logger,
	interval time.Duration,
	minAge time.Duration,
	batchSize int,
) *InteractionBatchJob {
	if interval == 0 {
		interval = time.Minute
	}

	return &InteractionBatchJob{
		processor: processor,
		logger:    logger,
		interval:  interval,
		minAge:    minAge,
		batchSize: batchSize,
	}
}

// Name returns the job name
func (j *InteractionBatchJob) Name() string {
	return "interaction_batch"
}

// Schedule returns how often the job should run
func (j *InteractionBatchJob) Schedule() time.Duration {
	return j.interval
}

// Run processes one batch. Per-interaction failures are counted, not returned.
func (j *InteractionBatchJob) Run(ctx context.Context) error {
	result, err := j.processor.ProcessBatch(ctx, j.minAge, j.batchSize)
	if err != nil {
		return fmt.Errorf("failed to process interaction batch: %w", err)
	}

	if result.Fetched > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Interaction batch: fetched %d, processed %d, skipped %d, failed %d",
			result.Fetched, result.Processed, result.Skipped, result.Failed))
	}
	return nil
}
