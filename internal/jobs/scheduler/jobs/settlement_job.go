package jobs

import (
	"context"
	"fmt"
	"rewards-server/internal/observability"
	"time"
)

// SettlementJob submits pending token rewards to the ledger on a schedule
type SettlementJob struct {
	settlement SettlementRunner
	logger     *observability.Logger
	interval   time.Duration
}

// NewSettlementJob creates a new settlement job
func NewSettlementJob(settlement SettlementRunner, logger *observability.Logger, interval time.Duration) *SettlementJob {
	if interval == 0 {
		interval = 5 * time.Minute
	}

	return &SettlementJob{
		settlement: settlement,
		logger:     logger,
		interval:   interval,
	}
}

// Name returns the job name
func (j *SettlementJob) Name() string {
	return "settlement"
}

// Schedule returns how often the job should run
func (j *SettlementJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one settlement run
func (j *SettlementJob) Run(ctx context.Context) error {
	result, err := j.settlement.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to run settlement: %w", err)
	}

	for _, itemErr := range result.Errors {
		itemCtx := observability.WithFields(ctx,
			observability.Field{Key: "asset_log_id", Value: itemErr.AssetLogID.String()},
			observability.Field{Key: "settlement_mode", Value: itemErr.Mode},
		)
		j.logger.Warn(itemCtx, fmt.Sprintf("asset log left pending: %s", itemErr.Error))
	}
	return nil
}
