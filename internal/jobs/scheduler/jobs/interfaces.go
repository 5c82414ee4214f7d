package jobs

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=jobs

import (
	"context"
	rewardsProcessor "rewards-server/internal/rewards/processor"
	settlementProcessor "rewards-server/internal/settlement/processor"
	"time"
)

// InteractionBatchProcessor rewards interactions that were recorded for later processing
type InteractionBatchProcessor interface {
	ProcessBatch(ctx context.Context, minAge time.Duration, limit int) (rewardsProcessor.BatchResult, error)
}

// SettlementRunner settles one batch of pending token rewards
type SettlementRunner interface {
	Run(ctx context.Context) (settlementProcessor.RunResult, error)
}

// TouchpointSweeper removes expired touchpoints
type TouchpointSweeper interface {
	DeleteExpiredTouchpoints(ctx context.Context, before time.Time) (int64, error)
}
