package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"rewards-server/internal/clients/ledger"
	"rewards-server/internal/events"
	"rewards-server/internal/store"
	"time"

	"github.com/google/uuid"
)

// SettlementStore claims, settles and releases token asset logs.
type SettlementStore interface {
	ResetStaleSettlementLocks(ctx context.Context, lockedBefore time.Time) (int64, error)
	ClaimPendingTokenAssetLogs(ctx context.Context, limit int, now time.Time) ([]store.SettlementCandidate, error)
	MarkAssetLogsSettled(ctx context.Context, ids []uuid.UUID, txHash string, blockNumber uint64) error
	RecordUnconfirmedSettlement(ctx context.Context, ids []uuid.UUID, txHash, reason string) error
	ReleaseAssetLogs(ctx context.Context, ids []uuid.UUID, reason string) error
}

// MerchantDirectory resolves the treasury address a merchant settles from.
type MerchantDirectory interface {
	GetMerchantByID(ctx context.Context, merchantID uuid.UUID) (store.Merchant, error)
}

// WalletResolver finds the wallet linked to an identity group, if any.
type WalletResolver interface {
	GetWalletForIdentityGroup(ctx context.Context, identityGroupID uuid.UUID) (*string, error)
}

// RewardsLedger submits reward batches on-chain.
type RewardsLedger interface {
	PushRewards(ctx context.Context, rewards []ledger.PushReward) (ledger.Receipt, error)
	LockRewards(ctx context.Context, rewards []ledger.LockReward) (ledger.Receipt, error)
}

// EventPublisher announces settled batches.
type EventPublisher interface {
	PublishSettlementCompleted(ctx context.Context, batch events.SettlementBatch, merchantAssets map[uuid.UUID][]uuid.UUID) error
}
