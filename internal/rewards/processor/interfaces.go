package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	referralProcessor "rewards-server/internal/referral/processor"
	"rewards-server/internal/rules"
	"rewards-server/internal/rules/engine"
	"rewards-server/internal/store"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RewardStore defines the database operations required by RewardsProcessor
type RewardStore interface {
	CreateInteractionLog(ctx context.Context, params store.CreateInteractionLogParams) (store.InteractionLog, error)
	GetInteractionLogByID(ctx context.Context, id uuid.UUID) (store.InteractionLog, error)
	FindUnprocessedInteractionLogs(ctx context.Context, createdBefore time.Time, limit int) ([]store.InteractionLog, error)
	MarkInteractionProcessed(ctx context.Context, id uuid.UUID) error
	RecordRewards(ctx context.Context, interactionID uuid.UUID, assets []store.CreateAssetLogParams) ([]store.AssetLog, error)
	CancelPendingAssetLogsByInteraction(ctx context.Context, interactionID uuid.UUID) ([]store.AssetLog, error)
	ListAssetLogsByInteraction(ctx context.Context, interactionID uuid.UUID) ([]store.AssetLog, error)
	RollbackBudget(ctx context.Context, ruleID uuid.UUID, amount decimal.Decimal) error
	FindIdentityByIdentifier(ctx context.Context, identifierType, value string) (store.Identity, error)
	GetWalletForIdentityGroup(ctx context.Context, identityGroupID uuid.UUID) (*string, error)
}

// Attributor credits a conversion to a touchpoint
type Attributor interface {
	AttributeConversion(ctx context.Context, identityGroupID, merchantID uuid.UUID) (rules.AttributionContext, error)
}

// ReferralLookup reads the referral graph
type ReferralLookup interface {
	GetReferrer(ctx context.Context, merchantID, identityGroupID uuid.UUID) (*uuid.UUID, error)
	GetReferralChain(ctx context.Context, merchantID, identityGroupID uuid.UUID, maxDepth int) ([]referralProcessor.ChainLink, error)
}

// RuleEvaluator runs a merchant's active campaign rules for one event
type RuleEvaluator interface {
	EvaluateRules(ctx context.Context, merchantID uuid.UUID, trigger rules.Trigger, rc rules.RuleContext, referrerID *uuid.UUID) (engine.EvaluationResult, error)
}

// EventPublisher announces reward ledger changes
type EventPublisher interface {
	PublishRewardsCreated(ctx context.Context, merchantID, interactionID uuid.UUID, assets []store.AssetLog) error
	PublishRewardsCancelled(ctx context.Context, merchantID, interactionID uuid.UUID, assets []store.AssetLog) error
}
