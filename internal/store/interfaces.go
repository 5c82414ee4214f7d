package store

import (
	"context"
	"rewards-server/internal/rules"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Ping(ctx context.Context) error

	// Merchant directory and identity resolution
	GetMerchantByID(ctx context.Context, merchantID uuid.UUID) (Merchant, error)
	FindIdentityByIdentifier(ctx context.Context, identifierType, value string) (Identity, error)
	GetWalletForIdentityGroup(ctx context.Context, identityGroupID uuid.UUID) (*string, error)

	// Campaign rule operations
	CreateCampaignRule(ctx context.Context, params CreateCampaignRuleParams) (CampaignRule, error)
	GetCampaignRuleByID(ctx context.Context, merchantID, ruleID uuid.UUID) (CampaignRule, error)
	ListCampaignRulesByMerchant(ctx context.Context, merchantID uuid.UUID) ([]CampaignRule, error)
	FindActiveCampaignRulesByMerchant(ctx context.Context, merchantID uuid.UUID, trigger rules.Trigger, now time.Time) ([]CampaignRule, error)
	UpdateCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID, params UpdateCampaignRuleParams) (CampaignRule, error)
	TransitionCampaignRuleStatus(ctx context.Context, merchantID, ruleID uuid.UUID, from []string, to string) (CampaignRule, error)
	DeleteDraftCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID) error
	ConsumeBudget(ctx context.Context, ruleID uuid.UUID, amount decimal.Decimal, now time.Time) (BudgetConsumption, error)
	RollbackBudget(ctx context.Context, ruleID uuid.UUID, amount decimal.Decimal) error

	// Touchpoint operations
	CreateTouchpoint(ctx context.Context, params CreateTouchpointParams) (Touchpoint, error)
	FindLatestReferralTouchpoint(ctx context.Context, identityGroupID, merchantID uuid.UUID, now time.Time) (Touchpoint, error)
	FindLatestValidTouchpoint(ctx context.Context, identityGroupID, merchantID uuid.UUID, now time.Time) (Touchpoint, error)
	DeleteExpiredTouchpoints(ctx context.Context, before time.Time) (int64, error)

	// Referral link operations
	CreateReferralLink(ctx context.Context, merchantID, referrerID, refereeID uuid.UUID) (ReferralLink, bool, error)
	GetReferralLinkByReferee(ctx context.Context, merchantID, refereeID uuid.UUID) (ReferralLink, error)
	ListReferralLinksByReferrer(ctx context.Context, merchantID, referrerID uuid.UUID) ([]ReferralLink, error)

	// Interaction log operations
	CreateInteractionLog(ctx context.Context, params CreateInteractionLogParams) (InteractionLog, error)
	GetInteractionLogByID(ctx context.Context, id uuid.UUID) (InteractionLog, error)
	FindUnprocessedInteractionLogs(ctx context.Context, createdBefore time.Time, limit int) ([]InteractionLog, error)
	MarkInteractionProcessed(ctx context.Context, id uuid.UUID) error
	RecordRewards(ctx context.Context, interactionID uuid.UUID, assets []CreateAssetLogParams) ([]AssetLog, error)

	// Asset log operations
	ListAssetLogsByInteraction(ctx context.Context, interactionID uuid.UUID) ([]AssetLog, error)
	CancelPendingAssetLogsByInteraction(ctx context.Context, interactionID uuid.UUID) ([]AssetLog, error)
	ResetStaleSettlementLocks(ctx context.Context, lockedBefore time.Time) (int64, error)
	ClaimPendingTokenAssetLogs(ctx context.Context, limit int, now time.Time) ([]SettlementCandidate, error)
	MarkAssetLogsSettled(ctx context.Context, ids []uuid.UUID, txHash string, blockNumber uint64) error
	RecordUnconfirmedSettlement(ctx context.Context, ids []uuid.UUID, txHash, reason string) error
	ReleaseAssetLogs(ctx context.Context, ids []uuid.UUID, reason string) error
}

var _ Storer = (*Store)(nil)
