package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"rewards-server/internal/rules"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// Merchant is the merchant directory entry settlement reads its treasury address from
type Merchant struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	BankAddress *string   `db:"bank_address" json:"bank_address,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is a resolved identity group with its linked wallet, if any
type Identity struct {
	ID            uuid.UUID `db:"id" json:"id"`
	WalletAddress *string   `db:"wallet_address" json:"wallet_address,omitempty"`
}

// CampaignRule is a merchant-defined rule with its budget and lifecycle state
type CampaignRule struct {
	ID         uuid.UUID `db:"id" json:"id"`
	MerchantID uuid.UUID `db:"merchant_id" json:"merchant_id"`
	Name       string    `db:"name" json:"name"`
	Priority   int       `db:"priority" json:"priority"`
	// Status is NULL for rows written before lifecycle tracking; see EffectiveStatus
	Status *string `db:"status" json:"-"`

	Definition   rules.RuleDefinition `db:"definition" json:"definition"`
	BudgetConfig rules.BudgetConfig   `db:"budget_config" json:"budget_config,omitempty"`
	BudgetUsed   rules.BudgetUsed     `db:"budget_used" json:"budget_used"`
	Metadata     JSONB                `db:"metadata" json:"metadata,omitempty"`

	ExpiresAt     *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	PublishedAt   *time.Time `db:"published_at" json:"published_at,omitempty"`
	DeactivatedAt *time.Time `db:"deactivated_at" json:"deactivated_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EffectiveStatus returns the lifecycle status, deriving it from deactivated_at for legacy rows
func (r CampaignRule) EffectiveStatus() string {
	if r.Status != nil {
		return *r.Status
	}
	if r.DeactivatedAt == nil {
		return CampaignRuleStatusActive
	}
	return CampaignRuleStatusArchived
}

// IsEligible reports whether the rule should be evaluated at now
func (r CampaignRule) IsEligible(now time.Time) bool {
	if r.EffectiveStatus() != CampaignRuleStatusActive {
		return false
	}
	return r.ExpiresAt == nil || r.ExpiresAt.After(now)
}

func (r CampaignRule) MarshalJSON() ([]byte, error) {
	type alias CampaignRule
	return json.Marshal(struct {
		alias
		Status string `json:"status"`
	}{alias: alias(r), Status: r.EffectiveStatus()})
}

// BudgetConsumption is the outcome of charging a campaign's budget
type BudgetConsumption struct {
	Success        bool   `json:"success"`
	Reason         string `json:"reason,omitempty"`
	ExceededBudget string `json:"exceeded_budget,omitempty"`
}

// Touchpoint is one recorded attribution event
type Touchpoint struct {
	ID              uuid.UUID `db:"id" json:"id"`
	IdentityGroupID uuid.UUID `db:"identity_group_id" json:"identity_group_id"`
	MerchantID      uuid.UUID `db:"merchant_id" json:"merchant_id"`
	Source          string    `db:"source" json:"source"`
	SourceData      JSONB     `db:"source_data" json:"source_data"`
	LandingURL      *string   `db:"landing_url" json:"landing_url,omitempty"`
	ExpiresAt       time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ReferrerWallet returns the referrer wallet carried in a referral_link touchpoint's source data
func (t Touchpoint) ReferrerWallet() *string {
	if t.SourceData == nil {
		return nil
	}
	wallet, ok := t.SourceData["referrer_wallet"].(string)
	if !ok || wallet == "" {
		return nil
	}
	return &wallet
}

// ReferralLink is a referrer to referee edge, unique per merchant and referee
type ReferralLink struct {
	ID                      uuid.UUID `db:"id" json:"id"`
	MerchantID              uuid.UUID `db:"merchant_id" json:"merchant_id"`
	ReferrerIdentityGroupID uuid.UUID `db:"referrer_identity_group_id" json:"referrer_identity_group_id"`
	RefereeIdentityGroupID  uuid.UUID `db:"referee_identity_group_id" json:"referee_identity_group_id"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
}

// InteractionLog is an append-only raw event. A nil merchant or identity means it was deleted upstream.
type InteractionLog struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	MerchantID      *uuid.UUID `db:"merchant_id" json:"merchant_id,omitempty"`
	IdentityGroupID *uuid.UUID `db:"identity_group_id" json:"identity_group_id,omitempty"`
	Type            string     `db:"type" json:"type"`
	Payload         JSONB      `db:"payload" json:"payload"`
	ProcessedAt     *time.Time `db:"processed_at" json:"processed_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// AssetLog is one computed reward awaiting settlement
type AssetLog struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	IdentityGroupID  *uuid.UUID      `db:"identity_group_id" json:"identity_group_id,omitempty"`
	MerchantID       *uuid.UUID      `db:"merchant_id" json:"merchant_id,omitempty"`
	CampaignRuleID   *uuid.UUID      `db:"campaign_rule_id" json:"campaign_rule_id,omitempty"`
	InteractionLogID *uuid.UUID      `db:"interaction_log_id" json:"interaction_log_id,omitempty"`
	AssetType        string          `db:"asset_type" json:"asset_type"`
	Amount           decimal.Decimal `db:"amount" json:"amount"`
	TokenAddress     *string         `db:"token_address" json:"token_address,omitempty"`
	RecipientType    string          `db:"recipient_type" json:"recipient_type"`
	RecipientWallet  *string         `db:"recipient_wallet" json:"recipient_wallet,omitempty"`
	Status           string          `db:"status" json:"status"`
	Description      *string         `db:"description" json:"description,omitempty"`

	SettlementLockedAt *time.Time `db:"settlement_locked_at" json:"-"`
	SettlementError    *string    `db:"settlement_error" json:"settlement_error,omitempty"`
	OnchainTxHash      *string    `db:"onchain_tx_hash" json:"onchain_tx_hash,omitempty"`
	OnchainBlock       *int64     `db:"onchain_block" json:"onchain_block,omitempty"`
	SettledAt          *time.Time `db:"settled_at" json:"settled_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SettlementCandidate is a claimed asset log with the event history settlement attests to
type SettlementCandidate struct {
	AssetLog
	InteractionCreatedAt *time.Time `db:"interaction_created_at"`
}
