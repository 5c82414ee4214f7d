package store

import (
	"context"
	"rewards-server/internal/rules"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Merchant Fixtures ---

// CreateMerchant creates a merchant with an optional treasury address.
func (f *Fixtures) CreateMerchant(bankAddress *string) Merchant {
	f.t.Helper()
	var merchant Merchant
	query := `INSERT INTO merchants (name, bank_address) VALUES ($1, $2) RETURNING id, name, bank_address, created_at, updated_at`
	err := f.testDB.GetDB().GetContext(f.ctx, &merchant, query, "Test Merchant "+uuid.New().String()[:8], bankAddress)
	require.NoError(f.t, err, "failed to create test merchant")
	return merchant
}

// --- Identity Fixtures ---

// CreateIdentityGroup creates an identity group, linking a wallet when given.
func (f *Fixtures) CreateIdentityGroup(wallet *string) uuid.UUID {
	f.t.Helper()
	var id uuid.UUID
	err := f.testDB.GetDB().GetContext(f.ctx, &id, `INSERT INTO identity_groups DEFAULT VALUES RETURNING id`)
	require.NoError(f.t, err, "failed to create identity group")

	f.addIdentifier(id, IdentifierTypeAnonymousFingerprint, "fp-"+uuid.New().String())
	if wallet != nil {
		f.addIdentifier(id, IdentifierTypeWallet, *wallet)
	}
	return id
}

func (f *Fixtures) addIdentifier(groupID uuid.UUID, identifierType, value string) {
	f.t.Helper()
	_, err := f.testDB.GetDB().ExecContext(f.ctx,
		`INSERT INTO identity_nodes (group_id, identifier_type, identifier_value) VALUES ($1, $2, $3)`,
		groupID, identifierType, value)
	require.NoError(f.t, err, "failed to create identity node")
}

// --- Campaign Rule Fixtures ---

// CampaignRuleOpts customizes campaign rule creation.
type CampaignRuleOpts struct {
	Name         string
	Priority     int
	Status       string
	Definition   rules.RuleDefinition
	BudgetConfig rules.BudgetConfig
}

// DefaultCampaignRuleOpts returns an active 10% referral_purchase rule with a daily budget.
func DefaultCampaignRuleOpts() CampaignRuleOpts {
	percent := decimal.NewFromInt(10)
	day := int64(86400)
	return CampaignRuleOpts{
		Name:   "Referral 10%",
		Status: CampaignRuleStatusActive,
		Definition: rules.RuleDefinition{
			Trigger:    rules.TriggerReferralPurchase,
			Conditions: rules.AllOf(),
			Rewards: []rules.RewardDefinition{{
				Recipient:  rules.RecipientReferrer,
				Type:       rules.AssetTypeToken,
				AmountType: rules.AmountTypePercentage,
				Percent:    &percent,
				PercentOf:  rules.PercentOfPurchaseAmount,
			}},
		},
		BudgetConfig: rules.BudgetConfig{{Label: "daily", Amount: decimal.NewFromInt(1000), DurationInSeconds: &day}},
	}
}

// CreateCampaignRule creates a campaign rule and moves it to the requested status.
func (f *Fixtures) CreateCampaignRule(merchantID uuid.UUID, opts ...func(*CampaignRuleOpts)) CampaignRule {
	f.t.Helper()
	o := DefaultCampaignRuleOpts()
	for _, fn := range opts {
		fn(&o)
	}

	rule, err := f.testDB.Store.CreateCampaignRule(f.ctx, CreateCampaignRuleParams{
		MerchantID:   merchantID,
		Name:         o.Name,
		Priority:     o.Priority,
		Definition:   o.Definition,
		BudgetConfig: o.BudgetConfig,
	})
	require.NoError(f.t, err, "failed to create campaign rule")

	if o.Status != CampaignRuleStatusDraft {
		f.testDB.ExecSQL(f.t, `UPDATE campaign_rules SET status = $2 WHERE id = $1`, rule.ID, o.Status)
		rule, err = f.testDB.Store.GetCampaignRuleByID(f.ctx, merchantID, rule.ID)
		require.NoError(f.t, err, "failed to reload campaign rule")
	}
	return rule
}

// --- Interaction Fixtures ---

// CreateInteraction appends an unprocessed interaction log.
func (f *Fixtures) CreateInteraction(merchantID, identityGroupID uuid.UUID, interactionType string) InteractionLog {
	f.t.Helper()
	log, err := f.testDB.Store.CreateInteractionLog(f.ctx, CreateInteractionLogParams{
		MerchantID:      merchantID,
		IdentityGroupID: identityGroupID,
		Type:            interactionType,
		Payload:         JSONB{"order_id": "order-" + uuid.New().String()[:8]},
	})
	require.NoError(f.t, err, "failed to create interaction log")
	return log
}

// CreatePendingTokenAsset records a pending token reward for an interaction.
func (f *Fixtures) CreatePendingTokenAsset(merchantID, identityGroupID uuid.UUID, amount string) AssetLog {
	f.t.Helper()
	interaction := f.CreateInteraction(merchantID, identityGroupID, InteractionTypePurchase)
	token := "0x00000000000000000000000000000000000000c0"
	assets, err := f.testDB.Store.RecordRewards(f.ctx, interaction.ID, []CreateAssetLogParams{{
		IdentityGroupID:  identityGroupID,
		MerchantID:       merchantID,
		InteractionLogID: &interaction.ID,
		AssetType:        AssetTypeToken,
		Amount:           decimal.RequireFromString(amount),
		TokenAddress:     &token,
		RecipientType:    string(rules.RecipientUser),
	}})
	require.NoError(f.t, err, "failed to record asset")
	require.Len(f.t, assets, 1)
	return assets[0]
}

// randomWallet returns a unique lowercase hex address.
func randomWallet() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "0x" + hex + hex[:8]
}

func strPtr(s string) *string { return &s }
