package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"rewards-server/internal/store"

	"github.com/google/uuid"
)

// CampaignRuleStore defines the database operations required by CampaignProcessor
type CampaignRuleStore interface {
	CreateCampaignRule(ctx context.Context, params store.CreateCampaignRuleParams) (store.CampaignRule, error)
	GetCampaignRuleByID(ctx context.Context, merchantID, ruleID uuid.UUID) (store.CampaignRule, error)
	ListCampaignRulesByMerchant(ctx context.Context, merchantID uuid.UUID) ([]store.CampaignRule, error)
	UpdateCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID, params store.UpdateCampaignRuleParams) (store.CampaignRule, error)
	TransitionCampaignRuleStatus(ctx context.Context, merchantID, ruleID uuid.UUID, from []string, to string) (store.CampaignRule, error)
	DeleteDraftCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID) error
}
