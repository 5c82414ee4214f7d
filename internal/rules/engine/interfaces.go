package engine

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=engine

import (
	"context"
	"rewards-server/internal/rules"
	"rewards-server/internal/store"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignRuleStore defines the database operations required by Engine
type CampaignRuleStore interface {
	FindActiveCampaignRulesByMerchant(ctx context.Context, merchantID uuid.UUID, trigger rules.Trigger, now time.Time) ([]store.CampaignRule, error)
	ConsumeBudget(ctx context.Context, ruleID uuid.UUID, amount decimal.Decimal, now time.Time) (store.BudgetConsumption, error)
}
