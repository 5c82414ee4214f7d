package engine

import (
	"context"
	"fmt"
	"rewards-server/internal/observability"
	"rewards-server/internal/rules"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	outcomeMatched        = "matched"
	outcomeNotMatched     = "not_matched"
	outcomeNoRewards      = "no_rewards" // conditions matched but no reward resolved
	outcomeBudgetExceeded = "budget_exceeded"
	outcomeBudgetError    = "budget_error"
)

// Reward is a calculated reward attributed to the campaign rule that paid for it.
type Reward struct {
	rules.CalculatedReward
	CampaignRuleID uuid.UUID
}

// EvaluationResult is the outcome of running every active rule for one event.
type EvaluationResult struct {
	Rewards          []Reward
	SkippedCampaigns []uuid.UUID
	UpdatedCampaigns []uuid.UUID
	// Consumed holds the budget charged per updated campaign, used to compensate
	// when the rewards cannot be recorded.
	Consumed map[uuid.UUID]decimal.Decimal
	Errors   []string
}

// Engine evaluates a merchant's active campaign rules and charges their budgets.
type Engine struct {
	store      CampaignRuleStore
	calculator *rules.Calculator
	logger     *observability.Logger
	metrics    *observability.RewardsMetrics
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for expiry and budget windows.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMetrics records evaluation outcomes on the given collectors.
func WithMetrics(m *observability.RewardsMetrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func New(store CampaignRuleStore, calculator *rules.Calculator, logger *observability.Logger, opts ...Option) *Engine {
	if calculator == nil {
		calculator = rules.NewCalculator(nil)
	}
	e := &Engine{
		store:      store,
		calculator: calculator,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvaluateRules runs the active rules for trigger in priority order. A rule's rewards are
// kept only if its whole total fits in its budget. Calculation and budget failures are
// collected in the result; only failing to load the rules returns an error.
func (e *Engine) EvaluateRules(ctx context.Context, merchantID uuid.UUID, trigger rules.Trigger, rc rules.RuleContext, referrerID *uuid.UUID) (EvaluationResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "trigger", Value: string(trigger)},
	)

	result := EvaluationResult{Consumed: map[uuid.UUID]decimal.Decimal{}}

	now := e.now()
	campaignRules, err := e.store.FindActiveCampaignRulesByMerchant(ctx, merchantID, trigger, now)
	if err != nil {
		e.logger.Error(ctx, "failed to load active campaign rules", err)
		return result, fmt.Errorf("failed to load active campaign rules: %w", err)
	}

	fields := rc.Fields()
	for _, rule := range campaignRules {
		ruleCtx := observability.WithFields(ctx, observability.Field{Key: "campaign_rule_id", Value: rule.ID.String()})

		if !rules.Evaluate(rule.Definition.Conditions, fields) {
			e.metrics.RecordRuleEvaluation(string(trigger), outcomeNotMatched)
			continue
		}

		rewards, errs := e.calculator.CalculateAll(rule.Definition.Rewards, rc, referrerID)
		for _, msg := range errs {
			result.Errors = append(result.Errors, fmt.Sprintf("campaign %s: %s", rule.ID, msg))
		}
		if len(rewards) == 0 {
			e.metrics.RecordRuleEvaluation(string(trigger), outcomeNoRewards)
			continue
		}

		total := rules.TotalAmount(rewards)
		consumption, err := e.store.ConsumeBudget(ruleCtx, rule.ID, total, now)
		if err != nil {
			e.logger.Error(ruleCtx, "failed to consume campaign budget", err)
			result.Errors = append(result.Errors, fmt.Sprintf("campaign %s: failed to consume budget: %v", rule.ID, err))
			e.metrics.RecordRuleEvaluation(string(trigger), outcomeBudgetError)
			continue
		}
		if !consumption.Success {
			ruleCtx = observability.WithFields(ruleCtx, observability.Field{Key: "exceeded_budget", Value: consumption.ExceededBudget})
			e.logger.Info(ruleCtx, "campaign budget exceeded, skipping rewards")
			result.SkippedCampaigns = append(result.SkippedCampaigns, rule.ID)
			e.metrics.RecordRuleEvaluation(string(trigger), outcomeBudgetExceeded)
			continue
		}

		for _, reward := range rewards {
			result.Rewards = append(result.Rewards, Reward{CalculatedReward: reward, CampaignRuleID: rule.ID})
		}
		result.UpdatedCampaigns = append(result.UpdatedCampaigns, rule.ID)
		result.Consumed[rule.ID] = total
		e.metrics.RecordRuleEvaluation(string(trigger), outcomeMatched)
	}

	return result, nil
}
