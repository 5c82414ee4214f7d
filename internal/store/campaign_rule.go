package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"rewards-server/internal/rules"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const campaignRuleColumns = `id, merchant_id, name, priority, status, definition, budget_config, budget_used, metadata, expires_at, published_at, deactivated_at, created_at, updated_at`

// effectiveStatusExpr treats legacy rows without a status as active until deactivated
const effectiveStatusExpr = `COALESCE(status, CASE WHEN deactivated_at IS NULL THEN 'active' ELSE 'archived' END)`

// CreateCampaignRuleParams represents parameters for creating a campaign rule
type CreateCampaignRuleParams struct {
	MerchantID   uuid.UUID
	Name         string
	Priority     int
	Definition   rules.RuleDefinition
	BudgetConfig rules.BudgetConfig
	Metadata     JSONB
	ExpiresAt    *time.Time
}

const sqlCreateCampaignRule = `
INSERT INTO campaign_rules (merchant_id, name, priority, status, definition, budget_config, budget_used, metadata, expires_at)
VALUES ($1, $2, $3, 'draft', $4, $5, '{}'::jsonb, $6, $7)
RETURNING ` + campaignRuleColumns

// CreateCampaignRule creates a new draft campaign rule
func (s *Store) CreateCampaignRule(ctx context.Context, params CreateCampaignRuleParams) (CampaignRule, error) {
	var rule CampaignRule
	err := s.db.GetContext(ctx, &rule, sqlCreateCampaignRule,
		params.MerchantID,
		params.Name,
		params.Priority,
		params.Definition,
		params.BudgetConfig,
		params.Metadata,
		params.ExpiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign rule", err)
		return CampaignRule{}, fmt.Errorf("failed to create campaign rule: %w", err)
	}
	return rule, nil
}

const sqlGetCampaignRuleByID = `
SELECT ` + campaignRuleColumns + `
FROM campaign_rules
WHERE id = $1 AND merchant_id = $2
`

// GetCampaignRuleByID retrieves a merchant's campaign rule by ID
func (s *Store) GetCampaignRuleByID(ctx context.Context, merchantID, ruleID uuid.UUID) (CampaignRule, error) {
	var rule CampaignRule
	err := s.db.GetContext(ctx, &rule, sqlGetCampaignRuleByID, ruleID, merchantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignRule{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign rule by id", err)
		return CampaignRule{}, fmt.Errorf("failed to get campaign rule by id: %w", err)
	}
	return rule, nil
}

const sqlListCampaignRulesByMerchant = `
SELECT ` + campaignRuleColumns + `
FROM campaign_rules
WHERE merchant_id = $1
ORDER BY priority DESC, created_at DESC
`

// ListCampaignRulesByMerchant retrieves every campaign rule of a merchant
func (s *Store) ListCampaignRulesByMerchant(ctx context.Context, merchantID uuid.UUID) ([]CampaignRule, error) {
	var list []CampaignRule
	err := s.db.SelectContext(ctx, &list, sqlListCampaignRulesByMerchant, merchantID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaign rules", err)
		return nil, fmt.Errorf("failed to list campaign rules: %w", err)
	}
	return list, nil
}

const sqlFindActiveCampaignRulesByMerchant = `
SELECT ` + campaignRuleColumns + `
FROM campaign_rules
WHERE merchant_id = $1
  AND ` + effectiveStatusExpr + ` = 'active'
  AND (expires_at IS NULL OR expires_at > $2)
  AND ($3 = '' OR definition->>'trigger' = $3)
ORDER BY priority DESC
`

// FindActiveCampaignRulesByMerchant retrieves active, unexpired rules, optionally for one trigger,
// highest priority first. An empty trigger matches every rule.
func (s *Store) FindActiveCampaignRulesByMerchant(ctx context.Context, merchantID uuid.UUID, trigger rules.Trigger, now time.Time) ([]CampaignRule, error) {
	var list []CampaignRule
	err := s.db.SelectContext(ctx, &list, sqlFindActiveCampaignRulesByMerchant, merchantID, now, string(trigger))
	if err != nil {
		s.logger.Error(ctx, "failed to find active campaign rules", err)
		return nil, fmt.Errorf("failed to find active campaign rules: %w", err)
	}
	return list, nil
}

// UpdateCampaignRuleParams represents a partial update; nil fields are left unchanged
type UpdateCampaignRuleParams struct {
	Name           *string
	Priority       *int
	Definition     *rules.RuleDefinition
	BudgetConfig   rules.BudgetConfig
	Metadata       JSONB
	ExpiresAt      *time.Time
	ClearExpiresAt bool // sets expires_at to NULL and wins over ExpiresAt
}

const sqlUpdateCampaignRule = `
UPDATE campaign_rules
SET name = COALESCE($3, name),
    priority = COALESCE($4, priority),
    definition = COALESCE($5, definition),
    budget_config = COALESCE($6, budget_config),
    metadata = COALESCE($7, metadata),
    expires_at = CASE WHEN $9::boolean THEN NULL ELSE COALESCE($8, expires_at) END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND merchant_id = $2
RETURNING ` + campaignRuleColumns

// UpdateCampaignRule applies a partial update to a campaign rule
func (s *Store) UpdateCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID, params UpdateCampaignRuleParams) (CampaignRule, error) {
	var definition interface{}
	if params.Definition != nil {
		definition = *params.Definition
	}

	var rule CampaignRule
	err := s.db.GetContext(ctx, &rule, sqlUpdateCampaignRule,
		ruleID,
		merchantID,
		params.Name,
		params.Priority,
		definition,
		params.BudgetConfig,
		params.Metadata,
		params.ExpiresAt,
		params.ClearExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignRule{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign rule", err)
		return CampaignRule{}, fmt.Errorf("failed to update campaign rule: %w", err)
	}
	return rule, nil
}

const sqlTransitionCampaignRuleStatus = `
UPDATE campaign_rules
SET status = $4,
    published_at = CASE WHEN $4 = 'active' AND published_at IS NULL THEN CURRENT_TIMESTAMP ELSE published_at END,
    deactivated_at = CASE WHEN $4 = 'archived' THEN CURRENT_TIMESTAMP ELSE deactivated_at END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND merchant_id = $2
  AND ` + effectiveStatusExpr + ` = ANY($3)
RETURNING ` + campaignRuleColumns

// TransitionCampaignRuleStatus moves a rule to status `to` only if its current status is one of `from`.
// It returns ErrNotFound when the rule does not exist or is not in an allowed status.
func (s *Store) TransitionCampaignRuleStatus(ctx context.Context, merchantID, ruleID uuid.UUID, from []string, to string) (CampaignRule, error) {
	var rule CampaignRule
	err := s.db.GetContext(ctx, &rule, sqlTransitionCampaignRuleStatus, ruleID, merchantID, pq.Array(from), to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignRule{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to transition campaign rule status", err)
		return CampaignRule{}, fmt.Errorf("failed to transition campaign rule status: %w", err)
	}
	return rule, nil
}

const sqlDeleteDraftCampaignRule = `
DELETE FROM campaign_rules
WHERE id = $1 AND merchant_id = $2 AND status = 'draft'
`

// DeleteDraftCampaignRule deletes a rule that has never been published
func (s *Store) DeleteDraftCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteDraftCampaignRule, ruleID, merchantID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign rule", err)
		return fmt.Errorf("failed to delete campaign rule: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlLockCampaignRuleBudget = `
SELECT budget_config, budget_used
FROM campaign_rules
WHERE id = $1
FOR UPDATE
`

const sqlUpdateCampaignRuleBudgetUsed = `
UPDATE campaign_rules
SET budget_used = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

type budgetRow struct {
	BudgetConfig rules.BudgetConfig `db:"budget_config"`
	BudgetUsed   rules.BudgetUsed   `db:"budget_used"`
}

func (s *Store) lockBudget(ctx context.Context, tx *sqlx.Tx, ruleID uuid.UUID) (budgetRow, error) {
	var row budgetRow
	err := tx.GetContext(ctx, &row, sqlLockCampaignRuleBudget, ruleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return budgetRow{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock campaign rule budget", err)
		return budgetRow{}, fmt.Errorf("failed to lock campaign rule budget: %w", err)
	}
	return row, nil
}

// ConsumeBudget charges amount against every budget bucket of a rule. The row is locked for the
// duration so concurrent consumers of the same rule are serialised. Exceeding any bucket leaves
// all buckets untouched.
func (s *Store) ConsumeBudget(ctx context.Context, ruleID uuid.UUID, amount decimal.Decimal, now time.Time) (BudgetConsumption, error) {
	var result BudgetConsumption
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		row, err := s.lockBudget(ctx, tx, ruleID)
		if err != nil {
			return err
		}

		outcome := rules.ConsumeBudget(row.BudgetConfig, row.BudgetUsed, amount, now)
		if !outcome.Success {
			result = BudgetConsumption{Success: false, Reason: BudgetExceededReason, ExceededBudget: outcome.ExceededBudget}
			return nil
		}

		if _, err := tx.ExecContext(ctx, sqlUpdateCampaignRuleBudgetUsed, ruleID, outcome.Used); err != nil {
			s.logger.Error(ctx, "failed to update campaign rule budget", err)
			return fmt.Errorf("failed to update campaign rule budget: %w", err)
		}
		result = BudgetConsumption{Success: true}
		return nil
	})
	if err != nil {
		return BudgetConsumption{}, err
	}
	return result, nil
}

// RollbackBudget returns amount to every budget bucket of a rule, floored at zero
func (s *Store) RollbackBudget(ctx context.Context, ruleID uuid.UUID, amount decimal.Decimal) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		row, err := s.lockBudget(ctx, tx, ruleID)
		if err != nil {
			return err
		}

		used := rules.RollbackBudget(row.BudgetConfig, row.BudgetUsed, amount)
		if _, err := tx.ExecContext(ctx, sqlUpdateCampaignRuleBudgetUsed, ruleID, used); err != nil {
			s.logger.Error(ctx, "failed to roll back campaign rule budget", err)
			return fmt.Errorf("failed to roll back campaign rule budget: %w", err)
		}
		return nil
	})
}
