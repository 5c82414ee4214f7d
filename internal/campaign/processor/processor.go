package processor

import (
	"context"
	"errors"
	"fmt"
	"rewards-server/internal/observability"
	"rewards-server/internal/rules"
	"rewards-server/internal/store"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCampaignRuleNotFound  = errors.New("campaign rule not found")
	ErrInvalidRule           = errors.New("invalid campaign rule")
	ErrInvalidTransition     = errors.New("invalid campaign rule status transition")
	ErrBudgetRequired        = errors.New("campaign rule requires a budget before publishing")
	ErrRuleNotEditable       = errors.New("campaign rule definition can only change while draft")
	ErrCannotDeletePublished = errors.New("only draft campaign rules can be deleted")
)

// Status transition actions.
const (
	ActionPublish = "publish"
	ActionPause   = "pause"
	ActionResume  = "resume"
	ActionArchive = "archive"
)

type transition struct {
	from []string
	to   string
}

var transitions = map[string]transition{
	ActionPublish: {from: []string{store.CampaignRuleStatusDraft}, to: store.CampaignRuleStatusActive},
	ActionPause:   {from: []string{store.CampaignRuleStatusActive}, to: store.CampaignRuleStatusPaused},
	ActionResume:  {from: []string{store.CampaignRuleStatusPaused}, to: store.CampaignRuleStatusActive},
	ActionArchive: {from: []string{store.CampaignRuleStatusDraft, store.CampaignRuleStatusActive, store.CampaignRuleStatusPaused}, to: store.CampaignRuleStatusArchived},
}

type CampaignProcessor struct {
	store  CampaignRuleStore
	logger *observability.Logger
}

func New(store CampaignRuleStore, logger *observability.Logger) *CampaignProcessor {
	return &CampaignProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateCampaignRuleRequest represents the fields of a new draft campaign rule
type CreateCampaignRuleRequest struct {
	Name         string
	Priority     int
	Definition   rules.RuleDefinition
	BudgetConfig rules.BudgetConfig
	Metadata     store.JSONB
	ExpiresAt    *time.Time
}

// UpdateCampaignRuleRequest represents a partial update. Definition, Priority and
// Metadata are only accepted while the rule is a draft.
type UpdateCampaignRuleRequest struct {
	Name           *string
	Priority       *int
	Definition     *rules.RuleDefinition
	BudgetConfig   *rules.BudgetConfig
	Metadata       *store.JSONB
	ExpiresAt      *time.Time
	ClearExpiresAt bool // makes the rule open-ended, exclusive with ExpiresAt
}

// CreateCampaignRule validates and stores a new draft campaign rule
func (p *CampaignProcessor) CreateCampaignRule(ctx context.Context, merchantID uuid.UUID, req CreateCampaignRuleRequest) (store.CampaignRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "campaign_rule_name", Value: req.Name},
	)

	// Validate name, definition and budget
	if strings.TrimSpace(req.Name) == "" {
		return store.CampaignRule{}, invalidRule("name is required")
	}
	if err := ValidateDefinition(req.Definition); err != nil {
		return store.CampaignRule{}, err
	}
	if err := ValidateBudget(req.BudgetConfig); err != nil {
		return store.CampaignRule{}, err
	}

	// Empty metadata by default; the store inserts the rule as a draft
	metadata := req.Metadata
	if metadata == nil {
		metadata = store.JSONB{}
	}

	rule, err := p.store.CreateCampaignRule(ctx, store.CreateCampaignRuleParams{
		MerchantID:   merchantID,
		Name:         req.Name,
		Priority:     req.Priority,
		Definition:   req.Definition,
		BudgetConfig: req.BudgetConfig,
		Metadata:     metadata,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign rule", err)
		return store.CampaignRule{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "campaign_rule_id", Value: rule.ID.String()}), "campaign rule created")
	return rule, nil
}

// GetCampaignRule retrieves one of the merchant's campaign rules
func (p *CampaignProcessor) GetCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID) (store.CampaignRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "campaign_rule_id", Value: ruleID.String()},
	)

	rule, err := p.store.GetCampaignRuleByID(ctx, merchantID, ruleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignRule{}, ErrCampaignRuleNotFound
		}
		p.logger.Error(ctx, "failed to get campaign rule", err)
		return store.CampaignRule{}, err
	}
	return rule, nil
}

// ListCampaignRules lists all of the merchant's campaign rules
func (p *CampaignProcessor) ListCampaignRules(ctx context.Context, merchantID uuid.UUID) ([]store.CampaignRule, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "merchant_id", Value: merchantID.String()})

	list, err := p.store.ListCampaignRulesByMerchant(ctx, merchantID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign rules", err)
		return nil, err
	}
	if list == nil {
		list = []store.CampaignRule{}
	}
	return list, nil
}

// UpdateCampaignRule applies a partial update. Once published only the name, budget
// and expiry can change.
func (p *CampaignProcessor) UpdateCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID, req UpdateCampaignRuleRequest) (store.CampaignRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "campaign_rule_id", Value: ruleID.String()},
	)

	rule, err := p.GetCampaignRule(ctx, merchantID, ruleID)
	if err != nil {
		return store.CampaignRule{}, err
	}

	// Archived rules are frozen, published rules only accept operational fields
	status := rule.EffectiveStatus()
	if status == store.CampaignRuleStatusArchived {
		return store.CampaignRule{}, ErrRuleNotEditable
	}
	if status != store.CampaignRuleStatusDraft && (req.Definition != nil || req.Priority != nil || req.Metadata != nil) {
		return store.CampaignRule{}, ErrRuleNotEditable
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return store.CampaignRule{}, invalidRule("name must not be empty")
	}
	if req.ClearExpiresAt && req.ExpiresAt != nil {
		return store.CampaignRule{}, invalidRule("expires_at and clear_expires_at are mutually exclusive")
	}
	if req.Definition != nil {
		if err := ValidateDefinition(*req.Definition); err != nil {
			return store.CampaignRule{}, err
		}
	}
	// A live rule cannot drop its budget
	if req.BudgetConfig != nil {
		if err := ValidateBudget(*req.BudgetConfig); err != nil {
			return store.CampaignRule{}, err
		}
		if status != store.CampaignRuleStatusDraft && len(*req.BudgetConfig) == 0 {
			return store.CampaignRule{}, ErrBudgetRequired
		}
	}

	params := store.UpdateCampaignRuleParams{
		Name:           req.Name,
		Priority:       req.Priority,
		Definition:     req.Definition,
		ExpiresAt:      req.ExpiresAt,
		ClearExpiresAt: req.ClearExpiresAt,
	}
	if req.BudgetConfig != nil {
		params.BudgetConfig = *req.BudgetConfig
	}
	if req.Metadata != nil {
		params.Metadata = *req.Metadata
	}

	updated, err := p.store.UpdateCampaignRule(ctx, merchantID, ruleID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignRule{}, ErrCampaignRuleNotFound
		}
		p.logger.Error(ctx, "failed to update campaign rule", err)
		return store.CampaignRule{}, err
	}
	return updated, nil
}

// TransitionStatus applies a lifecycle action: publish, pause, resume or archive.
func (p *CampaignProcessor) TransitionStatus(ctx context.Context, merchantID, ruleID uuid.UUID, action string) (store.CampaignRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "campaign_rule_id", Value: ruleID.String()},
		observability.Field{Key: "action", Value: action},
	)

	t, ok := transitions[action]
	if !ok {
		return store.CampaignRule{}, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}

	rule, err := p.GetCampaignRule(ctx, merchantID, ruleID)
	if err != nil {
		return store.CampaignRule{}, err
	}

	// Check the transition table against the current status
	status := rule.EffectiveStatus()
	if !slices.Contains(t.from, status) {
		return store.CampaignRule{}, fmt.Errorf("%w: cannot %s a %s campaign rule", ErrInvalidTransition, action, status)
	}
	// Publishing requires a budget
	if action == ActionPublish && len(rule.BudgetConfig) == 0 {
		return store.CampaignRule{}, ErrBudgetRequired
	}

	// Conditional update on the expected from-statuses
	updated, err := p.store.TransitionCampaignRuleStatus(ctx, merchantID, ruleID, t.from, t.to)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// status changed underneath us
			return store.CampaignRule{}, fmt.Errorf("%w: campaign rule is no longer %s", ErrInvalidTransition, status)
		}
		p.logger.Error(ctx, "failed to transition campaign rule status", err)
		return store.CampaignRule{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "status", Value: t.to}), "campaign rule status changed")
	return updated, nil
}

// DeleteCampaignRule removes a draft campaign rule. Published rules must be archived.
func (p *CampaignProcessor) DeleteCampaignRule(ctx context.Context, merchantID, ruleID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "campaign_rule_id", Value: ruleID.String()},
	)

	rule, err := p.GetCampaignRule(ctx, merchantID, ruleID)
	if err != nil {
		return err
	}
	if rule.EffectiveStatus() != store.CampaignRuleStatusDraft {
		return ErrCannotDeletePublished
	}

	if err := p.store.DeleteDraftCampaignRule(ctx, merchantID, ruleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCannotDeletePublished
		}
		p.logger.Error(ctx, "failed to delete campaign rule", err)
		return err
	}
	return nil
}
