package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	attributionProcessor "rewards-server/internal/attribution/processor"
	"rewards-server/internal/observability"
	"rewards-server/internal/rules"
	"rewards-server/internal/rules/engine"
	"rewards-server/internal/store"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultBatchMinAge = 30 * time.Second
	DefaultBatchSize   = 100
)

const (
	outcomeRewarded         = "rewarded"
	outcomeNoRewards        = "no_rewards"
	outcomeAlreadyProcessed = "already_processed"
	outcomeOrphaned         = "orphaned"
	outcomeFailed           = "failed"
)

// payloadPurchaseKey holds the purchase context on purchase interaction payloads
const payloadPurchaseKey = "purchase"

var (
	ErrInvalidInteractionType = errors.New("invalid interaction type")
	ErrInvalidPurchase        = errors.New("invalid purchase")
	ErrMissingIdentity        = errors.New("identity group is required")
	ErrInteractionNotFound    = errors.New("interaction not found")
	ErrFailedInteraction      = errors.New("failed to record interaction")
	ErrFailedRewards          = errors.New("failed to process rewards")
	ErrFailedRefund           = errors.New("failed to process refund")
	ErrFailedListRewards      = errors.New("failed to list interaction rewards")
)

type RewardsProcessor struct {
	store       RewardStore
	attribution Attributor
	referrals   ReferralLookup
	evaluator   RuleEvaluator
	events      EventPublisher
	logger      *observability.Logger
	metrics     *observability.RewardsMetrics
	now         func() time.Time
}

func New(store RewardStore, attribution Attributor, referrals ReferralLookup, evaluator RuleEvaluator, events EventPublisher, logger *observability.Logger, metrics *observability.RewardsMetrics) *RewardsProcessor {
	return &RewardsProcessor{
		store:       store,
		attribution: attribution,
		referrals:   referrals,
		evaluator:   evaluator,
		events:      events,
		logger:      logger,
		metrics:     metrics,
		now:         time.Now,
	}
}

// ProcessPurchaseRequest represents a purchase to log and reward inline
type ProcessPurchaseRequest struct {
	IdentityGroupID uuid.UUID
	Purchase        rules.PurchaseContext
}

// RecordInteractionRequest represents a raw event deferred to the batch path
type RecordInteractionRequest struct {
	IdentityGroupID uuid.UUID
	Type            string
	Payload         store.JSONB
}

// ProcessResult is the outcome of rewarding one interaction
type ProcessResult struct {
	InteractionLogID uuid.UUID                 `json:"interaction_log_id"`
	Trigger          rules.Trigger             `json:"trigger,omitempty"`
	Attribution      *rules.AttributionContext `json:"attribution,omitempty"`
	Assets           []store.AssetLog          `json:"assets"`
	SkippedCampaigns []uuid.UUID               `json:"skipped_campaigns,omitempty"`
	Errors           []string                  `json:"errors,omitempty"`
	AlreadyProcessed bool                      `json:"already_processed"`
}

// BatchResult summarizes one pass over unprocessed interactions
type BatchResult struct {
	Fetched   int `json:"fetched"`
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// RefundResult reports the rewards cancelled by a refund and the budget returned per campaign
type RefundResult struct {
	InteractionLogID uuid.UUID                     `json:"interaction_log_id"`
	Cancelled        []store.AssetLog              `json:"cancelled"`
	RolledBack       map[uuid.UUID]decimal.Decimal `json:"rolled_back"`
}

// ProcessPurchase appends a purchase interaction and rewards it in the same call. If rewarding
// fails the interaction stays unprocessed and the batch path picks it up later.
func (p *RewardsProcessor) ProcessPurchase(ctx context.Context, merchantID uuid.UUID, req ProcessPurchaseRequest) (ProcessResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "identity_group_id", Value: req.IdentityGroupID.String()},
	)

	if req.IdentityGroupID == uuid.Nil {
		return ProcessResult{}, ErrMissingIdentity
	}
	if err := validatePurchase(req.Purchase); err != nil {
		return ProcessResult{}, err
	}

	payload, err := encodePayload(payloadPurchaseKey, req.Purchase)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("%w: %v", ErrInvalidPurchase, err)
	}

	// Append first so the purchase survives a failure in rewarding
	log, err := p.store.CreateInteractionLog(ctx, store.CreateInteractionLogParams{
		MerchantID:      merchantID,
		IdentityGroupID: req.IdentityGroupID,
		Type:            store.InteractionTypePurchase,
		Payload:         payload,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create purchase interaction", err)
		return ProcessResult{}, fmt.Errorf("%w: %v", ErrFailedInteraction, err)
	}

	return p.processInteraction(ctx, log, p.now())
}

// RecordInteraction appends a non-purchase event for the batch path to reward
func (p *RewardsProcessor) RecordInteraction(ctx context.Context, merchantID uuid.UUID, req RecordInteractionRequest) (store.InteractionLog, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "identity_group_id", Value: req.IdentityGroupID.String()},
		observability.Field{Key: "interaction_type", Value: req.Type},
	)

	if req.IdentityGroupID == uuid.Nil {
		return store.InteractionLog{}, ErrMissingIdentity
	}
	// Purchases go through ProcessPurchase
	switch req.Type {
	case store.InteractionTypeWalletConnect, store.InteractionTypeReferralArrival, store.InteractionTypeIdentityMerge:
	default:
		return store.InteractionLog{}, ErrInvalidInteractionType
	}

	log, err := p.store.CreateInteractionLog(ctx, store.CreateInteractionLogParams{
		MerchantID:      merchantID,
		IdentityGroupID: req.IdentityGroupID,
		Type:            req.Type,
		Payload:         req.Payload,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create interaction", err)
		return store.InteractionLog{}, fmt.Errorf("%w: %v", ErrFailedInteraction, err)
	}
	return log, nil
}

// ProcessBatch rewards unprocessed interactions older than minAge. Interactions are handled
// one at a time grouped by merchant; a failure is logged and leaves that interaction for the
// next run without stopping the rest.
func (p *RewardsProcessor) ProcessBatch(ctx context.Context, minAge time.Duration, limit int) (BatchResult, error) {
	if minAge < 0 {
		minAge = DefaultBatchMinAge
	}
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	logs, err := p.store.FindUnprocessedInteractionLogs(ctx, p.now().Add(-minAge), limit)
	if err != nil {
		p.logger.Error(ctx, "failed to find unprocessed interactions", err)
		return BatchResult{}, fmt.Errorf("%w: %v", ErrFailedRewards, err)
	}

	// Work merchant by merchant in first-seen order
	result := BatchResult{Fetched: len(logs)}
	for _, group := range groupByMerchant(logs) {
		for _, log := range group {
			outcome, err := p.processBatchItem(ctx, log)
			switch {
			case err != nil:
				result.Failed++
			case outcome == outcomeAlreadyProcessed || outcome == outcomeOrphaned:
				result.Skipped++
			default:
				result.Processed++
			}
		}
	}

	if result.Fetched > 0 {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "fetched", Value: result.Fetched},
			observability.Field{Key: "processed", Value: result.Processed},
			observability.Field{Key: "skipped", Value: result.Skipped},
			observability.Field{Key: "failed", Value: result.Failed},
		), "interaction batch complete")
	}
	return result, nil
}

// processBatchItem returns the outcome of one deferred interaction.
func (p *RewardsProcessor) processBatchItem(ctx context.Context, log store.InteractionLog) (string, error) {
	// Interactions whose merchant or identity was deleted can never be rewarded
	if log.MerchantID == nil || log.IdentityGroupID == nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "interaction_log_id", Value: log.ID.String()})
		if err := p.store.MarkInteractionProcessed(ctx, log.ID); err != nil {
			p.logger.Error(ctx, "failed to mark orphaned interaction processed", err)
			p.metrics.RecordInteraction(log.Type, outcomeFailed)
			return "", err
		}
		p.metrics.RecordInteraction(log.Type, outcomeOrphaned)
		return outcomeOrphaned, nil
	}

	// deferred interactions are judged at the moment they happened, not when the batch runs
	result, err := p.processInteraction(ctx, log, log.CreatedAt)
	if err != nil {
		return "", err
	}
	if result.AlreadyProcessed {
		return outcomeAlreadyProcessed, nil
	}
	return outcomeRewarded, nil
}

// ListInteractionRewards returns every asset log an interaction produced, in any status
func (p *RewardsProcessor) ListInteractionRewards(ctx context.Context, merchantID, interactionID uuid.UUID) ([]store.AssetLog, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "interaction_log_id", Value: interactionID.String()},
	)

	log, err := p.store.GetInteractionLogByID(ctx, interactionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInteractionNotFound
		}
		p.logger.Error(ctx, "failed to get interaction", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedListRewards, err)
	}
	if log.MerchantID == nil || *log.MerchantID != merchantID {
		return nil, ErrInteractionNotFound
	}

	assets, err := p.store.ListAssetLogsByInteraction(ctx, interactionID)
	if err != nil {
		p.logger.Error(ctx, "failed to list interaction rewards", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedListRewards, err)
	}
	if assets == nil {
		assets = []store.AssetLog{}
	}
	return assets, nil
}

// HandleRefund cancels the still-pending rewards of a purchase and returns their amounts to
// each campaign's budget. Budget rollback is best-effort: a failure is logged and the
// cancellation stands.
func (p *RewardsProcessor) HandleRefund(ctx context.Context, merchantID, interactionID uuid.UUID) (RefundResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "interaction_log_id", Value: interactionID.String()},
	)

	log, err := p.store.GetInteractionLogByID(ctx, interactionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RefundResult{}, ErrInteractionNotFound
		}
		p.logger.Error(ctx, "failed to get interaction", err)
		return RefundResult{}, fmt.Errorf("%w: %v", ErrFailedRefund, err)
	}
	if log.MerchantID == nil || *log.MerchantID != merchantID || log.Type != store.InteractionTypePurchase {
		return RefundResult{}, ErrInteractionNotFound
	}

	// Rows already claimed by settlement are not cancelled
	cancelled, err := p.store.CancelPendingAssetLogsByInteraction(ctx, interactionID)
	if err != nil {
		p.logger.Error(ctx, "failed to cancel pending rewards", err)
		return RefundResult{}, fmt.Errorf("%w: %v", ErrFailedRefund, err)
	}

	// Sum cancelled amounts per campaign before returning them to budgets
	rolledBack := make(map[uuid.UUID]decimal.Decimal)
	for _, asset := range cancelled {
		if asset.CampaignRuleID == nil {
			continue
		}
		rolledBack[*asset.CampaignRuleID] = rolledBack[*asset.CampaignRuleID].Add(asset.Amount)
	}
	p.rollbackBudgets(ctx, rolledBack)

	if err := p.events.PublishRewardsCancelled(ctx, merchantID, interactionID, cancelled); err != nil {
		p.logger.Error(ctx, "failed to publish rewards cancelled event", err)
	}

	if cancelled == nil {
		cancelled = []store.AssetLog{}
	}
	return RefundResult{InteractionLogID: interactionID, Cancelled: cancelled, RolledBack: rolledBack}, nil
}

// processInteraction rewards one interaction. at is the instant time-based conditions see.
func (p *RewardsProcessor) processInteraction(ctx context.Context, log store.InteractionLog, at time.Time) (ProcessResult, error) {
	merchantID, identityID := *log.MerchantID, *log.IdentityGroupID
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "identity_group_id", Value: identityID.String()},
		observability.Field{Key: "interaction_log_id", Value: log.ID.String()},
		observability.Field{Key: "interaction_type", Value: log.Type},
	)

	result := ProcessResult{InteractionLogID: log.ID, Assets: []store.AssetLog{}}

	// Merges have no trigger and are only closed out
	if log.Type == store.InteractionTypeIdentityMerge {
		return p.record(ctx, log, result, engine.EvaluationResult{})
	}

	rc, referrerID, err := p.buildContext(ctx, log, at)
	if errors.Is(err, ErrInvalidPurchase) {
		// a payload that cannot be decoded never will be; close it out without rewards
		return p.record(ctx, log, result, engine.EvaluationResult{})
	}
	if err != nil {
		p.metrics.RecordInteraction(log.Type, outcomeFailed)
		return ProcessResult{}, err
	}
	result.Attribution = rc.Attribution
	result.Trigger = triggerFor(log.Type, *rc.Attribution)

	evaluation, err := p.evaluator.EvaluateRules(ctx, merchantID, result.Trigger, rc, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to evaluate campaign rules", err)
		p.metrics.RecordInteraction(log.Type, outcomeFailed)
		return ProcessResult{}, fmt.Errorf("%w: %v", ErrFailedRewards, err)
	}
	result.SkippedCampaigns = evaluation.SkippedCampaigns
	result.Errors = evaluation.Errors

	return p.record(ctx, log, result, evaluation)
}

// record writes the rewards and marks the interaction processed in one transaction.
// Consumed budget is returned when the write does not happen.
func (p *RewardsProcessor) record(ctx context.Context, log store.InteractionLog, result ProcessResult, evaluation engine.EvaluationResult) (ProcessResult, error) {
	merchantID := *log.MerchantID

	assets, err := p.store.RecordRewards(ctx, log.ID, assetParams(merchantID, log.ID, evaluation.Rewards))
	if err != nil {
		p.rollbackBudgets(ctx, evaluation.Consumed)
		if errors.Is(err, store.ErrInteractionAlreadyProcessed) {
			p.logger.Info(ctx, "interaction already processed")
			p.metrics.RecordInteraction(log.Type, outcomeAlreadyProcessed)
			result.AlreadyProcessed = true
			return result, nil
		}
		p.logger.Error(ctx, "failed to record rewards", err)
		p.metrics.RecordInteraction(log.Type, outcomeFailed)
		return ProcessResult{}, fmt.Errorf("%w: %v", ErrFailedRewards, err)
	}

	if len(assets) == 0 {
		p.metrics.RecordInteraction(log.Type, outcomeNoRewards)
		return result, nil
	}

	// Count and announce only what was actually written
	for _, asset := range assets {
		p.metrics.RecordRewardCreated(asset.AssetType)
	}
	p.metrics.RecordInteraction(log.Type, outcomeRewarded)
	result.Assets = assets

	if err := p.events.PublishRewardsCreated(ctx, merchantID, log.ID, assets); err != nil {
		p.logger.Error(ctx, "failed to publish rewards created event", err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "asset_count", Value: len(assets)}), "rewards recorded")
	return result, nil
}

// buildContext assembles the rule context for an interaction and resolves the referrer that
// referrer-bound rewards are paid to.
func (p *RewardsProcessor) buildContext(ctx context.Context, log store.InteractionLog, at time.Time) (rules.RuleContext, *uuid.UUID, error) {
	merchantID, identityID := *log.MerchantID, *log.IdentityGroupID

	rc := rules.RuleContext{
		User: rules.UserContext{IdentityGroupID: identityID},
		Time: rules.NewTimeContext(at),
	}

	if log.Type == store.InteractionTypePurchase {
		var purchase rules.PurchaseContext
		if err := decodePayload(log.Payload, payloadPurchaseKey, &purchase); err != nil {
			p.logger.Error(ctx, "failed to decode purchase payload", err)
			return rules.RuleContext{}, nil, fmt.Errorf("%w: %v", ErrInvalidPurchase, err)
		}
		rc.Purchase = &purchase
	}

	// Resolve user wallet
	wallet, err := p.store.GetWalletForIdentityGroup(ctx, identityID)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve user wallet", err)
		return rules.RuleContext{}, nil, fmt.Errorf("%w: %v", ErrFailedRewards, err)
	}
	rc.User.WalletAddress = wallet

	// Attribute the conversion, then find who referred the user
	attribution, err := p.attribution.AttributeConversion(ctx, identityID, merchantID)
	if err != nil {
		return rules.RuleContext{}, nil, fmt.Errorf("%w: %v", ErrFailedRewards, err)
	}

	referrerID, err := p.resolveReferrer(ctx, merchantID, identityID, attribution)
	if err != nil {
		return rules.RuleContext{}, nil, err
	}
	attribution.ReferrerIdentityGroupID = referrerID

	// Chain depth is informational; a failed walk leaves it at zero
	if referrerID != nil {
		chain, err := p.referrals.GetReferralChain(ctx, merchantID, identityID, 0)
		if err != nil {
			p.logger.Error(ctx, "failed to walk referral chain", err)
		}
		attribution.ReferralChainDepth = len(chain)
	}

	rc.Attribution = &attribution
	return rc, referrerID, nil
}

// resolveReferrer prefers the identity owning the attributed referrer wallet, then the
// referrer stamped on the touchpoint, then the stored referral link.
func (p *RewardsProcessor) resolveReferrer(ctx context.Context, merchantID, identityID uuid.UUID, attribution rules.AttributionContext) (*uuid.UUID, error) {
	if attribution.ReferrerWallet != nil {
		identity, err := p.store.FindIdentityByIdentifier(ctx, store.IdentifierTypeWallet, *attribution.ReferrerWallet)
		switch {
		case err == nil:
			return &identity.ID, nil
		case !errors.Is(err, store.ErrNotFound):
			p.logger.Error(ctx, "failed to resolve referrer wallet", err)
			return nil, fmt.Errorf("%w: %v", ErrFailedRewards, err)
		}
	}

	if referrerID := attributionProcessor.ReferrerFromTouchpoint(attribution); referrerID != nil {
		return referrerID, nil
	}

	referrerID, err := p.referrals.GetReferrer(ctx, merchantID, identityID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedRewards, err)
	}
	return referrerID, nil
}

// rollbackBudgets is best-effort; failures are logged per campaign.
func (p *RewardsProcessor) rollbackBudgets(ctx context.Context, amounts map[uuid.UUID]decimal.Decimal) {
	for ruleID, amount := range amounts {
		if !amount.IsPositive() {
			continue
		}
		if err := p.store.RollbackBudget(ctx, ruleID, amount); err != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "campaign_rule_id", Value: ruleID.String()},
				observability.Field{Key: "amount", Value: amount.String()},
			), "failed to roll back campaign budget", err)
		}
	}
}

// triggerFor maps an interaction to the rule trigger it fires. Purchases attributed to a
// referral link fire referral_purchase.
func triggerFor(interactionType string, attribution rules.AttributionContext) rules.Trigger {
	switch interactionType {
	case store.InteractionTypeWalletConnect:
		return rules.TriggerWalletConnect
	case store.InteractionTypeReferralArrival:
		return rules.TriggerReferralArrival
	}
	if attribution.Attributed && attribution.Source == rules.AttributionSourceReferralLink {
		return rules.TriggerReferralPurchase
	}
	return rules.TriggerPurchase
}

// assetParams converts engine rewards into pending asset log rows.
func assetParams(merchantID, interactionID uuid.UUID, rewards []engine.Reward) []store.CreateAssetLogParams {
	params := make([]store.CreateAssetLogParams, 0, len(rewards))
	for _, reward := range rewards {
		ruleID := reward.CampaignRuleID
		logID := interactionID
		param := store.CreateAssetLogParams{
			IdentityGroupID:  reward.IdentityGroupID,
			MerchantID:       merchantID,
			CampaignRuleID:   &ruleID,
			InteractionLogID: &logID,
			AssetType:        string(reward.AssetType),
			Amount:           reward.Amount,
			TokenAddress:     reward.TokenAddress,
			RecipientType:    string(reward.Recipient),
			RecipientWallet:  reward.WalletAddress,
		}
		if reward.Description != "" {
			description := reward.Description
			param.Description = &description
		}
		params = append(params, param)
	}
	return params
}

// groupByMerchant keeps the first-seen merchant order and the order within each group.
func groupByMerchant(logs []store.InteractionLog) [][]store.InteractionLog {
	index := make(map[uuid.UUID]int)
	var groups [][]store.InteractionLog
	for _, log := range logs {
		key := uuid.Nil
		if log.MerchantID != nil {
			key = *log.MerchantID
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], log)
	}
	return groups
}

func validatePurchase(purchase rules.PurchaseContext) error {
	if purchase.ID == "" {
		return fmt.Errorf("%w: purchase id is required", ErrInvalidPurchase)
	}
	if purchase.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidPurchase)
	}
	if purchase.Subtotal != nil && purchase.Subtotal.IsNegative() {
		return fmt.Errorf("%w: subtotal must not be negative", ErrInvalidPurchase)
	}
	return nil
}

func encodePayload(key string, value interface{}) (store.JSONB, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return store.JSONB{key: decoded}, nil
}

func decodePayload(payload store.JSONB, key string, dest interface{}) error {
	value, ok := payload[key]
	if !ok {
		return fmt.Errorf("payload has no %q", key)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
