package events

//go:generate mockgen -source=publisher.go -destination=mocks_test.go -package=events

import (
	"context"
	"rewards-server/internal/clients/kafka"
	"rewards-server/internal/observability"
	"rewards-server/internal/store"
	"time"

	"github.com/google/uuid"
)

// Event types published by the rewards service.
const (
	TypeRewardsCreated      = "rewards.created"
	TypeRewardsCancelled    = "rewards.cancelled"
	TypeSettlementCompleted = "settlement.completed"
)

// EventProducer writes encoded events to the broker.
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
	PublishEvents(ctx context.Context, events []kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher. A nil producer makes every publish a no-op.
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// SettlementBatch summarizes one ledger transaction for a settlement.completed event.
type SettlementBatch struct {
	Mode        string
	TxHash      string
	BlockNumber uint64
	AssetLogIDs []uuid.UUID
}

// PublishRewardsCreated publishes a rewards.created event for the assets an interaction produced
func (p *Publisher) PublishRewardsCreated(ctx context.Context, merchantID, interactionID uuid.UUID, assets []store.AssetLog) error {
	if len(assets) == 0 {
		return nil
	}
	return p.publish(ctx, TypeRewardsCreated, merchantID, map[string]interface{}{
		"interaction_log_id": interactionID.String(),
		"assets":             assetPayloads(assets),
	})
}

// PublishRewardsCancelled publishes a rewards.cancelled event after a refund
func (p *Publisher) PublishRewardsCancelled(ctx context.Context, merchantID, interactionID uuid.UUID, assets []store.AssetLog) error {
	if len(assets) == 0 {
		return nil
	}
	return p.publish(ctx, TypeRewardsCancelled, merchantID, map[string]interface{}{
		"interaction_log_id": interactionID.String(),
		"assets":             assetPayloads(assets),
	})
}

// PublishSettlementCompleted publishes one settlement.completed event per merchant in the batch
func (p *Publisher) PublishSettlementCompleted(ctx context.Context, batch SettlementBatch, merchantAssets map[uuid.UUID][]uuid.UUID) error {
	if p == nil || p.producer == nil || len(merchantAssets) == 0 {
		return nil
	}

	messages := make([]kafka.EventMessage, 0, len(merchantAssets))
	for merchantID, ids := range merchantAssets {
		assetIDs := make([]string, 0, len(ids))
		for _, id := range ids {
			assetIDs = append(assetIDs, id.String())
		}
		messages = append(messages, p.message(TypeSettlementCompleted, merchantID, map[string]interface{}{
			"mode":          batch.Mode,
			"tx_hash":       batch.TxHash,
			"block_number":  batch.BlockNumber,
			"asset_log_ids": assetIDs,
		}))
	}
	return p.producer.PublishEvents(ctx, messages)
}

func (p *Publisher) publish(ctx context.Context, eventType string, merchantID uuid.UUID, data map[string]interface{}) error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.PublishEvent(ctx, p.message(eventType, merchantID, data))
}

func (p *Publisher) message(eventType string, merchantID uuid.UUID, data map[string]interface{}) kafka.EventMessage {
	return kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		MerchantID: merchantID.String(),
		Data:       data,
		Timestamp:  p.now().UTC().Format(time.RFC3339),
	}
}

func assetPayloads(assets []store.AssetLog) []map[string]interface{} {
	payloads := make([]map[string]interface{}, 0, len(assets))
	for _, asset := range assets {
		payload := map[string]interface{}{
			"asset_log_id":   asset.ID.String(),
			"asset_type":     asset.AssetType,
			"amount":         asset.Amount.String(),
			"recipient_type": asset.RecipientType,
			"status":         asset.Status,
		}
		if asset.IdentityGroupID != nil {
			payload["identity_group_id"] = asset.IdentityGroupID.String()
		}
		if asset.CampaignRuleID != nil {
			payload["campaign_rule_id"] = asset.CampaignRuleID.String()
		}
		if asset.TokenAddress != nil {
			payload["token_address"] = *asset.TokenAddress
		}
		payloads = append(payloads, payload)
	}
	return payloads
}
