package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rewards-server/internal/clients/kafka"
	"rewards-server/internal/observability"
	rewardsProcessor "rewards-server/internal/rewards/processor"
	"rewards-server/internal/rules"
	"rewards-server/internal/store"

	"github.com/google/uuid"
)

// Interaction event types accepted on the ingestion topic
const (
	TypeInteractionPurchase        = "interaction.purchase"
	TypeInteractionRefund          = "interaction.refund"
	TypeInteractionWalletConnect   = "interaction.wallet_connect"
	TypeInteractionReferralArrival = "interaction.referral_arrival"
	TypeInteractionIdentityMerge   = "interaction.identity_merge"
)

var interactionTypes = map[string]string{
	TypeInteractionWalletConnect:   store.InteractionTypeWalletConnect,
	TypeInteractionReferralArrival: store.InteractionTypeReferralArrival,
	TypeInteractionIdentityMerge:   store.InteractionTypeIdentityMerge,
}

type purchaseEventData struct {
	IdentityGroupID uuid.UUID             `json:"identity_group_id"`
	Purchase        rules.PurchaseContext `json:"purchase"`
}

type refundEventData struct {
	InteractionLogID uuid.UUID `json:"interaction_log_id"`
}

type interactionEventData struct {
	IdentityGroupID uuid.UUID   `json:"identity_group_id"`
	Payload         store.JSONB `json:"payload"`
}

// InteractionConsumer feeds interaction events from Kafka into the rewards pipeline
type InteractionConsumer struct {
	source    EventSource
	processor InteractionProcessor
	logger    *observability.Logger
}

// NewInteractionConsumer creates a new InteractionConsumer
func NewInteractionConsumer(source EventSource, processor InteractionProcessor, logger *observability.Logger) *InteractionConsumer {
	return &InteractionConsumer{
		source:    source,
		processor: processor,
		logger:    logger,
	}
}

// Start consumes events until ctx is cancelled
func (c *InteractionConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, "Starting interaction consumer")
	return c.source.ConsumeEvents(ctx, c.HandleEvent)
}

// HandleEvent routes one event. Malformed or rejected events are permanent failures. A purchase
// whose interaction was stored but could not be rewarded is left for the batch job, so it is not
// redelivered and duplicated.
func (c *InteractionConsumer) HandleEvent(ctx context.Context, event kafka.EventMessage) error {
	merchantID, err := uuid.Parse(event.MerchantID)
	if err != nil {
		return fmt.Errorf("%w: invalid merchant id %q", kafka.ErrPermanent, event.MerchantID)
	}

	switch event.Type {
	case TypeInteractionPurchase:
		var data purchaseEventData
		if err := decodeEventData(event.Data, &data); err != nil {
			return err
		}
		result, err := c.processor.ProcessPurchase(ctx, merchantID, rewardsProcessor.ProcessPurchaseRequest{
			IdentityGroupID: data.IdentityGroupID,
			Purchase:        data.Purchase,
		})
		if errors.Is(err, rewardsProcessor.ErrFailedRewards) {
			c.logger.InfoWithError(ctx, "purchase stored, rewards deferred to batch", err)
			return nil
		}
		if err != nil {
			return classify(err)
		}
		c.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "interaction_log_id", Value: result.InteractionLogID.String()},
			observability.Field{Key: "asset_count", Value: len(result.Assets)},
		), "purchase processed")
		return nil

	case TypeInteractionRefund:
		var data refundEventData
		if err := decodeEventData(event.Data, &data); err != nil {
			return err
		}
		_, err := c.processor.HandleRefund(ctx, merchantID, data.InteractionLogID)
		return classify(err)

	default:
		interactionType, ok := interactionTypes[event.Type]
		if !ok {
			c.logger.Warn(ctx, "ignoring unknown interaction event type")
			return nil
		}
		var data interactionEventData
		if err := decodeEventData(event.Data, &data); err != nil {
			return err
		}
		_, err := c.processor.RecordInteraction(ctx, merchantID, rewardsProcessor.RecordInteractionRequest{
			IdentityGroupID: data.IdentityGroupID,
			Type:            interactionType,
			Payload:         data.Payload,
		})
		return classify(err)
	}
}

// classify marks input errors as permanent so the consumer does not retry them
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, rewardsProcessor.ErrInvalidPurchase),
		errors.Is(err, rewardsProcessor.ErrMissingIdentity),
		errors.Is(err, rewardsProcessor.ErrInvalidInteractionType),
		errors.Is(err, rewardsProcessor.ErrInteractionNotFound):
		return fmt.Errorf("%w: %v", kafka.ErrPermanent, err)
	default:
		return err
	}
}

func decodeEventData(data map[string]interface{}, dest interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", kafka.ErrPermanent, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", kafka.ErrPermanent, err)
	}
	return nil
}
