package consumers

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=consumers

import (
	"context"
	"rewards-server/internal/clients/kafka"
	rewardsProcessor "rewards-server/internal/rewards/processor"
	"rewards-server/internal/store"

	"github.com/google/uuid"
)

// EventSource delivers decoded events to a handler until its context ends
type EventSource interface {
	ConsumeEvents(ctx context.Context, handler kafka.Handler) error
}

// InteractionProcessor ingests interactions into the rewards pipeline
type InteractionProcessor interface {
	ProcessPurchase(ctx context.Context, merchantID uuid.UUID, req rewardsProcessor.ProcessPurchaseRequest) (rewardsProcessor.ProcessResult, error)
	RecordInteraction(ctx context.Context, merchantID uuid.UUID, req rewardsProcessor.RecordInteractionRequest) (store.InteractionLog, error)
	HandleRefund(ctx context.Context, merchantID, interactionID uuid.UUID) (rewardsProcessor.RefundResult, error)
}
