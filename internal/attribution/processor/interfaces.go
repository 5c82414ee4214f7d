package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	referralProcessor "rewards-server/internal/referral/processor"
	"rewards-server/internal/store"
	"time"

	"github.com/google/uuid"
)

// TouchpointStore defines the database operations required by AttributionProcessor
type TouchpointStore interface {
	CreateTouchpoint(ctx context.Context, params store.CreateTouchpointParams) (store.Touchpoint, error)
	FindLatestReferralTouchpoint(ctx context.Context, identityGroupID, merchantID uuid.UUID, now time.Time) (store.Touchpoint, error)
	FindLatestValidTouchpoint(ctx context.Context, identityGroupID, merchantID uuid.UUID, now time.Time) (store.Touchpoint, error)
}

// ReferralRegistrar registers the referral carried by a referral_link touchpoint
type ReferralRegistrar interface {
	RegisterReferral(ctx context.Context, merchantID, referrerID, refereeID uuid.UUID) (referralProcessor.RegisterReferralResult, error)
}
