package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"rewards-server/internal/store"

	"github.com/google/uuid"
)

// ReferralStore defines the database operations required by ReferralProcessor
type ReferralStore interface {
	CreateReferralLink(ctx context.Context, merchantID, referrerID, refereeID uuid.UUID) (store.ReferralLink, bool, error)
	GetReferralLinkByReferee(ctx context.Context, merchantID, refereeID uuid.UUID) (store.ReferralLink, error)
	ListReferralLinksByReferrer(ctx context.Context, merchantID, referrerID uuid.UUID) ([]store.ReferralLink, error)
}

// ReferrerCache memoizes referee to referrer lookups. A nil referrer is a cached miss.
type ReferrerCache interface {
	Get(key string) (*uuid.UUID, bool)
	Add(key string, referrerID *uuid.UUID)
}
