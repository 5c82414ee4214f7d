package processor

import (
	"context"
	"errors"
	"fmt"
	"rewards-server/internal/observability"
	"rewards-server/internal/store"

	"github.com/google/uuid"
)

const DefaultMaxChainDepth = 5

// Reasons a referral registration did not create a link.
const (
	ReasonSelfReferral    = "self_referral"
	ReasonAlreadyReferred = "already_referred"
)

var (
	ErrInvalidReferral = errors.New("referrer and referee identity groups are required")
	ErrFailedReferral  = errors.New("failed to register referral")
	ErrFailedLookup    = errors.New("failed to look up referrer")
)

type ReferralProcessor struct {
	store    ReferralStore
	cache    ReferrerCache
	logger   *observability.Logger
	maxDepth int
}

// New builds a ReferralProcessor. A nil cache gets the default LRU.
func New(store ReferralStore, cache ReferrerCache, logger *observability.Logger, maxDepth int) *ReferralProcessor {
	if cache == nil {
		cache = NewLRUCache(DefaultCacheSize, DefaultCacheTTL)
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxChainDepth
	}
	return &ReferralProcessor{
		store:    store,
		cache:    cache,
		logger:   logger,
		maxDepth: maxDepth,
	}
}

// RegisterReferralResult reports whether a referral link was created. When the referee
// already has a referrer, ExistingReferrer carries it.
type RegisterReferralResult struct {
	Registered       bool                `json:"registered"`
	ExistingReferrer *uuid.UUID          `json:"existing_referrer,omitempty"`
	Reason           string              `json:"reason,omitempty"`
	Link             *store.ReferralLink `json:"link,omitempty"`
}

// ChainLink is one hop of a referral chain.
type ChainLink struct {
	IdentityGroupID uuid.UUID `json:"identity_group_id"`
	Depth           int       `json:"depth"`
}

// RegisterReferral links referee to referrer within a merchant. The first registration
// for a referee wins; self-referrals and repeats are reported, not treated as errors.
func (p *ReferralProcessor) RegisterReferral(ctx context.Context, merchantID, referrerID, refereeID uuid.UUID) (RegisterReferralResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "referrer_identity_group_id", Value: referrerID.String()},
		observability.Field{Key: "referee_identity_group_id", Value: refereeID.String()},
	)

	if referrerID == uuid.Nil || refereeID == uuid.Nil {
		return RegisterReferralResult{}, ErrInvalidReferral
	}

	if referrerID == refereeID {
		p.logger.Info(ctx, "ignoring self-referral")
		return RegisterReferralResult{Reason: ReasonSelfReferral}, nil
	}

	// Insert-or-get: the unique referee constraint settles races
	link, created, err := p.store.CreateReferralLink(ctx, merchantID, referrerID, refereeID)
	if err != nil {
		p.logger.Error(ctx, "failed to create referral link", err)
		return RegisterReferralResult{}, fmt.Errorf("%w: %v", ErrFailedReferral, err)
	}

	// Cache whichever referrer won, including a pre-existing one
	existing := link.ReferrerIdentityGroupID
	p.cache.Add(CacheKey(merchantID, refereeID), &existing)

	if !created {
		p.logger.Info(ctx, "referee already has a referrer")
		return RegisterReferralResult{
			ExistingReferrer: &existing,
			Reason:           ReasonAlreadyReferred,
			Link:             &link,
		}, nil
	}

	p.logger.Info(ctx, "referral registered")
	return RegisterReferralResult{Registered: true, Link: &link}, nil
}

// GetReferrer returns the identity that referred identityGroupID, or nil when there is none.
func (p *ReferralProcessor) GetReferrer(ctx context.Context, merchantID, identityGroupID uuid.UUID) (*uuid.UUID, error) {
	// The cache also remembers misses as nil
	key := CacheKey(merchantID, identityGroupID)
	if referrer, ok := p.cache.Get(key); ok {
		return referrer, nil
	}

	link, err := p.store.GetReferralLinkByReferee(ctx, merchantID, identityGroupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.cache.Add(key, nil)
			return nil, nil
		}
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "merchant_id", Value: merchantID.String()},
			observability.Field{Key: "identity_group_id", Value: identityGroupID.String()},
		)
		p.logger.Error(ctx, "failed to get referral link", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedLookup, err)
	}

	referrer := link.ReferrerIdentityGroupID
	p.cache.Add(key, &referrer)
	return &referrer, nil
}

// GetReferralChain walks referrer-of-referrer links up to maxDepth hops. A non-positive
// maxDepth uses the processor default. The walk stops at the first identity without a
// referrer or at an identity already on the chain.
func (p *ReferralProcessor) GetReferralChain(ctx context.Context, merchantID, identityGroupID uuid.UUID, maxDepth int) ([]ChainLink, error) {
	if maxDepth <= 0 {
		maxDepth = p.maxDepth
	}

	// visited guards against cycles in the referral graph
	chain := make([]ChainLink, 0, maxDepth)
	visited := map[uuid.UUID]struct{}{identityGroupID: {}}
	current := identityGroupID

	for depth := 1; depth <= maxDepth; depth++ {
		referrer, err := p.GetReferrer(ctx, merchantID, current)
		if err != nil {
			return chain, err
		}
		if referrer == nil {
			break
		}
		if _, seen := visited[*referrer]; seen {
			break
		}
		visited[*referrer] = struct{}{}
		chain = append(chain, ChainLink{IdentityGroupID: *referrer, Depth: depth})
		current = *referrer
	}

	return chain, nil
}

// ListReferees returns the links created by referrerID within a merchant.
func (p *ReferralProcessor) ListReferees(ctx context.Context, merchantID, referrerID uuid.UUID) ([]store.ReferralLink, error) {
	links, err := p.store.ListReferralLinksByReferrer(ctx, merchantID, referrerID)
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "merchant_id", Value: merchantID.String()},
			observability.Field{Key: "referrer_identity_group_id", Value: referrerID.String()},
		)
		p.logger.Error(ctx, "failed to list referral links", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedLookup, err)
	}
	if links == nil {
		links = []store.ReferralLink{}
	}
	return links, nil
}
