package processor

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"rewards-server/internal/observability"
	referralProcessor "rewards-server/internal/referral/processor"
	"rewards-server/internal/rules"
	"rewards-server/internal/store"
	"time"

	"github.com/google/uuid"
)

const DefaultLookback = 30 * 24 * time.Hour

// sourceDataReferrerKey stores the referrer identity on referral_link touchpoints
const sourceDataReferrerKey = "referrer_identity_group_id"

var (
	ErrInvalidSource     = errors.New("invalid touchpoint source")
	ErrMissingIdentity   = errors.New("identity group is required")
	ErrFailedTouchpoint  = errors.New("failed to record touchpoint")
	ErrFailedAttribution = errors.New("failed to attribute conversion")
)

type AttributionProcessor struct {
	store     TouchpointStore
	referrals ReferralRegistrar
	logger    *observability.Logger
	lookback  time.Duration
	now       func() time.Time
}

func New(store TouchpointStore, referrals ReferralRegistrar, logger *observability.Logger, lookback time.Duration) *AttributionProcessor {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &AttributionProcessor{
		store:     store,
		referrals: referrals,
		logger:    logger,
		lookback:  lookback,
		now:       time.Now,
	}
}

// RecordTouchpointRequest represents a marketing interaction to remember for attribution
type RecordTouchpointRequest struct {
	IdentityGroupID         uuid.UUID
	Source                  string
	SourceData              store.JSONB
	LandingURL              *string
	ReferrerIdentityGroupID *uuid.UUID
}

// RecordTouchpointResult is the stored touchpoint plus the referral registration it triggered, if any
type RecordTouchpointResult struct {
	Touchpoint store.Touchpoint                          `json:"touchpoint"`
	Referral   *referralProcessor.RegisterReferralResult `json:"referral,omitempty"`
}

// RecordTouchpoint stores a touchpoint that expires after the lookback window. A
// referral_link touchpoint with a referrer also registers the referral; a failed
// registration is logged and does not fail the touchpoint.
func (p *AttributionProcessor) RecordTouchpoint(ctx context.Context, merchantID uuid.UUID, req RecordTouchpointRequest) (RecordTouchpointResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "identity_group_id", Value: req.IdentityGroupID.String()},
		observability.Field{Key: "touchpoint_source", Value: req.Source},
	)

	if req.IdentityGroupID == uuid.Nil {
		return RecordTouchpointResult{}, ErrMissingIdentity
	}
	if !isValidSource(req.Source) {
		return RecordTouchpointResult{}, ErrInvalidSource
	}

	// copied so the referrer key never leaks into the caller's map
	sourceData := maps.Clone(req.SourceData)
	if sourceData == nil {
		sourceData = store.JSONB{}
	}
	isReferral := req.Source == store.TouchpointSourceReferralLink && req.ReferrerIdentityGroupID != nil
	if isReferral {
		sourceData[sourceDataReferrerKey] = req.ReferrerIdentityGroupID.String()
	}

	// Touchpoints expire after the lookback window
	touchpoint, err := p.store.CreateTouchpoint(ctx, store.CreateTouchpointParams{
		IdentityGroupID: req.IdentityGroupID,
		MerchantID:      merchantID,
		Source:          req.Source,
		SourceData:      sourceData,
		LandingURL:      req.LandingURL,
		ExpiresAt:       p.now().Add(p.lookback),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create touchpoint", err)
		return RecordTouchpointResult{}, fmt.Errorf("%w: %v", ErrFailedTouchpoint, err)
	}

	result := RecordTouchpointResult{Touchpoint: touchpoint}
	if isReferral {
		referral, err := p.referrals.RegisterReferral(ctx, merchantID, *req.ReferrerIdentityGroupID, req.IdentityGroupID)
		if err != nil {
			p.logger.Error(ctx, "failed to register referral from touchpoint", err)
		} else {
			result.Referral = &referral
		}
	}

	return result, nil
}

// AttributeConversion credits a conversion. A live referral_link touchpoint outranks any
// more recent touchpoint of another source; without either the conversion is unattributed.
func (p *AttributionProcessor) AttributeConversion(ctx context.Context, identityGroupID, merchantID uuid.UUID) (rules.AttributionContext, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "merchant_id", Value: merchantID.String()},
		observability.Field{Key: "identity_group_id", Value: identityGroupID.String()},
	)
	now := p.now()

	// Referral touchpoints win regardless of recency
	referral, err := p.store.FindLatestReferralTouchpoint(ctx, identityGroupID, merchantID, now)
	if err == nil {
		attribution := attributionFrom(referral)
		attribution.ReferrerWallet = referral.ReferrerWallet()
		return attribution, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to find referral touchpoint", err)
		return rules.AttributionContext{}, fmt.Errorf("%w: %v", ErrFailedAttribution, err)
	}

	// Otherwise last touch among unexpired touchpoints
	latest, err := p.store.FindLatestValidTouchpoint(ctx, identityGroupID, merchantID, now)
	if err == nil {
		return attributionFrom(latest), nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to find touchpoint", err)
		return rules.AttributionContext{}, fmt.Errorf("%w: %v", ErrFailedAttribution, err)
	}

	return rules.AttributionContext{Attributed: false}, nil
}

// ReferrerFromTouchpoint returns the referrer identity recorded on an attributed referral touchpoint.
func ReferrerFromTouchpoint(attribution rules.AttributionContext) *uuid.UUID {
	if attribution.SourceData == nil {
		return nil
	}
	raw, ok := attribution.SourceData[sourceDataReferrerKey].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// attributionFrom exposes a touchpoint to rule conditions.
func attributionFrom(t store.Touchpoint) rules.AttributionContext {
	id := t.ID
	return rules.AttributionContext{
		Attributed:   true,
		Source:       t.Source,
		TouchpointID: &id,
		SourceData:   map[string]any(t.SourceData),
	}
}

func isValidSource(source string) bool {
	switch source {
	case store.TouchpointSourceReferralLink, store.TouchpointSourceOrganic, store.TouchpointSourcePaidAd, store.TouchpointSourceDirect:
		return true
	}
	return false
}
