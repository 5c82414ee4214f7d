package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const referralLinkColumns = `id, merchant_id, referrer_identity_group_id, referee_identity_group_id, created_at`

const sqlCreateReferralLink = `
INSERT INTO referral_links (merchant_id, referrer_identity_group_id, referee_identity_group_id)
VALUES ($1, $2, $3)
ON CONFLICT (merchant_id, referee_identity_group_id) DO NOTHING
RETURNING ` + referralLinkColumns

// CreateReferralLink inserts a referral link unless the referee already has one at this merchant.
// It returns the stored link and whether this call created it; an existing link is never replaced.
func (s *Store) CreateReferralLink(ctx context.Context, merchantID, referrerID, refereeID uuid.UUID) (ReferralLink, bool, error) {
	var link ReferralLink
	err := s.db.GetContext(ctx, &link, sqlCreateReferralLink, merchantID, referrerID, refereeID)
	if err == nil {
		return link, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to create referral link", err)
		return ReferralLink{}, false, fmt.Errorf("failed to create referral link: %w", err)
	}

	existing, err := s.GetReferralLinkByReferee(ctx, merchantID, refereeID)
	if err != nil {
		return ReferralLink{}, false, err
	}
	return existing, false, nil
}

const sqlGetReferralLinkByReferee = `
SELECT ` + referralLinkColumns + `
FROM referral_links
WHERE merchant_id = $1 AND referee_identity_group_id = $2
`

// GetReferralLinkByReferee retrieves the referral link pointing at a referee
func (s *Store) GetReferralLinkByReferee(ctx context.Context, merchantID, refereeID uuid.UUID) (ReferralLink, error) {
	var link ReferralLink
	err := s.db.GetContext(ctx, &link, sqlGetReferralLinkByReferee, merchantID, refereeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralLink{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral link by referee", err)
		return ReferralLink{}, fmt.Errorf("failed to get referral link by referee: %w", err)
	}
	return link, nil
}

const sqlListReferralLinksByReferrer = `
SELECT ` + referralLinkColumns + `
FROM referral_links
WHERE merchant_id = $1 AND referrer_identity_group_id = $2
ORDER BY created_at DESC
`

// ListReferralLinksByReferrer retrieves the direct referees of a referrer
func (s *Store) ListReferralLinksByReferrer(ctx context.Context, merchantID, referrerID uuid.UUID) ([]ReferralLink, error) {
	var links []ReferralLink
	err := s.db.SelectContext(ctx, &links, sqlListReferralLinksByReferrer, merchantID, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to list referral links by referrer", err)
		return nil, fmt.Errorf("failed to list referral links by referrer: %w", err)
	}
	return links, nil
}
