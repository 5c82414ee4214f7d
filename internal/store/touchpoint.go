package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateTouchpointParams represents parameters for recording a touchpoint
type CreateTouchpointParams struct {
	IdentityGroupID uuid.UUID
	MerchantID      uuid.UUID
	Source          string
	SourceData      JSONB
	LandingURL      *string
	ExpiresAt       time.Time
}

const touchpointColumns = `id, identity_group_id, merchant_id, source, source_data, landing_url, expires_at, created_at`

const sqlCreateTouchpoint = `
INSERT INTO touchpoints (identity_group_id, merchant_id, source, source_data, landing_url, expires_at)
VALUES ($1, $2, $3, COALESCE($4, '{}'::jsonb), $5, $6)
RETURNING ` + touchpointColumns

// CreateTouchpoint records an attribution touchpoint
func (s *Store) CreateTouchpoint(ctx context.Context, params CreateTouchpointParams) (Touchpoint, error) {
	var tp Touchpoint
	err := s.db.GetContext(ctx, &tp, sqlCreateTouchpoint,
		params.IdentityGroupID,
		params.MerchantID,
		params.Source,
		params.SourceData,
		params.LandingURL,
		params.ExpiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create touchpoint", err)
		return Touchpoint{}, fmt.Errorf("failed to create touchpoint: %w", err)
	}
	return tp, nil
}

const sqlFindLatestReferralTouchpoint = `
SELECT ` + touchpointColumns + `
FROM touchpoints
WHERE identity_group_id = $1 AND merchant_id = $2
  AND source = 'referral_link'
  AND expires_at > $3
ORDER BY created_at DESC
LIMIT 1
`

// FindLatestReferralTouchpoint retrieves the most recent unexpired referral_link touchpoint
func (s *Store) FindLatestReferralTouchpoint(ctx context.Context, identityGroupID, merchantID uuid.UUID, now time.Time) (Touchpoint, error) {
	var tp Touchpoint
	err := s.db.GetContext(ctx, &tp, sqlFindLatestReferralTouchpoint, identityGroupID, merchantID, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Touchpoint{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to find latest referral touchpoint", err)
		return Touchpoint{}, fmt.Errorf("failed to find latest referral touchpoint: %w", err)
	}
	return tp, nil
}

const sqlFindLatestValidTouchpoint = `
SELECT ` + touchpointColumns + `
FROM touchpoints
WHERE identity_group_id = $1 AND merchant_id = $2
  AND expires_at > $3
ORDER BY created_at DESC
LIMIT 1
`

// FindLatestValidTouchpoint retrieves the most recent unexpired touchpoint of any source
func (s *Store) FindLatestValidTouchpoint(ctx context.Context, identityGroupID, merchantID uuid.UUID, now time.Time) (Touchpoint, error) {
	var tp Touchpoint
	err := s.db.GetContext(ctx, &tp, sqlFindLatestValidTouchpoint, identityGroupID, merchantID, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Touchpoint{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to find latest touchpoint", err)
		return Touchpoint{}, fmt.Errorf("failed to find latest touchpoint: %w", err)
	}
	return tp, nil
}

const sqlDeleteExpiredTouchpoints = `
DELETE FROM touchpoints
WHERE expires_at < $1
`

// DeleteExpiredTouchpoints removes touchpoints that expired before the cutoff
func (s *Store) DeleteExpiredTouchpoints(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteExpiredTouchpoints, before)
	if err != nil {
		s.logger.Error(ctx, "failed to delete expired touchpoints", err)
		return 0, fmt.Errorf("failed to delete expired touchpoints: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
