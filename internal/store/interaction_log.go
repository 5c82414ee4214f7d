package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateInteractionLogParams represents parameters for appending a raw event
type CreateInteractionLogParams struct {
	MerchantID      uuid.UUID
	IdentityGroupID uuid.UUID
	Type            string
	Payload         JSONB
}

const interactionLogColumns = `id, merchant_id, identity_group_id, type, payload, processed_at, created_at`

const sqlCreateInteractionLog = `
INSERT INTO interaction_logs (merchant_id, identity_group_id, type, payload)
VALUES ($1, $2, $3, COALESCE($4, '{}'::jsonb))
RETURNING ` + interactionLogColumns

// CreateInteractionLog appends a raw interaction event
func (s *Store) CreateInteractionLog(ctx context.Context, params CreateInteractionLogParams) (InteractionLog, error) {
	var log InteractionLog
	err := s.db.GetContext(ctx, &log, sqlCreateInteractionLog,
		params.MerchantID,
		params.IdentityGroupID,
		params.Type,
		params.Payload)
	if err != nil {
		s.logger.Error(ctx, "failed to create interaction log", err)
		return InteractionLog{}, fmt.Errorf("failed to create interaction log: %w", err)
	}
	return log, nil
}

const sqlGetInteractionLogByID = `
SELECT ` + interactionLogColumns + `
FROM interaction_logs
WHERE id = $1
`

// GetInteractionLogByID retrieves an interaction log by ID
func (s *Store) GetInteractionLogByID(ctx context.Context, id uuid.UUID) (InteractionLog, error) {
	var log InteractionLog
	err := s.db.GetContext(ctx, &log, sqlGetInteractionLogByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InteractionLog{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get interaction log by id", err)
		return InteractionLog{}, fmt.Errorf("failed to get interaction log by id: %w", err)
	}
	return log, nil
}

const sqlFindUnprocessedInteractionLogs = `
SELECT ` + interactionLogColumns + `
FROM interaction_logs
WHERE processed_at IS NULL
  AND created_at < $1
ORDER BY created_at ASC
LIMIT $2
`

// FindUnprocessedInteractionLogs retrieves the oldest unprocessed events created before the cutoff
func (s *Store) FindUnprocessedInteractionLogs(ctx context.Context, createdBefore time.Time, limit int) ([]InteractionLog, error) {
	var logs []InteractionLog
	err := s.db.SelectContext(ctx, &logs, sqlFindUnprocessedInteractionLogs, createdBefore, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to find unprocessed interaction logs", err)
		return nil, fmt.Errorf("failed to find unprocessed interaction logs: %w", err)
	}
	return logs, nil
}

const sqlMarkInteractionProcessed = `
UPDATE interaction_logs
SET processed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND processed_at IS NULL
`

// MarkInteractionProcessed sets processed_at once; repeated calls are no-ops
func (s *Store) MarkInteractionProcessed(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlMarkInteractionProcessed, id)
	if err != nil {
		s.logger.Error(ctx, "failed to mark interaction processed", err)
		return fmt.Errorf("failed to mark interaction processed: %w", err)
	}
	return nil
}

const sqlLockInteractionLog = `
SELECT processed_at
FROM interaction_logs
WHERE id = $1
FOR UPDATE
`

// RecordRewards inserts the pending asset logs produced by an interaction and marks it processed
// in one transaction. It returns ErrInteractionAlreadyProcessed if another run got there first.
func (s *Store) RecordRewards(ctx context.Context, interactionID uuid.UUID, assets []CreateAssetLogParams) ([]AssetLog, error) {
	var created []AssetLog
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var processedAt *time.Time
		if err := tx.GetContext(ctx, &processedAt, sqlLockInteractionLog, interactionID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			s.logger.Error(ctx, "failed to lock interaction log", err)
			return fmt.Errorf("failed to lock interaction log: %w", err)
		}
		if processedAt != nil {
			return ErrInteractionAlreadyProcessed
		}

		if len(assets) > 0 {
			var err error
			created, err = s.insertAssetLogs(ctx, tx, assets)
			if err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, sqlMarkInteractionProcessed, interactionID); err != nil {
			s.logger.Error(ctx, "failed to mark interaction processed", err)
			return fmt.Errorf("failed to mark interaction processed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
