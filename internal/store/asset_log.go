package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CreateAssetLogParams represents one pending reward to append to the ledger
type CreateAssetLogParams struct {
	IdentityGroupID  uuid.UUID       `db:"identity_group_id"`
	MerchantID       uuid.UUID       `db:"merchant_id"`
	CampaignRuleID   *uuid.UUID      `db:"campaign_rule_id"`
	InteractionLogID *uuid.UUID      `db:"interaction_log_id"`
	AssetType        string          `db:"asset_type"`
	Amount           decimal.Decimal `db:"amount"`
	TokenAddress     *string         `db:"token_address"`
	RecipientType    string          `db:"recipient_type"`
	RecipientWallet  *string         `db:"recipient_wallet"`
	Description      *string         `db:"description"`
}

const assetLogColumns = `id, identity_group_id, merchant_id, campaign_rule_id, interaction_log_id, asset_type, amount, token_address, recipient_type, recipient_wallet, status, description, settlement_locked_at, settlement_error, onchain_tx_hash, onchain_block, settled_at, created_at, updated_at`

const sqlInsertAssetLogs = `
INSERT INTO asset_logs (identity_group_id, merchant_id, campaign_rule_id, interaction_log_id, asset_type, amount, token_address, recipient_type, recipient_wallet, description)
VALUES (:identity_group_id, :merchant_id, :campaign_rule_id, :interaction_log_id, :asset_type, :amount, :token_address, :recipient_type, :recipient_wallet, :description)
RETURNING ` + assetLogColumns

// insertAssetLogs appends all assets with a single multi-row insert
func (s *Store) insertAssetLogs(ctx context.Context, tx *sqlx.Tx, assets []CreateAssetLogParams) ([]AssetLog, error) {
	rows, err := sqlx.NamedQueryContext(ctx, tx, sqlInsertAssetLogs, assets)
	if err != nil {
		s.logger.Error(ctx, "failed to insert asset logs", err)
		return nil, fmt.Errorf("failed to insert asset logs: %w", err)
	}
	defer rows.Close()

	created := make([]AssetLog, 0, len(assets))
	for rows.Next() {
		var asset AssetLog
		if err := rows.StructScan(&asset); err != nil {
			s.logger.Error(ctx, "failed to scan asset log", err)
			return nil, fmt.Errorf("failed to scan asset log: %w", err)
		}
		created = append(created, asset)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error(ctx, "failed to insert asset logs", err)
		return nil, fmt.Errorf("failed to insert asset logs: %w", err)
	}
	return created, nil
}

const sqlListAssetLogsByInteraction = `
SELECT ` + assetLogColumns + `
FROM asset_logs
WHERE interaction_log_id = $1
ORDER BY created_at ASC
`

// ListAssetLogsByInteraction retrieves the rewards an interaction produced
func (s *Store) ListAssetLogsByInteraction(ctx context.Context, interactionID uuid.UUID) ([]AssetLog, error) {
	var assets []AssetLog
	err := s.db.SelectContext(ctx, &assets, sqlListAssetLogsByInteraction, interactionID)
	if err != nil {
		s.logger.Error(ctx, "failed to list asset logs by interaction", err)
		return nil, fmt.Errorf("failed to list asset logs by interaction: %w", err)
	}
	return assets, nil
}

const sqlCancelPendingAssetLogsByInteraction = `
UPDATE asset_logs
SET status = 'cancelled',
    updated_at = CURRENT_TIMESTAMP
WHERE interaction_log_id = $1
  AND status = 'pending'
  AND settlement_locked_at IS NULL
RETURNING ` + assetLogColumns

// CancelPendingAssetLogsByInteraction cancels the interaction's rewards that have not started settling
func (s *Store) CancelPendingAssetLogsByInteraction(ctx context.Context, interactionID uuid.UUID) ([]AssetLog, error) {
	var assets []AssetLog
	err := s.db.SelectContext(ctx, &assets, sqlCancelPendingAssetLogsByInteraction, interactionID)
	if err != nil {
		s.logger.Error(ctx, "failed to cancel pending asset logs", err)
		return nil, fmt.Errorf("failed to cancel pending asset logs: %w", err)
	}
	return assets, nil
}

const sqlResetStaleSettlementLocks = `
UPDATE asset_logs
SET settlement_locked_at = NULL,
    settlement_error = 'settlement lock expired',
    updated_at = CURRENT_TIMESTAMP
WHERE status = 'pending'
  AND settlement_locked_at IS NOT NULL
  AND settlement_locked_at < $1
  AND onchain_tx_hash IS NULL
`

// ResetStaleSettlementLocks releases rows a crashed settlement run left claimed.
// Rows holding a broadcast transaction hash stay locked until reconciled.
func (s *Store) ResetStaleSettlementLocks(ctx context.Context, lockedBefore time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlResetStaleSettlementLocks, lockedBefore)
	if err != nil {
		s.logger.Error(ctx, "failed to reset stale settlement locks", err)
		return 0, fmt.Errorf("failed to reset stale settlement locks: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

const sqlClaimPendingTokenAssetLogs = `
WITH claimed AS (
    UPDATE asset_logs
    SET settlement_locked_at = $2,
        updated_at = $2
    WHERE id IN (
        SELECT id
        FROM asset_logs
        WHERE status = 'pending'
          AND asset_type = 'token'
          AND settlement_locked_at IS NULL
        ORDER BY created_at ASC
        LIMIT $1
        FOR UPDATE SKIP LOCKED
    )
    RETURNING ` + assetLogColumns + `
)
SELECT c.*, il.created_at AS interaction_created_at
FROM claimed c
LEFT JOIN interaction_logs il ON il.id = c.interaction_log_id
ORDER BY c.created_at ASC
`

// ClaimPendingTokenAssetLogs locks up to limit pending token rewards for one settlement run
func (s *Store) ClaimPendingTokenAssetLogs(ctx context.Context, limit int, now time.Time) ([]SettlementCandidate, error) {
	var candidates []SettlementCandidate
	err := s.db.SelectContext(ctx, &candidates, sqlClaimPendingTokenAssetLogs, limit, now)
	if err != nil {
		s.logger.Error(ctx, "failed to claim pending asset logs", err)
		return nil, fmt.Errorf("failed to claim pending asset logs: %w", err)
	}
	return candidates, nil
}

const sqlMarkAssetLogsSettled = `
UPDATE asset_logs
SET status = 'ready_to_claim',
    onchain_tx_hash = $2,
    onchain_block = $3,
    settled_at = CURRENT_TIMESTAMP,
    settlement_locked_at = NULL,
    settlement_error = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ANY($1)
  AND status = 'pending'
`

// MarkAssetLogsSettled moves every listed row to ready_to_claim in one statement
func (s *Store) MarkAssetLogsSettled(ctx context.Context, ids []uuid.UUID, txHash string, blockNumber uint64) error {
	_, err := s.db.ExecContext(ctx, sqlMarkAssetLogsSettled, pq.Array(uuidStrings(ids)), txHash, int64(blockNumber))
	if err != nil {
		s.logger.Error(ctx, "failed to mark asset logs settled", err)
		return fmt.Errorf("failed to mark asset logs settled: %w", err)
	}
	return nil
}

const sqlRecordUnconfirmedSettlement = `
UPDATE asset_logs
SET onchain_tx_hash = $2,
    settlement_error = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ANY($1)
  AND status = 'pending'
`

// RecordUnconfirmedSettlement stores the hash of a broadcast batch whose receipt was never seen.
// The rows keep their settlement lock.
func (s *Store) RecordUnconfirmedSettlement(ctx context.Context, ids []uuid.UUID, txHash, reason string) error {
	_, err := s.db.ExecContext(ctx, sqlRecordUnconfirmedSettlement, pq.Array(uuidStrings(ids)), txHash, reason)
	if err != nil {
		s.logger.Error(ctx, "failed to record unconfirmed settlement", err)
		return fmt.Errorf("failed to record unconfirmed settlement: %w", err)
	}
	return nil
}

const sqlReleaseAssetLogs = `
UPDATE asset_logs
SET settlement_locked_at = NULL,
    settlement_error = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ANY($1)
  AND status = 'pending'
`

// ReleaseAssetLogs returns claimed rows to the pending pool with the error that kept them there
func (s *Store) ReleaseAssetLogs(ctx context.Context, ids []uuid.UUID, reason string) error {
	_, err := s.db.ExecContext(ctx, sqlReleaseAssetLogs, pq.Array(uuidStrings(ids)), reason)
	if err != nil {
		s.logger.Error(ctx, "failed to release asset logs", err)
		return fmt.Errorf("failed to release asset logs: %w", err)
	}
	return nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
