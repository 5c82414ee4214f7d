package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetMerchantByID = `
SELECT id, name, bank_address, created_at, updated_at
FROM merchants
WHERE id = $1
`

// GetMerchantByID retrieves a merchant by ID
func (s *Store) GetMerchantByID(ctx context.Context, merchantID uuid.UUID) (Merchant, error) {
	var merchant Merchant
	err := s.db.GetContext(ctx, &merchant, sqlGetMerchantByID, merchantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Merchant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get merchant by id", err)
		return Merchant{}, fmt.Errorf("failed to get merchant by id: %w", err)
	}
	return merchant, nil
}
