package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlFindIdentityByIdentifier = `
SELECT g.id,
       (SELECT w.identifier_value
        FROM identity_nodes w
        WHERE w.group_id = g.id AND w.identifier_type = 'wallet'
        ORDER BY w.created_at ASC
        LIMIT 1) AS wallet_address
FROM identity_nodes n
JOIN identity_groups g ON g.id = n.group_id
WHERE n.identifier_type = $1 AND LOWER(n.identifier_value) = LOWER($2)
`

// FindIdentityByIdentifier resolves an identifier to its identity group and linked wallet
func (s *Store) FindIdentityByIdentifier(ctx context.Context, identifierType, value string) (Identity, error) {
	var identity Identity
	err := s.db.GetContext(ctx, &identity, sqlFindIdentityByIdentifier, identifierType, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Identity{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to find identity by identifier", err)
		return Identity{}, fmt.Errorf("failed to find identity by identifier: %w", err)
	}
	return identity, nil
}

const sqlGetWalletForIdentityGroup = `
SELECT identifier_value
FROM identity_nodes
WHERE group_id = $1 AND identifier_type = 'wallet'
ORDER BY created_at ASC
LIMIT 1
`

// GetWalletForIdentityGroup returns the first wallet linked to a group, or nil if none has been linked
func (s *Store) GetWalletForIdentityGroup(ctx context.Context, identityGroupID uuid.UUID) (*string, error) {
	var wallet string
	err := s.db.GetContext(ctx, &wallet, sqlGetWalletForIdentityGroup, identityGroupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error(ctx, "failed to get wallet for identity group", err)
		return nil, fmt.Errorf("failed to get wallet for identity group: %w", err)
	}
	return &wallet, nil
}
