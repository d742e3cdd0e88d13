package checkout

import (
	"context"

	"github.com/google/uuid"
)

// AddressRepository stores the single shipping address kept per user.
type AddressRepository interface {
	// GetAddress returns the stored address or "" when the user has none.
	GetAddress(ctx context.Context, uid uuid.UUID) (string, error)
	// MergeAddress inserts the address or replaces the existing one.
	MergeAddress(ctx context.Context, uid uuid.UUID, address string) error
}
