package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

// AdminRepository specifies admin related database operations.
type AdminRepository interface {
	SetRole(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error)
	AdminExists(ctx context.Context) (bool, error)
}
