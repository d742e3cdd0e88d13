package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

// RegisterAdminRequest carries the data required to register an admin.
type RegisterAdminRequest struct {
	Name     string
	Email    string
	Password string
}

// AdminService exposes admin-related business operations.
type AdminService interface {
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*entity.User, error)
	// Promote grants the admin role to an existing user.
	Promote(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// EnsureBootstrapAdmin registers req as an admin when no admin exists
	// yet. It reports whether an account was created.
	EnsureBootstrapAdmin(ctx context.Context, req RegisterAdminRequest) (bool, error)
}
