package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

// RegisterUserRequest carries the data required to register a shopper.
// FirebaseUID must come from a verified Firebase ID token.
type RegisterUserRequest struct {
	Name        string
	Email       string
	Password    string
	FirebaseUID string
	Role        string
}

// Service exposes user-related business operations.
type Service interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
