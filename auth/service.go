package auth

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginRequest carries email and password credentials.
type LoginRequest struct {
	Email    string
	Password string
}

type Principal struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Service provides login/auth operations.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Principal, error)
	// LoginFirebase issues tokens for the account linked to uid. The uid
	// must come from a verified Firebase ID token, never from client input.
	LoginFirebase(ctx context.Context, uid string) (*Principal, error)
	Refresh(ctx context.Context, refreshToken string) (*Principal, error)
}
