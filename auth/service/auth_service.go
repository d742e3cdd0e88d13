package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	authpkg "github.com/mikios34/storefront-backend/auth"
	"github.com/mikios34/storefront-backend/entity"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	repo       authpkg.Repository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo authpkg.Repository, secret string, accessTTL, refreshTTL time.Duration) authpkg.Service {
	return &authService{repo: repo, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	if req.Email == "" || req.Password == "" {
		return nil, authpkg.ErrInvalidCredentials
	}
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, authpkg.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, authpkg.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *authService) LoginFirebase(ctx context.Context, uid string) (*authpkg.Principal, error) {
	if uid == "" {
		return nil, authpkg.ErrInvalidCredentials
	}
	user, err := s.repo.GetUserByFirebaseUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, authpkg.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*authpkg.Principal, error) {
	claims, err := authpkg.ParseAndValidate(s.secret, refreshToken, authpkg.TokenRefresh)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, authpkg.ErrInvalidCredentials
	}
	// reload so role or name changes take effect
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, authpkg.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *authService) issue(user *entity.User) (*authpkg.Principal, error) {
	p := &authpkg.Principal{
		UserID: user.ID.String(),
		Name:   user.DisplayName(),
		Role:   user.Role,
	}
	token, err := authpkg.SignJWT(s.secret, p, s.accessTTL, authpkg.TokenAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := authpkg.SignJWT(s.secret, p, s.refreshTTL, authpkg.TokenRefresh)
	if err != nil {
		return nil, err
	}
	p.Token = token
	p.RefreshToken = refresh
	return p, nil
}
