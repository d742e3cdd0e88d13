package service

import (
	"context"

	"github.com/google/uuid"
	adminpkg "github.com/mikios34/storefront-backend/admin"
	"github.com/mikios34/storefront-backend/entity"
	userpkg "github.com/mikios34/storefront-backend/user"
)

// adminService implements AdminService.
type adminService struct {
	repo  adminpkg.AdminRepository
	users userpkg.Service
}

// NewAdminService constructs an AdminService. Account creation goes through
// users so admins get the same validation and password hashing as shoppers.
func NewAdminService(repo adminpkg.AdminRepository, users userpkg.Service) adminpkg.AdminService {
	return &adminService{repo: repo, users: users}
}

func (s *adminService) RegisterAdmin(ctx context.Context, req adminpkg.RegisterAdminRequest) (*entity.User, error) {
	return s.users.RegisterUser(ctx, userpkg.RegisterUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.RoleAdmin,
	})
}

func (s *adminService) Promote(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.repo.SetRole(ctx, userID, entity.RoleAdmin)
}

func (s *adminService) EnsureBootstrapAdmin(ctx context.Context, req adminpkg.RegisterAdminRequest) (bool, error) {
	if req.Email == "" {
		return false, nil
	}
	exists, err := s.repo.AdminExists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := s.RegisterAdmin(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}
