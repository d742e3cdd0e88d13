package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	userpkg "github.com/mikios34/storefront-backend/user"
	"golang.org/x/crypto/bcrypt"
)

// userService implements user.Service.
type userService struct {
	repo     userpkg.Repository
	validate *validator.Validate
}

// NewUserService constructs a user.Service backed by the provided repository.
func NewUserService(repo userpkg.Repository) userpkg.Service {
	return &userService{repo: repo, validate: validator.New()}
}

// RegisterUser creates a User with the customer role unless another role is
// requested. Either a password or a Firebase UID is required.
func (s *userService) RegisterUser(ctx context.Context, req userpkg.RegisterUserRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, errors.New("invalid email")
	}
	if req.Password == "" && req.FirebaseUID == "" {
		return nil, errors.New("password or firebase_uid is required")
	}
	if req.Password != "" && len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	// check email uniqueness
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, userpkg.ErrEmailTaken
	}

	role := req.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	u := &entity.User{
		Name:   strings.TrimSpace(req.Name),
		Email:  email,
		Role:   role,
		Active: true,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if req.FirebaseUID != "" {
		uid := req.FirebaseUID
		u.FirebaseUID = &uid
	}
	return s.repo.StoreUser(ctx, u)
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
