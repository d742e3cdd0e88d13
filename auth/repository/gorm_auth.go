package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	authpkg "github.com/mikios34/storefront-backend/auth"
	"github.com/mikios34/storefront-backend/entity"
	"gorm.io/gorm"
)

type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *GormAuthRepo) GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *GormAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// notFound maps a missing row to ErrInvalidCredentials so callers cannot
// tell unknown accounts from bad passwords.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return authpkg.ErrInvalidCredentials
	}
	return err
}
