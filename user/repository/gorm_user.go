package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	userpkg "github.com/mikios34/storefront-backend/user"
	"gorm.io/gorm"
)

// GormUserRepo implements user.Repository using GORM.
type GormUserRepo struct {
	db *gorm.DB
}

func NewGormUserRepo(db *gorm.DB) userpkg.Repository {
	return &GormUserRepo{db: db}
}

func (r *GormUserRepo) StoreUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *GormUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userpkg.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
