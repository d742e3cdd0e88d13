package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	adminpkg "github.com/mikios34/storefront-backend/admin"
	"github.com/mikios34/storefront-backend/entity"
	userpkg "github.com/mikios34/storefront-backend/user"
	"gorm.io/gorm"
)

// GormAdminRepo implements admin.AdminRepository using GORM.
type GormAdminRepo struct {
	db *gorm.DB
}

func NewGormAdminRepo(db *gorm.DB) adminpkg.AdminRepository {
	return &GormAdminRepo{db: db}
}

func (r *GormAdminRepo) SetRole(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", userID).Error; err != nil {
			return err
		}
		return tx.Model(&u).Update("role", role).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userpkg.ErrUserNotFound
		}
		return nil, err
	}
	u.Role = role
	return &u, nil
}

func (r *GormAdminRepo) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("role = ?", entity.RoleAdmin).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
