package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	filepkg "github.com/mikios34/storefront-backend/file"
	"gorm.io/gorm"
)

// GormFileRepo implements file.Repository using GORM.
type GormFileRepo struct {
	db *gorm.DB
}

func NewGormFileRepo(db *gorm.DB) filepkg.Repository {
	return &GormFileRepo{db: db}
}

func (r *GormFileRepo) StoreFile(ctx context.Context, f *entity.File) (*entity.File, error) {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *GormFileRepo) GetFileByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	var f entity.File
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, filepkg.ErrFileNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *GormFileRepo) GetFilesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.File, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var files []entity.File
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
