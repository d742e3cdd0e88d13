package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	productpkg "github.com/mikios34/storefront-backend/product"
	"gorm.io/gorm"
)

// GormProductRepo implements product.Repository using GORM.
type GormProductRepo struct {
	db *gorm.DB
}

func NewGormProductRepo(db *gorm.DB) productpkg.Repository {
	return &GormProductRepo{db: db}
}

func (r *GormProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("delta ASC") }).
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productpkg.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) ListPublishedProducts(ctx context.Context) ([]entity.Product, error) {
	var list []entity.Product
	if err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("delta ASC") }).
		Where("published = ?", true).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// StoreProduct creates the product together with its image references.
func (r *GormProductRepo) StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
