package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	checkoutpkg "github.com/mikios34/storefront-backend/checkout"
	"github.com/mikios34/storefront-backend/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAddressRepo implements checkout.AddressRepository on the
// customer_address table.
type GormAddressRepo struct {
	db *gorm.DB
}

func NewGormAddressRepo(db *gorm.DB) checkoutpkg.AddressRepository {
	return &GormAddressRepo{db: db}
}

func (r *GormAddressRepo) GetAddress(ctx context.Context, uid uuid.UUID) (string, error) {
	var a entity.CustomerAddress
	if err := r.db.WithContext(ctx).Select("address").First(&a, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return a.Address, nil
}

func (r *GormAddressRepo) MergeAddress(ctx context.Context, uid uuid.UUID, address string) error {
	row := &entity.CustomerAddress{UID: uid, Address: address}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"address", "updated_at"}),
	}).Create(row).Error
}
