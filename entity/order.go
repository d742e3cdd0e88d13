package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus enumerates the lifecycle of an order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCanceled  OrderStatus = "canceled"
)

// Order records a purchase of a single product.
type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;index;not null"`
	ProductID       uuid.UUID      `json:"product_id" gorm:"type:uuid;index;not null"`
	Quantity        int            `json:"quantity" gorm:"not null;default:1"`
	UnitPriceCents  int64          `json:"unit_price_cents" gorm:"type:bigint;not null;default:0"`
	ShippingAddress string         `json:"shipping_address" gorm:"type:text;not null"`
	Status          OrderStatus    `json:"status" gorm:"type:text;index;not null;default:'placed'"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = OrderPlaced
	}
	return nil
}
