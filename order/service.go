package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

type PlaceOrderRequest struct {
	UserID          uuid.UUID
	Product         *entity.Product
	Quantity        int
	ShippingAddress string
}

type Service interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*entity.Order, error)
	ListOrdersForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Order, int64, error)
	Cancel(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error)
}
