package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNotCancelable = errors.New("order cannot be canceled")
	// ErrStatusChanged means the order left the expected status before the
	// update ran.
	ErrStatusChanged = errors.New("order status changed concurrently")
)

// Repository defines DB operations for orders.
type Repository interface {
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// UpdateOrderStatus moves the order from one status to another and
	// fails with ErrStatusChanged when it is no longer in from.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
	// ListOrdersForUser returns the user's orders, newest first. A limit of 0
	// means no limit.
	ListOrdersForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Order, error)
	CountOrdersForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
