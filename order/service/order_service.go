package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	orderpkg "github.com/mikios34/storefront-backend/order"
)

type orderService struct {
	repo orderpkg.Repository
}

func NewOrderService(repo orderpkg.Repository) orderpkg.Service { return &orderService{repo: repo} }

func (s *orderService) PlaceOrder(ctx context.Context, req orderpkg.PlaceOrderRequest) (*entity.Order, error) {
	if req.Product == nil {
		return nil, errors.New("product is required")
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	o := &entity.Order{
		UserID:          req.UserID,
		ProductID:       req.Product.ID,
		Quantity:        qty,
		UnitPriceCents:  req.Product.PriceCents,
		ShippingAddress: req.ShippingAddress,
		Status:          entity.OrderPlaced,
	}
	return s.repo.CreateOrder(ctx, o)
}

func (s *orderService) ListOrdersForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Order, int64, error) {
	list, err := s.repo.ListOrdersForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountOrdersForUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Cancel sets status to canceled if the order belongs to the user and has not shipped.
func (s *orderService) Cancel(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	ord, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord.UserID != userID {
		return nil, orderpkg.ErrOrderNotFound
	}
	if ord.Status == entity.OrderCanceled {
		return ord, nil
	}
	if ord.Status != entity.OrderPlaced {
		return nil, fmt.Errorf("%w: order already %s", orderpkg.ErrNotCancelable, ord.Status)
	}
	if err := s.repo.UpdateOrderStatus(ctx, orderID, entity.OrderPlaced, entity.OrderCanceled); err != nil {
		if errors.Is(err, orderpkg.ErrStatusChanged) {
			return nil, fmt.Errorf("%w: %v", orderpkg.ErrNotCancelable, err)
		}
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, orderID)
}
