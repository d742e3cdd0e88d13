// Package dispatch moves placed orders through fulfilment.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	"github.com/mikios34/storefront-backend/order"
	"github.com/mikios34/storefront-backend/realtime"
	"go.uber.org/zap"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// Service defines fulfilment operations.
type Service interface {
	// Ship marks a placed order as shipped.
	Ship(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	// Deliver marks a shipped order as delivered.
	Deliver(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}

type service struct {
	orders   order.Repository
	notifier realtime.Notifier
	logger   *zap.Logger
}

func New(orders order.Repository, notifier realtime.Notifier, logger *zap.Logger) Service {
	return &service{orders: orders, notifier: notifier, logger: logger}
}

func (s *service) Ship(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.advance(ctx, orderID, entity.OrderPlaced, entity.OrderShipped)
}

func (s *service) Deliver(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.advance(ctx, orderID, entity.OrderShipped, entity.OrderDelivered)
}

func (s *service) advance(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error) {
	ord, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord.Status == to {
		return ord, nil
	}
	if ord.Status != from {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ord.Status, to)
	}
	if err := s.orders.UpdateOrderStatus(ctx, ord.ID, from, to); err != nil {
		if errors.Is(err, order.ErrStatusChanged) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		return nil, err
	}
	ord.Status = to
	s.logger.Info("order status changed",
		zap.String("order_id", ord.ID.String()),
		zap.String("status", string(to)),
	)
	if s.notifier != nil {
		payload := realtime.OrderStatusPayload{OrderID: ord.ID.String(), Status: string(to)}
		_ = s.notifier.Notify(ord.UserID.String(), realtime.EventOrderStatus, payload)
	}
	return ord, nil
}
