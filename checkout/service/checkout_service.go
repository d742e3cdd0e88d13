package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	checkoutpkg "github.com/mikios34/storefront-backend/checkout"
	"github.com/mikios34/storefront-backend/entity"
	"github.com/mikios34/storefront-backend/metrics"
	orderpkg "github.com/mikios34/storefront-backend/order"
	productpkg "github.com/mikios34/storefront-backend/product"
	"github.com/mikios34/storefront-backend/realtime"
	"go.uber.org/zap"
)

type checkoutService struct {
	addresses checkoutpkg.AddressRepository
	products  productpkg.Service
	orders    orderpkg.Service
	notifier  realtime.Notifier
	logger    *zap.Logger
}

// NewCheckoutService wires the buy flow. notifier may be nil.
func NewCheckoutService(
	addresses checkoutpkg.AddressRepository,
	products productpkg.Service,
	orders orderpkg.Service,
	notifier realtime.Notifier,
	logger *zap.Logger,
) checkoutpkg.Service {
	return &checkoutService{
		addresses: addresses,
		products:  products,
		orders:    orders,
		notifier:  notifier,
		logger:    logger,
	}
}

// publishedProduct hides drafts from shoppers: an unpublished product is
// reported as not found.
func (s *checkoutService) publishedProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, productpkg.ErrProductNotFound
	}
	return p, nil
}

func (s *checkoutService) BeginPurchase(ctx context.Context, uid, productID uuid.UUID) (*entity.Product, bool, error) {
	p, err := s.publishedProduct(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	addr, err := s.addresses.GetAddress(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	return p, strings.TrimSpace(addr) != "", nil
}

func (s *checkoutService) SubmitAddress(ctx context.Context, uid, productID uuid.UUID, address string) (*entity.Product, error) {
	p, err := s.publishedProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, checkoutpkg.ErrAddressRequired
	}
	if err := s.addresses.MergeAddress(ctx, uid, address); err != nil {
		return nil, err
	}
	if err := s.placeOrder(ctx, uid, p, address); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *checkoutService) ThankYou(ctx context.Context, productID uuid.UUID, displayName string) (*checkoutpkg.ThankYouPage, error) {
	p, err := s.publishedProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	urls, err := s.products.ImageURLs(ctx, p)
	if err != nil {
		return nil, err
	}

	items := []checkoutpkg.Item{
		{Text: "Thank you Username: " + displayName + " for purchasing: " + p.Title},
		{Text: "Quantity: 1"},
	}
	if len(urls) == 0 {
		items = append(items, checkoutpkg.Item{Text: "No images available."})
	}
	for _, u := range urls {
		items = append(items, checkoutpkg.Item{Text: "Product image:", ImageURL: u})
	}
	return &checkoutpkg.ThankYouPage{ProductID: p.ID, Items: items}, nil
}

func (s *checkoutService) placeOrder(ctx context.Context, uid uuid.UUID, p *entity.Product, address string) error {
	o, err := s.orders.PlaceOrder(ctx, orderpkg.PlaceOrderRequest{
		UserID:          uid,
		Product:         p,
		Quantity:        1,
		ShippingAddress: address,
	})
	if err != nil {
		return err
	}
	metrics.RecordOrderPlaced()
	s.logger.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("user_id", uid.String()),
		zap.String("product_id", p.ID.String()))

	if s.notifier != nil {
		payload := realtime.OrderPlacedPayload{OrderID: o.ID.String(), ProductID: p.ID.String(), Title: p.Title}
		_ = s.notifier.Notify(uid.String(), realtime.EventOrderPlaced, payload)
	}
	return nil
}
