package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	checkoutpkg "github.com/mikios34/storefront-backend/checkout"
	"github.com/mikios34/storefront-backend/entity"
	orderpkg "github.com/mikios34/storefront-backend/order"
	productpkg "github.com/mikios34/storefront-backend/product"
	"github.com/mikios34/storefront-backend/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAddresses struct {
	rows     map[uuid.UUID]string
	mergeErr error
}

func (f *fakeAddresses) GetAddress(_ context.Context, uid uuid.UUID) (string, error) {
	return f.rows[uid], nil
}

func (f *fakeAddresses) MergeAddress(_ context.Context, uid uuid.UUID, address string) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.rows[uid] = address
	return nil
}

type fakeProducts struct {
	byID map[uuid.UUID]*entity.Product
	urls map[uuid.UUID][]string
}

func (f *fakeProducts) GetProduct(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, productpkg.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProducts) ShowProducts(context.Context) ([]productpkg.View, error) { return nil, nil }

func (f *fakeProducts) ImageURLs(_ context.Context, p *entity.Product) ([]string, error) {
	return f.urls[p.ID], nil
}

func (f *fakeProducts) CreateProduct(context.Context, productpkg.CreateProductRequest) (*entity.Product, error) {
	return nil, errors.New("not implemented")
}

type fakeOrders struct {
	placed []orderpkg.PlaceOrderRequest
}

func (f *fakeOrders) PlaceOrder(_ context.Context, req orderpkg.PlaceOrderRequest) (*entity.Order, error) {
	f.placed = append(f.placed, req)
	return &entity.Order{ID: uuid.New(), UserID: req.UserID, ProductID: req.Product.ID, ShippingAddress: req.ShippingAddress}, nil
}

func (f *fakeOrders) ListOrdersForUser(context.Context, uuid.UUID, int, int) ([]entity.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrders) Cancel(context.Context, uuid.UUID, uuid.UUID) (*entity.Order, error) {
	return nil, nil
}

type recordedEvent struct {
	userID, event string
	payload       any
}

type fakeNotifier struct{ events []recordedEvent }

func (f *fakeNotifier) Notify(userID, event string, payload any) error {
	f.events = append(f.events, recordedEvent{userID, event, payload})
	return nil
}

type fixture struct {
	svc       checkoutpkg.Service
	addresses *fakeAddresses
	products  *fakeProducts
	orders    *fakeOrders
	notifier  *fakeNotifier
	product   *entity.Product
}

func newFixture() *fixture {
	p := &entity.Product{ID: uuid.New(), Title: "Walnut Desk", PriceCents: 45000, Published: true}
	f := &fixture{
		addresses: &fakeAddresses{rows: map[uuid.UUID]string{}},
		products:  &fakeProducts{byID: map[uuid.UUID]*entity.Product{p.ID: p}, urls: map[uuid.UUID][]string{}},
		orders:    &fakeOrders{},
		notifier:  &fakeNotifier{},
		product:   p,
	}
	f.svc = NewCheckoutService(f.addresses, f.products, f.orders, f.notifier, zap.NewNop())
	return f
}

func TestBeginPurchase_NoAddress(t *testing.T) {
	f := newFixture()
	p, exists, err := f.svc.BeginPurchase(context.Background(), uuid.New(), f.product.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, f.product.ID, p.ID)
	assert.Empty(t, f.orders.placed)
}

func TestBeginPurchase_BlankAddressCountsAsMissing(t *testing.T) {
	f := newFixture()
	uid := uuid.New()
	f.addresses.rows[uid] = "   "
	_, exists, err := f.svc.BeginPurchase(context.Background(), uid, f.product.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBeginPurchase_ExistingAddressPlacesNoOrder(t *testing.T) {
	f := newFixture()
	uid := uuid.New()
	f.addresses.rows[uid] = "1 Main St"

	for i := 0; i < 3; i++ {
		_, exists, err := f.svc.BeginPurchase(context.Background(), uid, f.product.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	}
	assert.Empty(t, f.orders.placed)
	assert.Empty(t, f.notifier.events)
}

func TestUnpublishedProductIsNotFound(t *testing.T) {
	f := newFixture()
	draft := &entity.Product{ID: uuid.New(), Title: "Secret draft", Published: false}
	f.products.byID[draft.ID] = draft
	uid := uuid.New()
	ctx := context.Background()

	_, _, err := f.svc.BeginPurchase(ctx, uid, draft.ID)
	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)

	_, err = f.svc.SubmitAddress(ctx, uid, draft.ID, "1 Main St")
	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
	assert.Empty(t, f.orders.placed)
	assert.Empty(t, f.addresses.rows)

	_, err = f.svc.ThankYou(ctx, draft.ID, "Eve")
	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
}

func TestBeginPurchase_UnknownProduct(t *testing.T) {
	f := newFixture()
	_, _, err := f.svc.BeginPurchase(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
}

func TestSubmitAddress(t *testing.T) {
	f := newFixture()
	uid := uuid.New()

	p, err := f.svc.SubmitAddress(context.Background(), uid, f.product.ID, "  22 Elm Rd ")
	require.NoError(t, err)
	assert.Equal(t, "Walnut Desk", p.Title)
	assert.Equal(t, "22 Elm Rd", f.addresses.rows[uid])
	require.Len(t, f.orders.placed, 1)
	assert.Equal(t, "22 Elm Rd", f.orders.placed[0].ShippingAddress)
	assert.Equal(t, 1, f.orders.placed[0].Quantity)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, uid.String(), f.notifier.events[0].userID)
	assert.Equal(t, realtime.EventOrderPlaced, f.notifier.events[0].event)
}

func TestSubmitAddress_Required(t *testing.T) {
	f := newFixture()
	_, err := f.svc.SubmitAddress(context.Background(), uuid.New(), f.product.ID, " \t")
	assert.ErrorIs(t, err, checkoutpkg.ErrAddressRequired)
	assert.Empty(t, f.orders.placed)
}

func TestSubmitAddress_UnknownProductBeforeAddress(t *testing.T) {
	f := newFixture()
	_, err := f.svc.SubmitAddress(context.Background(), uuid.New(), uuid.New(), "  ")
	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
}

func TestSubmitAddress_MergeFailure(t *testing.T) {
	f := newFixture()
	f.addresses.mergeErr = errors.New("db down")
	_, err := f.svc.SubmitAddress(context.Background(), uuid.New(), f.product.ID, "1 Main St")
	require.Error(t, err)
	assert.Empty(t, f.orders.placed)
}

func TestThankYou_WithImages(t *testing.T) {
	f := newFixture()
	f.products.urls[f.product.ID] = []string{"https://shop/a.jpg", "https://shop/b.jpg"}

	page, err := f.svc.ThankYou(context.Background(), f.product.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, []checkoutpkg.Item{
		{Text: "Thank you Username: alice for purchasing: Walnut Desk"},
		{Text: "Quantity: 1"},
		{Text: "Product image:", ImageURL: "https://shop/a.jpg"},
		{Text: "Product image:", ImageURL: "https://shop/b.jpg"},
	}, page.Items)
}

func TestThankYou_NoImages(t *testing.T) {
	f := newFixture()
	page, err := f.svc.ThankYou(context.Background(), f.product.ID, "Anonymous")
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "No images available.", page.Items[2].Text)
}

func TestThankYou_UnknownProduct(t *testing.T) {
	f := newFixture()
	_, err := f.svc.ThankYou(context.Background(), uuid.New(), "alice")
	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
}

func TestCanonicalURL(t *testing.T) {
	id := uuid.MustParse("7b1d2f1e-3c4a-4b5c-9d6e-7f8091a2b3c4")
	assert.Equal(t, "/products/7b1d2f1e-3c4a-4b5c-9d6e-7f8091a2b3c4", checkoutpkg.CanonicalURL(id))
}
