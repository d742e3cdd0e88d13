package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	authpkg "github.com/mikios34/storefront-backend/auth"
	"github.com/mikios34/storefront-backend/entity"
	"github.com/mikios34/storefront-backend/middleware"
	orderpkg "github.com/mikios34/storefront-backend/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	orders     []entity.Order
	lastLimit  int
	lastOffset int
}

func (f *fakeOrderService) PlaceOrder(context.Context, orderpkg.PlaceOrderRequest) (*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderService) ListOrdersForUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]entity.Order, int64, error) {
	f.lastLimit, f.lastOffset = limit, offset
	var out []entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderService) Cancel(_ context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == orderID && f.orders[i].UserID == userID {
			if f.orders[i].Status != entity.OrderPlaced {
				return nil, orderpkg.ErrNotCancelable
			}
			f.orders[i].Status = entity.OrderCanceled
			return &f.orders[i], nil
		}
	}
	return nil, orderpkg.ErrOrderNotFound
}

func TestMyOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uid := uuid.New()
	svc := &fakeOrderService{orders: []entity.Order{
		{ID: uuid.New(), UserID: uid, Status: entity.OrderPlaced},
		{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderPlaced},
		{ID: uuid.New(), UserID: uid, Status: entity.OrderShipped},
	}}
	h := NewOrderHandler(svc)
	r := gin.New()
	me := r.Group("/api/v1/me", middleware.RequireAuth(testSecret))
	me.GET("/orders", h.MyOrders())
	me.POST("/orders/:id/cancel", h.Cancel())

	tok, err := authpkg.SignJWT(testSecret, &authpkg.Principal{UserID: uid.String(), Role: entity.RoleCustomer}, time.Minute, authpkg.TokenAccess)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/orders?limit=500&offset=-3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Orders []entity.Order `json:"orders"`
		Total  int64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Orders, 2)
	assert.EqualValues(t, 2, body.Total)
	assert.Equal(t, 20, svc.lastLimit)
	assert.Equal(t, 0, svc.lastOffset)

	cancel := func(id uuid.UUID) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/me/orders/"+id.String()+"/cancel", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, cancel(svc.orders[0].ID))
	assert.Equal(t, http.StatusConflict, cancel(svc.orders[2].ID))
	assert.Equal(t, http.StatusNotFound, cancel(svc.orders[1].ID))
}
