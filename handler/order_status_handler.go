package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/dispatch"
	"github.com/mikios34/storefront-backend/entity"
	orderpkg "github.com/mikios34/storefront-backend/order"
)

type OrderStatusHandler struct{ svc dispatch.Service }

func NewOrderStatusHandler(svc dispatch.Service) *OrderStatusHandler {
	return &OrderStatusHandler{svc: svc}
}

func (h *OrderStatusHandler) update(step func(ctx context.Context, id uuid.UUID) (*entity.Order, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := step(ctx, oid)
		switch {
		case errors.Is(err, orderpkg.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, dispatch.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order", "detail": err.Error()})
		default:
			c.JSON(http.StatusOK, updated)
		}
	}
}

// POST /api/v1/orders/:id/ship
func (h *OrderStatusHandler) Ship() gin.HandlerFunc { return h.update(h.svc.Ship) }

// POST /api/v1/orders/:id/deliver
func (h *OrderStatusHandler) Deliver() gin.HandlerFunc { return h.update(h.svc.Deliver) }
