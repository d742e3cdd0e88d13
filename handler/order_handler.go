package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/middleware"
	orderpkg "github.com/mikios34/storefront-backend/order"
)

type OrderHandler struct {
	service orderpkg.Service
}

func NewOrderHandler(svc orderpkg.Service) *OrderHandler {
	return &OrderHandler{service: svc}
}

// MyOrders lists the caller's orders, newest first.
// GET /api/v1/me/orders?limit=&offset=
func (h *OrderHandler) MyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user_id missing in context"})
			return
		}
		limit := queryInt(c, "limit", 20)
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		offset := queryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, total, err := h.service.ListOrdersForUser(ctx, ident.UserID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list, "total": total, "limit": limit, "offset": offset})
	}
}

// Cancel cancels one of the caller's placed orders.
// POST /api/v1/me/orders/:id/cancel
func (h *OrderHandler) Cancel() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user_id missing in context"})
			return
		}
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.Cancel(ctx, orderID, ident.UserID)
		switch {
		case errors.Is(err, orderpkg.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, orderpkg.ErrNotCancelable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order", "detail": err.Error()})
		default:
			c.JSON(http.StatusOK, o)
		}
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
