package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/checkout"
	"github.com/mikios34/storefront-backend/messenger"
	"github.com/mikios34/storefront-backend/metrics"
	"github.com/mikios34/storefront-backend/middleware"
	productpkg "github.com/mikios34/storefront-backend/product"
	"github.com/mikios34/storefront-backend/realtime"
)

// CartHandler serves the add-to-cart form. No cart state is kept; the
// submission only acknowledges the click.
type CartHandler struct {
	Pages
	products productpkg.Service
	notifier realtime.Notifier
}

func NewCartHandler(products productpkg.Service, notifier realtime.Notifier, p Pages) *CartHandler {
	return &CartHandler{Pages: p, products: products, notifier: notifier}
}

// CartForm renders the single-button form.
// GET /products/:id/cart
func (h *CartHandler) CartForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := h.loadProduct(c)
		if !ok {
			return
		}
		h.render(c, http.StatusOK, "cart_form.html", p.Title, gin.H{"Product": p})
	}
}

// AddToCart acknowledges the submission and sends the shopper back to the
// product page.
// POST /products/:id/cart
func (h *CartHandler) AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := h.loadProduct(c)
		if !ok {
			return
		}
		metrics.RecordCartAdd()
		if ident, ok := middleware.CurrentUser(c); ok && h.notifier != nil {
			_ = h.notifier.Notify(ident.UserID.String(), realtime.EventCartAdded, realtime.CartAddedPayload{ProductID: p.ID.String()})
		}
		h.addFlash(c, messenger.Status("Your product has been added to the cart."))
		c.Redirect(http.StatusSeeOther, checkout.CanonicalURL(p.ID))
	}
}

func (h *CartHandler) loadProduct(c *gin.Context) (*productView, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
		return nil, false
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	p, err := h.products.GetProduct(ctx, id)
	if err == nil && !p.Published {
		err = productpkg.ErrProductNotFound
	}
	if err != nil {
		if errors.Is(err, productpkg.ErrProductNotFound) {
			h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
			return nil, false
		}
		h.renderError(c, http.StatusInternalServerError, "The product could not be loaded.")
		return nil, false
	}
	return &productView{ID: p.ID, Title: p.Title}, true
}

// productView is the slice of a product the cart pages need.
type productView struct {
	ID    uuid.UUID
	Title string
}
