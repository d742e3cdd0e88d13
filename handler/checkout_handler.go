package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/checkout"
	"github.com/mikios34/storefront-backend/messenger"
	"github.com/mikios34/storefront-backend/middleware"
	productpkg "github.com/mikios34/storefront-backend/product"
)

// anonymousName is shown on the thank-you page to visitors without a session.
const anonymousName = "Anonymous"

// CheckoutHandler serves the buy-now pages.
type CheckoutHandler struct {
	Pages
	service checkout.Service
}

func NewCheckoutHandler(svc checkout.Service, p Pages) *CheckoutHandler {
	return &CheckoutHandler{Pages: p, service: svc}
}

// BuyForm either places the order straight away for users with an address
// on file or renders the address form.
// GET /products/:id/buy
func (h *CheckoutHandler) BuyForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := middleware.CurrentUser(c)
		if !ok {
			h.renderError(c, http.StatusUnauthorized, "You must log in to buy products.")
			return
		}
		productID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		p, hasAddress, err := h.service.BeginPurchase(ctx, ident.UserID, productID)
		if err != nil {
			h.checkoutError(c, err)
			return
		}
		if hasAddress {
			h.addFlash(c, messenger.Status("Address already exists. Your order has been placed successfully."))
			c.Redirect(http.StatusSeeOther, checkout.CanonicalURL(p.ID))
			return
		}
		h.render(c, http.StatusOK, "address_form.html", "Shipping address", gin.H{"Product": p})
	}
}

// SubmitBuy stores the shipping address and places the order.
// POST /products/:id/buy
func (h *CheckoutHandler) SubmitBuy() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := middleware.CurrentUser(c)
		if !ok {
			h.renderError(c, http.StatusUnauthorized, "You must log in to buy products.")
			return
		}
		productID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
			return
		}
		address := c.PostForm("address")
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		p, err := h.service.SubmitAddress(ctx, ident.UserID, productID, address)
		if errors.Is(err, checkout.ErrAddressRequired) {
			h.addFlash(c, messenger.Message{Type: messenger.TypeError, Text: "Address field is required."})
			h.render(c, http.StatusBadRequest, "address_form.html", "Shipping address", gin.H{
				"Product": gin.H{"ID": productID},
				"Address": strings.TrimSpace(address),
			})
			return
		}
		if err != nil {
			h.checkoutError(c, err)
			return
		}
		h.addFlash(c, messenger.Status("Order placed for "+p.Title+" successfully!"))
		c.Redirect(http.StatusSeeOther, checkout.CanonicalURL(p.ID))
	}
}

// ThankYou renders the purchase confirmation. JSON clients get the items
// as data.
// GET /products/:id/thank-you
func (h *CheckoutHandler) ThankYou() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
			return
		}
		name := anonymousName
		if ident, ok := middleware.CurrentUser(c); ok && ident.Name != "" {
			name = ident.Name
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		page, err := h.service.ThankYou(ctx, productID, name)
		if err != nil {
			h.checkoutError(c, err)
			return
		}
		if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
			c.JSON(http.StatusOK, page)
			return
		}
		h.render(c, http.StatusOK, "thank_you.html", "Thank you", gin.H{"Page": page})
	}
}

func (h *CheckoutHandler) checkoutError(c *gin.Context, err error) {
	if errors.Is(err, productpkg.ErrProductNotFound) {
		h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
		return
	}
	h.renderError(c, http.StatusInternalServerError, "Your order could not be processed.")
}
