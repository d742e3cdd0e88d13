package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	"github.com/mikios34/storefront-backend/middleware"
	productpkg "github.com/mikios34/storefront-backend/product"
)

// ProductHandler serves the catalogue.
type ProductHandler struct {
	Pages
	service productpkg.Service
}

func NewProductHandler(svc productpkg.Service, p Pages) *ProductHandler {
	return &ProductHandler{Pages: p, service: svc}
}

// ShowProducts returns all published products with their image URLs.
// GET /api/products
func (h *ProductHandler) ShowProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		views, err := h.service.ShowProducts(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// ProductPage renders the canonical product page. Unpublished products are
// only visible to admins.
// GET /products/:id
func (h *ProductHandler) ProductPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		p, err := h.service.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, productpkg.ErrProductNotFound) {
				h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
				return
			}
			h.renderError(c, http.StatusInternalServerError, "The product could not be loaded.")
			return
		}
		if !p.Published {
			if ident, ok := middleware.CurrentUser(c); !ok || ident.Role != entity.RoleAdmin {
				h.renderError(c, http.StatusNotFound, "The requested product could not be found.")
				return
			}
		}
		images, err := h.service.ImageURLs(ctx, p)
		if err != nil {
			h.renderError(c, http.StatusInternalServerError, "The product could not be loaded.")
			return
		}
		h.render(c, http.StatusOK, "product.html", p.Title, gin.H{"Product": p, "Images": images})
	}
}

type createProductPayload struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	PriceCents   int64    `json:"price_cents"`
	Published    bool     `json:"published"`
	ImageFileIDs []string `json:"image_file_ids"`
}

// CreateProduct creates a product. Admin only.
// POST /api/v1/products
func (h *ProductHandler) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createProductPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ids := make([]uuid.UUID, 0, len(p.ImageFileIDs))
		for _, s := range p.ImageFileIDs {
			id, err := uuid.Parse(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image_file_ids", "detail": err.Error()})
				return
			}
			ids = append(ids, id)
		}
		req := productpkg.CreateProductRequest{
			Title:        p.Title,
			Description:  p.Description,
			PriceCents:   p.PriceCents,
			Published:    p.Published,
			ImageFileIDs: ids,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateProduct(ctx, req)
		if err != nil {
			if errors.Is(err, productpkg.ErrInvalidProduct) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
