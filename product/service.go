package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

// View is the public JSON shape of a product.
type View struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
}

// CreateProductRequest carries the data required to create a product.
type CreateProductRequest struct {
	Title        string
	Description  string
	PriceCents   int64
	Published    bool
	ImageFileIDs []uuid.UUID
}

// Service exposes product catalogue operations.
type Service interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// ShowProducts lists every published product with resolved image URLs.
	ShowProducts(ctx context.Context) ([]View, error)
	// ImageURLs resolves the product's images, skipping files that no
	// longer exist.
	ImageURLs(ctx context.Context, p *entity.Product) ([]string, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*entity.Product, error)
}
