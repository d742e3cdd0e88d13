package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Repository specifies product related database operations.
type Repository interface {
	// GetProductByID loads a product with its image references ordered by delta.
	GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// ListPublishedProducts returns published products, oldest first.
	ListPublishedProducts(ctx context.Context) ([]entity.Product, error)
	StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error)
}
