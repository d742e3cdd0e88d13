package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

var ErrAddressRequired = errors.New("address is required")

// Item is one line of the thank-you page. Lines with an ImageURL render the
// image after Text.
type Item struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
}

// ThankYouPage is the purchase confirmation shown after buying a product.
type ThankYouPage struct {
	ProductID uuid.UUID `json:"product_id"`
	Items     []Item    `json:"items"`
}

// Service runs the buy-now flow.
type Service interface {
	// BeginPurchase loads the product and reports whether the user already
	// has an address on file. It never places an order.
	BeginPurchase(ctx context.Context, uid, productID uuid.UUID) (*entity.Product, bool, error)
	// SubmitAddress stores the address for the user and places the order.
	SubmitAddress(ctx context.Context, uid, productID uuid.UUID, address string) (*entity.Product, error)
	ThankYou(ctx context.Context, productID uuid.UUID, displayName string) (*ThankYouPage, error)
}

// CanonicalURL is the path of the product page buyers are sent back to.
func CanonicalURL(productID uuid.UUID) string {
	return "/products/" + productID.String()
}
