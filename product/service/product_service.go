package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	filepkg "github.com/mikios34/storefront-backend/file"
	productpkg "github.com/mikios34/storefront-backend/product"
)

type productService struct {
	repo  productpkg.Repository
	files filepkg.Service
}

// NewProductService constructs a product.Service. Image URLs are resolved
// through files.
func NewProductService(repo productpkg.Repository, files filepkg.Service) productpkg.Service {
	return &productService{repo: repo, files: files}
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *productService) ShowProducts(ctx context.Context) ([]productpkg.View, error) {
	list, err := s.repo.ListPublishedProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]productpkg.View, 0, len(list))
	for i := range list {
		p := &list[i]
		images, err := s.ImageURLs(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, productpkg.View{
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price(),
			Images:      images,
		})
	}
	return out, nil
}

func (s *productService) ImageURLs(ctx context.Context, p *entity.Product) ([]string, error) {
	ids := make([]uuid.UUID, 0, len(p.Images))
	for _, img := range p.Images {
		ids = append(ids, img.FileID)
	}
	return s.files.ResolveURLs(ctx, ids)
}

func (s *productService) CreateProduct(ctx context.Context, req productpkg.CreateProductRequest) (*entity.Product, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", productpkg.ErrInvalidProduct)
	}
	if req.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", productpkg.ErrInvalidProduct)
	}
	p := &entity.Product{
		Title:       title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Published:   req.Published,
	}
	for i, fid := range req.ImageFileIDs {
		p.Images = append(p.Images, entity.ProductImage{FileID: fid, Delta: i})
	}
	return s.repo.StoreProduct(ctx, p)
}
