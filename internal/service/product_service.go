package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"commercehub/internal/model"
	"commercehub/internal/repository"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products, optionally filtered by search text and category.
// The category "all" means no category filter.
func (s *productService) List(ctx context.Context, search, category string) ([]model.Product, error) {
	if category == "all" {
		category = ""
	}

	products, err := s.productRepo.List(ctx, search, category)
	if err != nil {
		s.logger.Error().Err(err).
			Str("search", search).
			Str("category", category).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Categories retrieves the distinct product categories.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

// Create adds a new product to the catalogue.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if err := validateCreateProductRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &model.Product{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		WholesalePrice: req.WholesalePrice,
		RetailPrice:    req.RetailPrice,
		ImageURL:       req.ImageURL,
		Category:       strings.TrimSpace(req.Category),
		InStock:        req.InStock,
		StockQuantity:  req.StockQuantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("category", product.Category).
		Msg("product created")

	return product, nil
}

// validateCreateProductRequest validates the product creation request.
func validateCreateProductRequest(req *model.CreateProductRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "request is required")
	}

	if strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "name is required")
	}

	if strings.TrimSpace(req.Category) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "category is required")
	}

	if req.WholesalePrice.IsNegative() || req.RetailPrice.IsNegative() {
		return model.NewDomainError(model.ErrCodeValidation, "prices must not be negative")
	}

	if req.StockQuantity < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "stock quantity must not be negative")
	}

	return nil
}
