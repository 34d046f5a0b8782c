package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"commercehub/internal/model"
	"commercehub/internal/pricing"
	"commercehub/internal/repository"
)

// cartService implements CartService.
type cartService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the cart with totals priced for the customer's client type.
func (s *cartService) Get(ctx context.Context, customerID uuid.UUID) (*model.CartSummary, error) {
	lines, err := s.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to list cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	clientType := model.ClientTypeRetailer
	if customer != nil {
		clientType = customer.ClientType
	}

	summary := &model.CartSummary{
		Items:       make([]model.CartItemResponse, 0, len(lines)),
		TotalAmount: decimal.Zero,
	}

	for _, line := range lines {
		summary.Items = append(summary.Items, model.CartItemResponse{
			ID:        line.Item.ID,
			ProductID: line.Item.ProductID,
			Quantity:  line.Item.Quantity,
			CreatedAt: line.Item.CreatedAt,
			Product:   line.Product,
		})
		summary.TotalAmount = summary.TotalAmount.Add(
			pricing.LineTotal(clientType, line.Product, line.Item.Quantity))
		summary.TotalItems += line.Item.Quantity
	}

	return summary, nil
}

// AddItem adds a product to the cart, incrementing the quantity if the
// product is already present. The stock check is advisory: it gates cart
// mutation but is not re-verified at checkout.
func (s *cartService) AddItem(ctx context.Context, customerID uuid.UUID, req *model.AddCartItemRequest) (*model.CartItemResponse, error) {
	if req == nil || req.Quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	if req.ProductID == uuid.Nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "product ID is required")
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if !product.InStock || product.StockQuantity < req.Quantity {
		s.logger.Debug().
			Str("product_id", product.ID.String()).
			Int("requested", req.Quantity).
			Int("available", product.StockQuantity).
			Msg("insufficient stock for cart add")
		return nil, model.ErrInsufficientStock
	}

	item := &model.CartItem{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	}

	stored, err := s.cartRepo.Upsert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customerID.String()).
		Str("product_id", product.ID.String()).
		Int("quantity", stored.Quantity).
		Msg("cart item added")

	return &model.CartItemResponse{
		ID:        stored.ID,
		ProductID: stored.ProductID,
		Quantity:  stored.Quantity,
		CreatedAt: stored.CreatedAt,
		Product:   *product,
	}, nil
}

// UpdateItem sets the quantity of an existing cart entry. The quantity is
// left unchanged when the requested amount exceeds available stock.
func (s *cartService) UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, req *model.UpdateCartItemRequest) (*model.CartItemResponse, error) {
	if req == nil || req.Quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	line, err := s.cartRepo.GetItem(ctx, customerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	if line == nil {
		return nil, model.ErrCartItemNotFound
	}

	if line.Product.StockQuantity < req.Quantity {
		s.logger.Debug().
			Str("cart_item_id", itemID.String()).
			Int("requested", req.Quantity).
			Int("available", line.Product.StockQuantity).
			Msg("insufficient stock for cart update")
		return nil, model.ErrInsufficientStock
	}

	stored, err := s.cartRepo.UpdateQuantity(ctx, customerID, itemID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	if stored == nil {
		return nil, model.ErrCartItemNotFound
	}

	return &model.CartItemResponse{
		ID:        stored.ID,
		ProductID: stored.ProductID,
		Quantity:  stored.Quantity,
		CreatedAt: stored.CreatedAt,
		Product:   line.Product,
	}, nil
}

// RemoveItem removes a cart entry.
func (s *cartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	deleted, err := s.cartRepo.Delete(ctx, customerID, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if !deleted {
		return model.ErrCartItemNotFound
	}

	s.logger.Debug().
		Str("customer_id", customerID.String()).
		Str("cart_item_id", itemID.String()).
		Msg("cart item removed")

	return nil
}

// Clear removes all cart entries for the customer.
func (s *cartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, customerID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Debug().
		Str("customer_id", customerID.String()).
		Msg("cart cleared")

	return nil
}
