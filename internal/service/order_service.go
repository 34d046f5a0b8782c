package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"commercehub/internal/model"
	"commercehub/internal/pricing"
	"commercehub/internal/repository"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder converts the customer's cart into an immutable order. Unit
// prices are selected by the customer's client type and frozen on the order
// lines; the header insert, line inserts and cart clear commit or roll back
// as one transaction.
//
// Stock is NOT re-checked here. It is only validated when the cart is
// mutated, so quantities can exceed stock by checkout time under concurrent
// demand. That matches the system this replaces; tightening it is tracked as
// a separate design change.
func (s *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, req *model.CheckoutRequest) (*model.OrderResponse, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	if customer == nil {
		// An authenticated caller without a customer row means corrupted
		// data, not a user mistake.
		s.logger.Error().Str("customer_id", customerID.String()).Msg("authenticated customer missing")
		return nil, model.ErrCustomerNotFound
	}

	lines, err := s.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	order := &model.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Status:          model.OrderStatusPending,
		ClientType:      customer.ClientType,
		OrderDate:       time.Now(),
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}

	totalAmount := decimal.Zero
	orderItems := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		unitPrice := pricing.UnitPrice(customer.ClientType, line.Product)
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Item.Quantity)))
		totalAmount = totalAmount.Add(lineTotal)

		orderItems[i] = model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  line.Item.ProductID,
			Quantity:   line.Item.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: lineTotal,
		}
	}
	order.TotalAmount = totalAmount

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.cartRepo.ClearTx(ctx, tx, customerID); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer_id", customerID.String()).
		Str("client_type", string(order.ClientType)).
		Str("total_amount", order.TotalAmount.StringFixed(2)).
		Int("item_count", len(orderItems)).
		Msg("order placed")

	// Denormalise product details from the cart lines already in hand rather
	// than re-reading the catalogue.
	response := &model.OrderResponse{
		Order: *order,
		Items: make([]model.OrderItemResponse, len(orderItems)),
	}
	for i, item := range orderItems {
		response.Items[i] = model.OrderItemResponse{
			OrderItem: item,
			Product:   lines[i].Product,
		}
	}

	return response, nil
}

// ListByCustomer retrieves the customer's orders, most recent first, with
// items and denormalised product details.
func (s *orderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.OrderResponse, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		return []model.OrderResponse{}, nil
	}

	orderIDs := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
	}

	items, err := s.orderRepo.ItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	products, err := s.productsForItems(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]model.OrderItemResponse, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], model.OrderItemResponse{
			OrderItem: item,
			Product:   products[item.ProductID],
		})
	}

	responses := make([]model.OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = model.OrderResponse{
			Order: o,
			Items: itemsByOrder[o.ID],
		}
	}

	return responses, nil
}

// GetByID retrieves one of the customer's orders by ID. Orders owned by
// other customers are reported as not found.
func (s *orderService) GetByID(ctx context.Context, customerID, orderID uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, customerID, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", orderID.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	products, err := s.productsForItems(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	response := &model.OrderResponse{
		Order: *order,
		Items: make([]model.OrderItemResponse, len(items)),
	}
	for i, item := range items {
		response.Items[i] = model.OrderItemResponse{
			OrderItem: item,
			Product:   products[item.ProductID],
		}
	}

	return response, nil
}

// productsForItems loads the product rows referenced by the order items,
// keyed by product ID.
func (s *orderService) productsForItems(ctx context.Context, items []model.OrderItem) (map[uuid.UUID]model.Product, error) {
	seen := make(map[uuid.UUID]bool, len(items))
	var productIDs []uuid.UUID
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return byID, nil
}

// validateCheckoutRequest validates the checkout request.
func validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "request is required")
	}

	if strings.TrimSpace(req.ShippingAddress) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "shipping address is required")
	}

	if len(req.ShippingAddress) > 500 {
		return model.NewDomainError(model.ErrCodeValidation, "shipping address must be at most 500 characters")
	}

	if len(req.Notes) > 1000 {
		return model.NewDomainError(model.ErrCodeValidation, "notes must be at most 1000 characters")
	}

	return nil
}
