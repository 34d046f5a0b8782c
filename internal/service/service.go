package service

import (
	"context"

	"github.com/google/uuid"

	"commercehub/internal/model"
)

// AuthService defines operations for customer registration and login.
type AuthService interface {
	// Register creates a new customer account and returns a signed token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login authenticates a customer and returns a signed token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// List retrieves products, optionally filtered by search text and category.
	List(ctx context.Context, search, category string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Categories retrieves the distinct product categories.
	Categories(ctx context.Context) ([]string, error)

	// Create adds a new product to the catalogue.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
}

// CartService defines operations on the authenticated customer's cart.
type CartService interface {
	// Get retrieves the cart with totals priced for the customer's client type.
	Get(ctx context.Context, customerID uuid.UUID) (*model.CartSummary, error)

	// AddItem adds a product to the cart, incrementing the quantity if the
	// product is already present.
	AddItem(ctx context.Context, customerID uuid.UUID, req *model.AddCartItemRequest) (*model.CartItemResponse, error)

	// UpdateItem sets the quantity of an existing cart entry.
	UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, req *model.UpdateCartItemRequest) (*model.CartItemResponse, error)

	// RemoveItem removes a cart entry.
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error

	// Clear removes all cart entries for the customer.
	Clear(ctx context.Context, customerID uuid.UUID) error
}

// OrderService defines operations for placing and reading orders.
type OrderService interface {
	// PlaceOrder converts the customer's cart into an immutable order,
	// freezing prices and clearing the cart atomically.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, req *model.CheckoutRequest) (*model.OrderResponse, error)

	// ListByCustomer retrieves the customer's orders, most recent first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.OrderResponse, error)

	// GetByID retrieves one of the customer's orders by ID.
	GetByID(ctx context.Context, customerID, orderID uuid.UUID) (*model.OrderResponse, error)
}
