package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"commercehub/internal/model"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// Create inserts a new customer. Returns model.ErrEmailExists when the
	// email is already registered.
	Create(ctx context.Context, customer *model.Customer) error

	// GetByID retrieves a customer by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// GetByEmail retrieves a customer by email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products, optionally filtered by a substring match on
	// name/description and an exact category match.
	List(ctx context.Context, search, category string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Categories retrieves the distinct product categories.
	Categories(ctx context.Context) ([]string, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error
}

// CartRepository defines the interface for cart data access operations.
// All reads and writes are scoped to the owning customer.
type CartRepository interface {
	// ListByCustomer retrieves the customer's cart entries joined with their
	// products, oldest entry first. An empty slice is a valid result.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.CartLine, error)

	// GetItem retrieves one cart entry with its product. Returns (nil, nil)
	// when the entry does not exist or belongs to another customer.
	GetItem(ctx context.Context, customerID, itemID uuid.UUID) (*model.CartLine, error)

	// Upsert inserts the cart item, or atomically increments the quantity of
	// the existing (customer, product) row. Returns the stored row.
	Upsert(ctx context.Context, item *model.CartItem) (*model.CartItem, error)

	// UpdateQuantity sets the quantity of the customer's cart entry. Returns
	// (nil, nil) when the entry does not exist or belongs to another customer.
	UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int) (*model.CartItem, error)

	// Delete removes the customer's cart entry. Reports whether a row was deleted.
	Delete(ctx context.Context, customerID, itemID uuid.UUID) (bool, error)

	// Clear removes all cart entries for the customer.
	Clear(ctx context.Context, customerID uuid.UUID) error

	// ClearTx removes all cart entries for the customer within the provided
	// transaction, so checkout can clear the cart atomically with the order
	// writes.
	ClearTx(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order header within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// ListByCustomer retrieves the customer's orders, most recent first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)

	// ItemsByOrderIDs retrieves the items of the given orders.
	ItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error)

	// GetByID retrieves the customer's order by ID along with its items.
	// Returns (nil, nil, nil) when the order is absent or owned by another
	// customer, so existence is never leaked.
	GetByID(ctx context.Context, customerID, orderID uuid.UUID) (*model.Order, []model.OrderItem, error)
}
