package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem represents one product selection in a customer's cart.
// At most one row exists per (customer, product) pair; adding the same
// product again increments the quantity.
type CartItem struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"-" db:"customer_id"`
	ProductID  uuid.UUID `json:"productId" db:"product_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// CartLine pairs a cart item with its product row as read from the store.
type CartLine struct {
	Item    CartItem
	Product Product
}

// CartItemResponse is a cart item with denormalised product details.
type CartItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	Product   Product   `json:"product"`
}

// CartSummary represents the full cart with totals priced for the caller.
type CartSummary struct {
	Items       []CartItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	TotalItems  int                `json:"totalItems"`
}

// AddCartItemRequest represents the payload for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemRequest represents the payload for setting a cart item quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
