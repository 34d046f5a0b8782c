package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state. Checkout only ever produces
// pending; the remaining transitions are administrative.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents an immutable order header created from a cart at checkout.
// ClientType is snapshotted from the customer at creation and never re-derived.
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	CustomerID      uuid.UUID       `json:"customerId" db:"customer_id"`
	TotalAmount     decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Status          OrderStatus     `json:"status" db:"status"`
	ClientType      ClientType      `json:"clientType" db:"client_type"`
	OrderDate       time.Time       `json:"orderDate" db:"order_date"`
	ShippedDate     *time.Time      `json:"shippedDate,omitempty" db:"shipped_date"`
	DeliveredDate   *time.Time      `json:"deliveredDate,omitempty" db:"delivered_date"`
	ShippingAddress string          `json:"shippingAddress" db:"shipping_address"`
	Notes           string          `json:"notes" db:"notes"`
}

// OrderItem represents one line of an order. UnitPrice and TotalPrice are the
// prices at the time of order, never looked up again.
type OrderItem struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	OrderID    uuid.UUID       `json:"-" db:"order_id"`
	ProductID  uuid.UUID       `json:"productId" db:"product_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice decimal.Decimal `json:"totalPrice" db:"total_price"`
}

// CheckoutRequest represents the payload for placing an order from the cart.
type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	Notes           string `json:"notes"`
}

// OrderItemResponse is an order line with denormalised product details.
type OrderItemResponse struct {
	OrderItem
	Product Product `json:"product"`
}

// OrderResponse is a fully populated order returned to the caller.
type OrderResponse struct {
	Order
	Items []OrderItemResponse `json:"items"`
}
