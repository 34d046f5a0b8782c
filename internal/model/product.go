package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalogue product with two-tier pricing.
// InStock is independently settable and intentionally not derived from
// StockQuantity; the two may disagree.
type Product struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice" db:"wholesale_price"`
	RetailPrice    decimal.Decimal `json:"retailPrice" db:"retail_price"`
	ImageURL       string          `json:"imageUrl" db:"image_url"`
	Category       string          `json:"category" db:"category"`
	InStock        bool            `json:"inStock" db:"in_stock"`
	StockQuantity  int             `json:"stockQuantity" db:"stock_quantity"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// CreateProductRequest represents the payload for creating a product.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	RetailPrice    decimal.Decimal `json:"retailPrice"`
	ImageURL       string          `json:"imageUrl"`
	Category       string          `json:"category"`
	InStock        bool            `json:"inStock"`
	StockQuantity  int             `json:"stockQuantity"`
}
