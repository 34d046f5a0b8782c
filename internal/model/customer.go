package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientType classifies a customer for pricing purposes.
type ClientType string

const (
	ClientTypeWholesaler ClientType = "wholesaler"
	ClientTypeRetailer   ClientType = "retailer"
)

// Valid reports whether the client type is one of the known values.
func (t ClientType) Valid() bool {
	return t == ClientTypeWholesaler || t == ClientTypeRetailer
}

// Customer represents a registered storefront customer.
type Customer struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	ClientType   ClientType `json:"clientType" db:"client_type"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// RegisterRequest represents the payload for customer registration.
type RegisterRequest struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	ClientType ClientType `json:"clientType"`
}

// LoginRequest represents the payload for customer login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login with a signed token.
type AuthResponse struct {
	Token    string   `json:"token"`
	Customer Customer `json:"customer"`
}
