package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// WithCustomerID returns a context carrying the authenticated customer ID.
func WithCustomerID(ctx context.Context, customerID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, customerID)
}

// CustomerID extracts the authenticated customer ID set by the auth
// middleware. The second return is false for unauthenticated requests.
func CustomerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}
