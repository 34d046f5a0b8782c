package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commercehub/internal/model"
)

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, customerID uuid.UUID) (*model.CartSummary, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartSummary), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, customerID uuid.UUID, req *model.AddCartItemRequest) (*model.CartItemResponse, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItemResponse), args.Error(1)
}

func (m *MockCartService) UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, req *model.UpdateCartItemRequest) (*model.CartItemResponse, error) {
	args := m.Called(ctx, customerID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItemResponse), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	args := m.Called(ctx, customerID, itemID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func TestCartHandlerGet(t *testing.T) {
	customerID := uuid.New()

	t.Run("returns the summary", func(t *testing.T) {
		summary := &model.CartSummary{
			Items:       []model.CartItemResponse{},
			TotalAmount: decimal.RequireFromString("49.00"),
			TotalItems:  3,
		}

		svc := new(MockCartService)
		svc.On("Get", mock.Anything, customerID).Return(summary, nil)

		h := NewCartHandler(svc, zerolog.Nop())

		req := authedRequest(http.MethodGet, "/api/cart", nil, customerID)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.CartSummary
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 3, got.TotalItems)
	})

	t.Run("missing customer in context", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestCartHandlerAddItem(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()

	t.Run("adds an item", func(t *testing.T) {
		svc := new(MockCartService)
		svc.On("AddItem", mock.Anything, customerID, mock.MatchedBy(func(req *model.AddCartItemRequest) bool {
			return req.ProductID == productID && req.Quantity == 2
		})).Return(&model.CartItemResponse{
			ID:        uuid.New(),
			ProductID: productID,
			Quantity:  2,
		}, nil)

		h := NewCartHandler(svc, zerolog.Nop())

		body, _ := json.Marshal(model.AddCartItemRequest{ProductID: productID, Quantity: 2})
		req := authedRequest(http.MethodPost, "/api/cart/items", body, customerID)
		rec := httptest.NewRecorder()

		h.AddItem(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		svc := new(MockCartService)
		svc.On("AddItem", mock.Anything, customerID, mock.AnythingOfType("*model.AddCartItemRequest")).
			Return(nil, model.ErrInsufficientStock)

		h := NewCartHandler(svc, zerolog.Nop())

		body, _ := json.Marshal(model.AddCartItemRequest{ProductID: productID, Quantity: 99})
		req := authedRequest(http.MethodPost, "/api/cart/items", body, customerID)
		rec := httptest.NewRecorder()

		h.AddItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp model.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
		assert.Equal(t, model.ErrCodeInsufficientStock, errResp.Error)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc := new(MockCartService)
		svc.On("AddItem", mock.Anything, customerID, mock.AnythingOfType("*model.AddCartItemRequest")).
			Return(nil, model.ErrProductNotFound)

		h := NewCartHandler(svc, zerolog.Nop())

		body, _ := json.Marshal(model.AddCartItemRequest{ProductID: productID, Quantity: 1})
		req := authedRequest(http.MethodPost, "/api/cart/items", body, customerID)
		rec := httptest.NewRecorder()

		h.AddItem(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc, zerolog.Nop())

		req := authedRequest(http.MethodPost, "/api/cart/items", []byte("{"), customerID)
		rec := httptest.NewRecorder()

		h.AddItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartHandlerUpdateItem(t *testing.T) {
	customerID := uuid.New()
	itemID := uuid.New()

	t.Run("updates quantity", func(t *testing.T) {
		svc := new(MockCartService)
		svc.On("UpdateItem", mock.Anything, customerID, itemID, mock.MatchedBy(func(req *model.UpdateCartItemRequest) bool {
			return req.Quantity == 4
		})).Return(&model.CartItemResponse{ID: itemID, Quantity: 4}, nil)

		h := NewCartHandler(svc, zerolog.Nop())

		body, _ := json.Marshal(model.UpdateCartItemRequest{Quantity: 4})
		req := authedRequest(http.MethodPut, "/api/cart/items/"+itemID.String(), body, customerID)
		rec := httptest.NewRecorder()

		h.UpdateItem(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc, zerolog.Nop())

		body, _ := json.Marshal(model.UpdateCartItemRequest{Quantity: 4})
		req := authedRequest(http.MethodPut, "/api/cart/items/bogus", body, customerID)
		rec := httptest.NewRecorder()

		h.UpdateItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("entry not owned", func(t *testing.T) {
		svc := new(MockCartService)
		svc.On("UpdateItem", mock.Anything, customerID, itemID, mock.AnythingOfType("*model.UpdateCartItemRequest")).
			Return(nil, model.ErrCartItemNotFound)

		h := NewCartHandler(svc, zerolog.Nop())

		body, _ := json.Marshal(model.UpdateCartItemRequest{Quantity: 4})
		req := authedRequest(http.MethodPut, "/api/cart/items/"+itemID.String(), body, customerID)
		rec := httptest.NewRecorder()

		h.UpdateItem(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartHandlerRemoveItem(t *testing.T) {
	customerID := uuid.New()
	itemID := uuid.New()

	t.Run("removes the entry", func(t *testing.T) {
		svc := new(MockCartService)
		svc.On("RemoveItem", mock.Anything, customerID, itemID).Return(nil)

		h := NewCartHandler(svc, zerolog.Nop())

		req := authedRequest(http.MethodDelete, "/api/cart/items/"+itemID.String(), nil, customerID)
		rec := httptest.NewRecorder()

		h.RemoveItem(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing entry", func(t *testing.T) {
		svc := new(MockCartService)
		svc.On("RemoveItem", mock.Anything, customerID, itemID).Return(model.ErrCartItemNotFound)

		h := NewCartHandler(svc, zerolog.Nop())

		req := authedRequest(http.MethodDelete, "/api/cart/items/"+itemID.String(), nil, customerID)
		rec := httptest.NewRecorder()

		h.RemoveItem(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartHandlerClear(t *testing.T) {
	customerID := uuid.New()

	svc := new(MockCartService)
	svc.On("Clear", mock.Anything, customerID).Return(nil)

	h := NewCartHandler(svc, zerolog.Nop())

	req := authedRequest(http.MethodDelete, "/api/cart", nil, customerID)
	rec := httptest.NewRecorder()

	h.Clear(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}
