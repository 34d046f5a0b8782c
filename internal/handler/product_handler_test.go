package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commercehub/internal/model"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, search, category string) ([]model.Product, error) {
	args := m.Called(ctx, search, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func TestProductHandlerList(t *testing.T) {
	products := []model.Product{
		{ID: uuid.New(), Name: "Product A", RetailPrice: decimal.RequireFromString("20.00")},
	}

	t.Run("passes query parameters through", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("List", mock.Anything, "widget", "tools").Return(products, nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products?search=widget&category=tools", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("nil result renders as empty array", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("List", mock.Anything, "", "").Return([]model.Product(nil), nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodPut, "/api/products", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestProductHandlerGetByID(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Name: "Product A"}

	t.Run("returns the product", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetByID", mock.Anything, product.ID).Return(product, nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products/"+product.ID.String(), nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, product.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()

		svc := new(MockProductService)
		svc.On("GetByID", mock.Anything, id).Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products/"+id.String(), nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products/xyz", nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestProductHandlerCategories(t *testing.T) {
	svc := new(MockProductService)
	svc.On("Categories", mock.Anything).Return([]string{"tools", "widgets"}, nil)

	h := NewProductHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products/categories", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["tools","widgets"]`, rec.Body.String())
}

func TestProductHandlerCreate(t *testing.T) {
	t.Run("creates a product", func(t *testing.T) {
		created := &model.Product{ID: uuid.New(), Name: "Product A"}

		svc := new(MockProductService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateProductRequest")).Return(created, nil)

		h := NewProductHandler(svc, zerolog.Nop())

		body, _ := json.Marshal(model.CreateProductRequest{
			Name:        "Product A",
			Category:    "widgets",
			RetailPrice: decimal.RequireFromString("20.00"),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(string(body)))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation error from the service", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateProductRequest")).
			Return(nil, model.NewDomainError(model.ErrCodeValidation, "name is required"))

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("{}"))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
