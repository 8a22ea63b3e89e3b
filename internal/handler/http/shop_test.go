package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/catalog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/event"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
	pkgkafka "github.com/ShivenPandit/Super-Mall-Web-App/pkg/kafka"
)

// ============================================================================
// Mock repository
// ============================================================================

type mockShopRepository struct {
	mock.Mock
}

func (m *mockShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *mockShopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *mockShopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *mockShopRepository) Update(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *mockShopRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ============================================================================
// Test helpers
// ============================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testEventProducer() *event.Producer {
	logger := testLogger()
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	kafkaProducer := pkgkafka.NewProducer(kafkaCfg, logger)
	return event.NewProducer(kafkaProducer, logger)
}

func testShopHandler(repo *mockShopRepository) *ShopHandler {
	cache := catalog.NewCache[domain.Shop]("shops")
	svc := service.NewShopService(repo, cache, testEventProducer(), testLogger())
	return NewShopHandler(svc, testLogger())
}

// setupShopRouter creates a chi router matching production route layout.
func setupShopRouter(handler *ShopHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api/v1/admin/shops", func(r chi.Router) {
		r.Get("/", handler.ListShops)
		r.Post("/", handler.CreateShop)
		r.Put("/{id}", handler.UpdateShop)
		r.Delete("/{id}", handler.DeleteShop)
	})
	r.Get("/api/v1/shops/{id}", handler.GetShop)
	return r
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validShopBody() map[string]any {
	return map[string]any{
		"name":          "Cafe Aroma",
		"description":   "Coffee and pastries",
		"category":      "Food & Dining",
		"floor":         "GF",
		"contactNumber": "+91-9876543210",
	}
}

// ============================================================================
// Tests
// ============================================================================

func TestCreateShop_Created(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Shop")).Return(nil)
	repo.On("List", mock.Anything).Return([]domain.Shop{}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/shops", validShopBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data domain.Shop `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cafe Aroma", resp.Data.Name)
	assert.Equal(t, domain.ShopStatusActive, resp.Data.Status)
}

func TestCreateShop_ValidationFailedWithAllMessages(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/shops", map[string]any{"name": "ab"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Shop name must be at least 3 characters")
	assert.Contains(t, resp.Error.Message, "Description is required")
	assert.Contains(t, resp.Error.Message, "Contact information is required")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateShop_MalformedBody(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/shops", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetShop_NotFound(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	repo.On("GetByID", mock.Anything, "nonexistent").Return(nil, apperrors.ErrNotFound)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/shops/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListShops_OK(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	shops := []domain.Shop{{ID: "s1", Name: "Cafe Aroma"}, {ID: "s2", Name: "Trendy Threads"}}
	repo.On("List", mock.Anything).Return(shops, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/shops", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.Shop `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestUpdateShop_OK(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	existing := &domain.Shop{ID: "s1", Name: "Old", Description: "old", Category: "c", Floor: "GF", ContactNumber: "1", Status: domain.ShopStatusActive}
	repo.On("GetByID", mock.Anything, "s1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Shop")).Return(nil)
	repo.On("List", mock.Anything).Return([]domain.Shop{}, nil)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/shops/s1", validShopBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data domain.Shop `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cafe Aroma", resp.Data.Name)
}

func TestDeleteShop_NoContent(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	repo.On("Delete", mock.Anything, "s1").Return(nil)
	repo.On("List", mock.Anything).Return([]domain.Shop{}, nil)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/admin/shops/s1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteShop_NotFound(t *testing.T) {
	repo := new(mockShopRepository)
	router := setupShopRouter(testShopHandler(repo))

	repo.On("Delete", mock.Anything, "ghost").Return(apperrors.ErrNotFound)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/admin/shops/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
