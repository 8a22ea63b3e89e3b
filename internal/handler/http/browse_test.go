package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/catalog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/query"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
)

func preloadedCache[T any](t *testing.T, name string, items []T) *catalog.Cache[T] {
	t.Helper()
	c := catalog.NewCache[T](name)
	require.NoError(t, c.Reload(context.Background(), func(context.Context) ([]T, error) {
		return items, nil
	}))
	return c
}

func setupBrowseRouter(t *testing.T, shops []domain.Shop, offers []domain.Offer) *chi.Mux {
	t.Helper()
	svc := service.NewBrowseService(
		preloadedCache(t, "shops", shops),
		preloadedCache(t, "offers", offers),
		preloadedCache(t, "categories", []domain.Category{{ID: "c1", Name: "Food & Dining"}}),
		preloadedCache(t, "floors", []domain.Floor{{ID: "f1", Name: "Ground Floor", Code: "GF"}}),
	)
	handler := NewBrowseHandler(svc)

	r := chi.NewRouter()
	r.Get("/api/v1/shops", handler.BrowseShops)
	r.Get("/api/v1/offers", handler.BrowseOffers)
	r.Get("/api/v1/categories", handler.ListCategories)
	r.Get("/api/v1/floors", handler.ListFloors)
	r.Get("/api/v1/admin/dashboard", handler.Dashboard)
	return r
}

func storefrontShops() []domain.Shop {
	return []domain.Shop{
		{ID: "s1", Name: "Cafe Aroma", Description: "Coffee", Category: "Food & Dining", Floor: "GF", Status: domain.ShopStatusActive},
		{ID: "s2", Name: "Trendy Threads", Description: "Fashion", Category: "Clothing", Floor: "F1", Status: domain.ShopStatusActive},
		{ID: "s3", Name: "Dusty Corner", Description: "Closed down", Category: "Clothing", Floor: "F1", Status: domain.ShopStatusInactive},
	}
}

func TestBrowseShops_FiltersByQueryParams(t *testing.T) {
	router := setupBrowseRouter(t, storefrontShops(), nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/shops?status=active&category=Clothing", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data query.Page[domain.Shop] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Data, 1)
	assert.Equal(t, "s2", resp.Data.Data[0].ID)
	assert.Equal(t, 1, resp.Data.TotalItems)
	assert.Equal(t, 1, resp.Data.CurrentPage)
}

func TestBrowseShops_SearchTerm(t *testing.T) {
	router := setupBrowseRouter(t, storefrontShops(), nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/shops?search=coffee", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data query.Page[domain.Shop] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Data, 1)
	assert.Equal(t, "s1", resp.Data.Data[0].ID)
}

func TestBrowseShops_PastEndPageIsEmpty(t *testing.T) {
	router := setupBrowseRouter(t, storefrontShops(), nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/shops?page=99", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data query.Page[domain.Shop] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Data)
	assert.Equal(t, 3, resp.Data.TotalItems)
	assert.Equal(t, 99, resp.Data.CurrentPage)
}

func TestBrowseOffers_ActiveFilter(t *testing.T) {
	past := time.Now().UTC().AddDate(0, 0, -10).Format(domain.DateLayout)
	future := time.Now().UTC().AddDate(0, 0, 10).Format(domain.DateLayout)
	offers := []domain.Offer{
		{ID: "o1", Title: "Running", StartDate: past, EndDate: future, OfferType: domain.OfferTypePercentage},
		{ID: "o2", Title: "Expired", StartDate: past, EndDate: past, OfferType: domain.OfferTypePercentage},
	}
	router := setupBrowseRouter(t, nil, offers)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/offers?active=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data query.Page[domain.Offer] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Data, 1)
	assert.Equal(t, "o1", resp.Data.Data[0].ID)
}

func TestListCategoriesAndFloors(t *testing.T) {
	router := setupBrowseRouter(t, nil, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Food & Dining")

	rec = doJSON(t, router, http.MethodGet, "/api/v1/floors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ground Floor")
}

func TestDashboard_Counts(t *testing.T) {
	router := setupBrowseRouter(t, storefrontShops(), nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data service.Dashboard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Shops)
	assert.Equal(t, 2, resp.Data.ActiveShops)
	assert.Equal(t, 1, resp.Data.Categories)
}
