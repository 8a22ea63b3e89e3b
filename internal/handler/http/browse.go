package http

import (
	"net/http"
	"strconv"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/query"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
)

// BrowseHandler serves the public storefront endpoints. Responses come from
// the in-memory catalog, so every request is a pure function of the caches.
type BrowseHandler struct {
	service *service.BrowseService
}

// NewBrowseHandler creates a new storefront HTTP handler.
func NewBrowseHandler(svc *service.BrowseService) *BrowseHandler {
	return &BrowseHandler{service: svc}
}

func parsePaging(r *http.Request) (page, pageSize int) {
	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			page = p
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil {
			pageSize = ps
		}
	}
	return page, pageSize
}

// BrowseShops handles GET /api/v1/shops
func (h *BrowseHandler) BrowseShops(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := query.Criteria{
		SearchTerm: q.Get("search"),
		Status:     q.Get("status"),
		Category:   q.Get("category"),
		Floor:      q.Get("floor"),
	}

	page, pageSize := parsePaging(r)
	result := h.service.BrowseShops(criteria, page, pageSize)
	writeJSON(w, http.StatusOK, response{Data: result})
}

// BrowseOffers handles GET /api/v1/offers
func (h *BrowseHandler) BrowseOffers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := query.Criteria{
		SearchTerm: q.Get("search"),
		OfferType:  q.Get("type"),
		ShopID:     q.Get("shopId"),
	}
	activeOnly := q.Get("active") == "true"

	page, pageSize := parsePaging(r)
	result := h.service.BrowseOffers(criteria, page, pageSize, activeOnly)
	writeJSON(w, http.StatusOK, response{Data: result})
}

// ListCategories handles GET /api/v1/categories
func (h *BrowseHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: h.service.Categories()})
}

// ListFloors handles GET /api/v1/floors
func (h *BrowseHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: h.service.Floors()})
}

// Dashboard handles GET /api/v1/admin/dashboard
func (h *BrowseHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: h.service.DashboardCounts()})
}
