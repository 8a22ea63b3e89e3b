package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/validator"
)

// ShopHandler handles HTTP requests for shop management endpoints.
type ShopHandler struct {
	service *service.ShopService
	logger  *slog.Logger
}

// NewShopHandler creates a new shop HTTP handler.
func NewShopHandler(svc *service.ShopService, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		service: svc,
		logger:  logger,
	}
}

// ShopRequest is the JSON request body for creating or replacing a shop.
// Field-level rules live in the validation engine; tags only bound sizes so
// oversized payloads fail fast.
type ShopRequest struct {
	Name          string `json:"name" validate:"max=200"`
	Description   string `json:"description" validate:"max=2000"`
	Category      string `json:"category" validate:"max=100"`
	Floor         string `json:"floor" validate:"max=50"`
	ContactNumber string `json:"contactNumber" validate:"max=30"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

func (req ShopRequest) toInput() service.ShopInput {
	return service.ShopInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Floor:         req.Floor,
		ContactNumber: req.ContactNumber,
		Status:        req.Status,
	}
}

// CreateShop handles POST /api/v1/admin/shops
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req ShopRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	shop, err := h.service.CreateShop(r.Context(), req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: shop})
}

// GetShop handles GET /api/v1/shops/{id}
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "shop id is required"},
		})
		return
	}

	shop, err := h.service.GetShop(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: shop})
}

// ListShops handles GET /api/v1/admin/shops
func (h *ShopHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: shops})
}

// UpdateShop handles PUT /api/v1/admin/shops/{id}
func (h *ShopHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "shop id is required"},
		})
		return
	}

	var req ShopRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	shop, err := h.service.UpdateShop(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: shop})
}

// DeleteShop handles DELETE /api/v1/admin/shops/{id}
func (h *ShopHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "shop id is required"},
		})
		return
	}

	if err := h.service.DeleteShop(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
