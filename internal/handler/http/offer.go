package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/validator"
)

// OfferHandler handles HTTP requests for offer management endpoints.
type OfferHandler struct {
	service *service.OfferService
	logger  *slog.Logger
}

// NewOfferHandler creates a new offer HTTP handler.
func NewOfferHandler(svc *service.OfferService, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		service: svc,
		logger:  logger,
	}
}

// OfferRequest is the JSON request body for creating or replacing an offer.
type OfferRequest struct {
	ShopID      string  `json:"shopId" validate:"required,uuid"`
	Title       string  `json:"title" validate:"max=200"`
	Description string  `json:"description" validate:"max=2000"`
	OfferType   string  `json:"offerType" validate:"required,oneof=percentage fixed_amount bogo seasonal"`
	Discount    float64 `json:"discount"`
	StartDate   string  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (req OfferRequest) toInput() service.OfferInput {
	return service.OfferInput{
		ShopID:      req.ShopID,
		Title:       req.Title,
		Description: req.Description,
		OfferType:   req.OfferType,
		Discount:    req.Discount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
}

// CreateOffer handles POST /api/v1/admin/offers
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req OfferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	offer, err := h.service.CreateOffer(r.Context(), req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: offer})
}

// GetOffer handles GET /api/v1/offers/{id}
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "offer id is required"},
		})
		return
	}

	offer, err := h.service.GetOffer(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: offer})
}

// ListOffers handles GET /api/v1/admin/offers
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.ListOffers(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: offers})
}

// ListExpiringSoonOffers handles GET /api/v1/admin/offers/expiring-soon
func (h *OfferHandler) ListExpiringSoonOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.ListExpiringSoonOffers(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: offers})
}

// UpdateOffer handles PUT /api/v1/admin/offers/{id}
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "offer id is required"},
		})
		return
	}

	var req OfferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	offer, err := h.service.UpdateOffer(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: offer})
}

// DeleteOffer handles DELETE /api/v1/admin/offers/{id}
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "offer id is required"},
		})
		return
	}

	if err := h.service.DeleteOffer(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
