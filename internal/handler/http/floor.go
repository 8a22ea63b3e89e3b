package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/validator"
)

// FloorHandler handles HTTP requests for floor management endpoints.
type FloorHandler struct {
	service *service.FloorService
	logger  *slog.Logger
}

// NewFloorHandler creates a new floor HTTP handler.
func NewFloorHandler(svc *service.FloorService, logger *slog.Logger) *FloorHandler {
	return &FloorHandler{
		service: svc,
		logger:  logger,
	}
}

// FloorRequest is the JSON request body for creating or replacing a floor.
// Level is a pointer so that level zero survives decoding.
type FloorRequest struct {
	Name        string `json:"name" validate:"max=100"`
	Code        string `json:"code" validate:"max=20"`
	Level       *int   `json:"level"`
	Description string `json:"description" validate:"max=2000"`
}

func (req FloorRequest) toInput() service.FloorInput {
	return service.FloorInput{
		Name:        req.Name,
		Code:        req.Code,
		Level:       req.Level,
		Description: req.Description,
	}
}

// CreateFloor handles POST /api/v1/admin/floors
func (h *FloorHandler) CreateFloor(w http.ResponseWriter, r *http.Request) {
	var req FloorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	floor, err := h.service.CreateFloor(r.Context(), req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: floor})
}

// ListFloors handles GET /api/v1/floors
func (h *FloorHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.service.ListFloors(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: floors})
}

// UpdateFloor handles PUT /api/v1/admin/floors/{id}
func (h *FloorHandler) UpdateFloor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "floor id is required"},
		})
		return
	}

	var req FloorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	floor, err := h.service.UpdateFloor(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: floor})
}

// DeleteFloor handles DELETE /api/v1/admin/floors/{id}
func (h *FloorHandler) DeleteFloor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "floor id is required"},
		})
		return
	}

	if err := h.service.DeleteFloor(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
