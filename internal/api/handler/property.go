// internal/api/handler/property.go
package handler

import (
	"log/slog"
	"net/http"

	"rentpay/internal/domain"
	"rentpay/internal/service"
)

// PropertyHandler handles HTTP requests related to properties.
type PropertyHandler struct {
	responder
	service service.PropertyService
}

func NewPropertyHandler(svc service.PropertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// POST /properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePropertyInput
	if err := decodeJSON(r, &req, false); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, property)
}

// GET /properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.ListProperties(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, properties)
}
