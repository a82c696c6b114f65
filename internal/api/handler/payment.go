// internal/api/handler/payment.go
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentpay/internal/domain"
	"rentpay/internal/service"
	"rentpay/internal/util"
)

// PaymentHandler handles HTTP requests related to payments.
type PaymentHandler struct {
	responder
	service service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// SettleRequest is the optional body of the complete and fail endpoints.
type SettleRequest struct {
	TransactionID *string `json:"transaction_id"`
}

// PartialPaymentRequest is the body of the partial payment endpoint.
type PartialPaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	TransactionID *string          `json:"transaction_id"`
}

// CreatePayment records a new pending payment.
// POST /payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePaymentInput
	if err := decodeJSON(r, &req, false); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, payment)
}

// ListPayments returns payments filtered by the optional user_id and property_id query parameters.
// GET /payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	var filter domain.PaymentFilter
	var err error
	if filter.UserID, err = optionalUUIDParam(r, "user_id"); err != nil {
		h.respondWithError(w, r, err)
		return
	}
	if filter.PropertyID, err = optionalUUIDParam(r, "property_id"); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	payments, err := h.service.ListPayments(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, payments)
}

// GetPayment returns a single payment.
// GET /payments/{paymentID}
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := paymentIDParam(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	payment, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, payment)
}

// Complete settles a payment in full.
// POST /payments/{paymentID}/complete
func (h *PaymentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.service.MarkCompleted)
}

// Fail records a failed settlement.
// POST /payments/{paymentID}/fail
func (h *PaymentHandler) Fail(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.service.MarkFailed)
}

func (h *PaymentHandler) settle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID, transactionID *string) (*domain.Payment, error)) {
	id, err := paymentIDParam(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	var req SettleRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	payment, err := op(r.Context(), id, req.TransactionID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, payment)
}

// Overdue flags a payment as past due.
// POST /payments/{paymentID}/overdue
func (h *PaymentHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	id, err := paymentIDParam(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	payment, err := h.service.MarkOverdue(r.Context(), id)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, payment)
}

// Partial applies an instalment to a payment.
// POST /payments/{paymentID}/partial
func (h *PaymentHandler) Partial(w http.ResponseWriter, r *http.Request) {
	id, err := paymentIDParam(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	var req PartialPaymentRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.respondWithError(w, r, err)
		return
	}
	if req.Amount == nil {
		h.respondWithError(w, r, util.InvalidInput("amount: cannot be blank.", nil))
		return
	}

	payment, err := h.service.ApplyPartialPayment(r.Context(), id, *req.Amount, req.TransactionID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, payment)
}

func paymentIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "paymentID"))
	if err != nil {
		return uuid.Nil, util.InvalidInput("Invalid payment ID", err)
	}
	return id, nil
}

// optionalUUIDParam parses a query parameter. An absent or empty value yields nil.
func optionalUUIDParam(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, util.InvalidInput("Invalid "+name, err)
	}
	return &id, nil
}
