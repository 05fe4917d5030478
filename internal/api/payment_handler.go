package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/shutter-academy/academy-api/internal/api/shared"
	"github.com/shutter-academy/academy-api/internal/store"
)

// IntentCreator turns a price into a provider client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price decimal.Decimal) (string, error)
}

// PaymentHandler serves payment intents and the payment ledger.
type PaymentHandler struct {
	intents  IntentCreator
	payments store.PaymentStore
}

// NewPaymentHandler creates a new PaymentHandler with the given dependencies.
func NewPaymentHandler(intents IntentCreator, payments store.PaymentStore) *PaymentHandler {
	return &PaymentHandler{
		intents:  intents,
		payments: payments,
	}
}

// CreatePaymentIntent handles POST /create-payment-intent.
// A missing or non-positive price is a 400, never a silent drop.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	secret, err := h.intents.CreateIntent(r.Context(), req.Price)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// CreatePayment handles POST /payment.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := req.Payment()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.payments.Create(r.Context(), p)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record payment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, res)
}

// ListPayments handles GET /payment/{email}, newest first.
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	email, ok := handlePathEmail(w, r, "email")
	if !ok {
		return
	}

	payments, err := h.payments.ListByStudent(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list payments")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, payments)
}
