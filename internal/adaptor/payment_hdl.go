package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// RegisterCard handles POST /api/payments/cards
func (h *PaymentHandler) RegisterCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RegisterCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.RegisterCard(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register card")
		return
	}

	utils.ResponseCreated(w, "success", resp)
}

// GetCards handles GET /api/payments/cards
func (h *PaymentHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetCards(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get cards")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// SetDefaultCard handles PATCH /api/payments/cards/{id}/default
func (h *PaymentHandler) SetDefaultCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cardID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid card id", nil)
		return
	}

	if err := h.service.SetDefaultCard(r.Context(), userID, cardID); err != nil {
		handleServiceError(w, h.log, err, "set default card")
		return
	}

	utils.ResponseSuccess(w, "Default card updated", nil)
}

// DeleteCard handles DELETE /api/payments/cards/{id}
func (h *PaymentHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cardID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid card id", nil)
		return
	}

	if err := h.service.DeleteCard(r.Context(), userID, cardID); err != nil {
		handleServiceError(w, h.log, err, "delete card")
		return
	}

	utils.ResponseSuccess(w, "Card deleted", nil)
}

// Confirm handles POST /api/payments/confirm
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.ConfirmPayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Cancel handles POST /api/payments/cancel
func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CancelPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CancelPayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel payment")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
