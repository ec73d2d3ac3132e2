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

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// Toggle handles POST /api/favorites/{hotelId}
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotelID, err := utils.ParseUUID(chi.URLParam(r, "hotelId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}

	resp, err := h.service.Toggle(r.Context(), userID, hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle favorite")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetFavorites handles GET /api/favorites
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetFavorites(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get favorites")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// SetPriceAlert handles PUT /api/favorites/{hotelId}/alert
func (h *FavoriteHandler) SetPriceAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotelID, err := utils.ParseUUID(chi.URLParam(r, "hotelId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}

	var req request.PriceAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetPriceAlert(r.Context(), userID, hotelID, &req); err != nil {
		handleServiceError(w, h.log, err, "set price alert")
		return
	}

	utils.ResponseSuccess(w, "Price alert updated", nil)
}

// CheckAlerts handles POST /api/admin/alerts/run (admin, manual trigger)
func (h *FavoriteHandler) CheckAlerts(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CheckPriceAlerts(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "check price alerts")
		return
	}

	utils.ResponseSuccess(w, "Price alert run finished", nil)
}
