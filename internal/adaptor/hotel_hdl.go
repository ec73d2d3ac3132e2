package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// Search handles GET /api/hotels
func (h *HotelHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.SearchHotelsRequest{
		City:      query.Get("city"),
		HotelType: query.Get("type"),
		MinRating: utils.ParseFloat(query.Get("rating"), 0),
	}
	if amenities := query.Get("amenities"); amenities != "" {
		req.Amenities = strings.Split(amenities, ",")
	}
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	resp, err := h.service.Search(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search hotels")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetByID handles GET /api/hotels/{id} (optional auth: records view history)
func (h *HotelHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}

	var viewerID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	resp, err := h.service.GetByID(r.Context(), hotelID, viewerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetFeatured handles GET /api/hotels/featured
func (h *HotelHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetFeatured(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get featured hotels")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Create handles POST /api/hotels (business)
func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), ownerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "success", resp)
}

// Update handles PUT /api/hotels/{id} (business, owner)
func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}

	var req request.UpdateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), ownerID, hotelID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Delete handles DELETE /api/hotels/{id} (business, owner)
func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, hotelID); err != nil {
		handleServiceError(w, h.log, err, "delete hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel deleted", nil)
}

// GetOwnHotels handles GET /api/hotels/mine (business)
func (h *HotelHandler) GetOwnHotels(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetOwnHotels(r.Context(), ownerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get own hotels")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
