package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CouponHandler struct {
	service usecase.CouponService
	log     *zap.Logger
}

func NewCouponHandler(service usecase.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		log:     log.With(zap.String("handler", "coupon")),
	}
}

// GetByCode handles GET /api/coupons/code/{code}
func (h *CouponHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Coupon code is required", nil)
		return
	}

	hotelID, err := optionalHotelID(r.URL.Query().Get("hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}

	resp, err := h.service.GetByCode(r.Context(), code, hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get coupon")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// BestDiscount handles GET /api/coupons/best
func (h *CouponHandler) BestDiscount(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hotelID, err := optionalHotelID(query.Get("hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}
	totalPrice := utils.ParseFloat(query.Get("total_price"), 0)

	resp, err := h.service.BestDiscount(r.Context(), hotelID, totalPrice)
	if err != nil {
		handleServiceError(w, h.log, err, "best discount")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Create handles POST /api/coupons (admin or business)
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	issuerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), issuerID, role, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create coupon")
		return
	}

	utils.ResponseCreated(w, "success", resp)
}

// Update handles PUT /api/coupons/{id} (admin or business)
func (h *CouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	issuerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	couponID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid coupon id", nil)
		return
	}

	var req request.UpdateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), issuerID, role, couponID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update coupon")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Delete handles DELETE /api/coupons/{id} (admin or business)
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	issuerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	couponID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid coupon id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), issuerID, role, couponID); err != nil {
		handleServiceError(w, h.log, err, "delete coupon")
		return
	}

	utils.ResponseSuccess(w, "Coupon deleted", nil)
}

// List handles GET /api/coupons (admin or business)
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	issuerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	resp, err := h.service.List(r.Context(), issuerID, role, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list coupons")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

func optionalHotelID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := utils.ParseUUID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
