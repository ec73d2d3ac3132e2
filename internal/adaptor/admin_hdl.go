package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetUsers handles GET /api/admin/users
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	resp, err := h.service.GetUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// BlockUser handles PUT /api/admin/users/{id}/block
func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	h.setUserBlocked(w, r, true)
}

// UnblockUser handles PUT /api/admin/users/{id}/unblock
func (h *AdminHandler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	h.setUserBlocked(w, r, false)
}

func (h *AdminHandler) setUserBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	userID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.service.SetUserBlocked(r.Context(), userID, blocked); err != nil {
		handleServiceError(w, h.log, err, "set user blocked")
		return
	}

	utils.ResponseSuccess(w, "User updated", nil)
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}

// GetBusinessApplications handles GET /api/admin/business-applications
func (h *AdminHandler) GetBusinessApplications(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	resp, err := h.service.GetBusinessApplications(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list business applications")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// ApproveBusiness handles PUT /api/admin/business-applications/{id}/approve
func (h *AdminHandler) ApproveBusiness(w http.ResponseWriter, r *http.Request) {
	h.resolveBusiness(w, r, true)
}

// RejectBusiness handles PUT /api/admin/business-applications/{id}/reject
func (h *AdminHandler) RejectBusiness(w http.ResponseWriter, r *http.Request) {
	h.resolveBusiness(w, r, false)
}

func (h *AdminHandler) resolveBusiness(w http.ResponseWriter, r *http.Request, approve bool) {
	userID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.service.ResolveBusinessApplication(r.Context(), userID, approve); err != nil {
		handleServiceError(w, h.log, err, "resolve business application")
		return
	}

	utils.ResponseSuccess(w, "Application resolved", nil)
}

// ApproveHotel handles PUT /api/admin/hotels/{id}/approve
func (h *AdminHandler) ApproveHotel(w http.ResponseWriter, r *http.Request) {
	h.setHotelStatus(w, r, true)
}

// DeactivateHotel handles PUT /api/admin/hotels/{id}/deactivate
func (h *AdminHandler) DeactivateHotel(w http.ResponseWriter, r *http.Request) {
	h.setHotelStatus(w, r, false)
}

func (h *AdminHandler) setHotelStatus(w http.ResponseWriter, r *http.Request, activate bool) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel id", nil)
		return
	}

	if err := h.service.SetHotelStatus(r.Context(), hotelID, activate); err != nil {
		handleServiceError(w, h.log, err, "set hotel status")
		return
	}

	utils.ResponseSuccess(w, "Hotel updated", nil)
}

// GetBookings handles GET /api/admin/bookings
func (h *AdminHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	resp, err := h.service.GetBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteBooking handles DELETE /api/admin/bookings/{id}
func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking id", nil)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted", nil)
}

// GetReportedReviews handles GET /api/admin/reviews/reported
func (h *AdminHandler) GetReportedReviews(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	resp, err := h.service.GetReportedReviews(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list reported reviews")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetActivityLogs handles GET /api/admin/activity
func (h *AdminHandler) GetActivityLogs(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	resp, err := h.service.GetActivityLogs(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list activity logs")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
