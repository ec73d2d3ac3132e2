package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type AdminStatsResponse struct {
	TotalUsers    int64   `json:"total_users"`
	TotalHotels   int64   `json:"total_hotels"`
	TotalBookings int64   `json:"total_bookings"`
	TotalReviews  int64   `json:"total_reviews"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type ActivityLogResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

func ActivityLogToResponse(log *entity.ActivityLog) ActivityLogResponse {
	var userID *string
	if log.UserID != nil {
		s := log.UserID.String()
		userID = &s
	}

	return ActivityLogResponse{
		ID:        log.ID.String(),
		UserID:    userID,
		Action:    log.Action,
		Method:    log.Method,
		Path:      log.Path,
		Status:    log.Status,
		IP:        log.IP,
		CreatedAt: log.CreatedAt,
	}
}
