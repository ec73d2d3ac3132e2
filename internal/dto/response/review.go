package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	HotelID      string    `json:"hotel_id"`
	BookingID    string    `json:"booking_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	Status       string    `json:"status"`
	IsReported   bool      `json:"is_reported"`
	ReportStatus *string   `json:"report_status,omitempty"`
	ReportReason *string   `json:"report_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review, userName string) ReviewResponse {
	var reportStatus *string
	if review.ReportStatus != nil {
		s := string(*review.ReportStatus)
		reportStatus = &s
	}

	return ReviewResponse{
		ID:           review.ID.String(),
		UserID:       review.UserID.String(),
		UserName:     userName,
		HotelID:      review.HotelID.String(),
		BookingID:    review.BookingID.String(),
		Rating:       review.Rating,
		Comment:      review.Comment,
		Status:       string(review.Status),
		IsReported:   review.IsReported,
		ReportStatus: reportStatus,
		ReportReason: review.ReportReason,
		CreatedAt:    review.CreatedAt,
	}
}
