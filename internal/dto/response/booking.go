package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	UserID    string `json:"user_id"`
	HotelID   string `json:"hotel_id"`
	RoomID    string `json:"room_id"`
	HotelName string `json:"hotel_name,omitempty"`
	RoomName  string `json:"room_name,omitempty"`

	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
	Nights   int    `json:"nights"`

	TotalPrice     float64 `json:"total_price"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`
	UsedPoints     int64   `json:"used_points"`
	CouponID       *string `json:"coupon_id,omitempty"`

	PaymentStatus string  `json:"payment_status"`
	PaymentKey    *string `json:"payment_key,omitempty"`

	Status          string     `json:"status"`
	ApprovalStatus  string     `json:"approval_status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, hotelName, roomName string) BookingResponse {
	nights := int(booking.CheckOut.Sub(booking.CheckIn).Hours() / 24)

	var couponID *string
	if booking.CouponID != nil {
		s := booking.CouponID.String()
		couponID = &s
	}

	var approvedBy *string
	if booking.ApprovedBy != nil {
		s := booking.ApprovedBy.String()
		approvedBy = &s
	}

	return BookingResponse{
		ID:              booking.ID.String(),
		OrderID:         booking.OrderID,
		UserID:          booking.UserID.String(),
		HotelID:         booking.HotelID.String(),
		RoomID:          booking.RoomID.String(),
		HotelName:       hotelName,
		RoomName:        roomName,
		CheckIn:         booking.CheckIn.Format("2006-01-02"),
		CheckOut:        booking.CheckOut.Format("2006-01-02"),
		Guests:          booking.Guests,
		Nights:          nights,
		TotalPrice:      booking.TotalPrice,
		DiscountAmount:  booking.DiscountAmount,
		FinalPrice:      booking.FinalPrice,
		UsedPoints:      booking.UsedPoints,
		CouponID:        couponID,
		PaymentStatus:   string(booking.PaymentStatus),
		PaymentKey:      booking.PaymentKey,
		Status:          string(booking.Status),
		ApprovalStatus:  string(booking.ApprovalStatus),
		ApprovedBy:      approvedBy,
		ApprovedAt:      booking.ApprovedAt,
		RejectionReason: booking.RejectionReason,
		CreatedAt:       booking.CreatedAt,
	}
}
