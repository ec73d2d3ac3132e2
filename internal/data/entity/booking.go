package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type Booking struct {
	Base
	OrderID string    `db:"order_id"`
	UserID  uuid.UUID `db:"user_id"`
	HotelID uuid.UUID `db:"hotel_id"`
	RoomID  uuid.UUID `db:"room_id"`

	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Guests   int       `db:"guests"`

	TotalPrice     float64    `db:"total_price"`
	DiscountAmount float64    `db:"discount_amount"`
	FinalPrice     float64    `db:"final_price"`
	UsedPoints     int64      `db:"used_points"`
	CouponID       *uuid.UUID `db:"coupon_id"`

	PaymentStatus PaymentStatus `db:"payment_status"`
	PaymentKey    *string       `db:"payment_key"`

	Status          BookingStatus  `db:"status"`
	ApprovalStatus  ApprovalStatus `db:"approval_status"`
	ApprovedBy      *uuid.UUID     `db:"approved_by"`
	ApprovedAt      *time.Time     `db:"approved_at"`
	RejectionReason *string        `db:"rejection_reason"`
}
