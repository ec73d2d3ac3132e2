package entity

import (
	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewStatusActive  ReviewStatus = "active"
	ReviewStatusHidden  ReviewStatus = "hidden"
	ReviewStatusDeleted ReviewStatus = "deleted"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

type Review struct {
	Base
	UserID    uuid.UUID    `db:"user_id"`
	HotelID   uuid.UUID    `db:"hotel_id"`
	BookingID uuid.UUID    `db:"booking_id"`
	Rating    int          `db:"rating"` // 1-5
	Comment   *string      `db:"comment"`
	Status    ReviewStatus `db:"status"`

	IsReported   bool          `db:"is_reported"`
	ReportReason *string       `db:"report_reason"`
	ReportedBy   *uuid.UUID    `db:"reported_by"`
	ReportStatus *ReportStatus `db:"report_status"`
}
