package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a unique (user, hotel) pair with an optional price alert.
type Favorite struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	HotelID uuid.UUID `db:"hotel_id"`

	AlertEnabled   bool       `db:"alert_enabled"`
	TargetPrice    *float64   `db:"target_price"`
	LastNotifiedAt *time.Time `db:"last_notified_at"`
}
