package entity

import (
	"time"
)

// SystemSettings is a singleton row, lazily created on first read.
type SystemSettings struct {
	ID                   int       `db:"id"`
	MaintenanceMode      bool      `db:"maintenance_mode"`
	MaintenanceMessage   string    `db:"maintenance_message"`
	PointsEarnRate       float64   `db:"points_earn_rate"` // fraction of payment amount, default 0.01
	CancelDeadlineHours  int       `db:"cancel_deadline_hours"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// DefaultSettings returns the values used when the singleton row is first
// created.
func DefaultSettings() *SystemSettings {
	return &SystemSettings{
		ID:                  1,
		MaintenanceMode:     false,
		MaintenanceMessage:  "",
		PointsEarnRate:      0.01,
		CancelDeadlineHours: 24,
		UpdatedAt:           time.Now(),
	}
}
