package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type SettingsResponse struct {
	MaintenanceMode     bool      `json:"maintenance_mode"`
	MaintenanceMessage  string    `json:"maintenance_message"`
	PointsEarnRate      float64   `json:"points_earn_rate"`
	CancelDeadlineHours int       `json:"cancel_deadline_hours"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func SettingsToResponse(settings *entity.SystemSettings) SettingsResponse {
	return SettingsResponse{
		MaintenanceMode:     settings.MaintenanceMode,
		MaintenanceMessage:  settings.MaintenanceMessage,
		PointsEarnRate:      settings.PointsEarnRate,
		CancelDeadlineHours: settings.CancelDeadlineHours,
		UpdatedAt:           settings.UpdatedAt,
	}
}
