package request

type UpdateSettingsRequest struct {
	MaintenanceMode     bool    `json:"maintenance_mode"`
	MaintenanceMessage  string  `json:"maintenance_message" validate:"max=500"`
	PointsEarnRate      float64 `json:"points_earn_rate" validate:"min=0,max=1"`
	CancelDeadlineHours int     `json:"cancel_deadline_hours" validate:"min=0,max=720"`
}
