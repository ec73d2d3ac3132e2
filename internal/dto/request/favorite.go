package request

type PriceAlertRequest struct {
	Enabled     bool     `json:"enabled"`
	TargetPrice *float64 `json:"target_price,omitempty" validate:"omitempty,gt=0"`
}
