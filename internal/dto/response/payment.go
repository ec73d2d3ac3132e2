package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type CardResponse struct {
	ID         string    `json:"id"`
	HolderName string    `json:"holder_name"`
	CardNumber string    `json:"card_number"`
	Expiry     string    `json:"expiry"`
	Brand      *string   `json:"brand,omitempty"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
}

// CardToResponse renders a stored card. masked must already be the masked
// card number, never the plaintext.
func CardToResponse(card *entity.PaymentCard, masked string) CardResponse {
	return CardResponse{
		ID:         card.ID.String(),
		HolderName: card.HolderName,
		CardNumber: masked,
		Expiry:     card.Expiry,
		Brand:      card.Brand,
		IsDefault:  card.IsDefault,
		CreatedAt:  card.CreatedAt,
	}
}

type PaymentConfirmResponse struct {
	OrderID       string  `json:"order_id"`
	PaymentStatus string  `json:"payment_status"`
	BookingStatus string  `json:"booking_status"`
	Amount        float64 `json:"amount"`
	EarnedPoints  int64   `json:"earned_points"`
}

type PaymentCancelResponse struct {
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	BookingStatus string `json:"booking_status"`
}
