package entity

import (
	"github.com/google/uuid"
)

// PaymentCard stores a tokenized payment method. CardNumberEnc is the
// AES-256-CBC encrypted card number; exactly one card per user is default.
type PaymentCard struct {
	BaseNoDelete
	UserID        uuid.UUID `db:"user_id"`
	HolderName    string    `db:"holder_name"`
	CardNumberEnc string    `db:"card_number_enc"`
	Expiry        string    `db:"expiry"`
	Brand         *string   `db:"brand"`
	IsDefault     bool      `db:"is_default"`
}
