package request

type RegisterCardRequest struct {
	HolderName string  `json:"holder_name" validate:"required,min=2,max=100"`
	CardNumber string  `json:"card_number" validate:"required,min=12,max=23"`
	Expiry     string  `json:"expiry" validate:"required,len=5"` // MM/YY
	Brand      *string `json:"brand,omitempty"`
}

type ConfirmPaymentRequest struct {
	OrderID    string  `json:"order_id" validate:"required"`
	PaymentKey string  `json:"payment_key" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

type CancelPaymentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Reason  string `json:"reason" validate:"required,min=2,max=500"`
}
