package request

type CreateBookingRequest struct {
	RoomID   string `json:"room_id" validate:"required,uuid"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests" validate:"required,min=1,max=20"`

	// Optional discounts: points spent from the balance and/or a coupon code.
	UsedPoints int64  `json:"used_points" validate:"min=0"`
	CouponCode string `json:"coupon_code,omitempty"`

	// TotalPriceOverride lets the caller pin the pre-discount total; when
	// zero the price is computed as room price * nights.
	TotalPriceOverride float64 `json:"total_price,omitempty" validate:"min=0"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=2,max=500"`
}

// OwnerBookingsRequest is bound from query parameters; year/month of 0 means
// no stay-window filter.
type OwnerBookingsRequest struct {
	Year  int `json:"year" validate:"min=0,max=2200"`
	Month int `json:"month" validate:"min=0,max=12"`
	PaginatedRequest
}
