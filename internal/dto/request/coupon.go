package request

type CreateCouponRequest struct {
	Code         string   `json:"code" validate:"required,min=3,max=30"`
	DiscountType string   `json:"discount_type" validate:"required,oneof=percentage fixed"`
	Value        float64  `json:"value" validate:"required,gt=0"`
	MinPurchase  float64  `json:"min_purchase" validate:"min=0"`
	MaxDiscount  *float64 `json:"max_discount,omitempty" validate:"omitempty,gt=0"`
	ValidFrom    string   `json:"valid_from" validate:"required,datetime=2006-01-02"`
	ValidTo      string   `json:"valid_to" validate:"required,datetime=2006-01-02"`
	UsageLimit   int      `json:"usage_limit" validate:"required,min=1"`

	// HotelID scopes a business coupon; empty means platform-wide (admin).
	HotelID string `json:"hotel_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateCouponRequest struct {
	DiscountType string   `json:"discount_type" validate:"required,oneof=percentage fixed"`
	Value        float64  `json:"value" validate:"required,gt=0"`
	MinPurchase  float64  `json:"min_purchase" validate:"min=0"`
	MaxDiscount  *float64 `json:"max_discount,omitempty" validate:"omitempty,gt=0"`
	ValidFrom    string   `json:"valid_from" validate:"required,datetime=2006-01-02"`
	ValidTo      string   `json:"valid_to" validate:"required,datetime=2006-01-02"`
	UsageLimit   int      `json:"usage_limit" validate:"required,min=1"`
	Status       string   `json:"status" validate:"required,oneof=active inactive"`
}
