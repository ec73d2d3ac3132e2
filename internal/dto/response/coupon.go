package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type CouponResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	DiscountType string    `json:"discount_type"`
	Value        float64   `json:"value"`
	MinPurchase  float64   `json:"min_purchase"`
	MaxDiscount  *float64  `json:"max_discount,omitempty"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidTo      time.Time `json:"valid_to"`
	UsageLimit   int       `json:"usage_limit"`
	UsedCount    int       `json:"used_count"`
	IssuerType   string    `json:"issuer_type"`
	HotelID      *string   `json:"hotel_id,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func CouponToResponse(coupon *entity.Coupon) CouponResponse {
	var hotelID *string
	if coupon.HotelID != nil {
		s := coupon.HotelID.String()
		hotelID = &s
	}

	return CouponResponse{
		ID:           coupon.ID.String(),
		Code:         coupon.Code,
		DiscountType: string(coupon.DiscountType),
		Value:        coupon.Value,
		MinPurchase:  coupon.MinPurchase,
		MaxDiscount:  coupon.MaxDiscount,
		ValidFrom:    coupon.ValidFrom,
		ValidTo:      coupon.ValidTo,
		UsageLimit:   coupon.UsageLimit,
		UsedCount:    coupon.UsedCount,
		IssuerType:   string(coupon.IssuerType),
		HotelID:      hotelID,
		Status:       string(coupon.Status),
		CreatedAt:    coupon.CreatedAt,
	}
}

// BestDiscountResponse reports the strongest applicable coupon for a
// given purchase amount, if any.
type BestDiscountResponse struct {
	Coupon   *CouponResponse `json:"coupon,omitempty"`
	Discount float64         `json:"discount"`
}
