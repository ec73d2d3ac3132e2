package entity

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type CouponIssuer string

const (
	CouponIssuerAdmin    CouponIssuer = "admin"
	CouponIssuerBusiness CouponIssuer = "business"
)

type CouponStatus string

const (
	CouponStatusActive   CouponStatus = "active"
	CouponStatusInactive CouponStatus = "inactive"
)

// Coupon is platform-wide when HotelID is nil (admin issued), otherwise
// scoped to one business hotel. Invariant: UsedCount <= UsageLimit.
type Coupon struct {
	Base
	Code         string       `db:"code"`
	DiscountType DiscountType `db:"discount_type"`
	Value        float64      `db:"value"`
	MinPurchase  float64      `db:"min_purchase"`
	MaxDiscount  *float64     `db:"max_discount"`
	ValidFrom    time.Time    `db:"valid_from"`
	ValidTo      time.Time    `db:"valid_to"`
	UsageLimit   int          `db:"usage_limit"`
	UsedCount    int          `db:"used_count"`
	HotelID      *uuid.UUID   `db:"hotel_id"`
	IssuerType   CouponIssuer `db:"issuer_type"`
	Status       CouponStatus `db:"status"`
}

// Discount returns the coupon's discount against totalPrice, or 0 when the
// minimum purchase is not met. Percentage discounts are capped by MaxDiscount
// when a cap is set.
func (c *Coupon) Discount(totalPrice float64) float64 {
	if totalPrice < c.MinPurchase {
		return 0
	}

	switch c.DiscountType {
	case DiscountTypeFixed:
		return c.Value
	case DiscountTypePercentage:
		discount := totalPrice * c.Value / 100
		if c.MaxDiscount != nil && discount > *c.MaxDiscount {
			discount = *c.MaxDiscount
		}
		return discount
	}

	return 0
}

// Exhausted reports whether the usage limit has been reached.
func (c *Coupon) Exhausted() bool {
	return c.UsedCount >= c.UsageLimit
}
