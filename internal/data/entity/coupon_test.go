package entity

import "testing"

func TestCouponDiscount(t *testing.T) {
	maxDiscount := 15000.0

	tests := []struct {
		name   string
		coupon Coupon
		total  float64
		want   float64
	}{
		{
			name:   "fixed",
			coupon: Coupon{DiscountType: DiscountTypeFixed, Value: 5000},
			total:  100000,
			want:   5000,
		},
		{
			name:   "fixed below minimum purchase",
			coupon: Coupon{DiscountType: DiscountTypeFixed, Value: 5000, MinPurchase: 200000},
			total:  100000,
			want:   0,
		},
		{
			name:   "percentage",
			coupon: Coupon{DiscountType: DiscountTypePercentage, Value: 10},
			total:  100000,
			want:   10000,
		},
		{
			name:   "percentage capped",
			coupon: Coupon{DiscountType: DiscountTypePercentage, Value: 10, MaxDiscount: &maxDiscount},
			total:  500000,
			want:   15000,
		},
		{
			name:   "percentage under cap",
			coupon: Coupon{DiscountType: DiscountTypePercentage, Value: 10, MaxDiscount: &maxDiscount},
			total:  100000,
			want:   10000,
		},
		{
			name:   "exactly at minimum purchase",
			coupon: Coupon{DiscountType: DiscountTypeFixed, Value: 5000, MinPurchase: 100000},
			total:  100000,
			want:   5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.Discount(tt.total); got != tt.want {
				t.Errorf("Discount(%v) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestCouponExhausted(t *testing.T) {
	c := Coupon{UsageLimit: 2, UsedCount: 1}
	if c.Exhausted() {
		t.Error("one use left, should not be exhausted")
	}
	c.UsedCount = 2
	if !c.Exhausted() {
		t.Error("limit reached, should be exhausted")
	}
}
