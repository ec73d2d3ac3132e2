package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/apperr"

	"go.uber.org/zap"
)

func TestLookupCouponRejectsInactive(t *testing.T) {
	repo := &fakeCouponRepo{coupons: map[string]*entity.Coupon{}}
	coupon := activeCoupon("OFFSEASON", entity.DiscountTypeFixed, 1000)
	coupon.Status = entity.CouponStatusInactive
	repo.coupons["OFFSEASON"] = coupon

	_, err := lookupCoupon(context.Background(), repo, "offseason", nil, zap.NewNop())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("kind = %v, want not found; err = %v", apperr.KindOf(err), err)
	}
}

func TestLookupCouponScopedToHotel(t *testing.T) {
	repo := &fakeCouponRepo{coupons: map[string]*entity.Coupon{}}
	coupon := activeCoupon("LOCAL", entity.DiscountTypeFixed, 1000)
	hotelID := coupon.ID
	coupon.HotelID = &hotelID
	repo.coupons["LOCAL"] = coupon

	if _, err := lookupCoupon(context.Background(), repo, "LOCAL", &hotelID, zap.NewNop()); err != nil {
		t.Fatalf("matching hotel: %v", err)
	}

	other := activeCoupon("X", entity.DiscountTypeFixed, 1).ID
	_, err := lookupCoupon(context.Background(), repo, "LOCAL", &other, zap.NewNop())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("kind = %v, want not found; err = %v", apperr.KindOf(err), err)
	}
}

func TestBestCouponPicksGreatestDiscount(t *testing.T) {
	small := activeCoupon("SMALL", entity.DiscountTypeFixed, 3000)
	big := activeCoupon("BIG", entity.DiscountTypePercentage, 10)
	repo := &fakeCouponRepo{valid: []*entity.Coupon{small, big}}

	best, discount, err := bestCoupon(context.Background(), repo, nil, 100000, zap.NewNop())
	if err != nil {
		t.Fatalf("bestCoupon: %v", err)
	}
	if best == nil || best.Code != "BIG" {
		t.Fatalf("best = %+v, want BIG", best)
	}
	if discount != 10000 {
		t.Errorf("discount = %v, want 10000", discount)
	}
}

func TestBestCouponEarliestWinsTies(t *testing.T) {
	first := activeCoupon("FIRST", entity.DiscountTypeFixed, 5000)
	second := activeCoupon("SECOND", entity.DiscountTypeFixed, 5000)
	repo := &fakeCouponRepo{valid: []*entity.Coupon{first, second}}

	best, _, err := bestCoupon(context.Background(), repo, nil, 100000, zap.NewNop())
	if err != nil {
		t.Fatalf("bestCoupon: %v", err)
	}
	if best == nil || best.Code != "FIRST" {
		t.Fatalf("best = %+v, want FIRST on a tie", best)
	}
}

func TestBestCouponSkipsExhaustedAndBelowMinimum(t *testing.T) {
	burned := activeCoupon("BURNED", entity.DiscountTypeFixed, 9000)
	burned.UsedCount = burned.UsageLimit
	picky := activeCoupon("PICKY", entity.DiscountTypeFixed, 8000)
	picky.MinPurchase = 1000000
	usable := activeCoupon("USABLE", entity.DiscountTypeFixed, 2000)
	repo := &fakeCouponRepo{valid: []*entity.Coupon{burned, picky, usable}}

	best, discount, err := bestCoupon(context.Background(), repo, nil, 100000, zap.NewNop())
	if err != nil {
		t.Fatalf("bestCoupon: %v", err)
	}
	if best == nil || best.Code != "USABLE" {
		t.Fatalf("best = %+v, want USABLE", best)
	}
	if discount != 2000 {
		t.Errorf("discount = %v, want 2000", discount)
	}
}

func TestBestCouponNoneUsable(t *testing.T) {
	repo := &fakeCouponRepo{}

	best, discount, err := bestCoupon(context.Background(), repo, nil, 100000, zap.NewNop())
	if err != nil {
		t.Fatalf("bestCoupon: %v", err)
	}
	if best != nil || discount != 0 {
		t.Fatalf("best = %+v discount = %v, want none", best, discount)
	}
}
