package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newBookingService(f *bookingFixture) BookingService {
	return NewBookingService(f.repo, f.notifier, zap.NewNop())
}

func TestCreateBookingComputesPrice(t *testing.T) {
	f := newBookingFixture()
	svc := newBookingService(f)

	resp, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:     f.roomID.String(),
		CheckIn:    "2030-01-10",
		CheckOut:   "2030-01-12",
		Guests:     2,
		UsedPoints: 20000,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if resp.TotalPrice != 200000 {
		t.Errorf("total price = %v, want 200000", resp.TotalPrice)
	}
	if resp.FinalPrice != 180000 {
		t.Errorf("final price = %v, want 180000", resp.FinalPrice)
	}
	if resp.Nights != 2 {
		t.Errorf("nights = %d, want 2", resp.Nights)
	}

	if got := f.users.users[f.userID].Points; got != 30000 {
		t.Errorf("points balance = %d, want 30000", got)
	}
	if got := f.rooms.rooms[f.roomID].AvailableRooms; got != 2 {
		t.Errorf("available rooms = %d, want 2", got)
	}
	if len(f.bookings.bookings) != 1 {
		t.Fatalf("bookings stored = %d, want 1", len(f.bookings.bookings))
	}
	if len(f.notifier.sent) != 1 {
		t.Errorf("mails enqueued = %d, want 1", len(f.notifier.sent))
	}
}

func TestCreateBookingAppliesCoupon(t *testing.T) {
	f := newBookingFixture()
	coupon := activeCoupon("SAVE10", entity.DiscountTypePercentage, 10)
	f.coupons.coupons["SAVE10"] = coupon
	svc := newBookingService(f)

	resp, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:     f.roomID.String(),
		CheckIn:    "2030-01-10",
		CheckOut:   "2030-01-12",
		Guests:     2,
		CouponCode: "save10",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if resp.DiscountAmount != 20000 {
		t.Errorf("discount = %v, want 20000", resp.DiscountAmount)
	}
	if resp.FinalPrice != 180000 {
		t.Errorf("final price = %v, want 180000", resp.FinalPrice)
	}
	if coupon.UsedCount != 1 {
		t.Errorf("coupon used count = %d, want 1", coupon.UsedCount)
	}
}

func TestCreateBookingNoAvailability(t *testing.T) {
	f := newBookingFixture()
	f.rooms.rooms[f.roomID].AvailableRooms = 0
	svc := newBookingService(f)

	_, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:   f.roomID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   2,
	})
	if apperr.KindOf(err) != apperr.KindInventory {
		t.Fatalf("kind = %v, want inventory; err = %v", apperr.KindOf(err), err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Errorf("bookings stored = %d, want 0", len(f.bookings.bookings))
	}
}

func TestCreateBookingInsufficientPointsRestocks(t *testing.T) {
	f := newBookingFixture()
	f.users.users[f.userID].Points = 100
	svc := newBookingService(f)

	_, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:     f.roomID.String(),
		CheckIn:    "2030-01-10",
		CheckOut:   "2030-01-12",
		Guests:     2,
		UsedPoints: 20000,
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation; err = %v", apperr.KindOf(err), err)
	}
	if got := f.rooms.rooms[f.roomID].AvailableRooms; got != 3 {
		t.Errorf("available rooms = %d, want 3 after restock", got)
	}
}

func TestCreateBookingExhaustedCouponCompensates(t *testing.T) {
	f := newBookingFixture()
	coupon := activeCoupon("ONCE", entity.DiscountTypeFixed, 5000)
	f.coupons.coupons["ONCE"] = coupon
	svc := newBookingService(f)

	// The lookup passes; the conditional increment then loses the race.
	f.coupons.redeemFail = true

	_, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:     f.roomID.String(),
		CheckIn:    "2030-01-10",
		CheckOut:   "2030-01-12",
		Guests:     2,
		CouponCode: "ONCE",
		UsedPoints: 10000,
	})
	if apperr.KindOf(err) != apperr.KindUsageExceeded {
		t.Fatalf("kind = %v, want usage exceeded; err = %v", apperr.KindOf(err), err)
	}
	if got := f.rooms.rooms[f.roomID].AvailableRooms; got != 3 {
		t.Errorf("available rooms = %d, want 3 after compensation", got)
	}
	if got := f.users.users[f.userID].Points; got != 50000 {
		t.Errorf("points balance = %d, want 50000 after refund", got)
	}
}

func TestCreateBookingFreeFloorsAtZero(t *testing.T) {
	f := newBookingFixture()
	coupon := activeCoupon("BIG", entity.DiscountTypeFixed, 500000)
	f.coupons.coupons["BIG"] = coupon
	svc := newBookingService(f)

	resp, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:     f.roomID.String(),
		CheckIn:    "2030-01-10",
		CheckOut:   "2030-01-12",
		Guests:     2,
		CouponCode: "BIG",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if resp.FinalPrice != 0 {
		t.Errorf("final price = %v, want 0", resp.FinalPrice)
	}
}

func TestCancelBookingIdempotent(t *testing.T) {
	f := newBookingFixture()
	svc := newBookingService(f)

	resp, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:     f.roomID.String(),
		CheckIn:    "2030-01-10",
		CheckOut:   "2030-01-12",
		Guests:     2,
		UsedPoints: 20000,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if err := svc.CancelBooking(context.Background(), f.userID, string(entity.RoleUser), uuid.MustParse(resp.ID)); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if got := f.rooms.rooms[f.roomID].AvailableRooms; got != 3 {
		t.Errorf("available rooms = %d, want 3", got)
	}
	if got := f.users.users[f.userID].Points; got != 50000 {
		t.Errorf("points balance = %d, want 50000 after refund", got)
	}

	err = svc.CancelBooking(context.Background(), f.userID, string(entity.RoleUser), uuid.MustParse(resp.ID))
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("second cancel kind = %v, want conflict; err = %v", apperr.KindOf(err), err)
	}
	if f.rooms.restored != 1 {
		t.Errorf("restocks = %d, want exactly 1", f.rooms.restored)
	}
}

func TestCancelBookingDeadlinePassed(t *testing.T) {
	f := newBookingFixture()
	svc := newBookingService(f)

	booking := &entity.Booking{
		OrderID: "ORD-TEST",
		UserID:  f.userID,
		HotelID: f.hotelID,
		RoomID:  f.roomID,
		CheckIn: time.Now().Add(12 * time.Hour),
		Status:  entity.BookingStatusConfirmed,
	}
	booking.ID = f.roomID // any uuid works as a key
	f.bookings.bookings[booking.ID] = booking

	// Default settings hold a 24h deadline, already passed for a 12h-out stay.
	err := svc.CancelBooking(context.Background(), f.userID, string(entity.RoleUser), booking.ID)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation; err = %v", apperr.KindOf(err), err)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %v, want confirmed untouched", booking.Status)
	}
}

func TestCancelBookingOtherAccount(t *testing.T) {
	f := newBookingFixture()
	svc := newBookingService(f)

	resp, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:   f.roomID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	stranger := f.hotelID // any other uuid
	err = svc.CancelBooking(context.Background(), stranger, string(entity.RoleUser), uuid.MustParse(resp.ID))
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("kind = %v, want authorization; err = %v", apperr.KindOf(err), err)
	}
}

func TestGetOwnerBookingsMonthWindow(t *testing.T) {
	f := newBookingFixture()
	svc := newBookingService(f)

	_, err := svc.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		RoomID:   f.roomID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	ownerID := f.hotels.hotels[f.hotelID].OwnerID
	page := request.PaginatedRequest{Page: 1, PerPage: 10}

	resp, err := svc.GetOwnerBookings(context.Background(), ownerID, &request.OwnerBookingsRequest{
		Year: 2030, Month: 1, PaginatedRequest: page,
	})
	if err != nil {
		t.Fatalf("GetOwnerBookings: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("bookings in january = %d, want 1", len(resp.Data))
	}

	resp, err = svc.GetOwnerBookings(context.Background(), ownerID, &request.OwnerBookingsRequest{
		Year: 2030, Month: 3, PaginatedRequest: page,
	})
	if err != nil {
		t.Fatalf("GetOwnerBookings: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Fatalf("bookings in march = %d, want 0", len(resp.Data))
	}

	_, err = svc.GetOwnerBookings(context.Background(), ownerID, &request.OwnerBookingsRequest{
		Year: 2030, PaginatedRequest: page,
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation; err = %v", apperr.KindOf(err), err)
	}
}
