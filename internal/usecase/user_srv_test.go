package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func TestCloseAccountWithActiveBookingsDeactivates(t *testing.T) {
	f := newBookingFixture()
	f.users.users[f.userID].IsActive = true
	svc := NewUserService(f.repo, zap.NewNop())

	booking := &entity.Booking{
		UserID: f.userID,
		Status: entity.BookingStatusConfirmed,
	}
	booking.ID = f.hotelID
	f.bookings.bookings[booking.ID] = booking

	if err := svc.CloseAccount(context.Background(), f.userID); err != nil {
		t.Fatalf("CloseAccount: %v", err)
	}

	user := f.users.users[f.userID]
	if user == nil {
		t.Fatal("user deleted despite active bookings")
	}
	if user.IsActive {
		t.Error("user should be deactivated")
	}
}

func TestCloseAccountWithoutBookingsDeletes(t *testing.T) {
	f := newBookingFixture()
	svc := NewUserService(f.repo, zap.NewNop())

	if err := svc.CloseAccount(context.Background(), f.userID); err != nil {
		t.Fatalf("CloseAccount: %v", err)
	}

	if f.users.users[f.userID] != nil {
		t.Error("user should be deleted with no active bookings")
	}
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	f := newBookingFixture()
	hash, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	f.users.users[f.userID].PasswordHash = hash
	svc := NewUserService(f.repo, zap.NewNop())

	err = svc.ChangePassword(context.Background(), f.userID, &request.ChangePasswordRequest{
		CurrentPassword: "wrong-guess",
		NewPassword:     "batterystaple1",
	})
	if apperr.KindOf(err) != apperr.KindAuthentication {
		t.Fatalf("kind = %v, want authentication; err = %v", apperr.KindOf(err), err)
	}

	if err := svc.ChangePassword(context.Background(), f.userID, &request.ChangePasswordRequest{
		CurrentPassword: "correct-horse",
		NewPassword:     "batterystaple1",
	}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
}
