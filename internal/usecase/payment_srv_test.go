package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testCardKey = "0123456789abcdef0123456789abcdef"

type paymentFixture struct {
	repo     *repository.Repository
	cards    *fakeCardRepo
	bookings *fakeBookingRepo
	users    *fakeUserRepo
	gw       *fakeGateway
	userID   uuid.UUID
}

func newPaymentFixture() *paymentFixture {
	userID := uuid.New()
	user := &entity.User{Name: "Guest", Email: "guest@example.com", Role: entity.RoleUser}
	user.ID = userID

	f := &paymentFixture{
		cards:    &fakeCardRepo{},
		bookings: &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
		users:    &fakeUserRepo{users: map[uuid.UUID]*entity.User{userID: user}},
		gw:       &fakeGateway{},
		userID:   userID,
	}
	f.repo = &repository.Repository{
		Card:     f.cards,
		Booking:  f.bookings,
		User:     f.users,
		Settings: &fakeSettingsRepo{},
	}
	return f
}

func newPaymentService(f *paymentFixture) PaymentService {
	config := &utils.Config{Cards: utils.CardConfig{EncryptionKey: testCardKey}}
	return NewPaymentService(f.repo, f.gw, config, zap.NewNop())
}

func (f *paymentFixture) pendingBooking(finalPrice float64) *entity.Booking {
	booking := &entity.Booking{
		OrderID:       utils.GenerateOrderID(),
		UserID:        f.userID,
		FinalPrice:    finalPrice,
		PaymentStatus: entity.PaymentStatusPending,
		Status:        entity.BookingStatusPending,
	}
	booking.ID = uuid.New()
	f.bookings.bookings[booking.ID] = booking
	return booking
}

func TestRegisterCardFirstIsDefault(t *testing.T) {
	f := newPaymentFixture()
	svc := newPaymentService(f)

	first, err := svc.RegisterCard(context.Background(), f.userID, &request.RegisterCardRequest{
		HolderName: "Guest",
		CardNumber: "4111111111111111",
		Expiry:     "12/30",
	})
	if err != nil {
		t.Fatalf("RegisterCard: %v", err)
	}
	if !first.IsDefault {
		t.Error("first card should be the default")
	}
	if !strings.HasSuffix(first.CardNumber, "1111") || strings.Contains(first.CardNumber, "4111111111") {
		t.Errorf("card number not masked: %q", first.CardNumber)
	}

	second, err := svc.RegisterCard(context.Background(), f.userID, &request.RegisterCardRequest{
		HolderName: "Guest",
		CardNumber: "5500000000000004",
		Expiry:     "11/29",
	})
	if err != nil {
		t.Fatalf("RegisterCard: %v", err)
	}
	if second.IsDefault {
		t.Error("second card should not be the default")
	}
}

func TestDeleteDefaultPromotesOldest(t *testing.T) {
	f := newPaymentFixture()
	svc := newPaymentService(f)

	for _, number := range []string{"4111111111111111", "5500000000000004", "340000000000009"} {
		if _, err := svc.RegisterCard(context.Background(), f.userID, &request.RegisterCardRequest{
			HolderName: "Guest",
			CardNumber: number,
			Expiry:     "12/30",
		}); err != nil {
			t.Fatalf("RegisterCard: %v", err)
		}
	}

	if err := svc.DeleteCard(context.Background(), f.userID, f.cards.cards[0].ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}

	if len(f.cards.cards) != 2 {
		t.Fatalf("cards left = %d, want 2", len(f.cards.cards))
	}
	if !f.cards.cards[0].IsDefault {
		t.Error("oldest remaining card should be promoted to default")
	}
	if f.cards.cards[1].IsDefault {
		t.Error("only one card may be the default")
	}
}

func TestDeleteCardOtherAccount(t *testing.T) {
	f := newPaymentFixture()
	svc := newPaymentService(f)

	card, err := svc.RegisterCard(context.Background(), f.userID, &request.RegisterCardRequest{
		HolderName: "Guest",
		CardNumber: "4111111111111111",
		Expiry:     "12/30",
	})
	if err != nil {
		t.Fatalf("RegisterCard: %v", err)
	}

	err = svc.DeleteCard(context.Background(), uuid.New(), uuid.MustParse(card.ID))
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("kind = %v, want authorization; err = %v", apperr.KindOf(err), err)
	}
}

func TestGetCardsMasksUndecryptable(t *testing.T) {
	f := newPaymentFixture()
	svc := newPaymentService(f)

	broken := &entity.PaymentCard{
		UserID:        f.userID,
		HolderName:    "Guest",
		CardNumberEnc: "not-an-encrypted-value",
		Expiry:        "12/30",
	}
	broken.ID = uuid.New()
	f.cards.cards = append(f.cards.cards, broken)

	cards, err := svc.GetCards(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetCards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	if cards[0].CardNumber != "****-****-****-****" {
		t.Errorf("card number = %q, want fully masked", cards[0].CardNumber)
	}
}

func TestConfirmPayment(t *testing.T) {
	f := newPaymentFixture()
	svc := newPaymentService(f)
	booking := f.pendingBooking(180000)

	resp, err := svc.ConfirmPayment(context.Background(), f.userID, &request.ConfirmPaymentRequest{
		OrderID:    booking.OrderID,
		PaymentKey: "pay_abc",
		Amount:     180000,
	})
	if err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}

	if resp.PaymentStatus != string(entity.PaymentStatusCompleted) {
		t.Errorf("payment status = %q, want completed", resp.PaymentStatus)
	}
	if resp.EarnedPoints != 1800 {
		t.Errorf("earned points = %d, want 1800 at the default 1%% rate", resp.EarnedPoints)
	}
	if booking.PaymentKey == nil || *booking.PaymentKey != "pay_abc" {
		t.Error("payment key not persisted")
	}
	if got := f.users.users[f.userID].Points; got != 1800 {
		t.Errorf("points balance = %d, want 1800", got)
	}

	// A second confirm of the same order conflicts.
	_, err = svc.ConfirmPayment(context.Background(), f.userID, &request.ConfirmPaymentRequest{
		OrderID:    booking.OrderID,
		PaymentKey: "pay_abc",
		Amount:     180000,
	})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("second confirm kind = %v, want conflict; err = %v", apperr.KindOf(err), err)
	}
}

func TestConfirmPaymentAmountMismatch(t *testing.T) {
	f := newPaymentFixture()
	svc := newPaymentService(f)
	booking := f.pendingBooking(180000)

	_, err := svc.ConfirmPayment(context.Background(), f.userID, &request.ConfirmPaymentRequest{
		OrderID:    booking.OrderID,
		PaymentKey: "pay_abc",
		Amount:     170000,
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation; err = %v", apperr.KindOf(err), err)
	}
	if booking.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("payment status = %v, want pending untouched", booking.PaymentStatus)
	}
}

func TestConfirmPaymentGatewayFailure(t *testing.T) {
	f := newPaymentFixture()
	f.gw.confirmErr = errors.New("gateway down")
	svc := newPaymentService(f)
	booking := f.pendingBooking(180000)

	_, err := svc.ConfirmPayment(context.Background(), f.userID, &request.ConfirmPaymentRequest{
		OrderID:    booking.OrderID,
		PaymentKey: "pay_abc",
		Amount:     180000,
	})
	if apperr.KindOf(err) != apperr.KindInternal {
		t.Fatalf("kind = %v, want internal; err = %v", apperr.KindOf(err), err)
	}
	if booking.PaymentStatus != entity.PaymentStatusFailed {
		t.Errorf("payment status = %v, want failed", booking.PaymentStatus)
	}
}

func TestCancelPaymentRefundsCompleted(t *testing.T) {
	f := newPaymentFixture()
	svc := newPaymentService(f)
	booking := f.pendingBooking(180000)

	// Not refundable while still pending.
	_, err := svc.CancelPayment(context.Background(), f.userID, &request.CancelPaymentRequest{
		OrderID: booking.OrderID,
		Reason:  "changed my mind",
	})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("kind = %v, want conflict; err = %v", apperr.KindOf(err), err)
	}

	key := "pay_abc"
	booking.PaymentStatus = entity.PaymentStatusCompleted
	booking.PaymentKey = &key

	resp, err := svc.CancelPayment(context.Background(), f.userID, &request.CancelPaymentRequest{
		OrderID: booking.OrderID,
		Reason:  "changed my mind",
	})
	if err != nil {
		t.Fatalf("CancelPayment: %v", err)
	}
	if resp.PaymentStatus != string(entity.PaymentStatusRefunded) {
		t.Errorf("payment status = %q, want refunded", resp.PaymentStatus)
	}
	if f.gw.cancels != 1 {
		t.Errorf("gateway cancels = %d, want 1", f.gw.cancels)
	}
}
