package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/notify"

	"github.com/google/uuid"
)

// The fakes embed the repository interface so only the methods a test
// exercises need an implementation; anything else panics loudly.

type fakeUserRepo struct {
	repository.UserRepository
	users       map[uuid.UUID]*entity.User
	refunded    int64
	spendFailed bool
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) SpendPoints(ctx context.Context, id uuid.UUID, amount int64) (bool, error) {
	user, ok := f.users[id]
	if !ok || user.Points < amount {
		f.spendFailed = true
		return false, nil
	}
	user.Points -= amount
	return true, nil
}

func (f *fakeUserRepo) AddPoints(ctx context.Context, id uuid.UUID, amount int64) error {
	if user, ok := f.users[id]; ok {
		user.Points += amount
	}
	f.refunded += amount
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if user, ok := f.users[id]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if user, ok := f.users[id]; ok {
		user.IsActive = active
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakeRoomRepo struct {
	repository.RoomRepository
	rooms    map[uuid.UUID]*entity.Room
	restored int
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) TakeRoom(ctx context.Context, id uuid.UUID) (bool, error) {
	room, ok := f.rooms[id]
	if !ok || room.AvailableRooms <= 0 {
		return false, nil
	}
	room.AvailableRooms--
	return true, nil
}

func (f *fakeRoomRepo) RestoreRoom(ctx context.Context, id uuid.UUID) (bool, error) {
	room, ok := f.rooms[id]
	if !ok || room.AvailableRooms >= room.TotalRooms {
		return false, nil
	}
	room.AvailableRooms++
	f.restored++
	return true, nil
}

type fakeHotelRepo struct {
	repository.HotelRepository
	hotels map[uuid.UUID]*entity.Hotel
}

func (f *fakeHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return f.hotels[id], nil
}

func (f *fakeHotelRepo) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	if hotel, ok := f.hotels[id]; ok {
		hotel.Rating = rating
		hotel.ReviewCount = reviewCount
	}
	return nil
}

type fakeCouponRepo struct {
	repository.CouponRepository
	coupons    map[string]*entity.Coupon
	valid      []*entity.Coupon
	redeems    int
	releases   int
	redeemFail bool
}

func (f *fakeCouponRepo) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return f.coupons[code], nil
}

func (f *fakeCouponRepo) FindValidForHotel(ctx context.Context, hotelID *uuid.UUID) ([]*entity.Coupon, error) {
	return f.valid, nil
}

func (f *fakeCouponRepo) Redeem(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.redeemFail {
		return false, nil
	}
	for _, c := range f.coupons {
		if c.ID == id {
			if c.Exhausted() {
				return false, nil
			}
			c.UsedCount++
			f.redeems++
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCouponRepo) Release(ctx context.Context, id uuid.UUID) error {
	f.releases++
	return nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	bookings  map[uuid.UUID]*entity.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.OrderID == orderID {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paymentKey *string) error {
	if b, ok := f.bookings[id]; ok {
		b.PaymentStatus = status
		b.PaymentKey = paymentKey
	}
	return nil
}

func (f *fakeBookingRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID, year, month, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if year != 0 && month != 0 {
			start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 1, 0)
			if !b.CheckIn.Before(end) || !b.CheckOut.After(start) {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		switch b.Status {
		case entity.BookingStatusPending, entity.BookingStatusConfirmed:
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return false, nil
	}
	switch booking.Status {
	case entity.BookingStatusPending, entity.BookingStatusConfirmed:
		booking.Status = entity.BookingStatusCancelled
		return true, nil
	}
	return false, nil
}

type fakeReviewRepo struct {
	repository.ReviewRepository
	reviews map[uuid.UUID]*entity.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.BookingID == bookingID && r.Status != entity.ReviewStatusDeleted {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	if r, ok := f.reviews[id]; ok {
		r.Status = status
	}
	return nil
}

func (f *fakeReviewRepo) ActiveStats(ctx context.Context, hotelID uuid.UUID) (float64, int, error) {
	var sum, count int
	for _, r := range f.reviews {
		if r.HotelID == hotelID && r.Status == entity.ReviewStatusActive {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *fakeReviewRepo) Report(ctx context.Context, id uuid.UUID, reporterID uuid.UUID, reason string) error {
	if r, ok := f.reviews[id]; ok {
		pending := entity.ReportStatusPending
		r.IsReported = true
		r.ReportReason = &reason
		r.ReportedBy = &reporterID
		r.ReportStatus = &pending
	}
	return nil
}

func (f *fakeReviewRepo) ResolveReport(ctx context.Context, id uuid.UUID, status entity.ReportStatus) error {
	if r, ok := f.reviews[id]; ok {
		r.ReportStatus = &status
	}
	return nil
}

type fakeCardRepo struct {
	repository.CardRepository
	cards []*entity.PaymentCard
}

func (f *fakeCardRepo) Create(ctx context.Context, card *entity.PaymentCard) error {
	f.cards = append(f.cards, card)
	return nil
}

func (f *fakeCardRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentCard, error) {
	for _, c := range f.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCardRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentCard, error) {
	var out []*entity.PaymentCard
	for _, c := range f.cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCardRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	cards, _ := f.FindByUserID(ctx, userID)
	return int64(len(cards)), nil
}

func (f *fakeCardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, c := range f.cards {
		if c.ID == id {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCardRepo) SetDefault(ctx context.Context, userID, cardID uuid.UUID) error {
	for _, c := range f.cards {
		if c.UserID == userID {
			c.IsDefault = c.ID == cardID
		}
	}
	return nil
}

type fakeGateway struct {
	confirmErr error
	cancelErr  error
	confirms   int
	cancels    int
}

func (f *fakeGateway) Confirm(ctx context.Context, paymentKey, orderID string, amount float64) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirms++
	return nil
}

func (f *fakeGateway) Cancel(ctx context.Context, paymentKey, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancels++
	return nil
}

type fakeSettingsRepo struct {
	repository.SettingsRepository
	settings *entity.SystemSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.SystemSettings, error) {
	if f.settings == nil {
		f.settings = entity.DefaultSettings()
	}
	return f.settings, nil
}

type fakeNotifier struct {
	sent []notify.Mail
}

func (f *fakeNotifier) Enqueue(ctx context.Context, mail notify.Mail) error {
	f.sent = append(f.sent, mail)
	return nil
}

type bookingFixture struct {
	repo     *repository.Repository
	users    *fakeUserRepo
	rooms    *fakeRoomRepo
	hotels   *fakeHotelRepo
	coupons  *fakeCouponRepo
	bookings *fakeBookingRepo
	notifier *fakeNotifier

	userID  uuid.UUID
	hotelID uuid.UUID
	roomID  uuid.UUID
}

func newBookingFixture() *bookingFixture {
	userID := uuid.New()
	hotelID := uuid.New()
	roomID := uuid.New()

	user := &entity.User{
		Name:   "Guest",
		Email:  "guest@example.com",
		Role:   entity.RoleUser,
		Points: 50000,
	}
	user.ID = userID

	hotel := &entity.Hotel{
		OwnerID: uuid.New(),
		Name:    "Harbor View",
		Status:  entity.HotelStatusActive,
	}
	hotel.ID = hotelID

	room := &entity.Room{
		HotelID:        hotelID,
		Name:           "Deluxe Double",
		Price:          100000,
		TotalRooms:     3,
		AvailableRooms: 3,
		Status:         entity.RoomStatusActive,
	}
	room.ID = roomID

	f := &bookingFixture{
		users:    &fakeUserRepo{users: map[uuid.UUID]*entity.User{userID: user}},
		rooms:    &fakeRoomRepo{rooms: map[uuid.UUID]*entity.Room{roomID: room}},
		hotels:   &fakeHotelRepo{hotels: map[uuid.UUID]*entity.Hotel{hotelID: hotel}},
		coupons:  &fakeCouponRepo{coupons: map[string]*entity.Coupon{}},
		bookings: &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
		notifier: &fakeNotifier{},
		userID:   userID,
		hotelID:  hotelID,
		roomID:   roomID,
	}
	f.repo = &repository.Repository{
		User:     f.users,
		Room:     f.rooms,
		Hotel:    f.hotels,
		Coupon:   f.coupons,
		Booking:  f.bookings,
		Settings: &fakeSettingsRepo{},
	}
	return f
}

func activeCoupon(code string, discountType entity.DiscountType, value float64) *entity.Coupon {
	coupon := &entity.Coupon{
		Code:         code,
		DiscountType: discountType,
		Value:        value,
		ValidFrom:    time.Now().Add(-24 * time.Hour),
		ValidTo:      time.Now().Add(24 * time.Hour),
		UsageLimit:   10,
		IssuerType:   entity.CouponIssuerAdmin,
		Status:       entity.CouponStatusActive,
	}
	coupon.ID = uuid.New()
	coupon.CreatedAt = time.Now()
	return coupon
}
