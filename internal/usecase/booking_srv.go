package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/notify"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, role string, bookingID uuid.UUID) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetOwnerBookings(ctx context.Context, ownerID uuid.UUID, req *request.OwnerBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	CancelBooking(ctx context.Context, userID uuid.UUID, role string, bookingID uuid.UUID) error
	ApproveBooking(ctx context.Context, ownerID, bookingID uuid.UUID) error
	RejectBooking(ctx context.Context, ownerID, bookingID uuid.UUID, req *request.RejectBookingRequest) error
}

type bookingService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("create booking validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	roomID, err := utils.ParseUUID(req.RoomID)
	if err != nil {
		return nil, apperr.Validation("invalid room id")
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return nil, apperr.Validation("invalid check_in date")
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return nil, apperr.Validation("invalid check_out date")
	}
	if !checkOut.After(checkIn) {
		return nil, apperr.Validation("check_out must be after check_in")
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("failed to find room", zap.Error(err))
		return nil, apperr.Internal("failed to find room", err)
	}
	if room == nil || room.Status != entity.RoomStatusActive {
		return nil, apperr.NotFound("room not found")
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, room.HotelID)
	if err != nil {
		s.log.Error("failed to find hotel", zap.Error(err))
		return nil, apperr.Internal("failed to find hotel", err)
	}
	if hotel == nil || hotel.Status != entity.HotelStatusActive {
		return nil, apperr.NotFound("hotel not accepting bookings")
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	totalPrice := room.Price * float64(nights)
	if req.TotalPriceOverride > 0 {
		totalPrice = req.TotalPriceOverride
	}

	var coupon *entity.Coupon
	var couponDiscount float64
	if req.CouponCode != "" {
		coupon, err = lookupCoupon(ctx, s.repo.Coupon, req.CouponCode, &hotel.ID, s.log)
		if err != nil {
			return nil, err
		}
		couponDiscount = coupon.Discount(totalPrice)
		if couponDiscount <= 0 {
			return nil, apperr.Validation("purchase does not meet the coupon minimum")
		}
	}

	// Inventory first: conditional decrement refuses once available_rooms
	// hits zero, so concurrent bookings can never oversell.
	taken, err := s.repo.Room.TakeRoom(ctx, roomID)
	if err != nil {
		s.log.Error("failed to take room", zap.Error(err))
		return nil, apperr.Internal("failed to reserve room", err)
	}
	if !taken {
		return nil, apperr.Inventory("no rooms available")
	}

	if req.UsedPoints > 0 {
		ok, err := s.repo.User.SpendPoints(ctx, userID, req.UsedPoints)
		if err != nil {
			s.restock(ctx, roomID)
			s.log.Error("failed to spend points", zap.Error(err))
			return nil, apperr.Internal("failed to spend points", err)
		}
		if !ok {
			s.restock(ctx, roomID)
			return nil, apperr.Validation("insufficient points balance")
		}
	}

	if coupon != nil {
		redeemed, err := s.repo.Coupon.Redeem(ctx, coupon.ID)
		if err != nil {
			s.compensate(ctx, roomID, userID, req.UsedPoints, nil)
			s.log.Error("failed to redeem coupon", zap.Error(err))
			return nil, apperr.Internal("failed to redeem coupon", err)
		}
		if !redeemed {
			s.compensate(ctx, roomID, userID, req.UsedPoints, nil)
			return nil, apperr.UsageExceeded("coupon usage limit reached")
		}
	}

	discount := couponDiscount + float64(req.UsedPoints)
	finalPrice := totalPrice - discount
	if finalPrice < 0 {
		finalPrice = 0
	}

	booking := &entity.Booking{
		OrderID:        utils.GenerateOrderID(),
		UserID:         userID,
		HotelID:        hotel.ID,
		RoomID:         roomID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Guests:         req.Guests,
		TotalPrice:     totalPrice,
		DiscountAmount: discount,
		FinalPrice:     finalPrice,
		UsedPoints:     req.UsedPoints,
		PaymentStatus:  entity.PaymentStatusPending,
		Status:         entity.BookingStatusPending,
		ApprovalStatus: entity.ApprovalStatusPending,
	}
	if coupon != nil {
		booking.CouponID = &coupon.ID
	}
	booking.ID = utils.GenerateUUID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		var couponID *uuid.UUID
		if coupon != nil {
			couponID = &coupon.ID
		}
		s.compensate(ctx, roomID, userID, req.UsedPoints, couponID)
		s.log.Error("failed to create booking", zap.Error(err))
		return nil, apperr.Internal("failed to create booking", err)
	}

	s.log.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.Float64("final_price", finalPrice))

	// Confirmation mail is fire-and-forget.
	s.sendBookingMail(ctx, userID, booking, hotel.Name, "Booking received",
		"your booking %s at %s from %s to %s is awaiting confirmation.")

	resp := response.BookingToResponse(booking, hotel.Name, room.Name)
	return &resp, nil
}

func (s *bookingService) GetByID(ctx context.Context, userID uuid.UUID, role string, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, hotel, room, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch {
	case booking.UserID == userID:
	case role == string(entity.RoleAdmin):
	case role == string(entity.RoleBusiness) && hotel != nil && hotel.OwnerID == userID:
	default:
		return nil, apperr.Authorization("booking belongs to another account")
	}

	resp := response.BookingToResponse(booking, hotelName(hotel), roomName(room))
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list bookings", zap.Error(err))
		return nil, apperr.Internal("failed to list bookings", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to count bookings", zap.Error(err))
		return nil, apperr.Internal("failed to count bookings", err)
	}

	data, err := s.toResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetOwnerBookings(ctx context.Context, ownerID uuid.UUID, req *request.OwnerBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}
	if (req.Year == 0) != (req.Month == 0) {
		return nil, apperr.Validation("year and month must be given together")
	}

	bookings, err := s.repo.Booking.FindByOwner(ctx, ownerID, req.Year, req.Month, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list owner bookings", zap.Error(err))
		return nil, apperr.Internal("failed to list bookings", err)
	}

	data, err := s.toResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(data))), nil
}

// CancelBooking is idempotent: only the first cancel moves the status, and
// only that transition restocks the room and refunds points.
func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, role string, bookingID uuid.UUID) error {
	booking, hotel, _, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	isOwner := role == string(entity.RoleBusiness) && hotel != nil && hotel.OwnerID == userID
	isAdmin := role == string(entity.RoleAdmin)
	if booking.UserID != userID && !isOwner && !isAdmin {
		return apperr.Authorization("booking belongs to another account")
	}

	// Guests are bound by the cancellation deadline; staff are not.
	if booking.UserID == userID && !isOwner && !isAdmin {
		settings, err := s.repo.Settings.Get(ctx)
		if err != nil {
			s.log.Error("failed to load settings", zap.Error(err))
			return apperr.Internal("failed to load settings", err)
		}
		deadline := booking.CheckIn.Add(-time.Duration(settings.CancelDeadlineHours) * time.Hour)
		if time.Now().After(deadline) {
			return apperr.Validation("cancellation deadline has passed")
		}
	}

	cancelled, err := s.repo.Booking.Cancel(ctx, bookingID)
	if err != nil {
		s.log.Error("failed to cancel booking", zap.Error(err))
		return apperr.Internal("failed to cancel booking", err)
	}
	if !cancelled {
		return apperr.Conflict("booking is already cancelled or finished")
	}

	s.releaseBookingResources(ctx, booking)

	s.log.Info("booking cancelled", zap.String("booking_id", bookingID.String()))

	s.sendBookingMail(ctx, booking.UserID, booking, hotelName(hotel), "Booking cancelled",
		"your booking %s at %s from %s to %s has been cancelled.")

	return nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, ownerID, bookingID uuid.UUID) error {
	booking, hotel, _, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if hotel == nil || hotel.OwnerID != ownerID {
		return apperr.Authorization("booking belongs to another hotel")
	}
	if booking.ApprovalStatus != entity.ApprovalStatusPending {
		return apperr.Conflict("booking has already been decided")
	}

	if err := s.repo.Booking.Approve(ctx, bookingID, ownerID); err != nil {
		s.log.Error("failed to approve booking", zap.Error(err))
		return apperr.Internal("failed to approve booking", err)
	}

	s.log.Info("booking approved", zap.String("booking_id", bookingID.String()))

	s.sendBookingMail(ctx, booking.UserID, booking, hotel.Name, "Booking confirmed",
		"your booking %s at %s from %s to %s is confirmed.")

	return nil
}

func (s *bookingService) RejectBooking(ctx context.Context, ownerID, bookingID uuid.UUID, req *request.RejectBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	booking, hotel, _, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if hotel == nil || hotel.OwnerID != ownerID {
		return apperr.Authorization("booking belongs to another hotel")
	}
	if booking.ApprovalStatus != entity.ApprovalStatusPending {
		return apperr.Conflict("booking has already been decided")
	}

	if err := s.repo.Booking.Reject(ctx, bookingID, ownerID, req.Reason); err != nil {
		s.log.Error("failed to reject booking", zap.Error(err))
		return apperr.Internal("failed to reject booking", err)
	}

	s.releaseBookingResources(ctx, booking)

	s.log.Info("booking rejected", zap.String("booking_id", bookingID.String()), zap.String("reason", req.Reason))

	s.sendBookingMail(ctx, booking.UserID, booking, hotel.Name, "Booking rejected",
		"your booking %s at %s from %s to %s was rejected.")

	return nil
}

// releaseBookingResources restocks the room, refunds spent points and frees
// the coupon use. Failures are logged; the status transition already won.
func (s *bookingService) releaseBookingResources(ctx context.Context, booking *entity.Booking) {
	if _, err := s.repo.Room.RestoreRoom(ctx, booking.RoomID); err != nil {
		s.log.Error("failed to restore room", zap.Error(err), zap.String("room_id", booking.RoomID.String()))
	}
	if booking.UsedPoints > 0 {
		if err := s.repo.User.AddPoints(ctx, booking.UserID, booking.UsedPoints); err != nil {
			s.log.Error("failed to refund points", zap.Error(err), zap.String("user_id", booking.UserID.String()))
		}
	}
	if booking.CouponID != nil {
		if err := s.repo.Coupon.Release(ctx, *booking.CouponID); err != nil {
			s.log.Error("failed to release coupon", zap.Error(err), zap.String("coupon_id", booking.CouponID.String()))
		}
	}
}

func (s *bookingService) restock(ctx context.Context, roomID uuid.UUID) {
	if _, err := s.repo.Room.RestoreRoom(ctx, roomID); err != nil {
		s.log.Error("failed to restore room", zap.Error(err), zap.String("room_id", roomID.String()))
	}
}

func (s *bookingService) compensate(ctx context.Context, roomID, userID uuid.UUID, usedPoints int64, couponID *uuid.UUID) {
	s.restock(ctx, roomID)
	if usedPoints > 0 {
		if err := s.repo.User.AddPoints(ctx, userID, usedPoints); err != nil {
			s.log.Error("failed to refund points", zap.Error(err))
		}
	}
	if couponID != nil {
		if err := s.repo.Coupon.Release(ctx, *couponID); err != nil {
			s.log.Error("failed to release coupon", zap.Error(err))
		}
	}
}

func (s *bookingService) loadBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, *entity.Hotel, *entity.Room, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("failed to find booking", zap.Error(err))
		return nil, nil, nil, apperr.Internal("failed to find booking", err)
	}
	if booking == nil {
		return nil, nil, nil, apperr.NotFound("booking not found")
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, booking.HotelID)
	if err != nil {
		s.log.Error("failed to find hotel", zap.Error(err))
		return nil, nil, nil, apperr.Internal("failed to find hotel", err)
	}

	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil {
		s.log.Error("failed to find room", zap.Error(err))
		return nil, nil, nil, apperr.Internal("failed to find room", err)
	}

	return booking, hotel, room, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) ([]response.BookingResponse, error) {
	hotels := make(map[uuid.UUID]string)
	rooms := make(map[uuid.UUID]string)

	data := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		if _, ok := hotels[b.HotelID]; !ok {
			hotel, err := s.repo.Hotel.FindByID(ctx, b.HotelID)
			if err != nil {
				s.log.Error("failed to find hotel", zap.Error(err))
				return nil, apperr.Internal("failed to find hotel", err)
			}
			hotels[b.HotelID] = hotelName(hotel)
		}
		if _, ok := rooms[b.RoomID]; !ok {
			room, err := s.repo.Room.FindByID(ctx, b.RoomID)
			if err != nil {
				s.log.Error("failed to find room", zap.Error(err))
				return nil, apperr.Internal("failed to find room", err)
			}
			rooms[b.RoomID] = roomName(room)
		}
		data[i] = response.BookingToResponse(b, hotels[b.HotelID], rooms[b.RoomID])
	}

	return data, nil
}

func (s *bookingService) sendBookingMail(ctx context.Context, userID uuid.UUID, booking *entity.Booking, hotelName, subject, bodyFormat string) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Warn("failed to find user for mail", zap.Error(err))
		return
	}

	mail := notify.Mail{
		To:      user.Email,
		Subject: subject,
		Body: fmt.Sprintf("Hello %s,\n\n", user.Name) + fmt.Sprintf(bodyFormat,
			booking.OrderID, hotelName,
			booking.CheckIn.Format("2006-01-02"), booking.CheckOut.Format("2006-01-02")),
	}
	if err := s.notifier.Enqueue(ctx, mail); err != nil {
		s.log.Warn("failed to enqueue booking mail", zap.Error(err))
	}
}

func hotelName(hotel *entity.Hotel) string {
	if hotel == nil {
		return ""
	}
	return hotel.Name
}

func roomName(room *entity.Room) string {
	if room == nil {
		return ""
	}
	return room.Name
}
