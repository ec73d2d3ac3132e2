package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/gateway"
	"hotel-booking/internal/notify"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Hotel    HotelService
	Room     RoomService
	Booking  BookingService
	Review   ReviewService
	Coupon   CouponService
	Payment  PaymentService
	Favorite FavoriteService
	Admin    AdminService
	Settings SettingsService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	c *cache.Cache,
	notifier notify.Notifier,
	gw gateway.Client,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, notifier, log),
		User:     NewUserService(repo, log),
		Hotel:    NewHotelService(repo, c, log),
		Room:     NewRoomService(repo, log),
		Booking:  NewBookingService(repo, notifier, log),
		Review:   NewReviewService(repo, log),
		Coupon:   NewCouponService(repo, log),
		Payment:  NewPaymentService(repo, gw, config, log),
		Favorite: NewFavoriteService(repo, c, notifier, log),
		Admin:    NewAdminService(repo, log),
		Settings: NewSettingsService(repo, c, log),
	}
}
