package adaptor

import (
	"hotel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Hotel    *HotelHandler
	Room     *RoomHandler
	Booking  *BookingHandler
	Review   *ReviewHandler
	Coupon   *CouponHandler
	Payment  *PaymentHandler
	Favorite *FavoriteHandler
	Admin    *AdminHandler
	Settings *SettingsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Hotel:    NewHotelHandler(service.Hotel, log),
		Room:     NewRoomHandler(service.Room, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Review:   NewReviewHandler(service.Review, log),
		Coupon:   NewCouponHandler(service.Coupon, log),
		Payment:  NewPaymentHandler(service.Payment, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
		Admin:    NewAdminHandler(service.Admin, log),
		Settings: NewSettingsHandler(service.Settings, log),
	}
}
