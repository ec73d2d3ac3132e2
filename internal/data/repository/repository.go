package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Card     CardRepository
	Hotel    HotelRepository
	Room     RoomRepository
	Booking  BookingRepository
	Review   ReviewRepository
	Coupon   CouponRepository
	Favorite FavoriteRepository
	Activity ActivityRepository
	Settings SettingsRepository
	Reset    ResetRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Card:     NewCardRepository(db, log),
		Hotel:    NewHotelRepository(db, log),
		Room:     NewRoomRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Coupon:   NewCouponRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
		Activity: NewActivityRepository(db, log),
		Settings: NewSettingsRepository(db, log),
		Reset:    NewResetRepository(db, log),
	}
}
