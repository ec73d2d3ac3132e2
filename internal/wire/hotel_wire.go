package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	roomHandler *adaptor.RoomHandler,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public catalog. Detail personalizes (view history) when signed in.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(config.JWT.Secret, repo.User, log))

		r.Get("/api/hotels", hotelHandler.Search)
		r.Get("/api/hotels/featured", hotelHandler.GetFeatured)
		r.Get("/api/hotels/{id}", hotelHandler.GetByID)
		r.Get("/api/hotels/{id}/rooms", roomHandler.GetByHotel)
		r.Get("/api/hotels/{id}/reviews", reviewHandler.GetByHotel)
	})

	// Business management.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleBusiness)))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Post("/api/hotels", hotelHandler.Create)
		r.Get("/api/hotels/mine", hotelHandler.GetOwnHotels)
		r.Put("/api/hotels/{id}", hotelHandler.Update)
		r.Delete("/api/hotels/{id}", hotelHandler.Delete)
	})
}
