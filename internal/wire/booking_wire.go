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

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Guest routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Post("/api/bookings", bookingHandler.Create)
		r.Get("/api/bookings/my", bookingHandler.GetUserBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetByID)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.Cancel)
	})

	// Business approval workflow.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleBusiness)))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Get("/api/bookings/owner", bookingHandler.GetOwnerBookings)
		r.Put("/api/bookings/{id}/approve", bookingHandler.Approve)
		r.Put("/api/bookings/{id}/reject", bookingHandler.Reject)
	})
}
