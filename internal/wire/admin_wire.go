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

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	reviewHandler *adaptor.ReviewHandler,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Get("/stats", adminHandler.GetStats)
		r.Get("/activity", adminHandler.GetActivityLogs)

		r.Get("/users", adminHandler.GetUsers)
		r.Put("/users/{id}/block", adminHandler.BlockUser)
		r.Put("/users/{id}/unblock", adminHandler.UnblockUser)
		r.Delete("/users/{id}", adminHandler.DeleteUser)

		r.Get("/business-applications", adminHandler.GetBusinessApplications)
		r.Put("/business-applications/{id}/approve", adminHandler.ApproveBusiness)
		r.Put("/business-applications/{id}/reject", adminHandler.RejectBusiness)

		r.Put("/hotels/{id}/approve", adminHandler.ApproveHotel)
		r.Put("/hotels/{id}/deactivate", adminHandler.DeactivateHotel)

		r.Get("/bookings", adminHandler.GetBookings)
		r.Delete("/bookings/{id}", adminHandler.DeleteBooking)

		r.Get("/reviews/reported", adminHandler.GetReportedReviews)
		r.Put("/reviews/{id}/resolve", reviewHandler.ResolveReport)

		r.Post("/alerts/run", favoriteHandler.CheckAlerts)
	})
}
