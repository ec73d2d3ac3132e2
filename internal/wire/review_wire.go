package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Post("/api/reviews", reviewHandler.Create)
		r.Get("/api/reviews/mine", reviewHandler.GetOwnReviews)
		r.Put("/api/reviews/{id}", reviewHandler.Update)
		r.Delete("/api/reviews/{id}", reviewHandler.Delete)
		r.Post("/api/reviews/{id}/report", reviewHandler.Report)
	})
}
