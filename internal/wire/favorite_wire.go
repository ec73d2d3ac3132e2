package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavorite(
	r chi.Router,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/favorites", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Get("/", favoriteHandler.GetFavorites)
		r.Post("/{hotelId}", favoriteHandler.Toggle)
		r.Put("/{hotelId}/alert", favoriteHandler.SetPriceAlert)
	})
}
