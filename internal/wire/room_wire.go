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

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleBusiness)))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Post("/", roomHandler.Create)
		r.Put("/{id}", roomHandler.Update)
		r.Delete("/{id}", roomHandler.Delete)
	})
}
