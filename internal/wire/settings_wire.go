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

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public maintenance status.
	r.Get("/api/system-settings", settingsHandler.GetPublic)

	r.Route("/api/system-settings/admin", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Get("/", settingsHandler.Get)
		r.Put("/", settingsHandler.Update)
	})
}
