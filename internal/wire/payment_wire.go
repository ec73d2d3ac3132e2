package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Post("/cards", paymentHandler.RegisterCard)
		r.Get("/cards", paymentHandler.GetCards)
		r.Patch("/cards/{id}/default", paymentHandler.SetDefaultCard)
		r.Delete("/cards/{id}", paymentHandler.DeleteCard)

		r.Post("/confirm", paymentHandler.Confirm)
		r.Post("/cancel", paymentHandler.Cancel)
	})
}
