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

func wireCoupon(
	r chi.Router,
	couponHandler *adaptor.CouponHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Lookup routes for signed-in shoppers.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))

		r.Get("/api/coupons/best", couponHandler.BestDiscount)
		r.Get("/api/coupons/code/{code}", couponHandler.GetByCode)
	})

	// Issuer management.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin), string(entity.RoleBusiness)))
		r.Use(middleware.Activity(repo.Activity, log))

		r.Get("/api/coupons", couponHandler.List)
		r.Post("/api/coupons", couponHandler.Create)
		r.Put("/api/coupons/{id}", couponHandler.Update)
		r.Delete("/api/coupons/{id}", couponHandler.Delete)
	})
}
