package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/gateway"
	"hotel-booking/internal/notify"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and the router.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	c *cache.Cache,
	notifier notify.Notifier,
	gw gateway.Client,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, c, notifier, gw, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Maintenance(service.Settings, logger))

	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireHotel(r, handler.Hotel, handler.Room, handler.Review, repo, config, logger)
	wireRoom(r, handler.Room, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireCoupon(r, handler.Coupon, repo, config, logger)
	wirePayment(r, handler.Payment, repo, config, logger)
	wireFavorite(r, handler.Favorite, repo, config, logger)
	wireAdmin(r, handler.Admin, handler.Review, handler.Favorite, repo, config, logger)
	wireSettings(r, handler.Settings, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
