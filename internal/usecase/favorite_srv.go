package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/notify"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	alertLockKey  = "alerts:price:lock"
	alertLockTTL  = 5 * time.Minute
	alertCooldown = 24 * time.Hour
)

type FavoriteService interface {
	Toggle(ctx context.Context, userID, hotelID uuid.UUID) (*response.ToggleFavoriteResponse, error)
	GetFavorites(ctx context.Context, userID uuid.UUID) ([]response.FavoriteResponse, error)
	SetPriceAlert(ctx context.Context, userID, hotelID uuid.UUID, req *request.PriceAlertRequest) error

	// CheckPriceAlerts runs one batch pass over all enabled alerts. Safe to
	// call concurrently; a redis lock makes overlapping runs no-ops.
	CheckPriceAlerts(ctx context.Context) error
}

type favoriteService struct {
	repo     *repository.Repository
	cache    *cache.Cache
	notifier notify.Notifier
	log      *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, c *cache.Cache, notifier notify.Notifier, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo:     repo,
		cache:    c,
		notifier: notifier,
		log:      log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) Toggle(ctx context.Context, userID, hotelID uuid.UUID) (*response.ToggleFavoriteResponse, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to find hotel", zap.Error(err))
		return nil, apperr.Internal("failed to find hotel", err)
	}
	if hotel == nil {
		return nil, apperr.NotFound("hotel not found")
	}

	existing, err := s.repo.Favorite.FindByUserAndHotel(ctx, userID, hotelID)
	if err != nil {
		s.log.Error("failed to find favorite", zap.Error(err))
		return nil, apperr.Internal("failed to find favorite", err)
	}

	if existing != nil {
		if err := s.repo.Favorite.Delete(ctx, userID, hotelID); err != nil {
			s.log.Error("failed to remove favorite", zap.Error(err))
			return nil, apperr.Internal("failed to remove favorite", err)
		}
		return &response.ToggleFavoriteResponse{HotelID: hotelID.String(), Favorited: false}, nil
	}

	fav := &entity.Favorite{
		UserID:  userID,
		HotelID: hotelID,
	}
	fav.ID = utils.GenerateUUID()
	fav.CreatedAt = time.Now()

	if err := s.repo.Favorite.Create(ctx, fav); err != nil {
		s.log.Error("failed to create favorite", zap.Error(err))
		return nil, apperr.Internal("failed to create favorite", err)
	}

	return &response.ToggleFavoriteResponse{HotelID: hotelID.String(), Favorited: true}, nil
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID uuid.UUID) ([]response.FavoriteResponse, error) {
	favorites, err := s.repo.Favorite.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to list favorites", zap.Error(err))
		return nil, apperr.Internal("failed to list favorites", err)
	}

	data := make([]response.FavoriteResponse, len(favorites))
	for i, fav := range favorites {
		hotel, err := s.repo.Hotel.FindByID(ctx, fav.HotelID)
		if err != nil {
			s.log.Error("failed to find hotel", zap.Error(err))
			return nil, apperr.Internal("failed to find hotel", err)
		}
		data[i] = response.FavoriteToResponse(fav, hotel)
	}

	return data, nil
}

func (s *favoriteService) SetPriceAlert(ctx context.Context, userID, hotelID uuid.UUID, req *request.PriceAlertRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}
	if req.Enabled && req.TargetPrice == nil {
		return apperr.Validation("target price is required to enable an alert")
	}

	fav, err := s.repo.Favorite.FindByUserAndHotel(ctx, userID, hotelID)
	if err != nil {
		s.log.Error("failed to find favorite", zap.Error(err))
		return apperr.Internal("failed to find favorite", err)
	}
	if fav == nil {
		return apperr.NotFound("hotel is not in favorites")
	}

	if err := s.repo.Favorite.UpdateAlert(ctx, fav.ID, req.Enabled, req.TargetPrice); err != nil {
		s.log.Error("failed to update alert", zap.Error(err))
		return apperr.Internal("failed to update alert", err)
	}

	return nil
}

func (s *favoriteService) CheckPriceAlerts(ctx context.Context) error {
	locked, err := s.cache.AcquireLock(ctx, alertLockKey, alertLockTTL)
	if err != nil {
		s.log.Error("failed to acquire alert lock", zap.Error(err))
		return fmt.Errorf("acquire alert lock: %w", err)
	}
	if !locked {
		s.log.Info("price alert run already in progress, skipping")
		return nil
	}
	defer func() {
		if err := s.cache.ReleaseLock(ctx, alertLockKey); err != nil {
			s.log.Warn("failed to release alert lock", zap.Error(err))
		}
	}()

	alerts, err := s.repo.Favorite.FindAlertEnabled(ctx)
	if err != nil {
		s.log.Error("failed to list alerts", zap.Error(err))
		return fmt.Errorf("list alerts: %w", err)
	}

	now := time.Now()
	notified := 0
	for _, fav := range alerts {
		if fav.TargetPrice == nil {
			continue
		}
		if fav.LastNotifiedAt != nil && now.Sub(*fav.LastNotifiedAt) < alertCooldown {
			continue
		}

		room, err := s.repo.Room.FindCheapestAvailable(ctx, fav.HotelID)
		if err != nil {
			s.log.Error("failed to find cheapest room", zap.Error(err), zap.String("hotel_id", fav.HotelID.String()))
			continue
		}
		if room == nil || room.Price > *fav.TargetPrice {
			continue
		}

		user, err := s.repo.User.FindByID(ctx, fav.UserID)
		if err != nil || user == nil {
			continue
		}
		hotel, err := s.repo.Hotel.FindByID(ctx, fav.HotelID)
		if err != nil || hotel == nil {
			continue
		}

		mail := notify.Mail{
			To:      user.Email,
			Subject: fmt.Sprintf("Price drop at %s", hotel.Name),
			Body: fmt.Sprintf("Hello %s,\n\n%s now has a room (%s) at %.0f, at or below your target of %.0f.",
				user.Name, hotel.Name, room.Name, room.Price, *fav.TargetPrice),
		}
		if err := s.notifier.Enqueue(ctx, mail); err != nil {
			s.log.Warn("failed to enqueue price alert", zap.Error(err))
			continue
		}

		if err := s.repo.Favorite.StampNotified(ctx, fav.ID, now); err != nil {
			s.log.Error("failed to stamp alert", zap.Error(err))
		}
		notified++
	}

	s.log.Info("price alert run finished", zap.Int("alerts", len(alerts)), zap.Int("notified", notified))
	return nil
}
