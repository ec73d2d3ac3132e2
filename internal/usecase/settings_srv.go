package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	settingsCacheKey = "settings:system"
	settingsCacheTTL = 30 * time.Second
)

type SettingsService interface {
	// Get returns the full settings. The maintenance middleware calls this
	// on every request, so reads go through a short-TTL redis cache.
	Get(ctx context.Context) (*response.SettingsResponse, error)
	Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error)

	// MaintenanceStatus satisfies the maintenance middleware.
	MaintenanceStatus(ctx context.Context) (bool, string, error)
}

type settingsService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewSettingsService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) SettingsService {
	return &settingsService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) Get(ctx context.Context) (*response.SettingsResponse, error) {
	var cached response.SettingsResponse
	if err := s.cache.Get(ctx, settingsCacheKey, &cached); err == nil {
		return &cached, nil
	} else if !cache.IsMiss(err) {
		s.log.Warn("settings cache read failed", zap.Error(err))
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.log.Error("failed to load settings", zap.Error(err))
		return nil, apperr.Internal("failed to load settings", err)
	}

	resp := response.SettingsToResponse(settings)
	if err := s.cache.Set(ctx, settingsCacheKey, resp, settingsCacheTTL); err != nil {
		s.log.Warn("settings cache write failed", zap.Error(err))
	}

	return &resp, nil
}

func (s *settingsService) MaintenanceStatus(ctx context.Context) (bool, string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, "", err
	}
	return settings.MaintenanceMode, settings.MaintenanceMessage, nil
}

func (s *settingsService) Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	settings := &entity.SystemSettings{
		ID:                  1,
		MaintenanceMode:     req.MaintenanceMode,
		MaintenanceMessage:  req.MaintenanceMessage,
		PointsEarnRate:      req.PointsEarnRate,
		CancelDeadlineHours: req.CancelDeadlineHours,
		UpdatedAt:           time.Now(),
	}

	if err := s.repo.Settings.Update(ctx, settings); err != nil {
		s.log.Error("failed to update settings", zap.Error(err))
		return nil, apperr.Internal("failed to update settings", err)
	}

	if err := s.cache.Delete(ctx, settingsCacheKey); err != nil {
		s.log.Warn("failed to invalidate settings cache", zap.Error(err))
	}

	s.log.Info("settings updated", zap.Bool("maintenance", req.MaintenanceMode))

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}
