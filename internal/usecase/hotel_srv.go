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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	featuredCacheKey = "hotels:featured"
	featuredCacheTTL = 5 * time.Minute
	featuredLimit    = 10
)

type HotelService interface {
	Search(ctx context.Context, req *request.SearchHotelsRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	GetByID(ctx context.Context, hotelID uuid.UUID, viewerID *uuid.UUID) (*response.HotelDetailResponse, error)
	GetFeatured(ctx context.Context) ([]response.HotelResponse, error)

	Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	Update(ctx context.Context, ownerID, hotelID uuid.UUID, req *request.UpdateHotelRequest) (*response.HotelResponse, error)
	Delete(ctx context.Context, ownerID, hotelID uuid.UUID) error
	GetOwnHotels(ctx context.Context, ownerID uuid.UUID) ([]response.HotelResponse, error)
}

type hotelService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewHotelService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) HotelService {
	return &hotelService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) Search(ctx context.Context, req *request.SearchHotelsRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	filter := repository.HotelFilter{
		City:      req.City,
		HotelType: req.HotelType,
		Amenities: req.Amenities,
		MinRating: req.MinRating,
	}

	hotels, err := s.repo.Hotel.Search(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to search hotels", zap.Error(err))
		return nil, apperr.Internal("failed to search hotels", err)
	}

	total, err := s.repo.Hotel.CountSearch(ctx, filter)
	if err != nil {
		s.log.Error("failed to count hotels", zap.Error(err))
		return nil, apperr.Internal("failed to count hotels", err)
	}

	data := make([]response.HotelResponse, len(hotels))
	for i, h := range hotels {
		data[i] = response.HotelToResponse(h)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *hotelService) GetByID(ctx context.Context, hotelID uuid.UUID, viewerID *uuid.UUID) (*response.HotelDetailResponse, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to find hotel", zap.Error(err))
		return nil, apperr.Internal("failed to find hotel", err)
	}
	if hotel == nil {
		return nil, apperr.NotFound("hotel not found")
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to list rooms", zap.Error(err))
		return nil, apperr.Internal("failed to list rooms", err)
	}

	// View history is best-effort and must never fail the request.
	if viewerID != nil {
		view := &entity.ViewHistory{
			ID:       utils.GenerateUUID(),
			UserID:   *viewerID,
			HotelID:  hotelID,
			ViewedAt: time.Now(),
		}
		if err := s.repo.Activity.CreateView(ctx, view); err != nil {
			s.log.Warn("failed to record view", zap.Error(err))
		}
	}

	detail := &response.HotelDetailResponse{
		HotelResponse: response.HotelToResponse(hotel),
		Rooms:         make([]response.RoomResponse, len(rooms)),
	}
	for i, r := range rooms {
		detail.Rooms[i] = response.RoomToResponse(r)
	}

	return detail, nil
}

func (s *hotelService) GetFeatured(ctx context.Context) ([]response.HotelResponse, error) {
	var cached []response.HotelResponse
	if err := s.cache.Get(ctx, featuredCacheKey, &cached); err == nil {
		return cached, nil
	} else if !cache.IsMiss(err) {
		s.log.Warn("featured cache read failed", zap.Error(err))
	}

	hotels, err := s.repo.Hotel.FindFeatured(ctx, featuredLimit)
	if err != nil {
		s.log.Error("failed to list featured hotels", zap.Error(err))
		return nil, apperr.Internal("failed to list featured hotels", err)
	}

	data := make([]response.HotelResponse, len(hotels))
	for i, h := range hotels {
		data[i] = response.HotelToResponse(h)
	}

	if err := s.cache.Set(ctx, featuredCacheKey, data, featuredCacheTTL); err != nil {
		s.log.Warn("featured cache write failed", zap.Error(err))
	}

	return data, nil
}

func (s *hotelService) Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to find owner", zap.Error(err))
		return nil, apperr.Internal("failed to find owner", err)
	}
	if owner == nil {
		return nil, apperr.NotFound("user not found")
	}
	if owner.Role != entity.RoleBusiness || owner.BusinessStatus == nil || *owner.BusinessStatus != entity.BusinessApproved {
		return nil, apperr.Authorization("only approved business accounts can list hotels")
	}

	hotel := &entity.Hotel{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Images:      req.Images,
		Amenities:   req.Amenities,
		HotelType:   entity.HotelType(req.HotelType),
		Status:      entity.HotelStatusPending,
	}
	hotel.ID = utils.GenerateUUID()
	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = hotel.CreatedAt

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		s.log.Error("failed to create hotel", zap.Error(err))
		return nil, apperr.Internal("failed to create hotel", err)
	}

	s.log.Info("hotel created", zap.String("hotel_id", hotel.ID.String()), zap.String("owner_id", ownerID.String()))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) Update(ctx context.Context, ownerID, hotelID uuid.UUID, req *request.UpdateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	hotel, err := s.ownedHotel(ctx, ownerID, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.Name = req.Name
	hotel.Description = req.Description
	hotel.Address = req.Address
	hotel.City = req.City
	hotel.Country = req.Country
	hotel.Latitude = req.Latitude
	hotel.Longitude = req.Longitude
	hotel.Images = req.Images
	hotel.Amenities = req.Amenities
	hotel.HotelType = entity.HotelType(req.HotelType)

	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		s.log.Error("failed to update hotel", zap.Error(err))
		return nil, apperr.Internal("failed to update hotel", err)
	}

	s.invalidateFeatured(ctx)

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) Delete(ctx context.Context, ownerID, hotelID uuid.UUID) error {
	if _, err := s.ownedHotel(ctx, ownerID, hotelID); err != nil {
		return err
	}

	if err := s.repo.Hotel.Delete(ctx, hotelID); err != nil {
		s.log.Error("failed to delete hotel", zap.Error(err))
		return apperr.Internal("failed to delete hotel", err)
	}

	s.invalidateFeatured(ctx)
	s.log.Info("hotel deleted", zap.String("hotel_id", hotelID.String()))
	return nil
}

func (s *hotelService) GetOwnHotels(ctx context.Context, ownerID uuid.UUID) ([]response.HotelResponse, error) {
	hotels, err := s.repo.Hotel.FindByOwnerID(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list own hotels", zap.Error(err))
		return nil, apperr.Internal("failed to list hotels", err)
	}

	data := make([]response.HotelResponse, len(hotels))
	for i, h := range hotels {
		data[i] = response.HotelToResponse(h)
	}

	return data, nil
}

func (s *hotelService) ownedHotel(ctx context.Context, ownerID, hotelID uuid.UUID) (*entity.Hotel, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to find hotel", zap.Error(err))
		return nil, apperr.Internal("failed to find hotel", err)
	}
	if hotel == nil {
		return nil, apperr.NotFound("hotel not found")
	}
	if hotel.OwnerID != ownerID {
		return nil, apperr.Authorization("hotel belongs to another account")
	}

	return hotel, nil
}

func (s *hotelService) invalidateFeatured(ctx context.Context) {
	if err := s.cache.Delete(ctx, featuredCacheKey); err != nil {
		s.log.Warn("failed to invalidate featured cache", zap.Error(err))
	}
}
