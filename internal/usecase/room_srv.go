package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	GetByHotel(ctx context.Context, hotelID uuid.UUID) ([]response.RoomResponse, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	Update(ctx context.Context, ownerID, roomID uuid.UUID, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	Delete(ctx context.Context, ownerID, roomID uuid.UUID) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetByHotel(ctx context.Context, hotelID uuid.UUID) ([]response.RoomResponse, error) {
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

	data := make([]response.RoomResponse, len(rooms))
	for i, r := range rooms {
		data[i] = response.RoomToResponse(r)
	}

	return data, nil
}

func (s *roomService) Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	hotelID, err := utils.ParseUUID(req.HotelID)
	if err != nil {
		return nil, apperr.Validation("invalid hotel id")
	}

	if _, err := s.ownedHotel(ctx, ownerID, hotelID); err != nil {
		return nil, err
	}

	var viewType *entity.ViewType
	if req.ViewType != nil {
		v := entity.ViewType(*req.ViewType)
		viewType = &v
	}

	room := &entity.Room{
		HotelID:        hotelID,
		Name:           req.Name,
		RoomType:       entity.RoomType(req.RoomType),
		BedType:        entity.BedType(req.BedType),
		ViewType:       viewType,
		Price:          req.Price,
		Capacity:       req.Capacity,
		TotalRooms:     req.TotalRooms,
		AvailableRooms: req.TotalRooms,
		Images:         req.Images,
		Status:         entity.RoomStatusActive,
	}
	room.ID = utils.GenerateUUID()
	room.CreatedAt = time.Now()
	room.UpdatedAt = room.CreatedAt

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("failed to create room", zap.Error(err))
		return nil, apperr.Internal("failed to create room", err)
	}

	s.log.Info("room created", zap.String("room_id", room.ID.String()), zap.String("hotel_id", hotelID.String()))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) Update(ctx context.Context, ownerID, roomID uuid.UUID, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	room, err := s.ownedRoom(ctx, ownerID, roomID)
	if err != nil {
		return nil, err
	}

	var viewType *entity.ViewType
	if req.ViewType != nil {
		v := entity.ViewType(*req.ViewType)
		viewType = &v
	}

	room.Name = req.Name
	room.RoomType = entity.RoomType(req.RoomType)
	room.BedType = entity.BedType(req.BedType)
	room.ViewType = viewType
	room.Price = req.Price
	room.Capacity = req.Capacity
	room.TotalRooms = req.TotalRooms
	room.Images = req.Images
	room.Status = entity.RoomStatus(req.Status)

	// Clamp inventory into [0, total_rooms].
	available := req.AvailableRooms
	if available > req.TotalRooms {
		available = req.TotalRooms
	}
	if available < 0 {
		available = 0
	}
	room.AvailableRooms = available

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("failed to update room", zap.Error(err))
		return nil, apperr.Internal("failed to update room", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) Delete(ctx context.Context, ownerID, roomID uuid.UUID) error {
	if _, err := s.ownedRoom(ctx, ownerID, roomID); err != nil {
		return err
	}

	if err := s.repo.Room.Delete(ctx, roomID); err != nil {
		s.log.Error("failed to delete room", zap.Error(err))
		return apperr.Internal("failed to delete room", err)
	}

	s.log.Info("room deleted", zap.String("room_id", roomID.String()))
	return nil
}

func (s *roomService) ownedRoom(ctx context.Context, ownerID, roomID uuid.UUID) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("failed to find room", zap.Error(err))
		return nil, apperr.Internal("failed to find room", err)
	}
	if room == nil {
		return nil, apperr.NotFound("room not found")
	}

	if _, err := s.ownedHotel(ctx, ownerID, room.HotelID); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *roomService) ownedHotel(ctx context.Context, ownerID, hotelID uuid.UUID) (*entity.Hotel, error) {
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
