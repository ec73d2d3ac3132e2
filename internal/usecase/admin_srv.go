package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	GetStats(ctx context.Context) (*response.AdminStatsResponse, error)

	GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	GetBusinessApplications(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	ResolveBusinessApplication(ctx context.Context, userID uuid.UUID, approve bool) error

	SetHotelStatus(ctx context.Context, hotelID uuid.UUID, activate bool) error

	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error

	GetReportedReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetActivityLogs(ctx context.Context, req *request.PaginatedRequest) ([]response.ActivityLogResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetStats(ctx context.Context) (*response.AdminStatsResponse, error) {
	users, err := s.repo.User.Count(ctx)
	if err != nil {
		s.log.Error("failed to count users", zap.Error(err))
		return nil, apperr.Internal("failed to count users", err)
	}
	hotels, err := s.repo.Hotel.Count(ctx)
	if err != nil {
		s.log.Error("failed to count hotels", zap.Error(err))
		return nil, apperr.Internal("failed to count hotels", err)
	}
	bookings, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("failed to count bookings", zap.Error(err))
		return nil, apperr.Internal("failed to count bookings", err)
	}
	reviews, err := s.repo.Review.Count(ctx)
	if err != nil {
		s.log.Error("failed to count reviews", zap.Error(err))
		return nil, apperr.Internal("failed to count reviews", err)
	}
	revenue, err := s.repo.Booking.SumCompletedRevenue(ctx)
	if err != nil {
		s.log.Error("failed to sum revenue", zap.Error(err))
		return nil, apperr.Internal("failed to sum revenue", err)
	}

	return &response.AdminStatsResponse{
		TotalUsers:    users,
		TotalHotels:   hotels,
		TotalBookings: bookings,
		TotalReviews:  reviews,
		TotalRevenue:  revenue,
	}, nil
}

func (s *adminService) GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, apperr.Internal("failed to list users", err)
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		s.log.Error("failed to count users", zap.Error(err))
		return nil, apperr.Internal("failed to count users", err)
	}

	data := make([]response.UserResponse, len(users))
	for i, u := range users {
		data[i] = response.UserToResponse(u)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *adminService) SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}

	if err := s.repo.User.SetBlocked(ctx, userID, blocked); err != nil {
		s.log.Error("failed to update block status", zap.Error(err))
		return apperr.Internal("failed to update block status", err)
	}

	s.log.Info("user block status changed", zap.String("user_id", userID.String()), zap.Bool("blocked", blocked))
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}
	if user.Role == entity.RoleAdmin {
		return apperr.Authorization("admin accounts cannot be deleted")
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		s.log.Error("failed to delete user", zap.Error(err))
		return apperr.Internal("failed to delete user", err)
	}

	s.log.Info("user deleted", zap.String("user_id", userID.String()))
	return nil
}

func (s *adminService) GetBusinessApplications(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	users, err := s.repo.User.FindBusinessByStatus(ctx, entity.BusinessPending, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list applications", zap.Error(err))
		return nil, apperr.Internal("failed to list applications", err)
	}

	data := make([]response.UserResponse, len(users))
	for i, u := range users {
		data[i] = response.UserToResponse(u)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(data))), nil
}

func (s *adminService) ResolveBusinessApplication(ctx context.Context, userID uuid.UUID, approve bool) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}
	if user.Role != entity.RoleBusiness || user.BusinessStatus == nil {
		return apperr.Validation("user has no business application")
	}
	if *user.BusinessStatus != entity.BusinessPending {
		return apperr.Conflict("application has already been decided")
	}

	status := entity.BusinessRejected
	if approve {
		status = entity.BusinessApproved
	}

	if err := s.repo.User.SetBusinessStatus(ctx, userID, status); err != nil {
		s.log.Error("failed to update business status", zap.Error(err))
		return apperr.Internal("failed to update business status", err)
	}

	s.log.Info("business application resolved", zap.String("user_id", userID.String()), zap.String("status", string(status)))
	return nil
}

func (s *adminService) SetHotelStatus(ctx context.Context, hotelID uuid.UUID, activate bool) error {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to find hotel", zap.Error(err))
		return apperr.Internal("failed to find hotel", err)
	}
	if hotel == nil {
		return apperr.NotFound("hotel not found")
	}

	status := entity.HotelStatusInactive
	if activate {
		status = entity.HotelStatusActive
	}

	if err := s.repo.Hotel.UpdateStatus(ctx, hotelID, status); err != nil {
		s.log.Error("failed to update hotel status", zap.Error(err))
		return apperr.Internal("failed to update hotel status", err)
	}

	s.log.Info("hotel status changed", zap.String("hotel_id", hotelID.String()), zap.String("status", string(status)))
	return nil
}

func (s *adminService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list bookings", zap.Error(err))
		return nil, apperr.Internal("failed to list bookings", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("failed to count bookings", zap.Error(err))
		return nil, apperr.Internal("failed to count bookings", err)
	}

	data := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		data[i] = response.BookingToResponse(b, "", "")
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *adminService) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("failed to find booking", zap.Error(err))
		return apperr.Internal("failed to find booking", err)
	}
	if booking == nil {
		return apperr.NotFound("booking not found")
	}

	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		s.log.Error("failed to delete booking", zap.Error(err))
		return apperr.Internal("failed to delete booking", err)
	}

	s.log.Info("booking deleted", zap.String("booking_id", bookingID.String()))
	return nil
}

func (s *adminService) GetReportedReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	reviews, err := s.repo.Review.FindReported(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list reported reviews", zap.Error(err))
		return nil, apperr.Internal("failed to list reported reviews", err)
	}

	data := make([]response.ReviewResponse, len(reviews))
	for i, r := range reviews {
		data[i] = response.ReviewToResponse(r, "")
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(data))), nil
}

func (s *adminService) GetActivityLogs(ctx context.Context, req *request.PaginatedRequest) ([]response.ActivityLogResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	logs, err := s.repo.Activity.FindRecentLogs(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list activity logs", zap.Error(err))
		return nil, apperr.Internal("failed to list activity logs", err)
	}

	data := make([]response.ActivityLogResponse, len(logs))
	for i, l := range logs {
		data[i] = response.ActivityLogToResponse(l)
	}

	return data, nil
}
