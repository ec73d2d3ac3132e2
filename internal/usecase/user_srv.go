package usecase

import (
	"context"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	CloseAccount(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	user.Name = req.Name
	user.Phone = req.Phone

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("failed to update user", zap.Error(err))
		return nil, apperr.Internal("failed to update user", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperr.Authentication("current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return apperr.Internal("failed to process password", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hashed); err != nil {
		s.log.Error("failed to update password", zap.Error(err))
		return apperr.Internal("failed to update password", err)
	}

	return nil
}

// CloseAccount soft-deletes the user unless active bookings remain, in which
// case the account is only deactivated and the bookings keep their owner.
func (s *userService) CloseAccount(ctx context.Context, userID uuid.UUID) error {
	active, err := s.repo.Booking.CountActiveByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to count active bookings", zap.Error(err))
		return apperr.Internal("failed to check bookings", err)
	}

	if active > 0 {
		if err := s.repo.User.SetActive(ctx, userID, false); err != nil {
			s.log.Error("failed to deactivate user", zap.Error(err))
			return apperr.Internal("failed to deactivate account", err)
		}
		s.log.Info("account deactivated with active bookings", zap.String("user_id", userID.String()), zap.Int64("active_bookings", active))
		return nil
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		s.log.Error("failed to delete user", zap.Error(err))
		return apperr.Internal("failed to close account", err)
	}

	s.log.Info("account closed", zap.String("user_id", userID.String()))
	return nil
}
