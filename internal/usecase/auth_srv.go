package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/notify"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	FindEmail(ctx context.Context, req *request.FindEmailRequest) (*response.FindEmailResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo     *repository.Repository
	config   *utils.Config
	notifier notify.Notifier
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, notifier notify.Notifier, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		config:   config,
		notifier: notifier,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("register validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, apperr.Internal("failed to process password", err)
	}

	role := entity.RoleUser
	if req.Role == string(entity.RoleBusiness) {
		role = entity.RoleBusiness
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
	}
	user.ID = utils.GenerateUUID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	// Business accounts wait for admin approval before they can list hotels.
	if role == entity.RoleBusiness {
		pending := entity.BusinessPending
		user.BusinessStatus = &pending
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, apperr.Internal("failed to create user", err)
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("failed to generate token", zap.Error(err))
		return nil, apperr.Internal("failed to generate token", err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperr.Authentication("invalid email or password")
	}
	if user.IsBlocked {
		return nil, apperr.Authorization("account is blocked")
	}
	if !user.IsActive {
		return nil, apperr.Authorization("account is deactivated")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("failed to generate token", zap.Error(err))
		return nil, apperr.Internal("failed to generate token", err)
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}

func (s *authService) FindEmail(ctx context.Context, req *request.FindEmailRequest) (*response.FindEmailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByNameAndPhone(ctx, req.Name, req.Phone)
	if err != nil {
		s.log.Error("failed to look up user", zap.Error(err))
		return nil, apperr.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("no account matches the given name and phone")
	}

	return &response.FindEmailResponse{Email: maskEmail(user.Email)}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		s.log.Error("failed to find user", zap.Error(err))
		return apperr.Internal("failed to find user", err)
	}
	if user == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	reset := &entity.PasswordReset{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     utils.GenerateResetToken(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Alerts.ResetExpiryMinutes) * time.Minute),
	}
	reset.ID = utils.GenerateUUID()
	reset.CreatedAt = time.Now()

	if err := s.repo.Reset.Create(ctx, reset); err != nil {
		s.log.Error("failed to store reset token", zap.Error(err))
		return apperr.Internal("failed to create reset token", err)
	}

	mail := notify.Mail{
		To:      user.Email,
		Subject: "Password reset",
		Body:    fmt.Sprintf("Hello %s,\n\nUse this token to reset your password: %s\nIt expires in %d minutes.", user.Name, reset.Token, s.config.Alerts.ResetExpiryMinutes),
	}
	if err := s.notifier.Enqueue(ctx, mail); err != nil {
		s.log.Warn("failed to enqueue reset mail", zap.Error(err))
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	reset, err := s.repo.Reset.FindValidByToken(ctx, req.Token)
	if err != nil {
		s.log.Error("failed to look up reset token", zap.Error(err))
		return apperr.Internal("failed to look up reset token", err)
	}
	if reset == nil {
		return apperr.Authentication("reset token is invalid or expired")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return apperr.Internal("failed to process password", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, reset.UserID, hashed); err != nil {
		s.log.Error("failed to update password", zap.Error(err))
		return apperr.Internal("failed to update password", err)
	}

	if err := s.repo.Reset.MarkUsed(ctx, req.Token); err != nil {
		s.log.Warn("failed to mark reset token used", zap.Error(err))
	}

	s.log.Info("password reset", zap.String("user_id", reset.UserID.String()))
	return nil
}

// maskEmail keeps the first two characters of the local part.
func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 2 {
		return "***" + email[at:]
	}
	return email[:2] + strings.Repeat("*", at-2) + email[at:]
}
