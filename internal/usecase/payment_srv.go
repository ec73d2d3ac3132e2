package usecase

import (
	"context"
	"math"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/gateway"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	RegisterCard(ctx context.Context, userID uuid.UUID, req *request.RegisterCardRequest) (*response.CardResponse, error)
	GetCards(ctx context.Context, userID uuid.UUID) ([]response.CardResponse, error)
	SetDefaultCard(ctx context.Context, userID, cardID uuid.UUID) error
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error

	ConfirmPayment(ctx context.Context, userID uuid.UUID, req *request.ConfirmPaymentRequest) (*response.PaymentConfirmResponse, error)
	CancelPayment(ctx context.Context, userID uuid.UUID, req *request.CancelPaymentRequest) (*response.PaymentCancelResponse, error)
}

type paymentService struct {
	repo    *repository.Repository
	gateway gateway.Client
	config  *utils.Config
	log     *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gw gateway.Client, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		gateway: gw,
		config:  config,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) RegisterCard(ctx context.Context, userID uuid.UUID, req *request.RegisterCardRequest) (*response.CardResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	encrypted, err := utils.EncryptCardNumber(req.CardNumber, s.config.Cards.EncryptionKey)
	if err != nil {
		s.log.Error("failed to encrypt card number", zap.Error(err))
		return nil, apperr.Internal("failed to store card", err)
	}

	count, err := s.repo.Card.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to count cards", zap.Error(err))
		return nil, apperr.Internal("failed to count cards", err)
	}

	card := &entity.PaymentCard{
		UserID:        userID,
		HolderName:    req.HolderName,
		CardNumberEnc: encrypted,
		Expiry:        req.Expiry,
		Brand:         req.Brand,
		IsDefault:     count == 0, // first card becomes the default
	}
	card.ID = utils.GenerateUUID()
	card.CreatedAt = time.Now()
	card.UpdatedAt = card.CreatedAt

	if err := s.repo.Card.Create(ctx, card); err != nil {
		s.log.Error("failed to create card", zap.Error(err))
		return nil, apperr.Internal("failed to store card", err)
	}

	s.log.Info("card registered", zap.String("card_id", card.ID.String()), zap.Bool("default", card.IsDefault))

	resp := response.CardToResponse(card, utils.MaskCardNumber(req.CardNumber))
	return &resp, nil
}

func (s *paymentService) GetCards(ctx context.Context, userID uuid.UUID) ([]response.CardResponse, error) {
	cards, err := s.repo.Card.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to list cards", zap.Error(err))
		return nil, apperr.Internal("failed to list cards", err)
	}

	data := make([]response.CardResponse, len(cards))
	for i, card := range cards {
		// A card that no longer decrypts is shown fully masked rather than
		// failing the whole listing.
		masked := utils.MaskCardNumber("")
		if plain, err := utils.DecryptCardNumber(card.CardNumberEnc, s.config.Cards.EncryptionKey); err == nil {
			masked = utils.MaskCardNumber(plain)
		} else {
			s.log.Warn("failed to decrypt card", zap.Error(err), zap.String("card_id", card.ID.String()))
		}
		data[i] = response.CardToResponse(card, masked)
	}

	return data, nil
}

func (s *paymentService) SetDefaultCard(ctx context.Context, userID, cardID uuid.UUID) error {
	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.repo.Card.SetDefault(ctx, userID, cardID); err != nil {
		s.log.Error("failed to set default card", zap.Error(err))
		return apperr.Internal("failed to set default card", err)
	}

	return nil
}

func (s *paymentService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	card, err := s.ownedCard(ctx, userID, cardID)
	if err != nil {
		return err
	}

	if err := s.repo.Card.Delete(ctx, cardID); err != nil {
		s.log.Error("failed to delete card", zap.Error(err))
		return apperr.Internal("failed to delete card", err)
	}

	// Deleting the default promotes the oldest remaining card.
	if card.IsDefault {
		remaining, err := s.repo.Card.FindByUserID(ctx, userID)
		if err != nil {
			s.log.Error("failed to list remaining cards", zap.Error(err))
			return nil
		}
		if len(remaining) > 0 {
			if err := s.repo.Card.SetDefault(ctx, userID, remaining[0].ID); err != nil {
				s.log.Error("failed to promote default card", zap.Error(err))
			}
		}
	}

	s.log.Info("card deleted", zap.String("card_id", cardID.String()))
	return nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, userID uuid.UUID, req *request.ConfirmPaymentRequest) (*response.PaymentConfirmResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		s.log.Error("failed to find booking", zap.Error(err))
		return nil, apperr.Internal("failed to find booking", err)
	}
	if booking == nil {
		return nil, apperr.NotFound("booking not found")
	}
	if booking.UserID != userID {
		return nil, apperr.Authorization("booking belongs to another account")
	}
	if booking.PaymentStatus != entity.PaymentStatusPending {
		return nil, apperr.Conflict("payment has already been processed")
	}
	if req.Amount != booking.FinalPrice {
		return nil, apperr.Validation("amount does not match the booking price")
	}

	if err := s.gateway.Confirm(ctx, req.PaymentKey, req.OrderID, req.Amount); err != nil {
		s.log.Error("gateway confirm failed", zap.Error(err), zap.String("order_id", req.OrderID))
		if uerr := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, entity.PaymentStatusFailed, nil); uerr != nil {
			s.log.Error("failed to mark payment failed", zap.Error(uerr))
		}
		return nil, apperr.Internal("payment confirmation failed", err)
	}

	paymentKey := req.PaymentKey
	if err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, entity.PaymentStatusCompleted, &paymentKey); err != nil {
		s.log.Error("failed to update payment status", zap.Error(err))
		return nil, apperr.Internal("failed to update payment status", err)
	}

	earned := int64(math.Floor(req.Amount * s.earnRate(ctx)))
	if earned > 0 {
		if err := s.repo.User.AddPoints(ctx, userID, earned); err != nil {
			s.log.Error("failed to add loyalty points", zap.Error(err))
		}
	}

	s.log.Info("payment confirmed",
		zap.String("order_id", req.OrderID),
		zap.Float64("amount", req.Amount),
		zap.Int64("earned_points", earned))

	return &response.PaymentConfirmResponse{
		OrderID:       req.OrderID,
		PaymentStatus: string(entity.PaymentStatusCompleted),
		BookingStatus: string(booking.Status),
		Amount:        req.Amount,
		EarnedPoints:  earned,
	}, nil
}

func (s *paymentService) CancelPayment(ctx context.Context, userID uuid.UUID, req *request.CancelPaymentRequest) (*response.PaymentCancelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		s.log.Error("failed to find booking", zap.Error(err))
		return nil, apperr.Internal("failed to find booking", err)
	}
	if booking == nil {
		return nil, apperr.NotFound("booking not found")
	}
	if booking.UserID != userID {
		return nil, apperr.Authorization("booking belongs to another account")
	}
	if booking.PaymentStatus != entity.PaymentStatusCompleted || booking.PaymentKey == nil {
		return nil, apperr.Conflict("payment is not refundable")
	}

	if err := s.gateway.Cancel(ctx, *booking.PaymentKey, req.Reason); err != nil {
		s.log.Error("gateway cancel failed", zap.Error(err), zap.String("order_id", req.OrderID))
		return nil, apperr.Internal("payment cancellation failed", err)
	}

	if err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, entity.PaymentStatusRefunded, nil); err != nil {
		s.log.Error("failed to update payment status", zap.Error(err))
		return nil, apperr.Internal("failed to update payment status", err)
	}

	s.log.Info("payment refunded", zap.String("order_id", req.OrderID))

	return &response.PaymentCancelResponse{
		OrderID:       req.OrderID,
		PaymentStatus: string(entity.PaymentStatusRefunded),
		BookingStatus: string(booking.Status),
	}, nil
}

func (s *paymentService) ownedCard(ctx context.Context, userID, cardID uuid.UUID) (*entity.PaymentCard, error) {
	card, err := s.repo.Card.FindByID(ctx, cardID)
	if err != nil {
		s.log.Error("failed to find card", zap.Error(err))
		return nil, apperr.Internal("failed to find card", err)
	}
	if card == nil {
		return nil, apperr.NotFound("card not found")
	}
	if card.UserID != userID {
		return nil, apperr.Authorization("card belongs to another account")
	}
	return card, nil
}

func (s *paymentService) earnRate(ctx context.Context) float64 {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.log.Warn("failed to load settings, using default earn rate", zap.Error(err))
		return entity.DefaultSettings().PointsEarnRate
	}
	return settings.PointsEarnRate
}
