package usecase

import (
	"context"
	"strings"
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

type CouponService interface {
	GetByCode(ctx context.Context, code string, hotelID *uuid.UUID) (*response.CouponResponse, error)
	BestDiscount(ctx context.Context, hotelID *uuid.UUID, totalPrice float64) (*response.BestDiscountResponse, error)

	Create(ctx context.Context, issuerID uuid.UUID, role string, req *request.CreateCouponRequest) (*response.CouponResponse, error)
	Update(ctx context.Context, issuerID uuid.UUID, role string, couponID uuid.UUID, req *request.UpdateCouponRequest) (*response.CouponResponse, error)
	Delete(ctx context.Context, issuerID uuid.UUID, role string, couponID uuid.UUID) error
	List(ctx context.Context, issuerID uuid.UUID, role string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CouponResponse], error)
}

type couponService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCouponService(repo *repository.Repository, log *zap.Logger) CouponService {
	return &couponService{
		repo: repo,
		log:  log.With(zap.String("service", "coupon")),
	}
}

func (s *couponService) GetByCode(ctx context.Context, code string, hotelID *uuid.UUID) (*response.CouponResponse, error) {
	coupon, err := lookupCoupon(ctx, s.repo.Coupon, code, hotelID, s.log)
	if err != nil {
		return nil, err
	}

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *couponService) BestDiscount(ctx context.Context, hotelID *uuid.UUID, totalPrice float64) (*response.BestDiscountResponse, error) {
	if totalPrice <= 0 {
		return nil, apperr.Validation("total price must be positive")
	}

	coupon, discount, err := bestCoupon(ctx, s.repo.Coupon, hotelID, totalPrice, s.log)
	if err != nil {
		return nil, err
	}

	resp := &response.BestDiscountResponse{Discount: discount}
	if coupon != nil {
		c := response.CouponToResponse(coupon)
		resp.Coupon = &c
	}

	return resp, nil
}

func (s *couponService) Create(ctx context.Context, issuerID uuid.UUID, role string, req *request.CreateCouponRequest) (*response.CouponResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	validFrom, validTo, err := parseCouponWindow(req.ValidFrom, req.ValidTo)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	existing, err := s.repo.Coupon.FindByCode(ctx, code)
	if err != nil {
		s.log.Error("failed to check coupon code", zap.Error(err))
		return nil, apperr.Internal("failed to check coupon code", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("coupon code already exists")
	}

	coupon := &entity.Coupon{
		Code:         code,
		DiscountType: entity.DiscountType(req.DiscountType),
		Value:        req.Value,
		MinPurchase:  req.MinPurchase,
		MaxDiscount:  req.MaxDiscount,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		UsageLimit:   req.UsageLimit,
		Status:       entity.CouponStatusActive,
	}
	coupon.ID = utils.GenerateUUID()
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = coupon.CreatedAt

	switch role {
	case string(entity.RoleAdmin):
		coupon.IssuerType = entity.CouponIssuerAdmin
		// Admin coupons may still be scoped to one hotel.
		if req.HotelID != "" {
			hotelID, err := utils.ParseUUID(req.HotelID)
			if err != nil {
				return nil, apperr.Validation("invalid hotel id")
			}
			coupon.HotelID = &hotelID
		}
	case string(entity.RoleBusiness):
		if req.HotelID == "" {
			return nil, apperr.Validation("business coupons must be scoped to a hotel")
		}
		hotelID, err := utils.ParseUUID(req.HotelID)
		if err != nil {
			return nil, apperr.Validation("invalid hotel id")
		}
		hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
		if err != nil {
			s.log.Error("failed to find hotel", zap.Error(err))
			return nil, apperr.Internal("failed to find hotel", err)
		}
		if hotel == nil {
			return nil, apperr.NotFound("hotel not found")
		}
		if hotel.OwnerID != issuerID {
			return nil, apperr.Authorization("hotel belongs to another account")
		}
		coupon.IssuerType = entity.CouponIssuerBusiness
		coupon.HotelID = &hotelID
	default:
		return nil, apperr.Authorization("only admin or business accounts can issue coupons")
	}

	if err := s.repo.Coupon.Create(ctx, coupon); err != nil {
		s.log.Error("failed to create coupon", zap.Error(err))
		return nil, apperr.Internal("failed to create coupon", err)
	}

	s.log.Info("coupon created", zap.String("coupon_id", coupon.ID.String()), zap.String("code", coupon.Code))

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *couponService) Update(ctx context.Context, issuerID uuid.UUID, role string, couponID uuid.UUID, req *request.UpdateCouponRequest) (*response.CouponResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	validFrom, validTo, err := parseCouponWindow(req.ValidFrom, req.ValidTo)
	if err != nil {
		return nil, err
	}

	coupon, err := s.managedCoupon(ctx, issuerID, role, couponID)
	if err != nil {
		return nil, err
	}

	coupon.DiscountType = entity.DiscountType(req.DiscountType)
	coupon.Value = req.Value
	coupon.MinPurchase = req.MinPurchase
	coupon.MaxDiscount = req.MaxDiscount
	coupon.ValidFrom = validFrom
	coupon.ValidTo = validTo
	coupon.UsageLimit = req.UsageLimit
	coupon.Status = entity.CouponStatus(req.Status)

	if err := s.repo.Coupon.Update(ctx, coupon); err != nil {
		s.log.Error("failed to update coupon", zap.Error(err))
		return nil, apperr.Internal("failed to update coupon", err)
	}

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *couponService) Delete(ctx context.Context, issuerID uuid.UUID, role string, couponID uuid.UUID) error {
	if _, err := s.managedCoupon(ctx, issuerID, role, couponID); err != nil {
		return err
	}

	if err := s.repo.Coupon.Delete(ctx, couponID); err != nil {
		s.log.Error("failed to delete coupon", zap.Error(err))
		return apperr.Internal("failed to delete coupon", err)
	}

	s.log.Info("coupon deleted", zap.String("coupon_id", couponID.String()))
	return nil
}

func (s *couponService) List(ctx context.Context, issuerID uuid.UUID, role string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CouponResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	var coupons []*entity.Coupon
	var err error

	switch role {
	case string(entity.RoleAdmin):
		coupons, err = s.repo.Coupon.FindAll(ctx, req.Limit(), req.Offset())
	case string(entity.RoleBusiness):
		// Business accounts see the coupons of their own hotels.
		hotels, herr := s.repo.Hotel.FindByOwnerID(ctx, issuerID)
		if herr != nil {
			s.log.Error("failed to list own hotels", zap.Error(herr))
			return nil, apperr.Internal("failed to list hotels", herr)
		}
		for _, h := range hotels {
			cs, cerr := s.repo.Coupon.FindByHotelID(ctx, h.ID)
			if cerr != nil {
				s.log.Error("failed to list hotel coupons", zap.Error(cerr))
				return nil, apperr.Internal("failed to list coupons", cerr)
			}
			coupons = append(coupons, cs...)
		}
	default:
		return nil, apperr.Authorization("only admin or business accounts can list coupons")
	}
	if err != nil {
		s.log.Error("failed to list coupons", zap.Error(err))
		return nil, apperr.Internal("failed to list coupons", err)
	}

	data := make([]response.CouponResponse, len(coupons))
	for i, c := range coupons {
		data[i] = response.CouponToResponse(c)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(data))), nil
}

func (s *couponService) managedCoupon(ctx context.Context, issuerID uuid.UUID, role string, couponID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.repo.Coupon.FindByID(ctx, couponID)
	if err != nil {
		s.log.Error("failed to find coupon", zap.Error(err))
		return nil, apperr.Internal("failed to find coupon", err)
	}
	if coupon == nil {
		return nil, apperr.NotFound("coupon not found")
	}

	if role == string(entity.RoleAdmin) {
		return coupon, nil
	}

	if coupon.HotelID == nil {
		return nil, apperr.Authorization("platform coupons are managed by admins")
	}
	hotel, err := s.repo.Hotel.FindByID(ctx, *coupon.HotelID)
	if err != nil {
		s.log.Error("failed to find hotel", zap.Error(err))
		return nil, apperr.Internal("failed to find hotel", err)
	}
	if hotel == nil || hotel.OwnerID != issuerID {
		return nil, apperr.Authorization("coupon belongs to another account")
	}

	return coupon, nil
}

func parseCouponWindow(from, to string) (time.Time, time.Time, error) {
	validFrom, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid valid_from date")
	}
	validTo, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid valid_to date")
	}
	if !validTo.After(validFrom) {
		return time.Time{}, time.Time{}, apperr.Validation("valid_to must be after valid_from")
	}
	return validFrom, validTo, nil
}

// lookupCoupon resolves a code to a coupon usable for the given hotel right
// now. Shared with the booking flow.
func lookupCoupon(ctx context.Context, repo repository.CouponRepository, code string, hotelID *uuid.UUID, log *zap.Logger) (*entity.Coupon, error) {
	coupon, err := repo.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		log.Error("failed to find coupon", zap.Error(err))
		return nil, apperr.Internal("failed to find coupon", err)
	}
	if coupon == nil {
		return nil, apperr.NotFound("coupon not found")
	}

	if coupon.Status != entity.CouponStatusActive {
		return nil, apperr.NotFound("coupon is not active")
	}

	now := time.Now()
	if now.Before(coupon.ValidFrom) || now.After(coupon.ValidTo) {
		return nil, apperr.NotFound("coupon is outside its validity window")
	}

	if coupon.HotelID != nil {
		if hotelID == nil || *coupon.HotelID != *hotelID {
			return nil, apperr.NotFound("coupon does not apply to this hotel")
		}
	}

	if coupon.Exhausted() {
		return nil, apperr.UsageExceeded("coupon usage limit reached")
	}

	return coupon, nil
}

// bestCoupon scans valid coupons in creation order and keeps the first one
// with the strictly greatest discount, so the earliest coupon wins ties.
func bestCoupon(ctx context.Context, repo repository.CouponRepository, hotelID *uuid.UUID, totalPrice float64, log *zap.Logger) (*entity.Coupon, float64, error) {
	coupons, err := repo.FindValidForHotel(ctx, hotelID)
	if err != nil {
		log.Error("failed to list valid coupons", zap.Error(err))
		return nil, 0, apperr.Internal("failed to list coupons", err)
	}

	var best *entity.Coupon
	var bestDiscount float64
	for _, c := range coupons {
		if c.Exhausted() {
			continue
		}
		discount := c.Discount(totalPrice)
		if discount <= 0 {
			continue
		}
		if discount > bestDiscount {
			best = c
			bestDiscount = discount
		}
	}

	return best, bestDiscount, nil
}
