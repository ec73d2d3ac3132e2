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

type ReviewService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	Update(ctx context.Context, userID, reviewID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, role string, reviewID uuid.UUID) error
	GetByHotel(ctx context.Context, hotelID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetOwnReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)

	Report(ctx context.Context, reporterID, reviewID uuid.UUID, req *request.ReportReviewRequest) error
	ResolveReport(ctx context.Context, reviewID uuid.UUID, req *request.ResolveReportRequest) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := utils.ParseUUID(req.BookingID)
	if err != nil {
		return nil, apperr.Validation("invalid booking id")
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
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
	if booking.Status != entity.BookingStatusCompleted && booking.Status != entity.BookingStatusConfirmed {
		return nil, apperr.Validation("only completed stays can be reviewed")
	}

	existing, err := s.repo.Review.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("failed to check existing review", zap.Error(err))
		return nil, apperr.Internal("failed to check existing review", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("booking already has a review")
	}

	review := &entity.Review{
		UserID:    userID,
		HotelID:   booking.HotelID,
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Status:    entity.ReviewStatusActive,
	}
	review.ID = utils.GenerateUUID()
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("failed to create review", zap.Error(err))
		return nil, apperr.Internal("failed to create review", err)
	}

	s.recomputeRating(ctx, booking.HotelID)

	s.log.Info("review created", zap.String("review_id", review.ID.String()), zap.Int("rating", req.Rating))

	resp := response.ReviewToResponse(review, "")
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, userID, reviewID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("failed to find review", zap.Error(err))
		return nil, apperr.Internal("failed to find review", err)
	}
	if review == nil || review.Status == entity.ReviewStatusDeleted {
		return nil, apperr.NotFound("review not found")
	}
	if review.UserID != userID {
		return nil, apperr.Authorization("review belongs to another account")
	}

	review.Rating = req.Rating
	review.Comment = req.Comment

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("failed to update review", zap.Error(err))
		return nil, apperr.Internal("failed to update review", err)
	}

	s.recomputeRating(ctx, review.HotelID)

	resp := response.ReviewToResponse(review, "")
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, userID uuid.UUID, role string, reviewID uuid.UUID) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("failed to find review", zap.Error(err))
		return apperr.Internal("failed to find review", err)
	}
	if review == nil || review.Status == entity.ReviewStatusDeleted {
		return apperr.NotFound("review not found")
	}
	if review.UserID != userID && role != string(entity.RoleAdmin) {
		return apperr.Authorization("review belongs to another account")
	}

	if err := s.repo.Review.UpdateStatus(ctx, reviewID, entity.ReviewStatusDeleted); err != nil {
		s.log.Error("failed to delete review", zap.Error(err))
		return apperr.Internal("failed to delete review", err)
	}

	s.recomputeRating(ctx, review.HotelID)

	s.log.Info("review deleted", zap.String("review_id", reviewID.String()))
	return nil
}

func (s *reviewService) GetByHotel(ctx context.Context, hotelID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	reviews, err := s.repo.Review.FindActiveByHotelID(ctx, hotelID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list reviews", zap.Error(err))
		return nil, apperr.Internal("failed to list reviews", err)
	}

	total, err := s.repo.Review.CountActiveByHotelID(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to count reviews", zap.Error(err))
		return nil, apperr.Internal("failed to count reviews", err)
	}

	data, err := s.toResponses(ctx, reviews)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *reviewService) GetOwnReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("failed to list reviews", zap.Error(err))
		return nil, apperr.Internal("failed to list reviews", err)
	}

	data, err := s.toResponses(ctx, reviews)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(data))), nil
}

func (s *reviewService) Report(ctx context.Context, reporterID, reviewID uuid.UUID, req *request.ReportReviewRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("failed to find review", zap.Error(err))
		return apperr.Internal("failed to find review", err)
	}
	if review == nil || review.Status != entity.ReviewStatusActive {
		return apperr.NotFound("review not found")
	}
	if review.IsReported && review.ReportStatus != nil && *review.ReportStatus == entity.ReportStatusPending {
		return apperr.Conflict("review is already under review")
	}

	if err := s.repo.Review.Report(ctx, reviewID, reporterID, req.Reason); err != nil {
		s.log.Error("failed to report review", zap.Error(err))
		return apperr.Internal("failed to report review", err)
	}

	s.log.Info("review reported", zap.String("review_id", reviewID.String()))
	return nil
}

// ResolveReport closes a pending report. Approving the report hides the
// review; rejecting it leaves the review active.
func (s *reviewService) ResolveReport(ctx context.Context, reviewID uuid.UUID, req *request.ResolveReportRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("failed to find review", zap.Error(err))
		return apperr.Internal("failed to find review", err)
	}
	if review == nil {
		return apperr.NotFound("review not found")
	}
	if review.ReportStatus == nil || *review.ReportStatus != entity.ReportStatusPending {
		return apperr.Conflict("review has no pending report")
	}

	decision := entity.ReportStatus(req.Decision)
	if err := s.repo.Review.ResolveReport(ctx, reviewID, decision); err != nil {
		s.log.Error("failed to resolve report", zap.Error(err))
		return apperr.Internal("failed to resolve report", err)
	}

	if decision == entity.ReportStatusApproved {
		if err := s.repo.Review.UpdateStatus(ctx, reviewID, entity.ReviewStatusHidden); err != nil {
			s.log.Error("failed to hide review", zap.Error(err))
			return apperr.Internal("failed to hide review", err)
		}
		s.recomputeRating(ctx, review.HotelID)
	}

	s.log.Info("report resolved", zap.String("review_id", reviewID.String()), zap.String("decision", req.Decision))
	return nil
}

// recomputeRating refreshes the hotel's derived rating from its active
// reviews. Failures are logged; the review mutation already succeeded.
func (s *reviewService) recomputeRating(ctx context.Context, hotelID uuid.UUID) {
	rating, count, err := s.repo.Review.ActiveStats(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to compute rating", zap.Error(err), zap.String("hotel_id", hotelID.String()))
		return
	}
	if err := s.repo.Hotel.UpdateRating(ctx, hotelID, rating, count); err != nil {
		s.log.Error("failed to update rating", zap.Error(err), zap.String("hotel_id", hotelID.String()))
	}
}

func (s *reviewService) toResponses(ctx context.Context, reviews []*entity.Review) ([]response.ReviewResponse, error) {
	names := make(map[uuid.UUID]string)

	data := make([]response.ReviewResponse, len(reviews))
	for i, r := range reviews {
		if _, ok := names[r.UserID]; !ok {
			user, err := s.repo.User.FindByID(ctx, r.UserID)
			if err != nil {
				s.log.Error("failed to find reviewer", zap.Error(err))
				return nil, apperr.Internal("failed to find reviewer", err)
			}
			if user != nil {
				names[r.UserID] = user.Name
			}
		}
		data[i] = response.ReviewToResponse(r, names[r.UserID])
	}

	return data, nil
}
