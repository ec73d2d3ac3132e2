package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reviewFixture struct {
	*bookingFixture
	reviews *fakeReviewRepo
}

func newReviewFixture() *reviewFixture {
	base := newBookingFixture()
	reviews := &fakeReviewRepo{reviews: map[uuid.UUID]*entity.Review{}}
	base.repo.Review = reviews
	return &reviewFixture{bookingFixture: base, reviews: reviews}
}

func (f *reviewFixture) completedBooking(userID uuid.UUID) *entity.Booking {
	booking := &entity.Booking{
		UserID:  userID,
		HotelID: f.hotelID,
		RoomID:  f.roomID,
		Status:  entity.BookingStatusCompleted,
	}
	booking.ID = uuid.New()
	f.bookings.bookings[booking.ID] = booking
	return booking
}

func TestCreateReviewUpdatesHotelRating(t *testing.T) {
	f := newReviewFixture()
	svc := NewReviewService(f.repo, zap.NewNop())
	booking := f.completedBooking(f.userID)

	if _, err := svc.Create(context.Background(), f.userID, &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    4,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	hotel := f.hotels.hotels[f.hotelID]
	if hotel.Rating != 4 || hotel.ReviewCount != 1 {
		t.Errorf("rating = %v count = %d, want 4 and 1", hotel.Rating, hotel.ReviewCount)
	}

	second := f.completedBooking(f.userID)
	if _, err := svc.Create(context.Background(), f.userID, &request.CreateReviewRequest{
		BookingID: second.ID.String(),
		Rating:    2,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if hotel.Rating != 3 || hotel.ReviewCount != 2 {
		t.Errorf("rating = %v count = %d, want 3 and 2", hotel.Rating, hotel.ReviewCount)
	}
}

func TestCreateReviewRequiresCompletedStay(t *testing.T) {
	f := newReviewFixture()
	svc := NewReviewService(f.repo, zap.NewNop())

	booking := f.completedBooking(f.userID)
	booking.Status = entity.BookingStatusPending

	_, err := svc.Create(context.Background(), f.userID, &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    5,
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation; err = %v", apperr.KindOf(err), err)
	}
}

func TestCreateReviewOncePerBooking(t *testing.T) {
	f := newReviewFixture()
	svc := NewReviewService(f.repo, zap.NewNop())
	booking := f.completedBooking(f.userID)

	if _, err := svc.Create(context.Background(), f.userID, &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    4,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(context.Background(), f.userID, &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    1,
	})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("kind = %v, want conflict; err = %v", apperr.KindOf(err), err)
	}
}

func TestDeleteReviewResetsEmptyRating(t *testing.T) {
	f := newReviewFixture()
	svc := NewReviewService(f.repo, zap.NewNop())
	booking := f.completedBooking(f.userID)

	resp, err := svc.Create(context.Background(), f.userID, &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), f.userID, string(entity.RoleUser), uuid.MustParse(resp.ID)); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	hotel := f.hotels.hotels[f.hotelID]
	if hotel.Rating != 0 || hotel.ReviewCount != 0 {
		t.Errorf("rating = %v count = %d, want 0 and 0 with no reviews left", hotel.Rating, hotel.ReviewCount)
	}
}

func TestResolveReportApprovedHidesReview(t *testing.T) {
	f := newReviewFixture()
	svc := NewReviewService(f.repo, zap.NewNop())
	booking := f.completedBooking(f.userID)

	resp, err := svc.Create(context.Background(), f.userID, &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	reviewID := uuid.MustParse(resp.ID)

	if err := svc.Report(context.Background(), uuid.New(), reviewID, &request.ReportReviewRequest{
		Reason: "abusive language",
	}); err != nil {
		t.Fatalf("Report: %v", err)
	}

	// Reporting again while pending conflicts.
	err = svc.Report(context.Background(), uuid.New(), reviewID, &request.ReportReviewRequest{Reason: "again"})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("kind = %v, want conflict; err = %v", apperr.KindOf(err), err)
	}

	if err := svc.ResolveReport(context.Background(), reviewID, &request.ResolveReportRequest{
		Decision: string(entity.ReportStatusApproved),
	}); err != nil {
		t.Fatalf("ResolveReport: %v", err)
	}

	review := f.reviews.reviews[reviewID]
	if review.Status != entity.ReviewStatusHidden {
		t.Errorf("status = %v, want hidden", review.Status)
	}
	hotel := f.hotels.hotels[f.hotelID]
	if hotel.ReviewCount != 0 {
		t.Errorf("review count = %d, want 0 after hiding", hotel.ReviewCount)
	}

	// Nothing pending anymore.
	err = svc.ResolveReport(context.Background(), reviewID, &request.ResolveReportRequest{
		Decision: string(entity.ReportStatusRejected),
	})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("kind = %v, want conflict; err = %v", apperr.KindOf(err), err)
	}
}
