package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	FindActiveByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountActiveByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error

	// ActiveStats returns the arithmetic mean rating and count of active
	// reviews of the hotel; (0, 0) when there are none.
	ActiveStats(ctx context.Context, hotelID uuid.UUID) (float64, int, error)

	Report(ctx context.Context, id uuid.UUID, reporterID uuid.UUID, reason string) error
	ResolveReport(ctx context.Context, id uuid.UUID, status entity.ReportStatus) error
	FindReported(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	Count(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, hotel_id, booking_id, rating, comment, status,
	is_reported, report_reason, reported_by, report_status, created_at, updated_at, deleted_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.HotelID,
		&review.BookingID,
		&review.Rating,
		&review.Comment,
		&review.Status,
		&review.IsReported,
		&review.ReportReason,
		&review.ReportedBy,
		&review.ReportStatus,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, hotel_id, booking_id, rating, comment, status, is_reported, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.HotelID,
		review.BookingID,
		review.Rating,
		review.Comment,
		review.Status,
		review.IsReported,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("hotel_id", review.HotelID.String()),
		)
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1 AND deleted_at IS NULL`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1 AND status != 'deleted' AND deleted_at IS NULL`

	review, err := scanReview(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		r.log.Error("Failed to find review by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find review by booking %s: %w", bookingID.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindActiveByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE hotel_id = $1 AND status = 'active' AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, hotelID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by hotel",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find reviews by hotel %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	return r.collectReviews(rows)
}

func (r *reviewRepository) CountActiveByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE hotel_id = $1 AND status = 'active' AND deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query, hotelID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by hotel",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return 0, fmt.Errorf("count reviews by hotel %s: %w", hotelID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND status != 'deleted' AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reviews by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.collectReviews(rows)
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, review.ID, review.Rating, review.Comment, review.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	query := `UPDATE reviews SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update review status",
			zap.Error(err),
			zap.String("review_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update review %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) ActiveStats(ctx context.Context, hotelID uuid.UUID) (float64, int, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE hotel_id = $1 AND status = 'active' AND deleted_at IS NULL
	`

	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, query, hotelID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to compute review stats",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return 0, 0, fmt.Errorf("compute review stats for hotel %s: %w", hotelID.String(), err)
	}

	return avg, count, nil
}

func (r *reviewRepository) Report(ctx context.Context, id uuid.UUID, reporterID uuid.UUID, reason string) error {
	query := `
		UPDATE reviews
		SET is_reported = true, report_reason = $3, reported_by = $2, report_status = 'pending', updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, reporterID, reason)
	if err != nil {
		r.log.Error("Failed to report review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("report review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) ResolveReport(ctx context.Context, id uuid.UUID, status entity.ReportStatus) error {
	query := `UPDATE reviews SET report_status = $2, updated_at = NOW() WHERE id = $1 AND report_status = 'pending' AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to resolve report",
			zap.Error(err),
			zap.String("review_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("resolve report of review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("pending report for review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) FindReported(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE is_reported = true AND report_status = 'pending' AND deleted_at IS NULL
		ORDER BY updated_at ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reported reviews", zap.Error(err))
		return nil, fmt.Errorf("list reported reviews: %w", err)
	}
	defer rows.Close()

	return r.collectReviews(rows)
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE status != 'deleted' AND deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) collectReviews(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
