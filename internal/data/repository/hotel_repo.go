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

// HotelFilter narrows the public hotel search.
type HotelFilter struct {
	City      string
	HotelType string
	Amenities []string
	MinRating float64
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error)
	Search(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error)
	CountSearch(ctx context.Context, filter HotelFilter) (int64, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.Hotel, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.HotelStatus) error
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelColumns = `id, owner_id, name, description, address, city, country, latitude, longitude, images, amenities, hotel_type, status, rating, review_count, created_at, updated_at, deleted_at`

func scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := row.Scan(
		&hotel.ID,
		&hotel.OwnerID,
		&hotel.Name,
		&hotel.Description,
		&hotel.Address,
		&hotel.City,
		&hotel.Country,
		&hotel.Latitude,
		&hotel.Longitude,
		&hotel.Images,
		&hotel.Amenities,
		&hotel.HotelType,
		&hotel.Status,
		&hotel.Rating,
		&hotel.ReviewCount,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
		&hotel.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, owner_id, name, description, address, city, country, latitude, longitude, images, amenities, hotel_type, status, rating, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.OwnerID,
		hotel.Name,
		hotel.Description,
		hotel.Address,
		hotel.City,
		hotel.Country,
		hotel.Latitude,
		hotel.Longitude,
		hotel.Images,
		hotel.Amenities,
		hotel.HotelType,
		hotel.Status,
		hotel.Rating,
		hotel.ReviewCount,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", hotel.Name),
			zap.String("owner_id", hotel.OwnerID.String()),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Name, err)
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1 AND deleted_at IS NULL`

	hotel, err := scanHotel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}

	return hotel, nil
}

func (r *hotelRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error) {
	query := `
		SELECT ` + hotelColumns + `
		FROM hotels
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find hotels by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find hotels by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	return r.collectHotels(rows)
}

// Search filters active hotels. Amenities filter requires all given tags.
func (r *hotelRepository) Search(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
	query := `
		SELECT ` + hotelColumns + `
		FROM hotels
		WHERE status = 'active' AND deleted_at IS NULL
		  AND ($1 = '' OR city ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR hotel_type = $2)
		  AND (cardinality($3::text[]) = 0 OR amenities @> $3::text[])
		  AND rating >= $4
		ORDER BY rating DESC, created_at DESC
		LIMIT $5 OFFSET $6
	`

	amenities := filter.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	rows, err := r.db.Query(ctx, query, filter.City, filter.HotelType, amenities, filter.MinRating, limit, offset)
	if err != nil {
		r.log.Error("Failed to search hotels",
			zap.Error(err),
			zap.String("city", filter.City),
			zap.String("hotel_type", filter.HotelType),
		)
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	defer rows.Close()

	return r.collectHotels(rows)
}

func (r *hotelRepository) CountSearch(ctx context.Context, filter HotelFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM hotels
		WHERE status = 'active' AND deleted_at IS NULL
		  AND ($1 = '' OR city ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR hotel_type = $2)
		  AND (cardinality($3::text[]) = 0 OR amenities @> $3::text[])
		  AND rating >= $4
	`

	amenities := filter.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, filter.City, filter.HotelType, amenities, filter.MinRating).Scan(&count); err != nil {
		r.log.Error("Failed to count hotel search", zap.Error(err))
		return 0, fmt.Errorf("count hotel search: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Hotel, error) {
	query := `
		SELECT ` + hotelColumns + `
		FROM hotels
		WHERE status = 'active' AND deleted_at IS NULL
		ORDER BY rating DESC, review_count DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find featured hotels", zap.Error(err))
		return nil, fmt.Errorf("find featured hotels: %w", err)
	}
	defer rows.Close()

	return r.collectHotels(rows)
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, description = $3, address = $4, city = $5, country = $6,
		    latitude = $7, longitude = $8, images = $9, amenities = $10,
		    hotel_type = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Description,
		hotel.Address,
		hotel.City,
		hotel.Country,
		hotel.Latitude,
		hotel.Longitude,
		hotel.Images,
		hotel.Amenities,
		hotel.HotelType,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID.String())
	}

	return nil
}

func (r *hotelRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.HotelStatus) error {
	query := `UPDATE hotels SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update hotel status",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update hotel %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	return nil
}

func (r *hotelRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	query := `UPDATE hotels SET rating = $2, review_count = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, rating, reviewCount)
	if err != nil {
		r.log.Error("Failed to update hotel rating",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
			zap.Float64("rating", rating),
		)
		return fmt.Errorf("update hotel %s rating: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE hotels SET deleted_at = NOW(), status = 'inactive' WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete hotel", zap.Error(err), zap.String("hotel_id", id.String()))
		return fmt.Errorf("delete hotel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	r.log.Info("Hotel deleted", zap.String("hotel_id", id.String()))
	return nil
}

func (r *hotelRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM hotels WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count hotels", zap.Error(err))
		return 0, fmt.Errorf("count hotels: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) collectHotels(rows pgx.Rows) ([]*entity.Hotel, error) {
	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}
