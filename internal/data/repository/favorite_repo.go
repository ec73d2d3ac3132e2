package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FavoriteRepository interface {
	Create(ctx context.Context, fav *entity.Favorite) error
	FindByUserAndHotel(ctx context.Context, userID, hotelID uuid.UUID) (*entity.Favorite, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	Delete(ctx context.Context, userID, hotelID uuid.UUID) error
	UpdateAlert(ctx context.Context, id uuid.UUID, enabled bool, targetPrice *float64) error
	FindAlertEnabled(ctx context.Context) ([]*entity.Favorite, error)
	StampNotified(ctx context.Context, id uuid.UUID, at time.Time) error
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

const favoriteColumns = `id, user_id, hotel_id, alert_enabled, target_price, last_notified_at, created_at`

func scanFavorite(row pgx.Row) (*entity.Favorite, error) {
	var fav entity.Favorite
	err := row.Scan(
		&fav.ID,
		&fav.UserID,
		&fav.HotelID,
		&fav.AlertEnabled,
		&fav.TargetPrice,
		&fav.LastNotifiedAt,
		&fav.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) Create(ctx context.Context, fav *entity.Favorite) error {
	// Unique (user_id, hotel_id); a second insert is a conflict no-op.
	query := `
		INSERT INTO favorites (id, user_id, hotel_id, alert_enabled, target_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, hotel_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		fav.ID,
		fav.UserID,
		fav.HotelID,
		fav.AlertEnabled,
		fav.TargetPrice,
		fav.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.String("user_id", fav.UserID.String()),
			zap.String("hotel_id", fav.HotelID.String()),
		)
		return fmt.Errorf("create favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) FindByUserAndHotel(ctx context.Context, userID, hotelID uuid.UUID) (*entity.Favorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorites WHERE user_id = $1 AND hotel_id = $2`

	fav, err := scanFavorite(r.db.QueryRow(ctx, query, userID, hotelID))
	if err != nil {
		r.log.Error("Failed to find favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find favorite: %w", err)
	}

	return fav, nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	query := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorites by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorites by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.collectFavorites(rows)
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, hotelID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND hotel_id = $2`

	result, err := r.db.Exec(ctx, query, userID, hotelID)
	if err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hotel_id", hotelID.String()),
		)
		return fmt.Errorf("delete favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite not found")
	}

	return nil
}

func (r *favoriteRepository) UpdateAlert(ctx context.Context, id uuid.UUID, enabled bool, targetPrice *float64) error {
	query := `UPDATE favorites SET alert_enabled = $2, target_price = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, enabled, targetPrice)
	if err != nil {
		r.log.Error("Failed to update price alert",
			zap.Error(err),
			zap.String("favorite_id", id.String()),
		)
		return fmt.Errorf("update price alert %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s not found", id.String())
	}

	return nil
}

func (r *favoriteRepository) FindAlertEnabled(ctx context.Context) ([]*entity.Favorite, error) {
	query := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE alert_enabled = true AND target_price IS NOT NULL
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find alert-enabled favorites", zap.Error(err))
		return nil, fmt.Errorf("find alert-enabled favorites: %w", err)
	}
	defer rows.Close()

	return r.collectFavorites(rows)
}

func (r *favoriteRepository) StampNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE favorites SET last_notified_at = $2 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		r.log.Error("Failed to stamp notification time",
			zap.Error(err),
			zap.String("favorite_id", id.String()),
		)
		return fmt.Errorf("stamp notification time %s: %w", id.String(), err)
	}

	return nil
}

func (r *favoriteRepository) collectFavorites(rows pgx.Rows) ([]*entity.Favorite, error) {
	var favs []*entity.Favorite
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favs = append(favs, fav)
	}
	return favs, nil
}
