package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActivityRepository interface {
	CreateLog(ctx context.Context, log *entity.ActivityLog) error
	FindRecentLogs(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error)
	CreateView(ctx context.Context, view *entity.ViewHistory) error
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

func (r *activityRepository) CreateLog(ctx context.Context, entry *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, action, method, path, status, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.Method,
		entry.Path,
		entry.Status,
		entry.IP,
		entry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to write activity log", zap.Error(err))
		return fmt.Errorf("write activity log: %w", err)
	}

	return nil
}

func (r *activityRepository) FindRecentLogs(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, method, path, status, ip, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list activity logs", zap.Error(err))
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.ActivityLog
	for rows.Next() {
		var entry entity.ActivityLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Method,
			&entry.Path,
			&entry.Status,
			&entry.IP,
			&entry.CreatedAt,
		)
		if err != nil && err != pgx.ErrNoRows {
			r.log.Error("Failed to scan activity log row", zap.Error(err))
			return nil, fmt.Errorf("scan activity log row: %w", err)
		}
		logs = append(logs, &entry)
	}

	return logs, nil
}

func (r *activityRepository) CreateView(ctx context.Context, view *entity.ViewHistory) error {
	query := `
		INSERT INTO view_history (id, user_id, hotel_id, viewed_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, view.ID, view.UserID, view.HotelID, view.ViewedAt)
	if err != nil {
		r.log.Error("Failed to write view history", zap.Error(err))
		return fmt.Errorf("write view history: %w", err)
	}

	return nil
}
