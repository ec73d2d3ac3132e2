package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type SettingsRepository interface {
	// Get returns the singleton row, lazily inserting defaults on first read.
	Get(ctx context.Context) (*entity.SystemSettings, error)
	Update(ctx context.Context, settings *entity.SystemSettings) error
}

type settingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingsRepository(db database.PgxIface, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "settings")),
	}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.SystemSettings, error) {
	// Upsert keeps the singleton at id=1; concurrent first reads are safe.
	query := `
		INSERT INTO system_settings (id, maintenance_mode, maintenance_message, points_earn_rate, cancel_deadline_hours, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET id = system_settings.id
		RETURNING id, maintenance_mode, maintenance_message, points_earn_rate, cancel_deadline_hours, updated_at
	`

	defaults := entity.DefaultSettings()

	var settings entity.SystemSettings
	err := r.db.QueryRow(ctx, query,
		defaults.MaintenanceMode,
		defaults.MaintenanceMessage,
		defaults.PointsEarnRate,
		defaults.CancelDeadlineHours,
		defaults.UpdatedAt,
	).Scan(
		&settings.ID,
		&settings.MaintenanceMode,
		&settings.MaintenanceMessage,
		&settings.PointsEarnRate,
		&settings.CancelDeadlineHours,
		&settings.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to load system settings", zap.Error(err))
		return nil, fmt.Errorf("load system settings: %w", err)
	}

	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.SystemSettings) error {
	query := `
		UPDATE system_settings
		SET maintenance_mode = $1, maintenance_message = $2, points_earn_rate = $3,
		    cancel_deadline_hours = $4, updated_at = $5
		WHERE id = 1
	`

	result, err := r.db.Exec(ctx, query,
		settings.MaintenanceMode,
		settings.MaintenanceMessage,
		settings.PointsEarnRate,
		settings.CancelDeadlineHours,
		settings.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update system settings", zap.Error(err))
		return fmt.Errorf("update system settings: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("system settings row not found")
	}

	return nil
}
