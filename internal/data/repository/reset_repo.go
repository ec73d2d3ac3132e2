package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error
	FindValidByToken(ctx context.Context, token string) (*entity.PasswordReset, error)
	MarkUsed(ctx context.Context, token string) error
}

type resetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetRepository(db database.PgxIface, log *zap.Logger) ResetRepository {
	return &resetRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset")),
	}
}

func (r *resetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (id, user_id, email, token, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		reset.ID,
		reset.UserID,
		reset.Email,
		reset.Token,
		reset.ExpiresAt,
		reset.IsUsed,
		reset.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create password reset",
			zap.Error(err),
			zap.String("email", reset.Email),
		)
		return fmt.Errorf("create password reset: %w", err)
	}

	return nil
}

func (r *resetRepository) FindValidByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	query := `
		SELECT id, user_id, email, token, expires_at, is_used, created_at
		FROM password_resets
		WHERE token = $1 AND is_used = false AND expires_at > NOW()
	`

	var reset entity.PasswordReset
	err := r.db.QueryRow(ctx, query, token).Scan(
		&reset.ID,
		&reset.UserID,
		&reset.Email,
		&reset.Token,
		&reset.ExpiresAt,
		&reset.IsUsed,
		&reset.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find password reset", zap.Error(err))
		return nil, fmt.Errorf("find password reset: %w", err)
	}

	return &reset, nil
}

func (r *resetRepository) MarkUsed(ctx context.Context, token string) error {
	query := `UPDATE password_resets SET is_used = true WHERE token = $1`

	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to mark password reset used", zap.Error(err))
		return fmt.Errorf("mark password reset used: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("password reset not found")
	}

	return nil
}
