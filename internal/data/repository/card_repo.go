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

type CardRepository interface {
	Create(ctx context.Context, card *entity.PaymentCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentCard, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentCard, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SetDefault clears the user's previous default and marks the given card.
	SetDefault(ctx context.Context, userID, cardID uuid.UUID) error
}

type cardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCardRepository(db database.PgxIface, log *zap.Logger) CardRepository {
	return &cardRepository{
		db:  db,
		log: log.With(zap.String("repository", "card")),
	}
}

const cardColumns = `id, user_id, holder_name, card_number_enc, expiry, brand, is_default, created_at, updated_at`

func scanCard(row pgx.Row) (*entity.PaymentCard, error) {
	var card entity.PaymentCard
	err := row.Scan(
		&card.ID,
		&card.UserID,
		&card.HolderName,
		&card.CardNumberEnc,
		&card.Expiry,
		&card.Brand,
		&card.IsDefault,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) Create(ctx context.Context, card *entity.PaymentCard) error {
	query := `
		INSERT INTO payment_cards (id, user_id, holder_name, card_number_enc, expiry, brand, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		card.ID,
		card.UserID,
		card.HolderName,
		card.CardNumberEnc,
		card.Expiry,
		card.Brand,
		card.IsDefault,
		card.CreatedAt,
		card.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment card",
			zap.Error(err),
			zap.String("user_id", card.UserID.String()),
		)
		return fmt.Errorf("create payment card: %w", err)
	}

	return nil
}

func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentCard, error) {
	query := `SELECT ` + cardColumns + ` FROM payment_cards WHERE id = $1`

	card, err := scanCard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find payment card by ID",
			zap.Error(err),
			zap.String("card_id", id.String()),
		)
		return nil, fmt.Errorf("find payment card by ID %s: %w", id.String(), err)
	}

	return card, nil
}

func (r *cardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentCard, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM payment_cards
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find payment cards by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find payment cards by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var cards []*entity.PaymentCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			r.log.Error("Failed to scan payment card row", zap.Error(err))
			return nil, fmt.Errorf("scan payment card row: %w", err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func (r *cardRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM payment_cards WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count payment cards",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count payment cards of user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payment_cards WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete payment card",
			zap.Error(err),
			zap.String("card_id", id.String()),
		)
		return fmt.Errorf("delete payment card %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment card %s not found", id.String())
	}

	return nil
}

func (r *cardRepository) SetDefault(ctx context.Context, userID, cardID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin set default card: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE payment_cards SET is_default = false, updated_at = NOW() WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear default card",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("clear default card of user %s: %w", userID.String(), err)
	}

	result, err := tx.Exec(ctx, `UPDATE payment_cards SET is_default = true, updated_at = NOW() WHERE id = $1 AND user_id = $2`, cardID, userID)
	if err != nil {
		r.log.Error("Failed to set default card",
			zap.Error(err),
			zap.String("card_id", cardID.String()),
		)
		return fmt.Errorf("set default card %s: %w", cardID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment card %s not found", cardID.String())
	}

	return tx.Commit(ctx)
}
