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

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindValidForHotel returns active, in-window coupons scoped to the hotel
	// plus platform-wide admin coupons, ordered by creation time so the first
	// best match wins ties deterministically.
	FindValidForHotel(ctx context.Context, hotelID *uuid.UUID) ([]*entity.Coupon, error)

	FindAll(ctx context.Context, limit, offset int) ([]*entity.Coupon, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Redeem increments used_count only while under the usage limit and
	// reports whether the redemption took.
	Redeem(ctx context.Context, id uuid.UUID) (bool, error)
	Release(ctx context.Context, id uuid.UUID) error
}

type couponRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCouponRepository(db database.PgxIface, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

const couponColumns = `id, code, discount_type, value, min_purchase, max_discount, valid_from, valid_to,
	usage_limit, used_count, hotel_id, issuer_type, status, created_at, updated_at, deleted_at`

func scanCoupon(row pgx.Row) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := row.Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountType,
		&coupon.Value,
		&coupon.MinPurchase,
		&coupon.MaxDiscount,
		&coupon.ValidFrom,
		&coupon.ValidTo,
		&coupon.UsageLimit,
		&coupon.UsedCount,
		&coupon.HotelID,
		&coupon.IssuerType,
		&coupon.Status,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
		&coupon.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, discount_type, value, min_purchase, max_discount, valid_from, valid_to,
			usage_limit, used_count, hotel_id, issuer_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.Code,
		coupon.DiscountType,
		coupon.Value,
		coupon.MinPurchase,
		coupon.MaxDiscount,
		coupon.ValidFrom,
		coupon.ValidTo,
		coupon.UsageLimit,
		coupon.UsedCount,
		coupon.HotelID,
		coupon.IssuerType,
		coupon.Status,
		coupon.CreatedAt,
		coupon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", coupon.Code),
		)
		return fmt.Errorf("create coupon %s: %w", coupon.Code, err)
	}

	return nil
}

func (r *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1 AND deleted_at IS NULL`

	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find coupon by ID",
			zap.Error(err),
			zap.String("coupon_id", id.String()),
		)
		return nil, fmt.Errorf("find coupon by ID %s: %w", id.String(), err)
	}

	return coupon, nil
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1 AND deleted_at IS NULL`

	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, code))
	if err != nil {
		r.log.Error("Failed to find coupon by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find coupon by code %s: %w", code, err)
	}

	return coupon, nil
}

func (r *couponRepository) FindValidForHotel(ctx context.Context, hotelID *uuid.UUID) ([]*entity.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE status = 'active' AND deleted_at IS NULL
		  AND valid_from <= NOW() AND valid_to >= NOW()
		  AND (
		        (hotel_id IS NULL AND issuer_type = 'admin')
		     OR ($1::uuid IS NOT NULL AND hotel_id = $1)
		  )
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find valid coupons", zap.Error(err))
		return nil, fmt.Errorf("find valid coupons: %w", err)
	}
	defer rows.Close()

	return r.collectCoupons(rows)
}

func (r *couponRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list coupons", zap.Error(err))
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	return r.collectCoupons(rows)
}

func (r *couponRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE hotel_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find coupons by hotel",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find coupons by hotel %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	return r.collectCoupons(rows)
}

func (r *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		UPDATE coupons
		SET discount_type = $2, value = $3, min_purchase = $4, max_discount = $5,
		    valid_from = $6, valid_to = $7, usage_limit = $8, status = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.DiscountType,
		coupon.Value,
		coupon.MinPurchase,
		coupon.MaxDiscount,
		coupon.ValidFrom,
		coupon.ValidTo,
		coupon.UsageLimit,
		coupon.Status,
		coupon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update coupon",
			zap.Error(err),
			zap.String("coupon_id", coupon.ID.String()),
		)
		return fmt.Errorf("update coupon %s: %w", coupon.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s not found", coupon.ID.String())
	}

	return nil
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE coupons SET deleted_at = NOW(), status = 'inactive' WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete coupon", zap.Error(err), zap.String("coupon_id", id.String()))
		return fmt.Errorf("delete coupon %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s not found", id.String())
	}

	return nil
}

func (r *couponRepository) Redeem(ctx context.Context, id uuid.UUID) (bool, error) {
	// Conditional increment keeps used_count <= usage_limit even under
	// concurrent redemptions.
	query := `
		UPDATE coupons
		SET used_count = used_count + 1, updated_at = NOW()
		WHERE id = $1 AND used_count < usage_limit AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to redeem coupon",
			zap.Error(err),
			zap.String("coupon_id", id.String()),
		)
		return false, fmt.Errorf("redeem coupon %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *couponRepository) Release(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE coupons
		SET used_count = used_count - 1, updated_at = NOW()
		WHERE id = $1 AND used_count > 0 AND deleted_at IS NULL
	`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to release coupon",
			zap.Error(err),
			zap.String("coupon_id", id.String()),
		)
		return fmt.Errorf("release coupon %s: %w", id.String(), err)
	}

	return nil
}

func (r *couponRepository) collectCoupons(rows pgx.Rows) ([]*entity.Coupon, error) {
	var coupons []*entity.Coupon
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			r.log.Error("Failed to scan coupon row", zap.Error(err))
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		coupons = append(coupons, coupon)
	}
	return coupons, nil
}
