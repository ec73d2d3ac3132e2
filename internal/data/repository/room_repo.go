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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)
	FindCheapestAvailable(ctx context.Context, hotelID uuid.UUID) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error

	// TakeRoom conditionally decrements available_rooms, refusing to go below
	// zero. RestoreRoom is the inverse, clamped at total_rooms. Both report
	// whether a unit actually moved.
	TakeRoom(ctx context.Context, id uuid.UUID) (bool, error)
	RestoreRoom(ctx context.Context, id uuid.UUID) (bool, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, hotel_id, name, room_type, bed_type, view_type, price, capacity, total_rooms, available_rooms, images, status, created_at, updated_at, deleted_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Name,
		&room.RoomType,
		&room.BedType,
		&room.ViewType,
		&room.Price,
		&room.Capacity,
		&room.TotalRooms,
		&room.AvailableRooms,
		&room.Images,
		&room.Status,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, hotel_id, name, room_type, bed_type, view_type, price, capacity, total_rooms, available_rooms, images, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.HotelID,
		room.Name,
		room.RoomType,
		room.BedType,
		room.ViewType,
		room.Price,
		room.Capacity,
		room.TotalRooms,
		room.AvailableRooms,
		room.Images,
		room.Status,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("hotel_id", room.HotelID.String()),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create room %s: %w", room.Name, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 AND deleted_at IS NULL`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE hotel_id = $1 AND deleted_at IS NULL
		ORDER BY price ASC
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find rooms by hotel",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find rooms by hotel %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// FindCheapestAvailable returns the hotel's cheapest active room that still
// has inventory, or nil when everything is sold out.
func (r *roomRepository) FindCheapestAvailable(ctx context.Context, hotelID uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE hotel_id = $1 AND status = 'active' AND available_rooms > 0 AND deleted_at IS NULL
		ORDER BY price ASC
		LIMIT 1
	`

	room, err := scanRoom(r.db.QueryRow(ctx, query, hotelID))
	if err != nil {
		r.log.Error("Failed to find cheapest available room",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find cheapest available room of hotel %s: %w", hotelID.String(), err)
	}

	return room, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET name = $2, room_type = $3, bed_type = $4, view_type = $5, price = $6,
		    capacity = $7, total_rooms = $8,
		    available_rooms = LEAST(GREATEST($9, 0), $8),
		    images = $10, status = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.RoomType,
		room.BedType,
		room.ViewType,
		room.Price,
		room.Capacity,
		room.TotalRooms,
		room.AvailableRooms,
		room.Images,
		room.Status,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE rooms SET deleted_at = NOW(), status = 'inactive' WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", id.String()))
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

func (r *roomRepository) TakeRoom(ctx context.Context, id uuid.UUID) (bool, error) {
	// Conditional decrement closes the two-bookings-last-room race: the
	// WHERE clause makes the check and the write one statement.
	query := `
		UPDATE rooms
		SET available_rooms = available_rooms - 1, updated_at = NOW()
		WHERE id = $1 AND available_rooms > 0 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to take room inventory",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return false, fmt.Errorf("take room %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *roomRepository) RestoreRoom(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE rooms
		SET available_rooms = available_rooms + 1, updated_at = NOW()
		WHERE id = $1 AND available_rooms < total_rooms AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to restore room inventory",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return false, fmt.Errorf("restore room %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
