package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	BaseSimple
	UserID *uuid.UUID `db:"user_id"`
	Action string     `db:"action"`
	Method string     `db:"method"`
	Path   string     `db:"path"`
	Status int        `db:"status"`
	IP     string     `db:"ip"`
}

type ViewHistory struct {
	ID       uuid.UUID `db:"id"`
	UserID   uuid.UUID `db:"user_id"`
	HotelID  uuid.UUID `db:"hotel_id"`
	ViewedAt time.Time `db:"viewed_at"`
}
