package entity

import (
	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomStatusActive   RoomStatus = "active"
	RoomStatusInactive RoomStatus = "inactive"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
	RoomTypeFamily   RoomType = "family"
)

type BedType string

const (
	BedTypeSingle BedType = "single"
	BedTypeDouble BedType = "double"
	BedTypeQueen  BedType = "queen"
	BedTypeKing   BedType = "king"
	BedTypeTwin   BedType = "twin"
)

type ViewType string

const (
	ViewTypeCity     ViewType = "city"
	ViewTypeOcean    ViewType = "ocean"
	ViewTypeMountain ViewType = "mountain"
	ViewTypeGarden   ViewType = "garden"
)

// Room models one bookable room type of a hotel. AvailableRooms is the sole
// inventory signal: decremented on booking, restored on cancel/reject.
// Invariant: 0 <= AvailableRooms <= TotalRooms.
type Room struct {
	Base
	HotelID        uuid.UUID  `db:"hotel_id"`
	Name           string     `db:"name"`
	RoomType       RoomType   `db:"room_type"`
	BedType        BedType    `db:"bed_type"`
	ViewType       *ViewType  `db:"view_type"`
	Price          float64    `db:"price"`
	Capacity       int        `db:"capacity"`
	TotalRooms     int        `db:"total_rooms"`
	AvailableRooms int        `db:"available_rooms"`
	Images         []string   `db:"images"`
	Status         RoomStatus `db:"status"`
}
