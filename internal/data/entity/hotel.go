package entity

import (
	"github.com/google/uuid"
)

type HotelStatus string

const (
	HotelStatusActive   HotelStatus = "active"
	HotelStatusInactive HotelStatus = "inactive"
	HotelStatusPending  HotelStatus = "pending"
)

type HotelType string

const (
	HotelTypeHotel      HotelType = "hotel"
	HotelTypeMotel      HotelType = "motel"
	HotelTypePension    HotelType = "pension"
	HotelTypeResort     HotelType = "resort"
	HotelTypeGuesthouse HotelType = "guesthouse"
)

type Hotel struct {
	Base
	OwnerID     uuid.UUID   `db:"owner_id"`
	Name        string      `db:"name"`
	Description *string     `db:"description"`
	Address     string      `db:"address"`
	City        string      `db:"city"`
	Country     string      `db:"country"`
	Latitude    *float64    `db:"latitude"`
	Longitude   *float64    `db:"longitude"`
	Images      []string    `db:"images"`
	Amenities   []string    `db:"amenities"`
	HotelType   HotelType   `db:"hotel_type"`
	Status      HotelStatus `db:"status"`

	// Derived from the active review set, recomputed on every review mutation.
	Rating      float64 `db:"rating"`
	ReviewCount int     `db:"review_count"`
}
