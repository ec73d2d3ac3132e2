package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Images      []string  `json:"images"`
	Amenities   []string  `json:"amenities"`
	HotelType   string    `json:"hotel_type"`
	Status      string    `json:"status"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type HotelDetailResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"rooms"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:          hotel.ID.String(),
		OwnerID:     hotel.OwnerID.String(),
		Name:        hotel.Name,
		Description: hotel.Description,
		Address:     hotel.Address,
		City:        hotel.City,
		Country:     hotel.Country,
		Latitude:    hotel.Latitude,
		Longitude:   hotel.Longitude,
		Images:      hotel.Images,
		Amenities:   hotel.Amenities,
		HotelType:   string(hotel.HotelType),
		Status:      string(hotel.Status),
		Rating:      hotel.Rating,
		ReviewCount: hotel.ReviewCount,
		CreatedAt:   hotel.CreatedAt,
	}
}
