package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type FavoriteResponse struct {
	ID           string         `json:"id"`
	HotelID      string         `json:"hotel_id"`
	Hotel        *HotelResponse `json:"hotel,omitempty"`
	AlertEnabled bool           `json:"alert_enabled"`
	TargetPrice  *float64       `json:"target_price,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func FavoriteToResponse(favorite *entity.Favorite, hotel *entity.Hotel) FavoriteResponse {
	resp := FavoriteResponse{
		ID:           favorite.ID.String(),
		HotelID:      favorite.HotelID.String(),
		AlertEnabled: favorite.AlertEnabled,
		TargetPrice:  favorite.TargetPrice,
		CreatedAt:    favorite.CreatedAt,
	}
	if hotel != nil {
		h := HotelToResponse(hotel)
		resp.Hotel = &h
	}

	return resp
}

type ToggleFavoriteResponse struct {
	HotelID   string `json:"hotel_id"`
	Favorited bool   `json:"favorited"`
}
