package response

import (
	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID             string   `json:"id"`
	HotelID        string   `json:"hotel_id"`
	Name           string   `json:"name"`
	RoomType       string   `json:"room_type"`
	BedType        string   `json:"bed_type"`
	ViewType       *string  `json:"view_type,omitempty"`
	Price          float64  `json:"price"`
	Capacity       int      `json:"capacity"`
	TotalRooms     int      `json:"total_rooms"`
	AvailableRooms int      `json:"available_rooms"`
	Images         []string `json:"images"`
	Status         string   `json:"status"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	var viewType *string
	if room.ViewType != nil {
		s := string(*room.ViewType)
		viewType = &s
	}

	return RoomResponse{
		ID:             room.ID.String(),
		HotelID:        room.HotelID.String(),
		Name:           room.Name,
		RoomType:       string(room.RoomType),
		BedType:        string(room.BedType),
		ViewType:       viewType,
		Price:          room.Price,
		Capacity:       room.Capacity,
		TotalRooms:     room.TotalRooms,
		AvailableRooms: room.AvailableRooms,
		Images:         room.Images,
		Status:         string(room.Status),
	}
}
