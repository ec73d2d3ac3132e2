package request

type CreateHotelRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description *string  `json:"description,omitempty"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Images      []string `json:"images,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	HotelType   string   `json:"hotel_type" validate:"required,oneof=hotel motel pension resort guesthouse"`
}

type UpdateHotelRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description *string  `json:"description,omitempty"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Images      []string `json:"images,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	HotelType   string   `json:"hotel_type" validate:"required,oneof=hotel motel pension resort guesthouse"`
}

// SearchHotelsRequest is bound from query parameters.
type SearchHotelsRequest struct {
	City      string   `json:"city"`
	HotelType string   `json:"hotel_type" validate:"omitempty,oneof=hotel motel pension resort guesthouse"`
	Amenities []string `json:"amenities"`
	MinRating float64  `json:"rating" validate:"min=0,max=5"`
	PaginatedRequest
}
