package request

type CreateRoomRequest struct {
	HotelID    string   `json:"hotel_id" validate:"required,uuid"`
	Name       string   `json:"name" validate:"required,min=1,max=200"`
	RoomType   string   `json:"room_type" validate:"required,oneof=standard deluxe suite family"`
	BedType    string   `json:"bed_type" validate:"required,oneof=single double queen king twin"`
	ViewType   *string  `json:"view_type,omitempty" validate:"omitempty,oneof=city ocean mountain garden"`
	Price      float64  `json:"price" validate:"required,gt=0"`
	Capacity   int      `json:"capacity" validate:"required,min=1,max=20"`
	TotalRooms int      `json:"total_rooms" validate:"required,min=1"`
	Images     []string `json:"images,omitempty"`
}

type UpdateRoomRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=200"`
	RoomType       string   `json:"room_type" validate:"required,oneof=standard deluxe suite family"`
	BedType        string   `json:"bed_type" validate:"required,oneof=single double queen king twin"`
	ViewType       *string  `json:"view_type,omitempty" validate:"omitempty,oneof=city ocean mountain garden"`
	Price          float64  `json:"price" validate:"required,gt=0"`
	Capacity       int      `json:"capacity" validate:"required,min=1,max=20"`
	TotalRooms     int      `json:"total_rooms" validate:"required,min=1"`
	AvailableRooms int      `json:"available_rooms" validate:"min=0"`
	Images         []string `json:"images,omitempty"`
	Status         string   `json:"status" validate:"required,oneof=active inactive"`
}
