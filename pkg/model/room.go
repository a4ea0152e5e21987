package model

import "time"

// Room is a bookable resource identified to clients by its business key
// RoomNumber. Rooms are immutable after creation; there is no update or
// delete route.
type Room struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomNumber   string    `json:"roomNumber" bson:"room_number" validate:"required,min=1,max=20"`
	RoomType     string    `json:"roomType" bson:"room_type" validate:"required,min=1,max=50"`
	PricePerHour float64   `json:"pricePerHour" bson:"price_per_hour" validate:"required,gt=0"`
	ImageURL     string    `json:"imageUrl,omitempty" bson:"image_url,omitempty" validate:"omitempty,url"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
