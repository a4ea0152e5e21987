package model

import "time"

// Booking reserves a room for the half-open interval [StartTime, EndTime).
// UserEmail and UserName are denormalized copies, not references into the
// Users collection; RoomNumber is a business-key reference into Rooms.
type Booking struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserEmail   string    `json:"userEmail" bson:"user_email" validate:"required,email"`
	UserName    string    `json:"userName" bson:"user_name" validate:"required,min=1,max=100"`
	RoomNumber  string    `json:"roomNumber" bson:"room_number" validate:"required,min=1,max=20"`
	StartTime   time.Time `json:"startTime" bson:"start_time" validate:"required"`
	EndTime     time.Time `json:"endTime" bson:"end_time" validate:"required,gtfield=StartTime"`
	Price       float64   `json:"price" bson:"price" validate:"required,gt=0"`
	PaymentType string    `json:"paymentType,omitempty" bson:"payment_type,omitempty" validate:"omitempty,max=30"`
	Tip         float64   `json:"tip,omitempty" bson:"tip,omitempty" validate:"omitempty,gte=0"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// BookingUpdate carries the PUT payload. Pointer and zero-value semantics:
// absent fields keep the stored value.
type BookingUpdate struct {
	UserEmail   string     `json:"userEmail,omitempty" validate:"omitempty,email"`
	UserName    string     `json:"userName,omitempty" validate:"omitempty,min=1,max=100"`
	RoomNumber  string     `json:"roomNumber,omitempty" validate:"omitempty,min=1,max=20"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	PaymentType string     `json:"paymentType,omitempty" validate:"omitempty,max=30"`
	Tip         *float64   `json:"tip,omitempty" validate:"omitempty,gte=0"`
}

// BookingWithRoom is the listing view: the booking plus a best-effort join
// against Rooms on the room_number business key. Room is nil when the
// referenced room no longer resolves.
type BookingWithRoom struct {
	Booking `bson:",inline"`
	Room    *Room `json:"room,omitempty" bson:"room,omitempty"`
}
