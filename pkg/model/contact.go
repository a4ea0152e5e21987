package model

import "time"

// Contact is write-once: no route ever reads these back.
type Contact struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Message   string    `json:"message" bson:"message" validate:"required,min=1,max=2000"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
