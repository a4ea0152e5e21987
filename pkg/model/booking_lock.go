package model

import "time"

// BookingLock is an advisory lock serializing booking mutations per room.
// Mongo transactions alone cannot reject two concurrent inserts for
// overlapping ranges (distinct documents never conflict under snapshot
// isolation), so mutations take this lock before checking availability.
// ExpiresAt backs a TTL index that reaps locks a crashed request left behind.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
