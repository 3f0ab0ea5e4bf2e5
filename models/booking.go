package models

import "time"

// Booking represents a reservation owned by the user identified by Email.
// The owner email is the sole authorization key for reading or mutating it.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	RoomID    string    `bson:"room_id" json:"roomId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD" format
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	// Extra carries any additional fields the client supplied at creation
	// time, stored inline with the typed fields.
	Extra map[string]interface{} `bson:",inline" json:"extra,omitempty"`
}
