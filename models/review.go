package models

import "time"

// Review is user feedback tied to a room. The author email always comes from
// the authenticated session, never from the request body.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	RoomID    string    `bson:"room_id" json:"roomId"`
	Email     string    `bson:"email" json:"email"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
