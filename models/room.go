package models

// Room is a catalog entity. Rooms are seeded out of band; the API never
// creates or mutates them.
type Room struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Description   string  `bson:"description,omitempty" json:"description,omitempty"`
	PricePerNight float64 `bson:"price_per_night" json:"pricePerNight"`
	Image         string  `bson:"image,omitempty" json:"image,omitempty"`
	MaxOccupancy  int     `bson:"max_occupancy,omitempty" json:"maxOccupancy,omitempty"`
	Available     bool    `bson:"available" json:"available"`
}
