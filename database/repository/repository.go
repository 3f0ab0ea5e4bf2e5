package repository

import (
	"context"
	"errors"
	"time"

	"havenhotel/models"
)

// ErrNotFound is returned when a lookup by id matches no document.
var ErrNotFound = errors.New("not found")

// SortOrder selects the price ordering for room listings.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

// RoomRepository defines the interface for room data access.
type RoomRepository interface {
	List(search string, sort SortOrder) ([]models.Room, error)
	GetByID(id string) (*models.Room, error)
}

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	ListByEmail(email string) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	UpdateDate(id, date string) error
	Delete(id string) (int64, error)
}

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	ListAll() ([]models.Review, error)
	ListByRoom(roomID string) ([]models.Review, error)
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
