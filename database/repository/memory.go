package repository

import (
	"sort"
	"strings"
	"sync"

	"havenhotel/models"
)

// In-memory repository implementations. They back the handler tests and make
// the store substitutable without a running MongoDB.

// MemoryRoomRepo implements RoomRepository over a fixed in-memory catalog.
type MemoryRoomRepo struct {
	mu    sync.RWMutex
	rooms []models.Room
}

func NewMemoryRoomRepo(rooms ...models.Room) *MemoryRoomRepo {
	return &MemoryRoomRepo{rooms: rooms}
}

func (r *MemoryRoomRepo) List(search string, order SortOrder) ([]models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Room
	for _, room := range r.rooms {
		if search != "" && !strings.Contains(strings.ToLower(room.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, room)
	}
	switch order {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight > out[j].PricePerNight })
	}
	return out, nil
}

func (r *MemoryRoomRepo) GetByID(id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		if room.ID == id {
			cp := room
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryBookingRepo implements BookingRepository over an in-memory map.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	order    []string
	bookings map[string]models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[booking.ID] = *booking
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *MemoryBookingRepo) ListByEmail(email string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, id := range r.order {
		if b, ok := r.bookings[id]; ok && b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepo) UpdateDate(id, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Date = date
	r.bookings[id] = b
	return nil
}

func (r *MemoryBookingRepo) Delete(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return 0, nil
	}
	delete(r.bookings, id)
	return 1, nil
}

// MemoryReviewRepo implements ReviewRepository over an in-memory slice.
type MemoryReviewRepo struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewMemoryReviewRepo() *MemoryReviewRepo {
	return &MemoryReviewRepo{}
}

func (r *MemoryReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *MemoryReviewRepo) ListAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *MemoryReviewRepo) ListByRoom(roomID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Review
	for _, rv := range r.reviews {
		if rv.RoomID == roomID {
			out = append(out, rv)
		}
	}
	return out, nil
}
