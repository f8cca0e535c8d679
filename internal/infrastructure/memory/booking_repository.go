package memory

import (
	"fmt"
	"sync"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
)

// BookingRepository mutable booking store. Single writer per operation,
// many readers; mutations are visible immediately to all readers.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []*entity.Booking
	byID     map[string]*entity.Booking
}

var _ repository.BookingRepository = (*BookingRepository)(nil)

// NewBookingRepository builds the store from the seed snapshot.
func NewBookingRepository(seed []entity.Booking) *BookingRepository {
	r := &BookingRepository{
		byID: make(map[string]*entity.Booking, len(seed)),
	}
	for i := range seed {
		b := seed[i]
		r.bookings = append(r.bookings, &b)
		r.byID[b.ID] = &b
	}
	return r
}

// Create appends a booking. Duplicate ids are rejected so the registry's
// id-uniqueness invariant holds.
func (r *BookingRepository) Create(booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[booking.ID]; exists {
		return domain.ErrInvalidInput
	}
	b := *booking
	r.bookings = append(r.bookings, &b)
	r.byID[b.ID] = &b
	return nil
}

// GetByID returns a copy of the booking or ErrNotFound.
func (r *BookingRepository) GetByID(id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *b
	return &out, nil
}

// List returns copies in insertion order.
func (r *BookingRepository) List() ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

// UpdateStatus replaces the status field of the matching booking and nothing
// else. The transition check runs under the write lock, so of two concurrent
// decisions on the same booking only the first can win. Unknown ids return
// ErrNotFound and leave the registry unchanged.
func (r *BookingRepository) UpdateStatus(id string, status entity.BookingStatus) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(b.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, status)
	}
	b.Status = status
	out := *b
	return &out, nil
}
