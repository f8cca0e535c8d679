package repository

import "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"

// BookingRepository is the persistence port for Booking (DIP).
// UpdateStatus is the only mutation besides Create; bookings are never deleted.
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	// List returns a snapshot in insertion order.
	List() ([]*entity.Booking, error)
	// UpdateStatus moves the matching booking to status, checking the
	// lifecycle graph under the same write lock so concurrent decisions on
	// one booking cannot both pass. Only the status field changes. Returns
	// the updated copy, domain.ErrNotFound for unknown ids, or a wrapped
	// domain.ErrInvalidTransition for edges outside the graph.
	UpdateStatus(id string, status entity.BookingStatus) (*entity.Booking, error)
}
