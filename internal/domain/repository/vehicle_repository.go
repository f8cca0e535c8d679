package repository

import "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"

// VehicleRepository is the read port for the catalog store (DIP).
// The catalog is immutable after the seed load, so there are no mutators.
type VehicleRepository interface {
	GetByID(id string) (*entity.Vehicle, error)
	// List returns a snapshot in insertion order.
	List() ([]*entity.Vehicle, error)
	Count() (int, error)
}
