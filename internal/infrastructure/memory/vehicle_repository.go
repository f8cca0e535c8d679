// Package memory provides the in-process stores behind the repository ports.
// The core holds everything in memory by design: state is seeded at startup
// and lost on restart.
package memory

import (
	"sync"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
)

// VehicleRepository immutable catalog store. Readers get copies; the backing
// slice never changes after construction.
type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles []*entity.Vehicle
	byID     map[string]*entity.Vehicle
}

var _ repository.VehicleRepository = (*VehicleRepository)(nil)

// NewVehicleRepository builds the store from the seed snapshot.
func NewVehicleRepository(seed []entity.Vehicle) *VehicleRepository {
	r := &VehicleRepository{
		vehicles: make([]*entity.Vehicle, 0, len(seed)),
		byID:     make(map[string]*entity.Vehicle, len(seed)),
	}
	for i := range seed {
		v := seed[i]
		r.vehicles = append(r.vehicles, &v)
		r.byID[v.ID] = &v
	}
	return r
}

// GetByID returns a copy of the vehicle or ErrNotFound.
func (r *VehicleRepository) GetByID(id string) (*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *v
	return &out, nil
}

// List returns copies in insertion order.
func (r *VehicleRepository) List() ([]*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		c := *v
		out = append(out, &c)
	}
	return out, nil
}

// Count returns the catalog size.
func (r *VehicleRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vehicles), nil
}
