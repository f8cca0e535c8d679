package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
)

// CatalogUseCase read-only queries over the vehicle catalog.
type CatalogUseCase struct {
	vehicleRepo repository.VehicleRepository
}

// NewCatalogUseCase constructs the use case.
func NewCatalogUseCase(vehicleRepo repository.VehicleRepository) *CatalogUseCase {
	return &CatalogUseCase{vehicleRepo: vehicleRepo}
}

// List returns the catalog snapshot in insertion order, narrowed by the
// filter. Total always counts the unfiltered catalog.
func (uc *CatalogUseCase) List(filter dto.CatalogFilter) (*dto.CatalogResponse, error) {
	var maxPrice *decimal.Decimal
	if filter.MaxPrice != "" {
		p, err := decimal.NewFromString(filter.MaxPrice)
		if err != nil || p.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		maxPrice = &p
	}

	vehicles, err := uc.vehicleRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.CatalogResponse{
		Vehicles: make([]dto.VehicleResponse, 0, len(vehicles)),
		Total:    len(vehicles),
	}
	needle := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, v := range vehicles {
		if filter.FuelType != "" && v.FuelType != entity.FuelType(filter.FuelType) {
			continue
		}
		if filter.StockStatus != "" && v.StockStatus != entity.StockStatus(filter.StockStatus) {
			continue
		}
		if maxPrice != nil && v.Price.GreaterThan(*maxPrice) {
			continue
		}
		if needle != "" && !matchesQuery(v, needle) {
			continue
		}
		out.Vehicles = append(out.Vehicles, toVehicleResponse(v))
	}
	return out, nil
}

// GetByID returns a single catalog record.
func (uc *CatalogUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	v, err := uc.vehicleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toVehicleResponse(v)
	return &resp, nil
}

func matchesQuery(v *entity.Vehicle, needle string) bool {
	return strings.Contains(strings.ToLower(v.Model), needle) ||
		strings.Contains(strings.ToLower(v.Variant), needle)
}

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:          v.ID,
		Model:       v.Model,
		Variant:     v.Variant,
		Price:       v.Price,
		FuelType:    string(v.FuelType),
		StockStatus: string(v.StockStatus),
		ImageURL:    v.ImageURL,
	}
}
