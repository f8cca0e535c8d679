package analytics

import (
	"fmt"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
)

// DashboardUseCase builds the analytics panel payload from the current
// booking and catalog snapshots.
type DashboardUseCase struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
}

// NewDashboardUseCase constructs the use case.
func NewDashboardUseCase(bookingRepo repository.BookingRepository, vehicleRepo repository.VehicleRepository) *DashboardUseCase {
	return &DashboardUseCase{bookingRepo: bookingRepo, vehicleRepo: vehicleRepo}
}

// GetStats recomputes the derived aggregates and chart series.
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStatsDTO, error) {
	bookings, err := uc.bookingRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: bookings snapshot: %w", err)
	}
	vehicles, err := uc.vehicleRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: catalog snapshot: %w", err)
	}

	stats := Project(bookings, vehicles)

	out := &dto.DashboardStatsDTO{
		TotalSales:       stats.TotalSales,
		PendingApprovals: stats.PendingApprovals,
		InventoryCount:   stats.InventoryCount,
		ActiveTestDrives: stats.ActiveTestDrives,
		MonthlyBookings:  []dto.MonthlyCountDTO{},
		FuelTypeMix:      []dto.FuelTypeShareDTO{},
	}
	for _, m := range MonthlyBookings(bookings) {
		out.MonthlyBookings = append(out.MonthlyBookings, dto.MonthlyCountDTO{Month: m.Month, Count: m.Count})
	}
	for _, f := range FuelTypeMix(vehicles) {
		out.FuelTypeMix = append(out.FuelTypeMix, dto.FuelTypeShareDTO{FuelType: string(f.FuelType), Count: f.Count})
	}
	return out, nil
}
