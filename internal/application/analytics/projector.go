// Package analytics derives the dashboard aggregates from the booking
// registry and the vehicle catalog. Nothing here is stored; every value is
// recomputed from the current snapshots.
package analytics

import (
	"sort"
	"time"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
)

// DerivedStats headline aggregates for the analytics panel.
type DerivedStats struct {
	TotalSales       int // completed bookings
	PendingApprovals int // bookings awaiting a decision
	InventoryCount   int // catalog size
	ActiveTestDrives int // approved, not yet completed
}

// Project computes DerivedStats from the current snapshots. Pure: never
// mutates its inputs, no caching.
func Project(bookings []*entity.Booking, vehicles []*entity.Vehicle) DerivedStats {
	stats := DerivedStats{InventoryCount: len(vehicles)}
	for _, b := range bookings {
		switch b.Status {
		case entity.BookingCompleted:
			stats.TotalSales++
		case entity.BookingPending:
			stats.PendingApprovals++
		case entity.BookingApproved:
			stats.ActiveTestDrives++
		}
	}
	return stats
}

// MonthlyBookings counts bookings per calendar month ("2023-11"), sorted
// chronologically. Bookings with malformed dates are skipped.
func MonthlyBookings(bookings []*entity.Booking) []MonthCount {
	byMonth := make(map[string]int)
	for _, b := range bookings {
		if len(b.Date) < 7 {
			continue
		}
		month := b.Date[:7]
		if _, err := time.Parse("2006-01", month); err != nil {
			continue
		}
		byMonth[month]++
	}
	out := make([]MonthCount, 0, len(byMonth))
	for month, count := range byMonth {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// MonthCount bookings in one calendar month.
type MonthCount struct {
	Month string
	Count int
}

// FuelTypeMix counts catalog vehicles per fuel type, in the fixed display
// order Petrol, Diesel, EV, Hybrid. Fuel types absent from the catalog are
// omitted.
func FuelTypeMix(vehicles []*entity.Vehicle) []FuelShare {
	counts := make(map[entity.FuelType]int)
	for _, v := range vehicles {
		counts[v.FuelType]++
	}
	order := []entity.FuelType{entity.FuelPetrol, entity.FuelDiesel, entity.FuelEV, entity.FuelHybrid}
	out := make([]FuelShare, 0, len(counts))
	for _, ft := range order {
		if n, ok := counts[ft]; ok {
			out = append(out, FuelShare{FuelType: ft, Count: n})
		}
	}
	return out
}

// FuelShare catalog count for one fuel type.
type FuelShare struct {
	FuelType entity.FuelType
	Count    int
}
