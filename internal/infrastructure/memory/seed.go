package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
)

// Seed is the startup snapshot handed to the stores. The core never
// re-fetches or persists it.
type Seed struct {
	Vehicles []entity.Vehicle
	Bookings []entity.Booking
	Users    []entity.User
}

// DefaultSeed returns the built-in showroom demo data.
func DefaultSeed() Seed {
	return Seed{
		Vehicles: []entity.Vehicle{
			{ID: "1", Model: "Tesla Model S", Variant: "Plaid", Price: decimal.NewFromInt(89990), FuelType: entity.FuelEV, StockStatus: entity.StockInStock, ImageURL: "https://images.unsplash.com/photo-1617788138017-80ad40651399"},
			{ID: "2", Model: "BMW M4", Variant: "Competition", Price: decimal.NewFromInt(78600), FuelType: entity.FuelPetrol, StockStatus: entity.StockLowStock, ImageURL: "https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a"},
			{ID: "3", Model: "Mercedes EQE", Variant: "350+", Price: decimal.NewFromInt(74900), FuelType: entity.FuelEV, StockStatus: entity.StockInStock, ImageURL: "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8"},
			{ID: "4", Model: "Audi RS6", Variant: "Avant", Price: decimal.NewFromInt(121900), FuelType: entity.FuelPetrol, StockStatus: entity.StockOutOfStock, ImageURL: "https://images.unsplash.com/photo-1606152424101-ad2f9a287bd6"},
		},
		Bookings: []entity.Booking{
			{ID: "B1", CustomerName: "John Doe", CarModel: "Tesla Model S", Date: "2023-11-20", Status: entity.BookingPending, Priority: entity.PriorityHigh, AssignedTo: "Sarah Jenkins"},
			{ID: "B2", CustomerName: "Jane Smith", CarModel: "BMW M4", Date: "2023-11-21", Status: entity.BookingApproved, Priority: entity.PriorityMedium, AssignedTo: "Mike Ross"},
			{ID: "B3", CustomerName: "Alice Wong", CarModel: "Mercedes EQE", Date: "2023-11-22", Status: entity.BookingCompleted, Priority: entity.PriorityLow, AssignedTo: "Sarah Jenkins"},
		},
	}
}

// seedFile is the on-disk JSON schema. Prices are decimal strings.
type seedFile struct {
	Vehicles []struct {
		ID          string `json:"id"`
		Model       string `json:"model"`
		Variant     string `json:"variant"`
		Price       string `json:"price"`
		FuelType    string `json:"fuel_type"`
		StockStatus string `json:"stock_status"`
		ImageURL    string `json:"image_url"`
	} `json:"vehicles"`
	Bookings []struct {
		ID           string `json:"id"`
		CustomerName string `json:"customer_name"`
		CarModel     string `json:"car_model"`
		Date         string `json:"date"`
		Status       string `json:"status"`
		Priority     string `json:"priority"`
		AssignedTo   string `json:"assigned_to"`
	} `json:"bookings"`
	Users []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"` // bcrypt, see cmd/genhash
		Role         string `json:"role"`
	} `json:"users"`
}

// LoadSeedFile reads a JSON seed overriding the defaults. Used for
// credentials-mode users and custom showroom data.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return Seed{}, fmt.Errorf("seed: parse %s: %w", path, err)
	}

	var seed Seed
	for _, v := range f.Vehicles {
		price, err := decimal.NewFromString(v.Price)
		if err != nil || price.IsNegative() {
			return Seed{}, fmt.Errorf("seed: vehicle %s: bad price %q", v.ID, v.Price)
		}
		seed.Vehicles = append(seed.Vehicles, entity.Vehicle{
			ID:          v.ID,
			Model:       v.Model,
			Variant:     v.Variant,
			Price:       price,
			FuelType:    entity.FuelType(v.FuelType),
			StockStatus: entity.StockStatus(v.StockStatus),
			ImageURL:    v.ImageURL,
		})
	}
	for _, b := range f.Bookings {
		status := entity.BookingStatus(b.Status)
		if !entity.ValidBookingStatus(status) {
			return Seed{}, fmt.Errorf("seed: booking %s: bad status %q", b.ID, b.Status)
		}
		seed.Bookings = append(seed.Bookings, entity.Booking{
			ID:           b.ID,
			CustomerName: b.CustomerName,
			CarModel:     b.CarModel,
			Date:         b.Date,
			Status:       status,
			Priority:     entity.Priority(b.Priority),
			AssignedTo:   b.AssignedTo,
		})
	}
	for _, u := range f.Users {
		role := entity.Role(u.Role)
		if !entity.ValidRole(role) {
			return Seed{}, fmt.Errorf("seed: user %s: bad role %q", u.ID, u.Role)
		}
		seed.Users = append(seed.Users, entity.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         role,
		})
	}
	return seed, nil
}
