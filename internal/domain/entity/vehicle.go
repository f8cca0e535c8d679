package entity

import "github.com/shopspring/decimal"

// FuelType of a vehicle.
type FuelType string

const (
	FuelPetrol FuelType = "Petrol"
	FuelDiesel FuelType = "Diesel"
	FuelEV     FuelType = "EV"
	FuelHybrid FuelType = "Hybrid"
)

// StockStatus of a vehicle in the showroom.
type StockStatus string

const (
	StockInStock    StockStatus = "In Stock"
	StockLowStock   StockStatus = "Low Stock"
	StockOutOfStock StockStatus = "Out of Stock"
)

// Vehicle is a catalog record. Immutable after the seed load; the catalog
// repository hands out copies, never the backing slice.
type Vehicle struct {
	ID          string
	Model       string
	Variant     string
	Price       decimal.Decimal // list price, non-negative
	FuelType    FuelType
	StockStatus StockStatus
	ImageURL    string
}
