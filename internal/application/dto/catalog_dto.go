package dto

import "github.com/shopspring/decimal"

// CatalogFilter query parameters for GET /api/catalog.
// Zero values mean "no constraint".
type CatalogFilter struct {
	FuelType    string `query:"fuel_type"`
	StockStatus string `query:"stock_status"`
	Query       string `query:"q"`         // free-text match on model/variant
	MaxPrice    string `query:"max_price"` // decimal string; parsed by the usecase
}

// VehicleResponse public view of a catalog record.
type VehicleResponse struct {
	ID          string          `json:"id"`
	Model       string          `json:"model"`
	Variant     string          `json:"variant"`
	Price       decimal.Decimal `json:"price"`
	FuelType    string          `json:"fuel_type"`
	StockStatus string          `json:"stock_status"`
	ImageURL    string          `json:"image_url"`
}

// CatalogResponse list wrapper with the total before filtering.
type CatalogResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}
