package dto

// DashboardStatsDTO derived aggregates for the analytics panel.
// Recomputed on every request; never persisted.
type DashboardStatsDTO struct {
	TotalSales       int                `json:"total_sales"`
	PendingApprovals int                `json:"pending_approvals"`
	InventoryCount   int                `json:"inventory_count"`
	ActiveTestDrives int                `json:"active_test_drives"`
	MonthlyBookings  []MonthlyCountDTO  `json:"monthly_bookings"`
	FuelTypeMix      []FuelTypeShareDTO `json:"fuel_type_mix"`
}

// MonthlyCountDTO bookings per calendar month, for the bar chart data series.
type MonthlyCountDTO struct {
	Month string `json:"month"` // "2023-11"
	Count int    `json:"count"`
}

// FuelTypeShareDTO catalog share per fuel type, for the pie chart data series.
type FuelTypeShareDTO struct {
	FuelType string `json:"fuel_type"`
	Count    int    `json:"count"`
}
