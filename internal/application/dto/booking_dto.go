package dto

// BookingResponse public view of a test-drive booking.
type BookingResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	CarModel     string `json:"car_model"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	AssignedTo   string `json:"assigned_to,omitempty"`
}

// CreateBookingRequest body for POST /api/bookings.
type CreateBookingRequest struct {
	CustomerName string `json:"customer_name"`
	CarModel     string `json:"car_model"`
	Date         string `json:"date"` // YYYY-MM-DD
	Priority     string `json:"priority"`
	AssignedTo   string `json:"assigned_to"`
}

// UpdateBookingStatusRequest body for PATCH /api/bookings/:id/status.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
