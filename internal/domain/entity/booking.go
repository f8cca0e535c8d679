package entity

// BookingStatus lifecycle state of a test-drive booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingApproved  BookingStatus = "Approved"
	BookingRejected  BookingStatus = "Rejected"
	BookingCompleted BookingStatus = "Completed"
)

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCompleted:
		return true
	}
	return false
}

// bookingTransitions is the allowed status graph.
// Rejected and Completed are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingApproved, BookingRejected},
	BookingApproved: {BookingCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Priority of a booking in the approval queue.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Booking is a test-drive request. Status is the only field that changes after
// creation; everything else is immutable.
type Booking struct {
	ID           string
	CustomerName string
	CarModel     string
	Date         string // YYYY-MM-DD
	Status       BookingStatus
	Priority     Priority
	AssignedTo   string // sales executive name, may be empty
}
