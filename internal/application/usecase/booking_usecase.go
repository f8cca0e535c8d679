package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/logger"
)

// BookingUseCase test-drive booking queue: listing, creation and the status
// lifecycle. Status moves only along the validated transition graph:
// Pending -> Approved|Rejected, Approved -> Completed.
type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	log         *logger.Logger
}

// NewBookingUseCase constructs the use case.
func NewBookingUseCase(bookingRepo repository.BookingRepository, log *logger.Logger) *BookingUseCase {
	return &BookingUseCase{bookingRepo: bookingRepo, log: log}
}

// List returns the booking snapshot in insertion order.
func (uc *BookingUseCase) List() ([]dto.BookingResponse, error) {
	bookings, err := uc.bookingRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out, nil
}

// Create registers a new Pending booking.
func (uc *BookingUseCase) Create(in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CarModel) == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	priority := entity.Priority(in.Priority)
	if in.Priority == "" {
		priority = entity.PriorityMedium
	}
	switch priority {
	case entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow:
	default:
		return nil, domain.ErrInvalidInput
	}

	booking := &entity.Booking{
		ID:           uuid.New().String(),
		CustomerName: strings.TrimSpace(in.CustomerName),
		CarModel:     strings.TrimSpace(in.CarModel),
		Date:         in.Date,
		Status:       entity.BookingPending,
		Priority:     priority,
		AssignedTo:   strings.TrimSpace(in.AssignedTo),
	}
	if err := uc.bookingRepo.Create(booking); err != nil {
		return nil, err
	}
	uc.log.Info().Str("booking_id", booking.ID).Str("car_model", booking.CarModel).Msg("booking created")
	resp := toBookingResponse(booking)
	return &resp, nil
}

// UpdateStatus moves a booking along the lifecycle. Unknown ids surface
// ErrNotFound; edges outside the transition graph surface ErrInvalidTransition
// and leave the registry untouched. The graph check lives in the repository's
// write path, so two concurrent decisions on one booking cannot both pass.
func (uc *BookingUseCase) UpdateStatus(id string, newStatus entity.BookingStatus) (*dto.BookingResponse, error) {
	if !entity.ValidBookingStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	booking, err := uc.bookingRepo.UpdateStatus(id, newStatus)
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("booking_id", id).
		Str("to", string(newStatus)).
		Msg("booking status updated")

	resp := toBookingResponse(booking)
	return &resp, nil
}

func toBookingResponse(b *entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		CarModel:     b.CarModel,
		Date:         b.Date,
		Status:       string(b.Status),
		Priority:     string(b.Priority),
		AssignedTo:   b.AssignedTo,
	}
}
