package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/usecase"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
)

// BookingHandler handles the test-drive booking endpoints.
type BookingHandler struct {
	uc *usecase.BookingUseCase
}

// NewBookingHandler constructs the handler.
func NewBookingHandler(uc *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// List godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  dto.BookingResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Request a test drive
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "customer_name, car_model, date, priority"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_name, car_model, a YYYY-MM-DD date and a known priority are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Move a booking along its lifecycle
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "booking id"
// @Param        body  body  dto.UpdateBookingStatusRequest true  "status"
// @Success      200   {object}  dto.BookingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), entity.BookingStatus(in.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status must be Pending, Approved, Rejected or Completed"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "booking not found"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
