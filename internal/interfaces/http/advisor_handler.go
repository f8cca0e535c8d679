package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/advisor"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
)

// AdvisorHandler handles the AI advisor chat endpoints.
type AdvisorHandler struct {
	manager *advisor.Manager
}

// NewAdvisorHandler constructs the handler.
func NewAdvisorHandler(manager *advisor.Manager) *AdvisorHandler {
	return &AdvisorHandler{manager: manager}
}

// Submit godoc
// @Summary      Ask the AI advisor
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdvisorMessageRequest  true  "query"
// @Success      200   {object}  dto.AdvisoryTurnDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/advisor/messages [post]
func (h *AdvisorHandler) Submit(c *fiber.Ctx) error {
	var in dto.AdvisorMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	reply, err := h.manager.Submit(c.Context(), GetUserID(c), in.Query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query must not be empty"})
		}
		if errors.Is(err, domain.ErrAdvisorBusy) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ADVISOR_BUSY", Message: "a request is already in flight, wait for the reply"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reply)
}

// Transcript godoc
// @Summary      Read the advisory transcript
// @Tags         advisor
// @Produce      json
// @Success      200  {object}  dto.TranscriptResponse
// @Router       /api/advisor/messages [get]
func (h *AdvisorHandler) Transcript(c *fiber.Ctx) error {
	return c.JSON(h.manager.Transcript(GetUserID(c)))
}
