package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/analytics"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
)

// DashboardHandler handles the analytics panel endpoint.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Derived dashboard aggregates
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
//
// Values are recomputed from the current booking and catalog snapshots on
// every call; nothing is cached or persisted.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}
