package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/usecase"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
)

// NavigationHandler handles the per-user panel selection plus the static
// overview and architecture panels.
type NavigationHandler struct {
	nav    *usecase.NavigationUseCase
	panels *usecase.PanelUseCase
}

// NewNavigationHandler constructs the handler.
func NewNavigationHandler(nav *usecase.NavigationUseCase, panels *usecase.PanelUseCase) *NavigationHandler {
	return &NavigationHandler{nav: nav, panels: panels}
}

// Active godoc
// @Summary      Current active panel
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Active(c *fiber.Ctx) error {
	return c.JSON(h.nav.Active(GetUserID(c)))
}

// Select godoc
// @Summary      Switch the active panel
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectPanelRequest  true  "panel id"
// @Success      200   {object}  dto.NavigationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/navigation [put]
func (h *NavigationHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectPanelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.nav.Select(GetUserID(c), in.Panel)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown panel id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Static overview panel content
// @Tags         panels
// @Produce      json
// @Success      200  {object}  dto.PanelContentDTO
// @Router       /api/panels/overview [get]
func (h *NavigationHandler) Overview(c *fiber.Ctx) error {
	return c.JSON(h.panels.Overview())
}

// Architecture godoc
// @Summary      Static architecture panel content
// @Tags         panels
// @Produce      json
// @Success      200  {object}  dto.PanelContentDTO
// @Router       /api/panels/architecture [get]
func (h *NavigationHandler) Architecture(c *fiber.Ctx) error {
	return c.JSON(h.panels.Architecture())
}
