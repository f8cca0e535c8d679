package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/usecase"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
)

// CatalogHandler handles the vehicle catalog endpoints.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      List the vehicle catalog
// @Tags         catalog
// @Produce      json
// @Param        fuel_type     query  string  false  "Petrol | Diesel | EV | Hybrid"
// @Param        stock_status  query  string  false  "In Stock | Low Stock | Out of Stock"
// @Param        q             query  string  false  "free-text match on model/variant"
// @Param        max_price     query  string  false  "maximum list price"
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var filter dto.CatalogFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	out, err := h.uc.List(filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_price must be a non-negative decimal"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get one vehicle
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "vehicle id"
// @Success      200  {object}  dto.VehicleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehicle not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
