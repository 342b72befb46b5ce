package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cleanstreet/complaint-service/internal/api/dto"
	"github.com/cleanstreet/complaint-service/internal/domain"
	"github.com/cleanstreet/complaint-service/internal/service"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

// LocationsHandler manages the location catalog endpoints.
type LocationsHandler struct {
	locations *service.LocationService
}

// NewLocationsHandler constructs handler.
func NewLocationsHandler(locations *service.LocationService) *LocationsHandler {
	return &LocationsHandler{locations: locations}
}

// Add handles POST /api/locations (ADMIN).
func (h *LocationsHandler) Add(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	location := &domain.Location{
		AreaName: req.AreaName,
		City:     req.City,
		Pincode:  req.Pincode,
	}
	if err := h.locations.Add(c.Context(), location); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewLocationResponse(location)})
}

// List handles GET /api/locations (authenticated).
func (h *LocationsHandler) List(c *fiber.Ctx) error {
	locations, err := h.locations.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		items = append(items, dto.NewLocationResponse(&locations[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /api/locations/:id (authenticated).
func (h *LocationsHandler) Get(c *fiber.Ctx) error {
	location, err := h.locations.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewLocationResponse(location)})
}

// Update handles PUT /api/locations/:id (ADMIN).
func (h *LocationsHandler) Update(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	location, err := h.locations.Update(c.Context(), c.Params("id"), &domain.Location{
		AreaName: req.AreaName,
		City:     req.City,
		Pincode:  req.Pincode,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewLocationResponse(location)})
}

// Delete handles DELETE /api/locations/:id (ADMIN).
func (h *LocationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.locations.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
