package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cleanstreet/complaint-service/internal/api/dto"
	"github.com/cleanstreet/complaint-service/internal/auth"
	"github.com/cleanstreet/complaint-service/internal/domain"
	"github.com/cleanstreet/complaint-service/internal/service"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

// ComplaintsHandler manages complaint endpoints.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaints *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaints}
}

// Create handles POST /api/complaints (multipart: title, description,
// area_name, optional image).
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	input, cleanup, err := complaintInputFromForm(c)
	if err != nil {
		return err
	}
	defer cleanup()

	complaint, err := h.complaints.Create(c.Context(), principal, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// List handles GET /api/complaints (ADMIN).
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	complaints, err := h.complaints.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponses(complaints)})
}

// ListByOwner handles GET /api/complaints/user/:userId (ADMIN, or the owner).
func (h *ComplaintsHandler) ListByOwner(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	complaints, err := h.complaints.ListByOwner(c.Context(), principal, c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponses(complaints)})
}

// Get handles GET /api/complaints/:id (ADMIN, or the owner).
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	complaint, err := h.complaints.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// UpdateContent handles PUT /api/complaints/:id (ADMIN, or the owner while
// the complaint is OPEN).
func (h *ComplaintsHandler) UpdateContent(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	input, cleanup, err := complaintInputFromForm(c)
	if err != nil {
		return err
	}
	defer cleanup()

	complaint, err := h.complaints.UpdateContent(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// UpdateStatus handles PUT /api/complaints/:id/status (ADMIN).
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status, ok := domain.ParseComplaintStatus(req.Status)
	if !ok {
		return apperrors.NewValidationError("invalid status", map[string]any{"status": req.Status})
	}

	complaint, err := h.complaints.UpdateStatus(c.Context(), principal, c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// Delete handles DELETE /api/complaints/:id (ADMIN, or the owner).
func (h *ComplaintsHandler) Delete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.complaints.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func complaintInputFromForm(c *fiber.Ctx) (service.ComplaintInput, func(), error) {
	input := service.ComplaintInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		AreaName:    c.FormValue("area_name"),
	}
	cleanup := func() {}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Image is optional; any other multipart problem surfaces on the
		// missing form values instead.
		return input, cleanup, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return input, cleanup, apperrors.NewValidationError("unreadable image upload", nil)
	}
	input.Image = &service.ImageUpload{Filename: fileHeader.Filename, Content: file}
	cleanup = func() { closeUpload(file) }
	return input, cleanup, nil
}

func closeUpload(file multipart.File) {
	_ = file.Close()
}
