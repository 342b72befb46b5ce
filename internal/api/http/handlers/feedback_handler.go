package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cleanstreet/complaint-service/internal/api/dto"
	"github.com/cleanstreet/complaint-service/internal/domain"
	"github.com/cleanstreet/complaint-service/internal/service"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

// FeedbackHandler exposes public submission and admin listing of feedback.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit handles POST /api/feedback (public).
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	feedback := &domain.Feedback{
		Subject:      req.Subject,
		Message:      req.Message,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
	}
	if err := h.feedback.Submit(c.Context(), feedback); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFeedbackResponse(feedback)})
}

// List handles GET /api/feedback (ADMIN).
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	entries, err := h.feedback.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewFeedbackResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
