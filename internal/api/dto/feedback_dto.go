package dto

import (
	"time"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

// FeedbackRequest payload for public feedback submission.
type FeedbackRequest struct {
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
}

// FeedbackResponse projects a feedback entry.
type FeedbackResponse struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewFeedbackResponse maps a domain feedback entry.
func NewFeedbackResponse(feedback *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           feedback.ID,
		Subject:      feedback.Subject,
		Message:      feedback.Message,
		ContactName:  feedback.ContactName,
		ContactEmail: feedback.ContactEmail,
		CreatedAt:    feedback.CreatedAt,
	}
}
