package service

import (
	"context"
	"strings"

	"github.com/cleanstreet/complaint-service/internal/domain"
	"github.com/cleanstreet/complaint-service/internal/repository"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

// FeedbackService stores anonymous feedback and lists it for admins.
type FeedbackService struct {
	feedback repository.FeedbackRepository
}

// NewFeedbackService constructs the service.
func NewFeedbackService(feedback repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// Submit saves a feedback entry. No account is required.
func (s *FeedbackService) Submit(ctx context.Context, feedback *domain.Feedback) error {
	if strings.TrimSpace(feedback.Subject) == "" || strings.TrimSpace(feedback.Message) == "" {
		return apperrors.NewValidationError("subject and message required", nil)
	}
	return s.feedback.Create(ctx, feedback)
}

// List returns all feedback entries.
func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.List(ctx)
}
