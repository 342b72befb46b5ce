package dto

import (
	"time"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

// ComplaintResponse projects a complaint.
type ComplaintResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	ImageURL    *string                `json:"image_url,omitempty"`
	Status      domain.ComplaintStatus `json:"status"`
	OwnerID     string                 `json:"owner_id"`
	LocationID  string                 `json:"location_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// NewComplaintResponse maps a domain complaint.
func NewComplaintResponse(complaint *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          complaint.ID,
		Title:       complaint.Title,
		Description: complaint.Description,
		ImageURL:    complaint.ImageURL,
		Status:      complaint.Status,
		OwnerID:     complaint.OwnerID,
		LocationID:  complaint.LocationID,
		CreatedAt:   complaint.CreatedAt,
		UpdatedAt:   complaint.UpdatedAt,
	}
}

// NewComplaintResponses maps a slice of complaints.
func NewComplaintResponses(complaints []domain.Complaint) []ComplaintResponse {
	items := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, NewComplaintResponse(&complaints[i]))
	}
	return items
}

// UpdateStatusRequest payload for admin status transitions.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
