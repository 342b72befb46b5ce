package events

import (
	"time"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintCreated        EventType = "complaint_created"
	EventComplaintStatusChanged  EventType = "complaint_status_changed"
	EventComplaintContentUpdated EventType = "complaint_content_updated"
	EventComplaintDeleted        EventType = "complaint_deleted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	Title      string  `json:"title"`
	LocationID string  `json:"location_id"`
	ImageURL   *string `json:"image_url,omitempty"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// ComplaintContentUpdatedPayload payload.
type ComplaintContentUpdatedPayload struct {
	Title string `json:"title"`
}

// ComplaintDeletedPayload payload.
type ComplaintDeletedPayload struct {
	OwnerID string `json:"owner_id"`
}
