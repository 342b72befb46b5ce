package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "OPEN"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
	ComplaintStatusRejected   ComplaintStatus = "REJECTED"
)

// ParseComplaintStatus validates a status string against the closed status set.
func ParseComplaintStatus(raw string) (ComplaintStatus, bool) {
	switch ComplaintStatus(raw) {
	case ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected:
		return ComplaintStatus(raw), true
	}
	return "", false
}

// Complaint is the aggregate for citizen-reported issues. Every complaint has
// exactly one owner and one location; ownership never transfers.
type Complaint struct {
	ID          string
	Title       string
	Description string
	ImageURL    *string
	Status      ComplaintStatus
	OwnerID     string
	LocationID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContentEditable reports whether the owner may still change title,
// description, or image. Content is frozen the moment a complaint leaves OPEN;
// administrator status edits never touch content fields.
func (c *Complaint) ContentEditable() bool {
	return c.Status == ComplaintStatusOpen
}

// OwnedBy reports whether the given user owns the complaint.
func (c *Complaint) OwnedBy(userID string) bool {
	return c.OwnerID == userID
}
