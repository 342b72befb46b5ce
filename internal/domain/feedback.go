package domain

import "time"

// Feedback is an anonymous suggestion submitted without an account.
type Feedback struct {
	ID           string
	Subject      string
	Message      string
	ContactName  string
	ContactEmail string
	CreatedAt    time.Time
}
