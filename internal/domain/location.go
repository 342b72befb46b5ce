package domain

import "time"

// Location is a physical area complaints are reported against. AreaName is
// the case-sensitive natural key used by find-or-create lookups.
type Location struct {
	ID        string
	AreaName  string
	City      string
	Pincode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
