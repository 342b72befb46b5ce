package dto

import (
	"time"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

// LocationRequest payload for admin location writes.
type LocationRequest struct {
	AreaName string `json:"area_name"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
}

// LocationResponse projects a location.
type LocationResponse struct {
	ID        string    `json:"id"`
	AreaName  string    `json:"area_name"`
	City      string    `json:"city"`
	Pincode   string    `json:"pincode"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLocationResponse maps a domain location.
func NewLocationResponse(location *domain.Location) LocationResponse {
	return LocationResponse{
		ID:        location.ID,
		AreaName:  location.AreaName,
		City:      location.City,
		Pincode:   location.Pincode,
		CreatedAt: location.CreatedAt,
	}
}
