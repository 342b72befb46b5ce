package geo

import (
	"context"

	"github.com/cleanstreet/complaint-service/internal/config"
)

// Area holds resolved attributes for a free-text area name.
type Area struct {
	City    string
	Pincode string
}

// Resolver maps an area name to its city and pincode when a location is
// lazily created during complaint submission. The interface is the seam for a
// real geocoding backend.
type Resolver interface {
	Resolve(ctx context.Context, areaName string) (Area, error)
}

type staticResolver struct {
	area Area
}

// NewStaticResolver returns a resolver that fills configured default values
// for every area.
func NewStaticResolver(cfg config.GeoConfig) Resolver {
	return &staticResolver{area: Area{City: cfg.DefaultCity, Pincode: cfg.DefaultPincode}}
}

func (r *staticResolver) Resolve(_ context.Context, _ string) (Area, error) {
	return r.area, nil
}
