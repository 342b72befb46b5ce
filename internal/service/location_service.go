package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cleanstreet/complaint-service/internal/cache"
	"github.com/cleanstreet/complaint-service/internal/domain"
	"github.com/cleanstreet/complaint-service/internal/geo"
	"github.com/cleanstreet/complaint-service/internal/repository"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

// LocationService manages the location catalog. Complaint submission looks
// locations up (or lazily creates them) by free-text area name; deletion is
// an independent administrative action with no cascade protection.
type LocationService struct {
	locations repository.LocationRepository
	cache     *cache.LocationCache
	resolver  geo.Resolver
}

// NewLocationService builds the service. Cache may be nil.
func NewLocationService(locations repository.LocationRepository, locationCache *cache.LocationCache, resolver geo.Resolver) *LocationService {
	return &LocationService{locations: locations, cache: locationCache, resolver: resolver}
}

// FindOrCreate resolves the area name to an existing location, creating one
// with resolver-provided city/pincode when absent. The match is
// case-sensitive on the natural key.
func (s *LocationService) FindOrCreate(ctx context.Context, areaName string) (*domain.Location, error) {
	areaName = strings.TrimSpace(areaName)
	if areaName == "" {
		return nil, apperrors.NewValidationError("area name required", nil)
	}

	if cached, err := s.cache.Get(ctx, areaName); err == nil && cached != nil {
		return cached, nil
	}

	location, err := s.locations.GetByAreaName(ctx, areaName)
	if err == nil {
		_ = s.cache.Set(ctx, location)
		return location, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	area, err := s.resolver.Resolve(ctx, areaName)
	if err != nil {
		return nil, err
	}
	location = &domain.Location{
		AreaName: areaName,
		City:     area.City,
		Pincode:  area.Pincode,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, location)
	return location, nil
}

// Add creates a location with explicit attributes.
func (s *LocationService) Add(ctx context.Context, location *domain.Location) error {
	if strings.TrimSpace(location.AreaName) == "" {
		return apperrors.NewValidationError("area name required", nil)
	}
	return s.locations.Create(ctx, location)
}

// List returns all locations.
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}

// Get returns a location by id.
func (s *LocationService) Get(ctx context.Context, id string) (*domain.Location, error) {
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("location", nil)
		}
		return nil, err
	}
	return location, nil
}

// Update replaces a location's attributes.
func (s *LocationService) Update(ctx context.Context, id string, updated *domain.Location) (*domain.Location, error) {
	location, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, location.AreaName)
	location.AreaName = updated.AreaName
	location.City = updated.City
	location.Pincode = updated.Pincode
	if err := s.locations.Update(ctx, location); err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, location)
	return location, nil
}

// Delete removes a location. Complaints referencing it keep their dangling
// location id.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	location, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.locations.Delete(ctx, id); err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, location.AreaName)
}
