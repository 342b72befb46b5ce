package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

const locationKeyPrefix = "location:area:"

// LocationCache keeps area-name lookups warm in Redis. Complaint submission
// hits the same handful of areas repeatedly; a miss or an unreachable Redis
// simply falls through to the database.
type LocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocationCache builds a cache over the shared Redis client. A nil client
// disables caching.
func NewLocationCache(client *redis.Client, ttl time.Duration) *LocationCache {
	return &LocationCache{client: client, ttl: ttl}
}

// Get returns the cached location for the area name, or (nil, nil) on a miss.
func (c *LocationCache) Get(ctx context.Context, areaName string) (*domain.Location, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, locationKeyPrefix+areaName).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var location domain.Location
	if err := json.Unmarshal(raw, &location); err != nil {
		return nil, nil
	}
	return &location, nil
}

// Set stores the location under its area name.
func (c *LocationCache) Set(ctx context.Context, location *domain.Location) error {
	if c == nil || c.client == nil || location == nil {
		return nil
	}
	raw, err := json.Marshal(location)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, locationKeyPrefix+location.AreaName, raw, c.ttl).Err()
}

// Invalidate drops a cached area entry after an update or delete.
func (c *LocationCache) Invalidate(ctx context.Context, areaName string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, locationKeyPrefix+areaName).Err()
}
