package locations

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Cache is the slice of the redis client the service needs. A miss is
// (nil, nil); all cache failures degrade to the store.
type Cache interface {
	CacheLocations(ctx context.Context, userID string, data []byte) error
	GetCachedLocations(ctx context.Context, userID string) ([]byte, error)
	InvalidateLocations(ctx context.Context, userID string) error
}

// Service contains saved-location business logic.
type Service struct {
	store Store
	cache Cache
}

// NewService creates a location service. cache may be nil.
func NewService(store Store, cache Cache) *Service {
	return &Service{store: store, cache: cache}
}

// List returns the user's saved locations, serving from cache when warm.
func (s *Service) List(ctx context.Context, userID string) ([]SavedLocation, error) {
	if s.cache != nil {
		if data, err := s.cache.GetCachedLocations(ctx, userID); err == nil && data != nil {
			var locs []SavedLocation
			if err := json.Unmarshal(data, &locs); err == nil {
				return locs, nil
			}
		}
	}

	locs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(locs); err == nil {
			if err := s.cache.CacheLocations(ctx, userID, data); err != nil {
				log.Printf("[locations] cache write failed: %v", err)
			}
		}
	}
	return locs, nil
}

// Save persists a new location for the user and invalidates the cache.
func (s *Service) Save(ctx context.Context, userID string, req SaveRequest) (*SavedLocation, error) {
	locType := req.Type
	if locType == "" {
		locType = TypeOther
	}

	loc := &SavedLocation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		Type:      locType,
	}
	if err := s.store.Insert(ctx, loc); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return loc, nil
}

// Delete removes one of the user's locations and invalidates the cache.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateLocations(ctx, userID); err != nil {
		log.Printf("[locations] cache invalidation failed: %v", err)
	}
}
