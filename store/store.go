// Package store provides durable key-value persistence for engine state:
// reminder settings, break settings, break history, and the intake history
// aggregate. It fronts a swappable Driver with a small read-through cache.
package store

import (
	"context"
	"time"

	"github.com/hrygo/hydromate/internal/profile"
	"github.com/hrygo/hydromate/store/cache"
)

// KeyWaterHistory holds the per-day intake aggregate consumed by pattern
// analysis. Engine components own their settings and history keys.
const KeyWaterHistory = "water_history"

// Store provides cached access to the key-value driver.
type Store struct {
	profile *profile.Profile
	driver  Driver
	kvCache *cache.LRUCache[string, []byte]
}

// New creates a new Store over the given driver.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		profile: profile,
		driver:  driver,
		kvCache: cache.New[string, []byte](64, 10*time.Minute),
	}
}

// Migrate prepares the underlying schema.
func (s *Store) Migrate(ctx context.Context) error {
	return s.driver.Migrate(ctx)
}

func (s *Store) Close() error {
	return s.driver.Close()
}

// Get reads a key, serving repeat reads from cache. Returns ErrNotFound for
// absent keys.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if value, ok := s.kvCache.Get(key); ok {
		return value, nil
	}

	value, err := s.driver.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	s.kvCache.Set(key, value)
	return value, nil
}

// Set writes a key and refreshes the cache.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.driver.Set(ctx, key, value); err != nil {
		s.kvCache.Remove(key)
		return err
	}
	s.kvCache.Set(key, value)
	return nil
}

// Delete removes a key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.kvCache.Remove(key)
	return s.driver.Delete(ctx, key)
}
