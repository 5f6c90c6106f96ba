// Package store caches normalized engine output between refreshes.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/nimbus-weather/nimbus/internal/radar"
	"github.com/nimbus-weather/nimbus/internal/weather"
)

var (
	// ErrNotFound is returned when no cached data exists for a place.
	ErrNotFound = errors.New("no weather data for place")

	// ErrStale is returned when cached data exists but has aged out.
	ErrStale = errors.New("cached weather data is stale")
)

// cachedWeather pairs a weather bundle with its storage instant.
type cachedWeather struct {
	data     weather.Data
	storedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of the latest
// normalized weather per place and the latest radar timeline. Entries are
// replaced wholesale on refresh, never patched.
type MemoryStore struct {
	mu sync.RWMutex

	// key: place id
	byPlace map[string]cachedWeather

	timeline   *radar.Timeline
	timelineAt time.Time

	maxAge time.Duration // 0 = entries never go stale
}

// NewMemoryStore creates a MemoryStore whose entries go stale after maxAge.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		byPlace: make(map[string]cachedWeather),
		maxAge:  maxAge,
	}
}

// SaveWeather replaces the cached bundle for a place.
func (s *MemoryStore) SaveWeather(placeID string, data weather.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byPlace[placeID] = cachedWeather{data: data, storedAt: time.Now()}
}

// Weather returns the cached bundle for a place. A stale entry is still
// returned alongside ErrStale so callers can show last-known data while a
// refresh runs.
func (s *MemoryStore) Weather(placeID string) (weather.Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.byPlace[placeID]
	if !ok {
		return weather.Data{}, ErrNotFound
	}
	if s.maxAge > 0 && time.Since(entry.storedAt) > s.maxAge {
		return entry.data, ErrStale
	}
	return entry.data, nil
}

// DropWeather removes the cached bundle for a place.
func (s *MemoryStore) DropWeather(placeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byPlace, placeID)
}

// SaveTimeline replaces the cached radar timeline.
func (s *MemoryStore) SaveTimeline(t radar.Timeline) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timeline = &t
	s.timelineAt = time.Now()
}

// Timeline returns the cached radar timeline, with the same staleness
// contract as Weather.
func (s *MemoryStore) Timeline() (radar.Timeline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.timeline == nil {
		return radar.Timeline{}, ErrNotFound
	}
	if s.maxAge > 0 && time.Since(s.timelineAt) > s.maxAge {
		return *s.timeline, ErrStale
	}
	return *s.timeline, nil
}
