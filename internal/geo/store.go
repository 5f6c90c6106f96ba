package geo

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrPlaceNotFound is returned when no saved place matches the given id.
	ErrPlaceNotFound = errors.New("no saved place with that id")
)

// PlaceStore is a concurrency-safe, ordered collection of saved places.
// One place at a time is "active"; removing the active place promotes the
// first remaining entry.
type PlaceStore struct {
	mu       sync.RWMutex
	places   []Place
	activeID string
}

// NewPlaceStore creates an empty PlaceStore.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{}
}

// Add appends a place. A place with an empty ID (one built by hand rather
// than from the geocoder) gets a generated id. Adding an id that already
// exists is a no-op. The first place added becomes active.
func (s *PlaceStore) Add(p Place) Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for _, existing := range s.places {
		if existing.ID == p.ID {
			return existing
		}
	}

	s.places = append(s.places, p)
	if s.activeID == "" {
		s.activeID = p.ID
	}
	return p
}

// Remove deletes the place with the given id. If it was active, the first
// remaining place becomes active.
func (s *PlaceStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.places {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPlaceNotFound
	}

	s.places = append(s.places[:idx], s.places[idx+1:]...)
	if s.activeID == id {
		s.activeID = ""
		if len(s.places) > 0 {
			s.activeID = s.places[0].ID
		}
	}
	return nil
}

// SetActive marks the place with the given id as active.
func (s *PlaceStore) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.places {
		if p.ID == id {
			s.activeID = id
			return nil
		}
	}
	return ErrPlaceNotFound
}

// Active returns the currently active place.
func (s *PlaceStore) Active() (Place, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.places {
		if p.ID == s.activeID {
			return p, true
		}
	}
	return Place{}, false
}

// List returns a copy of the saved places in order.
func (s *PlaceStore) List() []Place {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Place, len(s.places))
	copy(out, s.places)
	return out
}

// PromoteCurrentLocation replaces any previous GPS-derived entry with the
// given place, marks it as the current location, and makes it active. The
// place keeps the sentinel id so repeated GPS fixes update in place.
func (s *PlaceStore) PromoteCurrentLocation(p Place) Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = CurrentLocationPlaceID
	p.IsCurrentLocation = true

	for i, existing := range s.places {
		if existing.ID == CurrentLocationPlaceID {
			s.places[i] = p
			s.activeID = p.ID
			return p
		}
	}

	// Current location always sorts first.
	s.places = append([]Place{p}, s.places...)
	s.activeID = p.ID
	return p
}

// Reorder moves the place at fromIndex to toIndex. Out-of-range indices are
// a no-op.
func (s *PlaceStore) Reorder(fromIndex, toIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.places)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n || fromIndex == toIndex {
		return
	}

	moved := s.places[fromIndex]
	s.places = append(s.places[:fromIndex], s.places[fromIndex+1:]...)

	rest := make([]Place, 0, n)
	rest = append(rest, s.places[:toIndex]...)
	rest = append(rest, moved)
	rest = append(rest, s.places[toIndex:]...)
	s.places = rest
}
