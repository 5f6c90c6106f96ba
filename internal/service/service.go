// Package service orchestrates the fetch layer, the pure transformation
// engine, and the cache. It owns no normalization logic of its own.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nimbus-weather/nimbus/internal/geo"
	"github.com/nimbus-weather/nimbus/internal/radar"
	"github.com/nimbus-weather/nimbus/internal/store"
	"github.com/nimbus-weather/nimbus/internal/weather"
)

// ForecastFetcher supplies raw forecast payloads.
type ForecastFetcher interface {
	Forecast(ctx context.Context, lat, lon float64) (*weather.ForecastResponse, error)
}

// GeocodeFetcher supplies raw geocoding results.
type GeocodeFetcher interface {
	Search(ctx context.Context, query string) ([]geo.GeocodeResult, error)
	Reverse(ctx context.Context, lat, lon float64) (*geo.GeocodeResult, error)
}

// RadarFetcher supplies the raw radar frame catalog.
type RadarFetcher interface {
	Maps(ctx context.Context) (*radar.MapsResponse, error)
}

// Service wires providers, cache, and saved places together.
type Service struct {
	forecasts ForecastFetcher
	geocoder  GeocodeFetcher
	radar     RadarFetcher
	cache     *store.MemoryStore
	places    *geo.PlaceStore
}

// New creates a Service. All dependencies are injected; the service holds
// no globals.
func New(
	forecasts ForecastFetcher,
	geocoder GeocodeFetcher,
	radarSrc RadarFetcher,
	cache *store.MemoryStore,
	places *geo.PlaceStore,
) *Service {
	return &Service{
		forecasts: forecasts,
		geocoder:  geocoder,
		radar:     radarSrc,
		cache:     cache,
		places:    places,
	}
}

// Places returns the saved-place store.
func (s *Service) Places() *geo.PlaceStore {
	return s.places
}

// WeatherFor returns the normalized weather bundle for a place, serving
// fresh cache entries without a fetch and refreshing stale or missing ones.
func (s *Service) WeatherFor(ctx context.Context, place geo.Place) (weather.Data, error) {
	cached, err := s.cache.Weather(place.ID)
	if err == nil {
		return cached, nil
	}

	data, refreshErr := s.RefreshWeather(ctx, place)
	if refreshErr != nil {
		// Stale data beats no data when the provider is down.
		if errors.Is(err, store.ErrStale) {
			log.Printf("weather refresh failed for %s, serving stale cache: %v", place.ID, refreshErr)
			return cached, nil
		}
		return weather.Data{}, refreshErr
	}
	return data, nil
}

// RefreshWeather fetches and normalizes a fresh bundle for a place and
// replaces the cache entry.
func (s *Service) RefreshWeather(ctx context.Context, place geo.Place) (weather.Data, error) {
	raw, err := s.forecasts.Forecast(ctx, place.Coordinates.Latitude, place.Coordinates.Longitude)
	if err != nil {
		return weather.Data{}, fmt.Errorf("fetch forecast for %s: %w", place.ID, err)
	}

	data := weather.DataFromForecast(raw, time.Now())
	if place.Timezone == "" {
		place.Timezone = raw.Timezone
	}
	data.Place = place

	s.cache.SaveWeather(place.ID, data)
	return data, nil
}

// SearchPlaces resolves a free-text query to candidate places.
func (s *Service) SearchPlaces(ctx context.Context, query string) ([]geo.Place, error) {
	results, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}

	places := make([]geo.Place, 0, len(results))
	for _, r := range results {
		if p, ok := geo.PlaceFromGeocode(r); ok {
			places = append(places, p)
		}
	}
	return places, nil
}

// ResolvePlace reverse-geocodes a coordinate. The second return value is
// false when the provider has no administrative match, which is a normal
// outcome.
func (s *Service) ResolvePlace(ctx context.Context, lat, lon float64) (geo.Place, bool, error) {
	result, err := s.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		return geo.Place{}, false, fmt.Errorf("resolve place: %w", err)
	}
	if result == nil {
		return geo.Place{}, false, nil
	}

	place, ok := geo.PlaceFromGeocode(*result)
	if !ok {
		return geo.Place{}, false, nil
	}
	place.IsCurrentLocation = true
	return place, true, nil
}

// RadarTimeline returns the current radar timeline, refreshing the cache
// when needed.
func (s *Service) RadarTimeline(ctx context.Context) (radar.Timeline, error) {
	cached, err := s.cache.Timeline()
	if err == nil {
		return cached, nil
	}

	timeline, refreshErr := s.RefreshRadar(ctx)
	if refreshErr != nil {
		if errors.Is(err, store.ErrStale) {
			log.Printf("radar refresh failed, serving stale timeline: %v", refreshErr)
			return cached, nil
		}
		return radar.Timeline{}, refreshErr
	}
	return timeline, nil
}

// RefreshRadar fetches the frame catalog and replaces the cached timeline.
func (s *Service) RefreshRadar(ctx context.Context) (radar.Timeline, error) {
	raw, err := s.radar.Maps(ctx)
	if err != nil {
		return radar.Timeline{}, fmt.Errorf("fetch radar maps: %w", err)
	}

	timeline := radar.TimelineFromMaps(raw)
	s.cache.SaveTimeline(timeline)
	return timeline, nil
}
