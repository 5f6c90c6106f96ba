package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nimbus-weather/nimbus/internal/geo"
	"github.com/nimbus-weather/nimbus/internal/radar"
	"github.com/nimbus-weather/nimbus/internal/store"
	"github.com/nimbus-weather/nimbus/internal/weather"
)

type stubForecasts struct {
	calls int
	resp  *weather.ForecastResponse
	err   error
}

func (s *stubForecasts) Forecast(ctx context.Context, lat, lon float64) (*weather.ForecastResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type stubGeocoder struct {
	searchResults []geo.GeocodeResult
	reverseResult *geo.GeocodeResult
	err           error
}

func (s *stubGeocoder) Search(ctx context.Context, query string) ([]geo.GeocodeResult, error) {
	return s.searchResults, s.err
}

func (s *stubGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geo.GeocodeResult, error) {
	return s.reverseResult, s.err
}

type stubRadar struct {
	calls int
	resp  *radar.MapsResponse
	err   error
}

func (s *stubRadar) Maps(ctx context.Context) (*radar.MapsResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func testForecastResponse() *weather.ForecastResponse {
	return &weather.ForecastResponse{
		Timezone: "UTC",
		Current: &weather.CurrentBlock{
			Temperature2m: 18.2,
			WeatherCode:   0, // clear sky
			IsDay:         1,
		},
	}
}

func testPlace() geo.Place {
	return geo.Place{
		ID:   "test-place",
		Name: "Testville",
		Coordinates: geo.Coordinates{
			Latitude:  40.7128,
			Longitude: -74.0060,
		},
	}
}

func newTestService(f *stubForecasts, g *stubGeocoder, r *stubRadar, maxAge time.Duration) *Service {
	return New(f, g, r, store.NewMemoryStore(maxAge), geo.NewPlaceStore())
}

func TestWeatherForFetchesOnCacheMiss(t *testing.T) {
	forecasts := &stubForecasts{resp: testForecastResponse()}
	svc := newTestService(forecasts, &stubGeocoder{}, &stubRadar{}, time.Minute)

	data, err := svc.WeatherFor(context.Background(), testPlace())
	if err != nil {
		t.Fatalf("WeatherFor returned error: %v", err)
	}
	if forecasts.calls != 1 {
		t.Errorf("provider calls = %d, want 1", forecasts.calls)
	}
	if data.Current.Summary != "Clear" {
		t.Errorf("Summary = %q, want %q", data.Current.Summary, "Clear")
	}
	if data.Place.Timezone != "UTC" {
		t.Errorf("place timezone = %q, want backfill from payload", data.Place.Timezone)
	}
}

func TestWeatherForServesFreshCacheWithoutFetch(t *testing.T) {
	forecasts := &stubForecasts{resp: testForecastResponse()}
	svc := newTestService(forecasts, &stubGeocoder{}, &stubRadar{}, time.Minute)

	place := testPlace()
	if _, err := svc.WeatherFor(context.Background(), place); err != nil {
		t.Fatalf("first WeatherFor returned error: %v", err)
	}
	if _, err := svc.WeatherFor(context.Background(), place); err != nil {
		t.Fatalf("second WeatherFor returned error: %v", err)
	}
	if forecasts.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (second read served from cache)", forecasts.calls)
	}
}

func TestWeatherForServesStaleWhenRefreshFails(t *testing.T) {
	forecasts := &stubForecasts{resp: testForecastResponse()}
	svc := newTestService(forecasts, &stubGeocoder{}, &stubRadar{}, time.Nanosecond)

	place := testPlace()
	if _, err := svc.WeatherFor(context.Background(), place); err != nil {
		t.Fatalf("seed fetch returned error: %v", err)
	}
	time.Sleep(time.Millisecond)

	forecasts.err = errors.New("provider down")
	data, err := svc.WeatherFor(context.Background(), place)
	if err != nil {
		t.Fatalf("stale cache should mask a failed refresh, got error: %v", err)
	}
	if data.Current.Summary != "Clear" {
		t.Errorf("Summary = %q, want last-known %q", data.Current.Summary, "Clear")
	}
}

func TestWeatherForPropagatesErrorWithoutCache(t *testing.T) {
	forecasts := &stubForecasts{err: errors.New("provider down")}
	svc := newTestService(forecasts, &stubGeocoder{}, &stubRadar{}, time.Minute)

	if _, err := svc.WeatherFor(context.Background(), testPlace()); err == nil {
		t.Fatal("expected error when there is no cache to fall back on")
	}
}

func TestSearchPlacesDropsUnresolvableResults(t *testing.T) {
	geocoder := &stubGeocoder{
		searchResults: []geo.GeocodeResult{
			{
				OSMType:     "relation",
				OSMID:       7444,
				Lat:         "48.8589",
				Lon:         "2.3200",
				Name:        "Paris",
				DisplayName: "Paris, France",
				Address:     &geo.GeocodeAddress{City: "Paris", Country: "France"},
			},
			{OSMType: "node", OSMID: 1}, // no coordinates, dropped
		},
	}
	svc := newTestService(&stubForecasts{}, geocoder, &stubRadar{}, time.Minute)

	places, err := svc.SearchPlaces(context.Background(), "paris")
	if err != nil {
		t.Fatalf("SearchPlaces returned error: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("len = %d, want 1", len(places))
	}
	if places[0].ID != "relation-7444" {
		t.Errorf("ID = %q, want %q", places[0].ID, "relation-7444")
	}
}

func TestResolvePlaceNotFound(t *testing.T) {
	svc := newTestService(&stubForecasts{}, &stubGeocoder{}, &stubRadar{}, time.Minute)

	_, found, err := svc.ResolvePlace(context.Background(), 0, -160)
	if err != nil {
		t.Fatalf("ResolvePlace returned error: %v", err)
	}
	if found {
		t.Error("open-ocean coordinates should resolve to not-found")
	}
}

func TestResolvePlaceMarksCurrentLocation(t *testing.T) {
	geocoder := &stubGeocoder{
		reverseResult: &geo.GeocodeResult{
			OSMType:     "node",
			OSMID:       123,
			Lat:         "35.6762",
			Lon:         "139.6503",
			Name:        "Tokyo",
			DisplayName: "Tokyo, Japan",
			Address:     &geo.GeocodeAddress{City: "Tokyo", Country: "Japan"},
		},
	}
	svc := newTestService(&stubForecasts{}, geocoder, &stubRadar{}, time.Minute)

	place, found, err := svc.ResolvePlace(context.Background(), 35.6762, 139.6503)
	if err != nil {
		t.Fatalf("ResolvePlace returned error: %v", err)
	}
	if !found {
		t.Fatal("expected a match")
	}
	if !place.IsCurrentLocation {
		t.Error("reverse-geocoded place should be flagged as current location")
	}
}

func TestRadarTimelineCaches(t *testing.T) {
	radarSrc := &stubRadar{resp: &radar.MapsResponse{Host: "https://host"}}
	svc := newTestService(&stubForecasts{}, &stubGeocoder{}, radarSrc, time.Minute)

	if _, err := svc.RadarTimeline(context.Background()); err != nil {
		t.Fatalf("first RadarTimeline returned error: %v", err)
	}
	tl, err := svc.RadarTimeline(context.Background())
	if err != nil {
		t.Fatalf("second RadarTimeline returned error: %v", err)
	}
	if radarSrc.calls != 1 {
		t.Errorf("provider calls = %d, want 1", radarSrc.calls)
	}
	if tl.Host != "https://host" {
		t.Errorf("Host = %q, want %q", tl.Host, "https://host")
	}
}
