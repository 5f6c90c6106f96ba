package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/nimbus-weather/nimbus/internal/geo"
)

// Nominatim asks for a User-Agent identifying the application.
const geocodeUserAgent = "nimbus-weather (https://github.com/nimbus-weather/nimbus)"

// GeocodeClient fetches raw geocoding results from Nominatim.
type GeocodeClient struct {
	searchURL  string
	reverseURL string
	cfg        ClientConfig
	circuit    *gobreaker.CircuitBreaker
}

// NewGeocodeClient creates a GeocodeClient using the shared HTTP client.
func NewGeocodeClient(client *http.Client) *GeocodeClient {
	return &GeocodeClient{
		searchURL:  "https://nominatim.openstreetmap.org/search",
		reverseURL: "https://nominatim.openstreetmap.org/reverse",
		cfg: ClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newBreaker("nominatim"),
	}
}

// Search resolves a free-text query to up to 10 candidate results. A blank
// query short-circuits to an empty result set.
func (c *GeocodeClient) Search(ctx context.Context, query string) ([]geo.GeocodeResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", query)
		values.Set("format", "json")
		values.Set("addressdetails", "1")
		values.Set("limit", "10")

		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", c.searchURL, values.Encode()), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", geocodeUserAgent)
		return req, nil
	}

	var results []geo.GeocodeResult
	if err := fetchJSON(ctx, c.cfg, c.circuit, buildRequest, &results); err != nil {
		return nil, fmt.Errorf("nominatim search: %w", err)
	}
	return results, nil
}

// Reverse resolves a coordinate to a single result. A coordinate the
// provider has no administrative match for (open ocean, poles) returns
// (nil, nil): that is a normal outcome, not an error.
func (c *GeocodeClient) Reverse(ctx context.Context, lat, lon float64) (*geo.GeocodeResult, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", lat))
		values.Set("lon", fmt.Sprintf("%f", lon))
		values.Set("format", "json")
		values.Set("addressdetails", "1")

		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", c.reverseURL, values.Encode()), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", geocodeUserAgent)
		return req, nil
	}

	var result geo.GeocodeResult
	if err := fetchJSON(ctx, c.cfg, c.circuit, buildRequest, &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("nominatim reverse: %w", err)
	}

	if result.Lat == "" {
		return nil, nil
	}
	return &result, nil
}
