package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/nimbus-weather/nimbus/internal/radar"
)

// RadarClient fetches the RainViewer weather-maps frame catalog.
type RadarClient struct {
	mapsURL string
	cfg     ClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewRadarClient creates a RadarClient using the shared HTTP client.
func NewRadarClient(client *http.Client) *RadarClient {
	return &RadarClient{
		mapsURL: "https://api.rainviewer.com/public/weather-maps.json",
		cfg: ClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newBreaker("rainviewer"),
	}
}

// Maps retrieves the current frame catalog: past observation frames and
// short-horizon nowcast frames.
func (c *RadarClient) Maps(ctx context.Context) (*radar.MapsResponse, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, c.mapsURL, nil)
	}

	var payload radar.MapsResponse
	if err := fetchJSON(ctx, c.cfg, c.circuit, buildRequest, &payload); err != nil {
		return nil, fmt.Errorf("rainviewer maps: %w", err)
	}
	return &payload, nil
}
