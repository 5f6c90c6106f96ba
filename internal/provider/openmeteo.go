package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/nimbus-weather/nimbus/internal/weather"
)

// Field lists requested from the forecast provider. The transformer relies
// on every listed hourly field being present as a parallel array.
var (
	currentParams = strings.Join([]string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature",
		"is_day", "precipitation", "rain", "showers", "snowfall",
		"weather_code", "cloud_cover", "pressure_msl", "surface_pressure",
		"wind_speed_10m", "wind_direction_10m", "wind_gusts_10m",
	}, ",")

	hourlyParams = strings.Join([]string{
		"temperature_2m", "relative_humidity_2m", "dew_point_2m",
		"apparent_temperature", "precipitation_probability", "precipitation",
		"rain", "showers", "snowfall", "weather_code", "cloud_cover",
		"visibility", "wind_speed_10m", "wind_direction_10m",
		"wind_gusts_10m", "uv_index", "is_day",
	}, ",")

	minutelyParams = strings.Join([]string{
		"precipitation", "precipitation_probability",
	}, ",")

	dailyParams = strings.Join([]string{
		"weather_code", "temperature_2m_max", "temperature_2m_min",
		"apparent_temperature_max", "apparent_temperature_min",
		"sunrise", "sunset", "uv_index_max", "precipitation_sum",
		"rain_sum", "showers_sum", "snowfall_sum", "precipitation_hours",
		"precipitation_probability_max", "wind_speed_10m_max",
		"wind_gusts_10m_max", "wind_direction_10m_dominant",
	}, ",")
)

// ForecastClient fetches raw forecast payloads from Open-Meteo.
type ForecastClient struct {
	baseURL string
	cfg     ClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewForecastClient creates a ForecastClient using the shared HTTP client.
func NewForecastClient(client *http.Client) *ForecastClient {
	return &ForecastClient{
		baseURL: "https://api.open-meteo.com/v1/forecast",
		cfg: ClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newBreaker("openmeteo"),
	}
}

// Forecast retrieves the full 7-day / 48-hour payload for a coordinate.
// The payload is returned raw; normalization happens in the weather
// package.
func (c *ForecastClient) Forecast(ctx context.Context, lat, lon float64) (*weather.ForecastResponse, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("current", currentParams)
		values.Set("hourly", hourlyParams)
		values.Set("daily", dailyParams)
		values.Set("minutely_15", minutelyParams)
		values.Set("timezone", "auto")
		values.Set("forecast_days", "7")
		values.Set("forecast_hours", "48")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload weather.ForecastResponse
	if err := fetchJSON(ctx, c.cfg, c.circuit, buildRequest, &payload); err != nil {
		return nil, fmt.Errorf("openmeteo forecast: %w", err)
	}
	return &payload, nil
}
