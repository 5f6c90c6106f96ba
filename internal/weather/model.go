// Package weather holds the canonical, provider-agnostic weather model and
// the pure transformations that produce it from raw provider payloads. All
// numeric values are canonical SI-like units: Celsius, km/h, hPa, km, mm.
package weather

import (
	"time"

	"github.com/nimbus-weather/nimbus/internal/geo"
)

// Code is a weather condition code from the forecast provider's fixed
// integer vocabulary (WMO codes as published by Open-Meteo). The set is
// closed and provider-defined; codes outside it degrade to safe defaults
// rather than erroring.
type Code int

// Icon is the category a UI uses to pick a weather glyph.
type Icon string

const (
	IconClearDay          Icon = "clear-day"
	IconClearNight        Icon = "clear-night"
	IconPartlyCloudyDay   Icon = "partly-cloudy-day"
	IconPartlyCloudyNight Icon = "partly-cloudy-night"
	IconCloudy            Icon = "cloudy"
	IconFog               Icon = "fog"
	IconDrizzle           Icon = "drizzle"
	IconRain              Icon = "rain"
	IconSleet             Icon = "sleet"
	IconSnow              Icon = "snow"
	IconThunderstorm      Icon = "thunderstorm"
	IconWind              Icon = "wind"
)

// CurrentConditions is a point-in-time snapshot of the weather at a place.
// It is immutable once constructed and regenerated wholesale on every fetch.
type CurrentConditions struct {
	Temperature              float64  `json:"temperature"`
	FeelsLike                float64  `json:"feelsLike"`
	Humidity                 float64  `json:"humidity"`
	DewPoint                 float64  `json:"dewPoint"`
	Pressure                 float64  `json:"pressure"`
	WindSpeed                float64  `json:"windSpeed"`
	WindDirection            float64  `json:"windDirection"`
	WindGust                 *float64 `json:"windGust,omitempty"`
	Visibility               float64  `json:"visibility"`
	UVIndex                  float64  `json:"uvIndex"`
	CloudCover               float64  `json:"cloudCover"`
	Code                     Code     `json:"weatherCode"`
	Summary                  string   `json:"summary"`
	Icon                     Icon     `json:"icon"`
	IsDay                    bool     `json:"isDay"`
	PrecipitationProbability float64  `json:"precipitationProbability"`
	Precipitation            float64  `json:"precipitation"`
}

// HourlyForecast is one hour of the forecast horizon.
type HourlyForecast struct {
	Time                     time.Time `json:"time"`
	Temperature              float64   `json:"temperature"`
	FeelsLike                float64   `json:"feelsLike"`
	Humidity                 float64   `json:"humidity"`
	PrecipitationProbability float64   `json:"precipitationProbability"`
	Precipitation            float64   `json:"precipitation"`
	Code                     Code      `json:"weatherCode"`
	Icon                     Icon      `json:"icon"`
	WindSpeed                float64   `json:"windSpeed"`
	WindDirection            float64   `json:"windDirection"`
	IsDay                    bool      `json:"isDay"`
}

// DailyForecast is one calendar day of the forecast horizon. Daily icons
// are always resolved as day variants.
type DailyForecast struct {
	Date                     time.Time `json:"date"`
	TemperatureMax           float64   `json:"temperatureMax"`
	TemperatureMin           float64   `json:"temperatureMin"`
	Sunrise                  time.Time `json:"sunrise"`
	Sunset                   time.Time `json:"sunset"`
	PrecipitationProbability float64   `json:"precipitationProbability"`
	PrecipitationSum         float64   `json:"precipitationSum"`
	Code                     Code      `json:"weatherCode"`
	Icon                     Icon      `json:"icon"`
	Summary                  string    `json:"summary"`
	UVIndexMax               float64   `json:"uvIndexMax"`
	WindSpeedMax             float64   `json:"windSpeedMax"`
	WindDirection            float64   `json:"windDirection"`
}

// PrecipitationSample is one entry of a near-term precipitation series, at
// minute or hour resolution depending on what the provider offers.
type PrecipitationSample struct {
	Time        time.Time `json:"time"`
	Intensity   float64   `json:"intensity"`
	Probability float64   `json:"probability"`
}

// Data bundles everything the engine derives from one forecast fetch.
type Data struct {
	Place       geo.Place             `json:"place"`
	Current     CurrentConditions     `json:"current"`
	Hourly      []HourlyForecast      `json:"hourly"`
	Daily       []DailyForecast       `json:"daily"`
	Minutely    []PrecipitationSample `json:"minutely,omitempty"`
	LastUpdated time.Time             `json:"lastUpdated"`
}
