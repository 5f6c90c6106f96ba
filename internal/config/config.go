package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nimbus-weather/nimbus/internal/geo"
	"github.com/nimbus-weather/nimbus/internal/units"
)

// AppConfig holds everything the service reads from the environment.
type AppConfig struct {
	Port string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// WeatherInterval controls how often cached weather is refreshed.
	WeatherInterval time.Duration

	// RadarInterval controls how often the radar timeline is refreshed.
	// The provider regenerates its catalog roughly every 5 minutes.
	RadarInterval time.Duration

	// CacheMaxAge is how long cached data is served without a refetch.
	CacheMaxAge time.Duration

	// DefaultPlace seeds the saved-location store so the service has
	// something to show before any location is added.
	DefaultPlace geo.Place

	// DefaultUnits are the display units used when a request does not
	// override them.
	DefaultUnits units.Preferences
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Port:         getenvDefault("PORT", "8080"),
		DefaultUnits: units.DefaultPreferences(),
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "30s"); err != nil {
		return nil, err
	}
	if cfg.WeatherInterval, err = getenvDuration("WEATHER_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.RadarInterval, err = getenvDuration("RADAR_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	if cfg.CacheMaxAge, err = getenvDuration("CACHE_MAX_AGE", "15m"); err != nil {
		return nil, err
	}

	cfg.DefaultPlace = geo.Place{
		ID:          geo.DefaultPlaceID,
		Name:        getenvDefault("DEFAULT_PLACE_NAME", "New York"),
		DisplayName: getenvDefault("DEFAULT_PLACE_DISPLAY_NAME", "New York, United States"),
		Coordinates: geo.Coordinates{
			Latitude:  getenvFloat("DEFAULT_PLACE_LAT", 40.7128),
			Longitude: getenvFloat("DEFAULT_PLACE_LON", -74.0060),
		},
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
