package httpapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nimbus-weather/nimbus/internal/geo"
	"github.com/nimbus-weather/nimbus/internal/radar"
	"github.com/nimbus-weather/nimbus/internal/service"
	"github.com/nimbus-weather/nimbus/internal/units"
	"github.com/nimbus-weather/nimbus/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc *service.Service, defaultUnits units.Preferences) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		coords, err := parseCoordinates(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		prefs, err := parseUnitPreferences(c, defaultUnits)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		place := placeForCoordinates(svc, coords)
		data, err := svc.WeatherFor(c.Context(), place)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
		}

		return c.JSON(weatherResponse(data, prefs))
	})

	v1.Get("/geocode/search", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
		}

		places, err := svc.SearchPlaces(c.Context(), query)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to search places")
		}
		return c.JSON(fiber.Map{"results": places})
	})

	v1.Get("/geocode/reverse", func(c *fiber.Ctx) error {
		coords, err := parseCoordinates(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		place, found, err := svc.ResolvePlace(c.Context(), coords.Latitude, coords.Longitude)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to resolve place")
		}
		if !found {
			// Unresolvable coordinates (open ocean) are a normal outcome.
			return c.JSON(fiber.Map{"found": false})
		}
		return c.JSON(fiber.Map{"found": true, "place": place})
	})

	v1.Get("/radar", func(c *fiber.Ctx) error {
		timeline, err := svc.RadarTimeline(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch radar timeline")
		}
		return c.JSON(radarResponse(timeline))
	})

	registerLocationRoutes(v1, svc)
}

func registerLocationRoutes(v1 fiber.Router, svc *service.Service) {
	v1.Get("/locations", func(c *fiber.Ctx) error {
		places := svc.Places().List()
		active, _ := svc.Places().Active()
		return c.JSON(fiber.Map{
			"locations": places,
			"activeId":  active.ID,
		})
	})

	v1.Post("/locations", func(c *fiber.Ctx) error {
		var place geo.Place
		if err := c.BodyParser(&place); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid location body")
		}
		if place.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "location name is required")
		}

		added := svc.Places().Add(place)
		return c.Status(fiber.StatusCreated).JSON(added)
	})

	v1.Post("/locations/current", func(c *fiber.Ctx) error {
		coords, err := parseCoordinates(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		place, found, err := svc.ResolvePlace(c.Context(), coords.Latitude, coords.Longitude)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to resolve place")
		}
		if !found {
			// Keep the coordinate even without an administrative match.
			place = geo.Place{
				Name:        "Current Location",
				DisplayName: "Current Location",
				Coordinates: coords,
			}
		}

		promoted := svc.Places().PromoteCurrentLocation(place)
		return c.JSON(promoted)
	})

	v1.Put("/locations/:id/activate", func(c *fiber.Ctx) error {
		if err := svc.Places().SetActive(c.Params("id")); err != nil {
			if errors.Is(err, geo.ErrPlaceNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no saved location with that id")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to activate location")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Delete("/locations/:id", func(c *fiber.Ctx) error {
		if err := svc.Places().Remove(c.Params("id")); err != nil {
			if errors.Is(err, geo.ErrPlaceNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no saved location with that id")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to remove location")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// coordinateQuery holds the lat/lon query parameters.
type coordinateQuery struct {
	Lat float64 `validate:"min=-90,max=90"`
	Lon float64 `validate:"min=-180,max=180"`
}

func parseCoordinates(c *fiber.Ctx) (geo.Coordinates, error) {
	if c.Query("lat") == "" || c.Query("lon") == "" {
		return geo.Coordinates{}, errors.New("lat and lon query parameters are required")
	}

	q := coordinateQuery{
		Lat: c.QueryFloat("lat"),
		Lon: c.QueryFloat("lon"),
	}
	if err := validate.Struct(q); err != nil {
		return geo.Coordinates{}, err
	}
	return geo.Coordinates{Latitude: q.Lat, Longitude: q.Lon}, nil
}

// parseUnitPreferences reads the optional unit-override query parameters on
// top of the configured defaults.
func parseUnitPreferences(c *fiber.Ctx, defaults units.Preferences) (units.Preferences, error) {
	prefs := defaults

	if v := c.Query("temperature"); v != "" {
		prefs.Temperature = units.TemperatureUnit(v)
	}
	if v := c.Query("windSpeed"); v != "" {
		prefs.WindSpeed = units.WindSpeedUnit(v)
	}
	if v := c.Query("pressure"); v != "" {
		prefs.Pressure = units.PressureUnit(v)
	}
	if v := c.Query("visibility"); v != "" {
		prefs.Visibility = units.VisibilityUnit(v)
	}
	if v := c.Query("precipitation"); v != "" {
		prefs.Precipitation = units.PrecipitationUnit(v)
	}
	if v := c.Query("timeFormat"); v != "" {
		prefs.TimeFormat = units.TimeFormat(v)
	}

	if err := validate.Struct(prefs); err != nil {
		return units.Preferences{}, err
	}
	return prefs, nil
}

// placeForCoordinates builds an ad-hoc place for a raw coordinate query.
// Coordinates are keyed at two decimal places (roughly 1 km) so nearby
// queries share a cache entry.
func placeForCoordinates(svc *service.Service, coords geo.Coordinates) geo.Place {
	if active, ok := svc.Places().Active(); ok {
		if active.Coordinates == coords {
			return active
		}
	}
	return geo.Place{
		ID:          fmt.Sprintf("%.2f,%.2f", coords.Latitude, coords.Longitude),
		Coordinates: coords,
	}
}

// weatherResponse pairs the canonical bundle with display strings rendered
// under the requested unit preferences.
func weatherResponse(data weather.Data, prefs units.Preferences) fiber.Map {
	f := units.NewFormatter(prefs)
	cur := data.Current

	display := fiber.Map{
		"temperature":   f.Temperature(cur.Temperature, true),
		"feelsLike":     f.Temperature(cur.FeelsLike, true),
		"humidity":      units.Percentage(cur.Humidity),
		"dewPoint":      f.Temperature(cur.DewPoint, true),
		"pressure":      f.Pressure(cur.Pressure, true),
		"wind":          f.Wind(cur.WindSpeed, true),
		"windDirection": units.Compass(cur.WindDirection),
		"visibility":    f.Visibility(cur.Visibility, true),
		"uvIndex":       units.UVIndexLevel(cur.UVIndex),
		"precipitation": f.Precipitation(cur.Precipitation, true),
		"summary":       cur.Summary,
	}
	if cur.WindGust != nil {
		display["windGust"] = f.Wind(*cur.WindGust, true)
	}
	if narrative, ok := weather.Narrative(data.NarrativeSeries(), time.Now()); ok {
		display["precipitationNarrative"] = narrative
	}

	return fiber.Map{
		"place":       data.Place,
		"current":     cur,
		"hourly":      data.Hourly,
		"daily":       data.Daily,
		"minutely":    data.Minutely,
		"display":     display,
		"units":       prefs,
		"lastUpdated": data.LastUpdated,
	}
}

// radarResponse renders the timeline with per-frame scrubber labels.
func radarResponse(timeline radar.Timeline) fiber.Map {
	now := time.Now()
	frames := timeline.AllFrames()

	labels := make([]string, len(frames))
	for i, frame := range frames {
		labels[i] = radar.FrameLabel(frame, now)
	}

	initialIndex := len(timeline.Past) - 1
	if initialIndex < 0 {
		initialIndex = 0
	}

	return fiber.Map{
		"generated":    timeline.Generated,
		"host":         timeline.Host,
		"past":         timeline.Past,
		"nowcast":      timeline.Nowcast,
		"frames":       frames,
		"labels":       labels,
		"initialIndex": initialIndex,
	}
}
