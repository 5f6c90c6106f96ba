package units

import (
	"fmt"
	"math"
	"time"
)

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Compass maps wind direction degrees to an 8-point compass label.
// 360° wraps back to N.
func Compass(degrees float64) string {
	idx := int(math.Round(degrees/45)) % 8
	return compassPoints[idx]
}

// Formatter renders canonical values as display strings using a fixed set of
// unit preferences. A zero Formatter formats with canonical units.
type Formatter struct {
	Prefs Preferences
}

// NewFormatter returns a Formatter bound to the given preferences.
func NewFormatter(prefs Preferences) Formatter {
	return Formatter{Prefs: prefs}
}

// Temperature renders a canonical Celsius value rounded to the nearest
// integer, with a degree sign unless withUnit is false.
func (f Formatter) Temperature(celsius float64, withUnit bool) string {
	rounded := int(math.Round(ConvertTemperature(celsius, f.Prefs.Temperature)))
	if withUnit {
		return fmt.Sprintf("%d°", rounded)
	}
	return fmt.Sprintf("%d", rounded)
}

// Wind renders a canonical km/h value rounded to the nearest integer.
func (f Formatter) Wind(kmh float64, withUnit bool) string {
	rounded := int(math.Round(ConvertWindSpeed(kmh, f.Prefs.WindSpeed)))
	if withUnit {
		return fmt.Sprintf("%d %s", rounded, WindSpeedLabel(f.Prefs.WindSpeed))
	}
	return fmt.Sprintf("%d", rounded)
}

// Pressure renders a canonical hPa value with 0 decimals for hPa and 2
// decimals for the mercury units.
func (f Formatter) Pressure(hpa float64, withUnit bool) string {
	converted := ConvertPressure(hpa, f.Prefs.Pressure)
	decimals := 2
	if f.Prefs.Pressure == Hectopascals {
		decimals = 0
	}
	s := fmt.Sprintf("%.*f", decimals, converted)
	if withUnit {
		return s + " " + PressureLabel(f.Prefs.Pressure)
	}
	return s
}

// Visibility renders a canonical km value with one decimal.
func (f Formatter) Visibility(km float64, withUnit bool) string {
	s := fmt.Sprintf("%.1f", ConvertVisibility(km, f.Prefs.Visibility))
	if withUnit {
		return s + " " + VisibilityLabel(f.Prefs.Visibility)
	}
	return s
}

// Precipitation renders a canonical mm value: one decimal for mm, two for
// inches, and a bare "0" when the raw value is exactly zero.
func (f Formatter) Precipitation(mm float64, withUnit bool) string {
	var s string
	if mm == 0 {
		s = "0"
	} else {
		converted := ConvertPrecipitation(mm, f.Prefs.Precipitation)
		decimals := 1
		if f.Prefs.Precipitation == Inches {
			decimals = 2
		}
		s = fmt.Sprintf("%.*f", decimals, converted)
	}
	if withUnit {
		return s + " " + PrecipitationLabel(f.Prefs.Precipitation)
	}
	return s
}

// Time renders a clock time under the preferred 12h/24h format.
func (f Formatter) Time(t time.Time) string {
	if f.Prefs.TimeFormat == Clock24h {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// Hour renders just the hour, e.g. "14:00" or "2PM".
func (f Formatter) Hour(t time.Time) string {
	if f.Prefs.TimeFormat == Clock24h {
		return t.Format("15:00")
	}
	return t.Format("3PM")
}

// Percentage renders a 0-100 value rounded to the nearest whole percent.
func Percentage(value float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(value)))
}

// DayShort renders the abbreviated weekday name.
func DayShort(t time.Time) string {
	return t.Format("Mon")
}

// DayFull renders the full weekday name.
func DayFull(t time.Time) string {
	return t.Format("Monday")
}

// DateShort renders an abbreviated month and day, e.g. "Jan 5".
func DateShort(t time.Time) string {
	return t.Format("Jan 2")
}

// RelativeTime renders the offset between t and now in coarse human terms.
func RelativeTime(t, now time.Time) string {
	diffMins := int(math.Round(t.Sub(now).Seconds() / 60))

	if diffMins == 0 {
		return "now"
	}

	if diffMins > 0 {
		if diffMins < 60 {
			return fmt.Sprintf("in %d min", diffMins)
		}
		hours := int(math.Round(float64(diffMins) / 60))
		if hours < 24 {
			return fmt.Sprintf("in %dh", hours)
		}
		return fmt.Sprintf("in %dd", int(math.Round(float64(hours)/24)))
	}

	mins := -diffMins
	if mins < 60 {
		return fmt.Sprintf("%d min ago", mins)
	}
	hours := int(math.Round(float64(mins) / 60))
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", int(math.Round(float64(hours)/24)))
}

// UVIndexLevel maps a UV index value to its WHO exposure category.
func UVIndexLevel(index float64) string {
	switch {
	case index < 3:
		return "Low"
	case index < 6:
		return "Moderate"
	case index < 8:
		return "High"
	case index < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}
