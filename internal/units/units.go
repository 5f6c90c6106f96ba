// Package units converts canonical SI-like weather values (Celsius, km/h,
// hPa, km, mm) into a user's chosen display units and formats them for
// presentation. Everything here is pure: same value and preference always
// produce the same output.
package units

// TemperatureUnit selects the display unit for temperatures.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// WindSpeedUnit selects the display unit for wind speeds.
type WindSpeedUnit string

const (
	KilometersPerHour WindSpeedUnit = "kmh"
	MilesPerHour      WindSpeedUnit = "mph"
	MetersPerSecond   WindSpeedUnit = "ms"
	Knots             WindSpeedUnit = "knots"
)

// PressureUnit selects the display unit for atmospheric pressure.
type PressureUnit string

const (
	Hectopascals       PressureUnit = "hpa"
	InchesOfMercury    PressureUnit = "inhg"
	MillimetersMercury PressureUnit = "mmhg"
)

// VisibilityUnit selects the display unit for visibility distances.
type VisibilityUnit string

const (
	Kilometers VisibilityUnit = "km"
	Miles      VisibilityUnit = "mi"
)

// PrecipitationUnit selects the display unit for precipitation amounts.
type PrecipitationUnit string

const (
	Millimeters PrecipitationUnit = "mm"
	Inches      PrecipitationUnit = "in"
)

// TimeFormat selects 12-hour or 24-hour clock rendering.
type TimeFormat string

const (
	Clock12h TimeFormat = "12h"
	Clock24h TimeFormat = "24h"
)

// Preferences bundles the six independent display-unit choices. It is pure
// configuration with no derived state.
type Preferences struct {
	Temperature   TemperatureUnit   `json:"temperature" validate:"oneof=celsius fahrenheit"`
	WindSpeed     WindSpeedUnit     `json:"windSpeed" validate:"oneof=kmh mph ms knots"`
	Pressure      PressureUnit      `json:"pressure" validate:"oneof=hpa inhg mmhg"`
	Visibility    VisibilityUnit    `json:"visibility" validate:"oneof=km mi"`
	Precipitation PrecipitationUnit `json:"precipitation" validate:"oneof=mm in"`
	TimeFormat    TimeFormat        `json:"timeFormat" validate:"oneof=12h 24h"`
}

// DefaultPreferences returns the out-of-the-box unit choices.
func DefaultPreferences() Preferences {
	return Preferences{
		Temperature:   Fahrenheit,
		WindSpeed:     MilesPerHour,
		Pressure:      InchesOfMercury,
		Visibility:    Miles,
		Precipitation: Inches,
		TimeFormat:    Clock12h,
	}
}

// ConvertTemperature converts a canonical Celsius value.
func ConvertTemperature(celsius float64, to TemperatureUnit) float64 {
	if to == Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// ConvertWindSpeed converts a canonical km/h value.
func ConvertWindSpeed(kmh float64, to WindSpeedUnit) float64 {
	switch to {
	case MilesPerHour:
		return kmh * 0.621371
	case MetersPerSecond:
		return kmh / 3.6
	case Knots:
		return kmh * 0.539957
	default:
		return kmh
	}
}

// ConvertPressure converts a canonical hPa value.
func ConvertPressure(hpa float64, to PressureUnit) float64 {
	switch to {
	case InchesOfMercury:
		return hpa * 0.02953
	case MillimetersMercury:
		return hpa * 0.75006
	default:
		return hpa
	}
}

// ConvertVisibility converts a canonical km value.
func ConvertVisibility(km float64, to VisibilityUnit) float64 {
	if to == Miles {
		return km * 0.621371
	}
	return km
}

// ConvertPrecipitation converts a canonical mm value.
func ConvertPrecipitation(mm float64, to PrecipitationUnit) float64 {
	if to == Inches {
		return mm * 0.0393701
	}
	return mm
}

// TemperatureLabel returns the display suffix for a temperature unit.
func TemperatureLabel(u TemperatureUnit) string {
	if u == Celsius {
		return "°C"
	}
	return "°F"
}

// WindSpeedLabel returns the display suffix for a wind-speed unit.
func WindSpeedLabel(u WindSpeedUnit) string {
	switch u {
	case MilesPerHour:
		return "mph"
	case MetersPerSecond:
		return "m/s"
	case Knots:
		return "kn"
	default:
		return "km/h"
	}
}

// PressureLabel returns the display suffix for a pressure unit.
func PressureLabel(u PressureUnit) string {
	switch u {
	case InchesOfMercury:
		return "inHg"
	case MillimetersMercury:
		return "mmHg"
	default:
		return "hPa"
	}
}

// VisibilityLabel returns the display suffix for a visibility unit.
func VisibilityLabel(u VisibilityUnit) string {
	if u == Kilometers {
		return "km"
	}
	return "mi"
}

// PrecipitationLabel returns the display suffix for a precipitation unit.
func PrecipitationLabel(u PrecipitationUnit) string {
	if u == Millimeters {
		return "mm"
	}
	return "in"
}
