package weather

// codeInfo carries the display summary and icon categories for one code.
// iconNight is left empty when the night variant is the same as the day one.
type codeInfo struct {
	summary   string
	icon      Icon
	iconNight Icon
}

// codeTable is the provider's closed code vocabulary. New provider codes
// require an entry here, not a schema change; lookups for anything missing
// fall back to "Unknown" and a generic cloudy icon.
var codeTable = map[Code]codeInfo{
	0:  {summary: "Clear sky", icon: IconClearDay, iconNight: IconClearNight},
	1:  {summary: "Mainly clear", icon: IconClearDay, iconNight: IconClearNight},
	2:  {summary: "Partly cloudy", icon: IconPartlyCloudyDay, iconNight: IconPartlyCloudyNight},
	3:  {summary: "Overcast", icon: IconCloudy},
	45: {summary: "Fog", icon: IconFog},
	48: {summary: "Depositing rime fog", icon: IconFog},
	51: {summary: "Light drizzle", icon: IconDrizzle},
	53: {summary: "Moderate drizzle", icon: IconDrizzle},
	55: {summary: "Dense drizzle", icon: IconDrizzle},
	56: {summary: "Light freezing drizzle", icon: IconSleet},
	57: {summary: "Dense freezing drizzle", icon: IconSleet},
	61: {summary: "Slight rain", icon: IconRain},
	63: {summary: "Moderate rain", icon: IconRain},
	65: {summary: "Heavy rain", icon: IconRain},
	66: {summary: "Light freezing rain", icon: IconSleet},
	67: {summary: "Heavy freezing rain", icon: IconSleet},
	71: {summary: "Slight snow", icon: IconSnow},
	73: {summary: "Moderate snow", icon: IconSnow},
	75: {summary: "Heavy snow", icon: IconSnow},
	77: {summary: "Snow grains", icon: IconSnow},
	80: {summary: "Slight rain showers", icon: IconRain},
	81: {summary: "Moderate rain showers", icon: IconRain},
	82: {summary: "Violent rain showers", icon: IconRain},
	85: {summary: "Slight snow showers", icon: IconSnow},
	86: {summary: "Heavy snow showers", icon: IconSnow},
	95: {summary: "Thunderstorm", icon: IconThunderstorm},
	96: {summary: "Thunderstorm with slight hail", icon: IconThunderstorm},
	99: {summary: "Thunderstorm with heavy hail", icon: IconThunderstorm},
}

// SummaryFor returns the human summary for a code, or "Unknown" for any
// code outside the vocabulary.
func SummaryFor(code Code) string {
	if info, ok := codeTable[code]; ok {
		return info.summary
	}
	return "Unknown"
}

// IconFor returns the icon category for a code. Night variants apply only
// where the vocabulary defines one. Unknown codes get the generic cloudy
// icon.
func IconFor(code Code, isDay bool) Icon {
	info, ok := codeTable[code]
	if !ok {
		return IconCloudy
	}
	if !isDay && info.iconNight != "" {
		return info.iconNight
	}
	return info.icon
}

// IsPrecipitation reports whether the code denotes any form of
// precipitation.
func IsPrecipitation(code Code) bool {
	return code >= 51
}

// IsSnow reports whether the code denotes snow.
func IsSnow(code Code) bool {
	return (code >= 71 && code <= 77) || code == 85 || code == 86
}

// IsRain reports whether the code falls in the rain/drizzle ranges. The
// ranges also cover the freezing codes 56/57/66/67; PrecipitationTypeFor
// reclassifies those as sleet before consulting this predicate.
func IsRain(code Code) bool {
	return (code >= 51 && code <= 67) || (code >= 80 && code <= 82)
}

// IsThunderstorm reports whether the code denotes a thunderstorm.
func IsThunderstorm(code Code) bool {
	return code >= 95
}

// PrecipType classifies what kind of precipitation a code denotes.
type PrecipType string

const (
	PrecipNone  PrecipType = "none"
	PrecipRain  PrecipType = "rain"
	PrecipSnow  PrecipType = "snow"
	PrecipSleet PrecipType = "sleet"
	PrecipMixed PrecipType = "mixed"
)

// PrecipitationTypeFor maps a code to its precipitation type. The sleet
// check runs before the rain check because the freezing codes sit inside
// the numeric rain ranges.
func PrecipitationTypeFor(code Code) PrecipType {
	if !IsPrecipitation(code) {
		return PrecipNone
	}
	if code == 56 || code == 57 || code == 66 || code == 67 {
		return PrecipSleet
	}
	if IsSnow(code) {
		return PrecipSnow
	}
	if IsRain(code) || IsThunderstorm(code) {
		return PrecipRain
	}
	return PrecipMixed
}

// Intensity buckets a precipitation amount.
type Intensity string

const (
	IntensityNone   Intensity = "none"
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHeavy  Intensity = "heavy"
)

// IntensityFor buckets an hourly precipitation amount in millimeters.
// Thresholds are fixed meteorological constants.
func IntensityFor(mm float64) Intensity {
	switch {
	case mm == 0:
		return IntensityNone
	case mm < 2.5:
		return IntensityLight
	case mm < 7.6:
		return IntensityMedium
	default:
		return IntensityHeavy
	}
}
