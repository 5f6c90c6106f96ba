package weather

import (
	"math"
	"time"
)

// Forecast horizons. The provider is asked for exactly this much data but
// is not trusted to return it; transforms truncate rather than assume.
const (
	maxHourlyEntries = 48
	maxDailyEntries  = 7
)

const (
	hourlyTimeLayout = "2006-01-02T15:04"
	dailyTimeLayout  = "2006-01-02"
)

// parseProviderTime parses the provider's ISO-8601-without-timezone strings
// as wall-clock time in loc. Both the hourly and the date-only layouts are
// accepted.
func parseProviderTime(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.ParseInLocation(hourlyTimeLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(dailyTimeLayout, s, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// at returns xs[i] when the index is in range and 0 otherwise. The provider
// contract aligns all parallel arrays, but a short array must degrade to a
// default rather than panic.
func at(xs []float64, i int) float64 {
	if i >= 0 && i < len(xs) {
		return xs[i]
	}
	return 0
}

func intAt(xs []int, i int) int {
	if i >= 0 && i < len(xs) {
		return xs[i]
	}
	return 0
}

// closestHourIndex returns the index of the hourly entry with the minimum
// absolute distance from now. Ties break toward the earlier index. Returns
// -1 when no entry has a parseable time.
func closestHourIndex(times []string, loc *time.Location, now time.Time) int {
	best := -1
	bestDiff := math.Inf(1)
	for i, s := range times {
		t, ok := parseProviderTime(s, loc)
		if !ok {
			continue
		}
		diff := math.Abs(t.Sub(now).Seconds())
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}

// DefaultCurrentConditions is the documented fallback when the provider's
// current block is missing entirely: standard pressure, clear visibility,
// and an explicitly unknown summary.
func DefaultCurrentConditions() CurrentConditions {
	return CurrentConditions{
		Pressure:   1013,
		Visibility: 10,
		Summary:    "Unknown",
		Icon:       IconCloudy,
		IsDay:      true,
	}
}

// CurrentFromForecast derives current conditions from a forecast payload.
// The provider's current block does not carry uvIndex, dewPoint, or
// visibility, so those are pulled from the hourly series at the entry
// closest to now. Visibility arrives in meters and is converted to km.
func CurrentFromForecast(raw *ForecastResponse, now time.Time) CurrentConditions {
	if raw == nil || raw.Current == nil {
		return DefaultCurrentConditions()
	}

	cur := raw.Current
	code := Code(cur.WeatherCode)
	isDay := cur.IsDay == 1

	var (
		uvIndex    float64
		dewPoint   float64
		visibility float64 = 10
		precipProb float64
	)

	if h := raw.Hourly; h != nil && len(h.Time) > 0 {
		if idx := closestHourIndex(h.Time, raw.Location(), now); idx >= 0 {
			uvIndex = at(h.UVIndex, idx)
			dewPoint = at(h.DewPoint2m, idx)
			if idx < len(h.Visibility) {
				visibility = h.Visibility[idx] / 1000
			}
			precipProb = at(h.PrecipitationProbability, idx)
		}
	}

	cc := CurrentConditions{
		Temperature:              cur.Temperature2m,
		FeelsLike:                cur.ApparentTemp,
		Humidity:                 cur.RelativeHumidity2m,
		DewPoint:                 dewPoint,
		Pressure:                 cur.PressureMsl,
		WindSpeed:                cur.WindSpeed10m,
		WindDirection:            cur.WindDirection10m,
		Visibility:               visibility,
		UVIndex:                  uvIndex,
		CloudCover:               cur.CloudCover,
		Code:                     code,
		Summary:                  SummaryFor(code),
		Icon:                     IconFor(code, isDay),
		IsDay:                    isDay,
		PrecipitationProbability: precipProb,
		Precipitation:            cur.Precipitation,
	}
	if cur.WindGusts10m != 0 {
		gust := cur.WindGusts10m
		cc.WindGust = &gust
	}
	return cc
}

// HourlyFromForecast zips the provider's parallel hourly arrays into a
// chronological sequence, truncated to the 48-hour horizon. Entries with
// unparseable times are skipped.
func HourlyFromForecast(raw *ForecastResponse) []HourlyForecast {
	if raw == nil || raw.Hourly == nil {
		return nil
	}

	h := raw.Hourly
	loc := raw.Location()

	n := len(h.Time)
	if n > maxHourlyEntries {
		n = maxHourlyEntries
	}

	out := make([]HourlyForecast, 0, n)
	for i := 0; i < n; i++ {
		t, ok := parseProviderTime(h.Time[i], loc)
		if !ok {
			continue
		}
		code := Code(intAt(h.WeatherCode, i))
		isDay := intAt(h.IsDay, i) == 1

		out = append(out, HourlyForecast{
			Time:                     t,
			Temperature:              at(h.Temperature2m, i),
			FeelsLike:                at(h.ApparentTemp, i),
			Humidity:                 at(h.RelativeHumidity2m, i),
			PrecipitationProbability: at(h.PrecipitationProbability, i),
			Precipitation:            at(h.Precipitation, i),
			Code:                     code,
			Icon:                     IconFor(code, isDay),
			WindSpeed:                at(h.WindSpeed10m, i),
			WindDirection:            at(h.WindDirection10m, i),
			IsDay:                    isDay,
		})
	}
	return out
}

// DailyFromForecast zips the provider's parallel daily arrays, truncated to
// the 7-day horizon. Daily icons are always resolved as day variants; the
// provider has no useful day/night signal for a future date.
func DailyFromForecast(raw *ForecastResponse) []DailyForecast {
	if raw == nil || raw.Daily == nil {
		return nil
	}

	d := raw.Daily
	loc := raw.Location()

	n := len(d.Time)
	if n > maxDailyEntries {
		n = maxDailyEntries
	}

	out := make([]DailyForecast, 0, n)
	for i := 0; i < n; i++ {
		date, ok := parseProviderTime(d.Time[i], loc)
		if !ok {
			continue
		}
		var sunrise, sunset time.Time
		if i < len(d.Sunrise) {
			sunrise, _ = parseProviderTime(d.Sunrise[i], loc)
		}
		if i < len(d.Sunset) {
			sunset, _ = parseProviderTime(d.Sunset[i], loc)
		}
		code := Code(intAt(d.WeatherCode, i))

		out = append(out, DailyForecast{
			Date:                     date,
			TemperatureMax:           at(d.Temperature2mMax, i),
			TemperatureMin:           at(d.Temperature2mMin, i),
			Sunrise:                  sunrise,
			Sunset:                   sunset,
			PrecipitationProbability: at(d.PrecipitationProbabilityMax, i),
			PrecipitationSum:         at(d.PrecipitationSum, i),
			Code:                     code,
			Icon:                     IconFor(code, true),
			Summary:                  SummaryFor(code),
			UVIndexMax:               at(d.UVIndexMax, i),
			WindSpeedMax:             at(d.WindSpeed10mMax, i),
			WindDirection:            at(d.WindDirection10mDominant, i),
		})
	}
	return out
}

// MinutelyFromForecast converts the provider's optional sub-hourly block
// into precipitation samples. Returns nil when the provider has no nowcast
// capability; callers fall back to the leading hourly entries.
func MinutelyFromForecast(raw *ForecastResponse) []PrecipitationSample {
	if raw == nil || raw.Minutely == nil {
		return nil
	}

	m := raw.Minutely
	loc := raw.Location()

	out := make([]PrecipitationSample, 0, len(m.Time))
	for i, s := range m.Time {
		t, ok := parseProviderTime(s, loc)
		if !ok {
			continue
		}
		out = append(out, PrecipitationSample{
			Time:        t,
			Intensity:   at(m.Precipitation, i),
			Probability: at(m.PrecipitationProbability, i),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DataFromForecast assembles the full canonical bundle from one payload.
func DataFromForecast(raw *ForecastResponse, now time.Time) Data {
	return Data{
		Current:     CurrentFromForecast(raw, now),
		Hourly:      HourlyFromForecast(raw),
		Daily:       DailyFromForecast(raw),
		Minutely:    MinutelyFromForecast(raw),
		LastUpdated: now,
	}
}
