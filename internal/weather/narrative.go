package weather

import (
	"fmt"
	"math"
	"time"
)

// narrative fallback: how many leading hourly entries stand in for a
// missing sub-hourly series.
const narrativeHourlyFallback = 6

// Narrative derives a single human-readable statement about imminent rain
// from an ordered precipitation series covering roughly the next hour. The
// series granularity (minute or hour) is opaque here; the caller picks the
// best series it has. Returns ok=false when there is no series to speak of.
//
// The minute count is round(deltaSeconds/60) with no clamping, so clock
// skew between now and the first sample can legitimately produce
// "in 0 min".
func Narrative(series []PrecipitationSample, now time.Time) (string, bool) {
	if len(series) == 0 {
		return "", false
	}

	minutesUntil := func(t time.Time) int {
		return int(math.Round(t.Sub(now).Seconds() / 60))
	}

	if series[0].Intensity > 0 {
		for _, s := range series {
			if s.Intensity == 0 {
				return fmt.Sprintf("Rain stopping in %d min", minutesUntil(s.Time)), true
			}
		}
		return "Rain continuing for the next hour", true
	}

	for _, s := range series {
		if s.Intensity > 0 {
			return fmt.Sprintf("Rain starting in %d min", minutesUntil(s.Time)), true
		}
	}
	return "No rain expected in the next hour", true
}

// NarrativeSeries picks the series the narrative should consume: the
// minute-resolution nowcast when the provider offers one, otherwise the
// leading hourly entries.
func (d *Data) NarrativeSeries() []PrecipitationSample {
	if len(d.Minutely) > 0 {
		return d.Minutely
	}

	n := len(d.Hourly)
	if n > narrativeHourlyFallback {
		n = narrativeHourlyFallback
	}
	out := make([]PrecipitationSample, 0, n)
	for _, h := range d.Hourly[:n] {
		out = append(out, PrecipitationSample{
			Time:        h.Time,
			Intensity:   h.Precipitation,
			Probability: h.PrecipitationProbability,
		})
	}
	return out
}
