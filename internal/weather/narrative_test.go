package weather

import (
	"testing"
	"time"
)

func minuteSamples(t0 time.Time, stepMinutes int, intensities []float64, probabilities []float64) []PrecipitationSample {
	out := make([]PrecipitationSample, len(intensities))
	for i := range intensities {
		out[i] = PrecipitationSample{
			Time:        t0.Add(time.Duration(i*stepMinutes) * time.Minute),
			Intensity:   intensities[i],
			Probability: probabilities[i],
		}
	}
	return out
}

func TestNarrativeRainStopping(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	series := minuteSamples(t0, 5,
		[]float64{5, 5, 5, 0, 0},
		[]float64{80, 80, 80, 20, 10},
	)

	got, ok := Narrative(series, t0)
	if !ok {
		t.Fatal("expected a narrative")
	}
	if got != "Rain stopping in 15 min" {
		t.Errorf("got %q, want %q", got, "Rain stopping in 15 min")
	}
}

func TestNarrativeRainContinuing(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	series := minuteSamples(t0, 5,
		[]float64{1, 2, 3, 2, 1},
		[]float64{90, 90, 90, 90, 90},
	)

	got, ok := Narrative(series, t0)
	if !ok || got != "Rain continuing for the next hour" {
		t.Errorf("got %q (ok=%v), want %q", got, ok, "Rain continuing for the next hour")
	}
}

func TestNarrativeRainStarting(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	series := minuteSamples(t0, 1,
		[]float64{0, 0, 0.4, 0.8},
		[]float64{5, 10, 60, 70},
	)

	got, ok := Narrative(series, t0)
	if !ok || got != "Rain starting in 2 min" {
		t.Errorf("got %q (ok=%v), want %q", got, ok, "Rain starting in 2 min")
	}
}

func TestNarrativeNoRainExpected(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	intensities := make([]float64, 60)
	probabilities := make([]float64, 60)
	series := minuteSamples(t0, 1, intensities, probabilities)

	got, ok := Narrative(series, t0)
	if !ok || got != "No rain expected in the next hour" {
		t.Errorf("got %q (ok=%v), want %q", got, ok, "No rain expected in the next hour")
	}
}

func TestNarrativeEmptySeries(t *testing.T) {
	if _, ok := Narrative(nil, time.Now()); ok {
		t.Error("nil series should produce no narrative")
	}
	if _, ok := Narrative([]PrecipitationSample{}, time.Now()); ok {
		t.Error("empty series should produce no narrative")
	}
}

// Minute arithmetic is literal rounding with no clamping: a sample at or
// before now still reports its raw rounded delta, including zero.
func TestNarrativePreservesLiteralMinuteArithmetic(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	series := []PrecipitationSample{
		{Time: t0.Add(-10 * time.Second), Intensity: 0},
		{Time: t0.Add(10 * time.Second), Intensity: 1},
	}

	got, ok := Narrative(series, t0)
	if !ok || got != "Rain starting in 0 min" {
		t.Errorf("got %q (ok=%v), want %q", got, ok, "Rain starting in 0 min")
	}
}

func TestNarrativeSeriesPrefersMinutely(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := Data{
		Minutely: minuteSamples(t0, 1, []float64{1}, []float64{50}),
		Hourly: []HourlyForecast{
			{Time: t0, Precipitation: 9, PrecipitationProbability: 99},
		},
	}

	series := d.NarrativeSeries()
	if len(series) != 1 || series[0].Intensity != 1 {
		t.Errorf("expected minutely series, got %+v", series)
	}
}

func TestNarrativeSeriesFallsBackToHourly(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := Data{}
	for i := 0; i < 10; i++ {
		d.Hourly = append(d.Hourly, HourlyForecast{
			Time:                     t0.Add(time.Duration(i) * time.Hour),
			Precipitation:            float64(i),
			PrecipitationProbability: float64(i * 10),
		})
	}

	series := d.NarrativeSeries()
	if len(series) != 6 {
		t.Fatalf("fallback series length = %d, want 6", len(series))
	}
	if series[3].Intensity != 3 || series[3].Probability != 30 {
		t.Errorf("fallback sample mismatch: %+v", series[3])
	}
}
