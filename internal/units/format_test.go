package units

import (
	"testing"
	"time"
)

func metricFormatter() Formatter {
	return NewFormatter(Preferences{
		Temperature:   Celsius,
		WindSpeed:     KilometersPerHour,
		Pressure:      Hectopascals,
		Visibility:    Kilometers,
		Precipitation: Millimeters,
		TimeFormat:    Clock24h,
	})
}

func TestTemperatureFormatting(t *testing.T) {
	f := metricFormatter()
	if got := f.Temperature(21.4, true); got != "21°" {
		t.Errorf("got %q, want 21°", got)
	}
	if got := f.Temperature(21.5, false); got != "22" {
		t.Errorf("got %q, want 22", got)
	}

	imperial := NewFormatter(DefaultPreferences())
	if got := imperial.Temperature(0, true); got != "32°" {
		t.Errorf("got %q, want 32°", got)
	}
}

func TestWindFormatting(t *testing.T) {
	f := metricFormatter()
	if got := f.Wind(15.4, true); got != "15 km/h" {
		t.Errorf("got %q, want 15 km/h", got)
	}
	if got := f.Wind(15.4, false); got != "15" {
		t.Errorf("got %q, want 15", got)
	}

	mph := NewFormatter(Preferences{WindSpeed: MilesPerHour})
	if got := mph.Wind(100, true); got != "62 mph" {
		t.Errorf("got %q, want 62 mph", got)
	}
}

func TestPressureFormatting(t *testing.T) {
	f := metricFormatter()
	if got := f.Pressure(1013.6, true); got != "1014 hPa" {
		t.Errorf("got %q, want 1014 hPa", got)
	}

	inhg := NewFormatter(Preferences{Pressure: InchesOfMercury})
	if got := inhg.Pressure(1000, true); got != "29.53 inHg" {
		t.Errorf("got %q, want 29.53 inHg", got)
	}
	if got := inhg.Pressure(1000, false); got != "29.53" {
		t.Errorf("got %q, want 29.53", got)
	}
}

func TestVisibilityFormatting(t *testing.T) {
	f := metricFormatter()
	if got := f.Visibility(9.87, true); got != "9.9 km" {
		t.Errorf("got %q, want 9.9 km", got)
	}
}

func TestPrecipitationFormatting(t *testing.T) {
	f := metricFormatter()
	if got := f.Precipitation(2.55, true); got != "2.5 mm" {
		t.Errorf("got %q, want 2.5 mm", got)
	}
	// Exactly zero renders without a decimal point.
	if got := f.Precipitation(0, true); got != "0 mm" {
		t.Errorf("got %q, want 0 mm", got)
	}
	if got := f.Precipitation(0, false); got != "0" {
		t.Errorf("got %q, want 0", got)
	}

	inches := NewFormatter(Preferences{Precipitation: Inches})
	if got := inches.Precipitation(25.4, true); got != "1.00 in" {
		t.Errorf("got %q, want 1.00 in", got)
	}
}

func TestCompass(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{22, "N"},
		{23, "NE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{350, "N"},
		{360, "N"},
	}
	for _, tc := range cases {
		if got := Compass(tc.degrees); got != tc.want {
			t.Errorf("Compass(%v) = %q, want %q", tc.degrees, got, tc.want)
		}
	}
}

func TestClockFormatting(t *testing.T) {
	afternoon := time.Date(2026, 3, 1, 14, 5, 0, 0, time.UTC)

	h24 := metricFormatter()
	if got := h24.Time(afternoon); got != "14:05" {
		t.Errorf("got %q, want 14:05", got)
	}
	if got := h24.Hour(afternoon); got != "14:00" {
		t.Errorf("got %q, want 14:00", got)
	}

	h12 := NewFormatter(Preferences{TimeFormat: Clock12h})
	if got := h12.Time(afternoon); got != "2:05 PM" {
		t.Errorf("got %q, want 2:05 PM", got)
	}
	if got := h12.Hour(afternoon); got != "2PM" {
		t.Errorf("got %q, want 2PM", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now, "now"},
		{now.Add(5 * time.Minute), "in 5 min"},
		{now.Add(90 * time.Minute), "in 2h"},
		{now.Add(30 * time.Hour), "in 1d"},
		{now.Add(-5 * time.Minute), "5 min ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tc := range cases {
		if got := RelativeTime(tc.t, now); got != tc.want {
			t.Errorf("RelativeTime(%v) = %q, want %q", tc.t.Sub(now), got, tc.want)
		}
	}
}

func TestPercentageAndDayFormatting(t *testing.T) {
	if got := Percentage(54.5); got != "55%" {
		t.Errorf("got %q, want 55%%", got)
	}

	// 2026-03-01 is a Sunday.
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := DayShort(d); got != "Sun" {
		t.Errorf("got %q, want Sun", got)
	}
	if got := DayFull(d); got != "Sunday" {
		t.Errorf("got %q, want Sunday", got)
	}
	if got := DateShort(d); got != "Mar 1" {
		t.Errorf("got %q, want Mar 1", got)
	}
}

func TestUVIndexLevel(t *testing.T) {
	cases := []struct {
		index float64
		want  string
	}{
		{0, "Low"},
		{2.9, "Low"},
		{3, "Moderate"},
		{5.9, "Moderate"},
		{6, "High"},
		{8, "Very High"},
		{11, "Extreme"},
	}
	for _, tc := range cases {
		if got := UVIndexLevel(tc.index); got != tc.want {
			t.Errorf("UVIndexLevel(%v) = %q, want %q", tc.index, got, tc.want)
		}
	}
}
