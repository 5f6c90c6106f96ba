package weather

import "time"

// ForecastResponse mirrors the forecast provider's JSON. The current block
// carries single values; the hourly and daily blocks are parallel arrays
// aligned by index. Field names match the provider's snake_case keys.
type ForecastResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Current   *CurrentBlock   `json:"current,omitempty"`
	Hourly    *HourlyBlock    `json:"hourly,omitempty"`
	Daily     *DailyBlock     `json:"daily,omitempty"`
	Minutely  *MinutelyBlock  `json:"minutely_15,omitempty"`
}

// CurrentBlock is the provider's point-in-time observation block.
type CurrentBlock struct {
	Time               string  `json:"time"`
	Temperature2m      float64 `json:"temperature_2m"`
	RelativeHumidity2m float64 `json:"relative_humidity_2m"`
	ApparentTemp       float64 `json:"apparent_temperature"`
	IsDay              int     `json:"is_day"`
	Precipitation      float64 `json:"precipitation"`
	WeatherCode        int     `json:"weather_code"`
	CloudCover         float64 `json:"cloud_cover"`
	PressureMsl        float64 `json:"pressure_msl"`
	WindSpeed10m       float64 `json:"wind_speed_10m"`
	WindDirection10m   float64 `json:"wind_direction_10m"`
	WindGusts10m       float64 `json:"wind_gusts_10m"`
}

// HourlyBlock holds one array per field, all aligned by index with Time.
// Times are ISO-8601 without a timezone suffix, in the payload's timezone.
type HourlyBlock struct {
	Time                     []string  `json:"time"`
	Temperature2m            []float64 `json:"temperature_2m"`
	RelativeHumidity2m       []float64 `json:"relative_humidity_2m"`
	DewPoint2m               []float64 `json:"dew_point_2m"`
	ApparentTemp             []float64 `json:"apparent_temperature"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	Precipitation            []float64 `json:"precipitation"`
	WeatherCode              []int     `json:"weather_code"`
	CloudCover               []float64 `json:"cloud_cover"`
	Visibility               []float64 `json:"visibility"`
	WindSpeed10m             []float64 `json:"wind_speed_10m"`
	WindDirection10m         []float64 `json:"wind_direction_10m"`
	UVIndex                  []float64 `json:"uv_index"`
	IsDay                    []int     `json:"is_day"`
}

// DailyBlock holds one array per field, aligned by index with Time. Time
// entries are date-only strings; sunrise/sunset carry a wall-clock time.
type DailyBlock struct {
	Time                        []string  `json:"time"`
	WeatherCode                 []int     `json:"weather_code"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	Sunrise                     []string  `json:"sunrise"`
	Sunset                      []string  `json:"sunset"`
	UVIndexMax                  []float64 `json:"uv_index_max"`
	PrecipitationSum            []float64 `json:"precipitation_sum"`
	PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
	WindDirection10mDominant    []float64 `json:"wind_direction_10m_dominant"`
}

// MinutelyBlock is the provider's optional 15-minute nowcast series.
type MinutelyBlock struct {
	Time                     []string  `json:"time"`
	Precipitation            []float64 `json:"precipitation"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
}

// Location returns the timezone the payload's wall-clock times are
// expressed in, falling back to UTC when the name cannot be resolved.
func (r *ForecastResponse) Location() *time.Location {
	if r.Timezone != "" {
		if loc, err := time.LoadLocation(r.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}
