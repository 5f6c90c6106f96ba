package geo

// Coordinates is an immutable latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Sentinel place IDs for entries that do not come from the geocoder.
const (
	DefaultPlaceID         = "default"
	CurrentLocationPlaceID = "current-location"
)

// Place is a resolved geographic location. Identity is ID; everything else
// is display data derived from the geocoder at resolution time.
type Place struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	DisplayName       string      `json:"displayName"`
	Coordinates       Coordinates `json:"coordinates"`
	IsCurrentLocation bool        `json:"isCurrentLocation"`
	Country           string      `json:"country,omitempty"`
	State             string      `json:"state,omitempty"`
	Timezone          string      `json:"timezone,omitempty"`
}
