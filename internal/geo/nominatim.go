package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// GeocodeResult mirrors a single Nominatim search/reverse result. Field names
// follow the provider's JSON exactly; lat/lon arrive as strings.
type GeocodeResult struct {
	PlaceID     int64           `json:"place_id"`
	OSMType     string          `json:"osm_type"`
	OSMID       int64           `json:"osm_id"`
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Address     *GeocodeAddress `json:"address,omitempty"`
}

// GeocodeAddress is the structured address block Nominatim returns when
// addressdetails is requested.
type GeocodeAddress struct {
	City         string `json:"city,omitempty"`
	Town         string `json:"town,omitempty"`
	Village      string `json:"village,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	County       string `json:"county,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}

// PlaceFromGeocode converts a Nominatim result into a Place. The second
// return value is false for results the provider could not resolve (for
// example a reverse lookup over open ocean); that is a normal outcome,
// not an error.
func PlaceFromGeocode(r GeocodeResult) (Place, bool) {
	if r.Lat == "" || r.Lon == "" {
		return Place{}, false
	}

	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return Place{}, false
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return Place{}, false
	}

	p := Place{
		// The osm_type/osm_id pair is the provider's stable feature
		// identity; display text can change between releases.
		ID:          fmt.Sprintf("%s-%d", r.OSMType, r.OSMID),
		Name:        localityName(r),
		DisplayName: displayName(r),
		Coordinates: Coordinates{Latitude: lat, Longitude: lon},
	}
	if r.Address != nil {
		p.Country = r.Address.Country
		p.State = r.Address.State
	}
	return p, true
}

// localityName picks the best available locality label: city > town >
// village > municipality > the provider's generic name > the first segment
// of the raw display string.
func localityName(r GeocodeResult) string {
	if a := r.Address; a != nil {
		for _, candidate := range []string{a.City, a.Town, a.Village, a.Municipality} {
			if candidate != "" {
				return candidate
			}
		}
	}
	if r.Name != "" {
		return r.Name
	}
	if idx := strings.Index(r.DisplayName, ","); idx >= 0 {
		return r.DisplayName[:idx]
	}
	return r.DisplayName
}

func displayName(r GeocodeResult) string {
	if r.Address == nil {
		return r.DisplayName
	}

	name := localityName(r)
	parts := []string{name}
	if r.Address.State != "" && r.Address.State != name {
		parts = append(parts, r.Address.State)
	}
	if r.Address.Country != "" {
		parts = append(parts, r.Address.Country)
	}
	return strings.Join(parts, ", ")
}
