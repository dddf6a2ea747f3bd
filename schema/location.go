package schema

// Location is the request location a parameter is read from.
type Location string

// Parameter locations.
const (
	LocationNone   Location = ""
	LocationPath   Location = "path"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
)

// Locations lists the parameter locations in display order.
var Locations = []Location{LocationPath, LocationQuery, LocationHeader, LocationCookie}

// ParseLocation converts an OpenAPI "in" value to a Location.
func ParseLocation(s string) (Location, bool) {
	for _, l := range Locations {
		if string(l) == s {
			return l, true
		}
	}
	return LocationNone, false
}

// String returns the location name.
func (l Location) String() string {
	return string(l)
}
