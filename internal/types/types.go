package types

// Coordinates is a bare position fix, as reported by a device or typed in.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a resolved place: coordinates plus the label shown to the user.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}

func (l Location) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// GeocodingResult is a single match from the Open-Meteo geocoding API
type GeocodingResult struct {
	Name        string  `json:"name"`
	Admin1      string  `json:"admin1"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Timezone    string  `json:"timezone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// GeocodingResponse represents the geocoding API response. Results is
// omitted entirely by the API when nothing matched.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}
