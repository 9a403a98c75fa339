// Package geocoding resolves place names and positions through the Open-Meteo
// geocoding API.
package geocoding

import (
	"context"
	"strconv"
	"strings"

	"github.com/shuv1824/skypanel/internal/services/upstream"
	"github.com/shuv1824/skypanel/internal/types"
)

type Client struct {
	api *upstream.Client
}

func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// Search returns the best match for a free-text place name. No match is not
// an error: it returns (nil, nil).
func (c *Client) Search(ctx context.Context, name string) (*types.GeocodingResult, error) {
	return c.first(ctx, map[string]string{
		"name":     name,
		"count":    "1",
		"language": "en",
		"format":   "json",
	})
}

// Reverse looks up a label for coordinates. Like Search it returns
// (nil, nil) when nothing is found.
func (c *Client) Reverse(ctx context.Context, coords types.Coordinates) (*types.GeocodingResult, error) {
	return c.first(ctx, map[string]string{
		"latitude":  formatCoord(coords.Latitude),
		"longitude": formatCoord(coords.Longitude),
		"count":     "1",
		"language":  "en",
	})
}

func (c *Client) first(ctx context.Context, params map[string]string) (*types.GeocodingResult, error) {
	var data types.GeocodingResponse
	if err := c.api.GetJSON(ctx, "/search", params, &data); err != nil {
		return nil, err
	}
	if len(data.Results) == 0 {
		return nil, nil
	}
	r := data.Results[0]
	return &r, nil
}

// Label renders "Name, Admin1, CC", skipping the region when it is unknown.
func Label(r types.GeocodingResult) string {
	var b strings.Builder
	b.WriteString(r.Name)
	if r.Admin1 != "" {
		b.WriteString(", ")
		b.WriteString(r.Admin1)
	}
	if r.CountryCode != "" {
		b.WriteString(", ")
		b.WriteString(r.CountryCode)
	}
	return b.String()
}

// ToLocation converts a geocoding match into a lookup location.
func ToLocation(r types.GeocodingResult) types.Location {
	return types.Location{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Label:     Label(r),
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
