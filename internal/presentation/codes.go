// Package presentation turns raw weather values into display tokens: icons,
// condition text, theme tags, compass points, AQI categories and formatted
// numbers. Everything here is pure and safe to call with missing values.
package presentation

import (
	"maps"
	"slices"
)

// Placeholder is rendered wherever a value is missing or not a number.
const Placeholder = "—"

const (
	unknownIcon = "❓"
	unknownText = "Unknown"
)

type iconText struct {
	icon string
	text string
}

// WMO weather interpretation codes (https://open-meteo.com/en/docs)
var wmoCodes = map[int]iconText{
	0:  {"☀️", "Clear"},
	1:  {"🌤️", "Mainly clear"},
	2:  {"⛅", "Partly cloudy"},
	3:  {"☁️", "Overcast"},
	45: {"🌫️", "Fog"},
	48: {"🌫️", "Depositing rime fog"},
	51: {"🌦️", "Light drizzle"},
	53: {"🌦️", "Moderate drizzle"},
	55: {"🌧️", "Dense drizzle"},
	56: {"🌧️", "Light freezing drizzle"},
	57: {"🌧️", "Dense freezing drizzle"},
	61: {"🌦️", "Slight rain"},
	63: {"🌧️", "Moderate rain"},
	65: {"🌧️", "Heavy rain"},
	66: {"🌧️", "Light freezing rain"},
	67: {"🌧️", "Heavy freezing rain"},
	71: {"🌨️", "Slight snow"},
	73: {"🌨️", "Moderate snow"},
	75: {"❄️", "Heavy snow"},
	77: {"🌨️", "Snow grains"},
	80: {"🌦️", "Rain showers"},
	81: {"🌧️", "Heavy rain showers"},
	82: {"⛈️", "Violent rain showers"},
	85: {"🌨️", "Snow showers"},
	86: {"❄️", "Heavy snow showers"},
	95: {"⛈️", "Thunderstorm"},
	96: {"⛈️", "Thunderstorm with hail"},
	99: {"⛈️", "Thunderstorm with heavy hail"},
}

// CodeToIconText returns the icon and condition text for a WMO code.
// A nil or unmapped code yields the Unknown pair.
func CodeToIconText(code *int) (icon, text string) {
	if code == nil {
		return unknownIcon, unknownText
	}
	return IconText(*code)
}

// IconText is CodeToIconText for a known-present code.
func IconText(code int) (icon, text string) {
	if it, ok := wmoCodes[code]; ok {
		return it.icon, it.text
	}
	return unknownIcon, unknownText
}

// KnownCodes returns the WMO codes that have a dedicated icon, ascending.
func KnownCodes() []int {
	return slices.Sorted(maps.Keys(wmoCodes))
}
