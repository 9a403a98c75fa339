package presentation

import (
	"slices"
	"strings"
	"time"
)

// Theme is the single tag the UI shell uses to pick its global skin.
type Theme string

const (
	ThemeSunny       Theme = "sunny"
	ThemePartly      Theme = "partly"
	ThemeCloudy      Theme = "cloudy"
	ThemeRain        Theme = "rain"
	ThemeSnow        Theme = "snow"
	ThemeThunder     Theme = "thunder"
	ThemeFog         Theme = "fog"
	ThemeClearNight  Theme = "clear-night"
	ThemePartlyNight Theme = "partly-night"
)

// Class is the CSS class the shell puts on the page body.
func (t Theme) Class() string {
	return "theme-" + string(t)
}

// Themes lists every tag ThemeFromCode can return, so a shell can clear
// them all before applying a new one.
func Themes() []Theme {
	return []Theme{
		ThemeSunny, ThemePartly, ThemeCloudy, ThemeRain, ThemeSnow,
		ThemeThunder, ThemeFog, ThemeClearNight, ThemePartlyNight,
	}
}

var (
	fogCodes     = []int{45, 48}
	rainCodes    = []int{61, 63, 65, 66, 67, 80, 81, 82}
	snowCodes    = []int{71, 73, 75, 77, 85, 86}
	thunderCodes = []int{95, 96, 99}
)

// ThemeFromCode picks the theme for a WMO code. Night only changes the
// result for codes 0, 1 and 2. Codes outside every group, drizzle included,
// fall back to partly.
func ThemeFromCode(code *int, night bool) Theme {
	if code == nil {
		return ThemePartly
	}
	c := *code

	if night {
		switch c {
		case 0:
			return ThemeClearNight
		case 1, 2:
			return ThemePartlyNight
		}
	}

	switch {
	case c == 0:
		return ThemeSunny
	case c == 1 || c == 2:
		return ThemePartly
	case c == 3:
		return ThemeCloudy
	case slices.Contains(fogCodes, c):
		return ThemeFog
	case slices.Contains(rainCodes, c):
		return ThemeRain
	case slices.Contains(snowCodes, c):
		return ThemeSnow
	case slices.Contains(thunderCodes, c):
		return ThemeThunder
	}
	return ThemePartly
}

// Layouts the forecast API uses for local timestamps, most common first.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseLocal(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsNight reports whether a local timestamp falls before 06:00 or from 20:00
// on. Missing or unreadable timestamps count as day.
func IsNight(localISO string) bool {
	t, ok := parseLocal(localISO)
	if !ok {
		return false
	}
	hour := t.Hour()
	return hour < 6 || hour >= 20
}
