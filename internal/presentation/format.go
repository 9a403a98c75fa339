package presentation

import (
	"math"
	"strconv"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func valid(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// ToCompass converts a wind direction in degrees to one of 16 compass points.
func ToCompass(deg *float64) string {
	if !valid(deg) {
		return Placeholder
	}
	d := math.Mod(*deg, 360)
	if d < 0 {
		d += 360
	}
	i := int(roundHalfUp(d/22.5)) % len(compassPoints)
	return compassPoints[i]
}

// FormatNumber renders v with a fixed number of decimals and appends unit
// verbatim, so units that need a separating space carry it themselves
// (" km/h" vs "%").
func FormatNumber(v *float64, unit string, digits int) string {
	if !valid(v) {
		return Placeholder
	}
	return FormatValue(*v, unit, digits)
}

// FormatValue is FormatNumber for a plain float. Halves round away from
// zero at the last kept digit, so 12.5 renders as "13" and -0.25 as "-0.3".
func FormatValue(v float64, unit string, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if digits < 0 {
		digits = 0
	}
	scale := math.Pow10(digits)
	r := roundHalfUp(math.Abs(v)*scale) / scale
	if v < 0 && r != 0 {
		r = -r
	}
	return strconv.FormatFloat(r, 'f', digits, 64) + unit
}

// Round renders v rounded to the nearest integer, halves rounding up.
func Round(v *float64, unit string) string {
	if !valid(v) {
		return Placeholder
	}
	return strconv.FormatFloat(roundHalfUp(*v), 'f', 0, 64) + unit
}

// Scale divides v by div, keeping nil as nil. Used for metre to km.
func Scale(v *float64, div float64) *float64 {
	if v == nil || div == 0 {
		return nil
	}
	s := *v / div
	return &s
}

func roundHalfUp(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0 // no "-0"
	}
	return r
}
