package presentation

// AQIInfo is the display category of a US AQI reading.
type AQIInfo struct {
	Category   string `json:"category"`
	StyleClass string `json:"style_class"`
}

type aqiBand struct {
	upper float64
	info  AQIInfo
}

// Upper bounds are inclusive.
var aqiBands = []aqiBand{
	{50, AQIInfo{"Good", "aqi-good"}},
	{100, AQIInfo{"Moderate", "aqi-mod"}},
	{150, AQIInfo{"Unhealthy (Sensitive Groups)", "aqi-usg"}},
	{200, AQIInfo{"Unhealthy", "aqi-unh"}},
	{300, AQIInfo{"Very Unhealthy", "aqi-vunh"}},
}

var (
	aqiHazardous = AQIInfo{"Hazardous", "aqi-haz"}
	aqiUnknown   = AQIInfo{"Unknown", "aqi-unknown"}
)

// AQICategory bands a US AQI value. nil and NaN are Unknown.
func AQICategory(aqi *float64) AQIInfo {
	if !valid(aqi) {
		return aqiUnknown
	}
	for _, b := range aqiBands {
		if *aqi <= b.upper {
			return b.info
		}
	}
	return aqiHazardous
}
