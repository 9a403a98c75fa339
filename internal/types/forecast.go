package types

// CurrentConditions is the "current" block of the forecast API response.
// Every field may be missing or null upstream.
type CurrentConditions struct {
	Time                string   `json:"time"`
	Temperature         *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	Humidity            *float64 `json:"relative_humidity_2m"`
	WindSpeed           *float64 `json:"wind_speed_10m"`
	WindGust            *float64 `json:"wind_gusts_10m"`
	WindDirection       *float64 `json:"wind_direction_10m"`
	Pressure            *float64 `json:"pressure_msl"`
	CloudCover          *float64 `json:"cloud_cover"`
	Visibility          *float64 `json:"visibility"` // metres
	Precipitation       *float64 `json:"precipitation"`
	Rain                *float64 `json:"rain"`
	Showers             *float64 `json:"showers"`
	Snowfall            *float64 `json:"snowfall"`
	UVIndex             *float64 `json:"uv_index"`
	WeatherCode         *int     `json:"weather_code"`
}

// DailyForecast is the "daily" block: parallel arrays indexed by day offset.
type DailyForecast struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []*int     `json:"weather_code"`
	TemperatureMax              []*float64 `json:"temperature_2m_max"`
	TemperatureMin              []*float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	UVIndexMax                  []*float64 `json:"uv_index_max"`
	Sunrise                     []string   `json:"sunrise"`
	Sunset                      []string   `json:"sunset"`
	WindSpeedMax                []*float64 `json:"wind_speed_10m_max"`
	WindGustsMax                []*float64 `json:"wind_gusts_10m_max"`
}

// DailyForecastEntry is one day of the forecast after the parallel arrays
// have been zipped together.
type DailyForecastEntry struct {
	Date                     string
	WeatherCode              *int
	TempMax                  *float64
	TempMin                  *float64
	PrecipitationProbability *float64
	PrecipitationSum         *float64
	UVIndexMax               *float64
	WindSpeedMax             *float64
	Sunrise                  string
	Sunset                   string
}

// Entries zips the parallel arrays into one entry per day, in source order.
// Arrays shorter than Time leave the missing values nil.
func (d DailyForecast) Entries() []DailyForecastEntry {
	entries := make([]DailyForecastEntry, len(d.Time))
	for i, date := range d.Time {
		entries[i] = DailyForecastEntry{
			Date:                     date,
			WeatherCode:              intAt(d.WeatherCode, i),
			TempMax:                  floatAt(d.TemperatureMax, i),
			TempMin:                  floatAt(d.TemperatureMin, i),
			PrecipitationProbability: floatAt(d.PrecipitationProbabilityMax, i),
			PrecipitationSum:         floatAt(d.PrecipitationSum, i),
			UVIndexMax:               floatAt(d.UVIndexMax, i),
			WindSpeedMax:             floatAt(d.WindSpeedMax, i),
			Sunrise:                  stringAt(d.Sunrise, i),
			Sunset:                   stringAt(d.Sunset, i),
		}
	}
	return entries
}

// ForecastResponse represents the forecast API response
type ForecastResponse struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Timezone  string             `json:"timezone"`
	Current   *CurrentConditions `json:"current"`
	Daily     DailyForecast      `json:"daily"`
}

// AirQuality is the "current" block of the air quality API response.
type AirQuality struct {
	Time            string   `json:"time"`
	USAQI           *float64 `json:"us_aqi"`
	PM25            *float64 `json:"pm2_5"`
	PM10            *float64 `json:"pm10"`
	Ozone           *float64 `json:"ozone"`
	NitrogenDioxide *float64 `json:"nitrogen_dioxide"`
	SulphurDioxide  *float64 `json:"sulphur_dioxide"`
	CarbonMonoxide  *float64 `json:"carbon_monoxide"`
}

// AirQualityResponse represents the air quality API response
type AirQualityResponse struct {
	Current *AirQuality `json:"current"`
}

func floatAt(s []*float64, i int) *float64 {
	if i < len(s) {
		return s[i]
	}
	return nil
}

func intAt(s []*int, i int) *int {
	if i < len(s) {
		return s[i]
	}
	return nil
}

func stringAt(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
