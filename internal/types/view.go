package types

// ViewModel is everything the UI shell needs to draw one lookup result.
type ViewModel struct {
	LocationLabel string          `json:"location_label"`
	Theme         string          `json:"theme"`
	ThemeClass    string          `json:"theme_class"`
	Current       CurrentView     `json:"current"`
	ForecastCards []DailyCardView `json:"forecast_cards"`
	AQIPill       *AQIView        `json:"aqi_pill,omitempty"`
}

type CurrentView struct {
	Icon          string `json:"icon"`
	Text          string `json:"text"`
	Temperature   string `json:"temperature"`
	FeelsLike     string `json:"feels_like"`
	Humidity      string `json:"humidity"`
	WindSpeed     string `json:"wind_speed"`
	WindGust      string `json:"wind_gust"`
	WindDirection string `json:"wind_direction"`
	WindDegrees   string `json:"wind_degrees"`
	Pressure      string `json:"pressure"`
	CloudCover    string `json:"cloud_cover"`
	Visibility    string `json:"visibility"`
	Precipitation string `json:"precipitation"`
	UVIndex       string `json:"uv_index"`
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	ObservedAt    string `json:"observed_at"`
	Night         bool   `json:"night"`
}

type DailyCardView struct {
	Date                string  `json:"date"`
	DayName             string  `json:"day_name"`
	DateLabel           string  `json:"date_label"`
	Icon                string  `json:"icon"`
	Text                string  `json:"text"`
	Max                 string  `json:"max"`
	Min                 string  `json:"min"`
	PrecipitationChance *string `json:"precipitation_chance,omitempty"`
}

type AQIView struct {
	Value      string `json:"value"`
	Category   string `json:"category"`
	StyleClass string `json:"style_class"`
	PM25       string `json:"pm2_5"`
	Title      string `json:"title"`
}
