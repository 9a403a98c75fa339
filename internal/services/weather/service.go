package weather

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shuv1824/skypanel/internal/services/upstream"
	"github.com/shuv1824/skypanel/internal/types"
)

var (
	currentVariables = []string{
		"temperature_2m",
		"apparent_temperature",
		"relative_humidity_2m",
		"wind_speed_10m",
		"wind_gusts_10m",
		"wind_direction_10m",
		"pressure_msl",
		"cloud_cover",
		"visibility",
		"precipitation",
		"rain",
		"showers",
		"snowfall",
		"uv_index",
		"weather_code",
	}

	dailyVariables = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_probability_max",
		"precipitation_sum",
		"uv_index_max",
		"sunrise",
		"sunset",
		"wind_speed_10m_max",
		"wind_gusts_10m_max",
	}

	airQualityVariables = []string{
		"us_aqi",
		"pm2_5",
		"pm10",
		"ozone",
		"nitrogen_dioxide",
		"sulphur_dioxide",
		"carbon_monoxide",
	}
)

// WeatherService fetches conditions from the forecast and air quality APIs.
type WeatherService struct {
	forecast   *upstream.Client
	airQuality *upstream.Client
}

func NewWeatherService(forecast, airQuality *upstream.Client) *WeatherService {
	return &WeatherService{
		forecast:   forecast,
		airQuality: airQuality,
	}
}

// Forecast fetches current conditions and the daily forecast in one call.
// The number of forecast days is left to the API default.
func (s *WeatherService) Forecast(ctx context.Context, coords types.Coordinates, timezone string) (*types.ForecastResponse, error) {
	if timezone == "" {
		timezone = "auto"
	}

	params := coordParams(coords)
	params["current"] = strings.Join(currentVariables, ",")
	params["daily"] = strings.Join(dailyVariables, ",")
	params["timezone"] = timezone

	var data types.ForecastResponse
	if err := s.forecast.GetJSON(ctx, "/forecast", params, &data); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	return &data, nil
}

// AirQuality fetches current air quality. It returns (nil, nil) when the API
// answered without a current block.
func (s *WeatherService) AirQuality(ctx context.Context, coords types.Coordinates) (*types.AirQuality, error) {
	params := coordParams(coords)
	params["current"] = strings.Join(airQualityVariables, ",")

	var data types.AirQualityResponse
	if err := s.airQuality.GetJSON(ctx, "/air-quality", params, &data); err != nil {
		return nil, fmt.Errorf("fetching air quality: %w", err)
	}
	return data.Current, nil
}

func coordParams(c types.Coordinates) map[string]string {
	return map[string]string{
		"latitude":  strconv.FormatFloat(c.Latitude, 'f', 4, 64),
		"longitude": strconv.FormatFloat(c.Longitude, 'f', 4, 64),
	}
}
