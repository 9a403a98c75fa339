package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuv1824/skypanel/internal/services/upstream"
	"github.com/shuv1824/skypanel/internal/types"
)

const forecastBody = `{
  "latitude": 23.81,
  "longitude": 90.41,
  "timezone": "Asia/Dhaka",
  "current": {
    "time": "2025-12-25T14:00",
    "temperature_2m": 24.6,
    "apparent_temperature": 25.1,
    "relative_humidity_2m": 61,
    "wind_speed_10m": 7.9,
    "wind_gusts_10m": null,
    "wind_direction_10m": 312,
    "pressure_msl": 1014.2,
    "cloud_cover": 12,
    "visibility": 24140,
    "precipitation": 0,
    "uv_index": 4.35,
    "weather_code": 1
  },
  "daily": {
    "time": ["2025-12-25", "2025-12-26"],
    "weather_code": [1, null],
    "temperature_2m_max": [26.2, 25.8],
    "temperature_2m_min": [15.1, 14.9],
    "precipitation_probability_max": [0, 10],
    "sunrise": ["2025-12-25T06:37", "2025-12-26T06:38"],
    "sunset": ["2025-12-25T17:17", "2025-12-26T17:18"]
  }
}`

const airQualityBody = `{
  "current": {
    "time": "2025-12-25T14:00",
    "us_aqi": 152,
    "pm2_5": 61.3,
    "pm10": 80.2,
    "ozone": 41,
    "nitrogen_dioxide": 12.5,
    "sulphur_dioxide": 8.1,
    "carbon_monoxide": 410
  }
}`

// mockTransport answers Open-Meteo requests by host and path.
type mockTransport struct {
	responses map[string]string
	status    map[string]int
	requests  []*http.Request
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req)

	key := req.URL.Path
	body := m.responses[key]
	status := http.StatusOK
	if s, ok := m.status[key]; ok {
		status = s
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

func newService(t *testing.T, mt *mockTransport) *WeatherService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	forecast := upstream.New("forecast", upstream.Options{
		BaseURL: "https://api.open-meteo.com/v1", Transport: mt, Logger: logger,
	})
	air := upstream.New("air-quality", upstream.Options{
		BaseURL: "https://air-quality-api.open-meteo.com/v1", Transport: mt, Logger: logger,
	})
	return NewWeatherService(forecast, air)
}

func TestForecast(t *testing.T) {
	mt := &mockTransport{responses: map[string]string{"/v1/forecast": forecastBody}}
	svc := newService(t, mt)

	got, err := svc.Forecast(context.Background(), types.Coordinates{Latitude: 23.8103, Longitude: 90.4125}, "")
	require.NoError(t, err)
	require.Len(t, mt.requests, 1)

	q := mt.requests[0].URL.Query()
	assert.Equal(t, "api.open-meteo.com", mt.requests[0].URL.Host)
	assert.Equal(t, "23.8103", q.Get("latitude"))
	assert.Equal(t, "90.4125", q.Get("longitude"))
	assert.Equal(t, "auto", q.Get("timezone"))
	assert.Contains(t, q.Get("current"), "weather_code")
	assert.Contains(t, q.Get("current"), "wind_gusts_10m")
	assert.Contains(t, q.Get("daily"), "precipitation_probability_max")
	assert.Contains(t, q.Get("daily"), "sunset")

	require.NotNil(t, got.Current)
	assert.Equal(t, "2025-12-25T14:00", got.Current.Time)
	require.NotNil(t, got.Current.Temperature)
	assert.InDelta(t, 24.6, *got.Current.Temperature, 1e-9)
	assert.Nil(t, got.Current.WindGust, "null decodes to nil")
	assert.Nil(t, got.Current.Rain, "absent decodes to nil")
	require.NotNil(t, got.Current.WeatherCode)
	assert.Equal(t, 1, *got.Current.WeatherCode)

	entries := got.Daily.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-12-26", entries[1].Date)
	assert.Nil(t, entries[1].WeatherCode)
	assert.Nil(t, entries[1].UVIndexMax)
	assert.Equal(t, "2025-12-26T06:38", entries[1].Sunrise)
}

func TestForecast_ExplicitTimezone(t *testing.T) {
	mt := &mockTransport{responses: map[string]string{"/v1/forecast": forecastBody}}
	svc := newService(t, mt)

	_, err := svc.Forecast(context.Background(), types.Coordinates{}, "Asia/Dhaka")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Dhaka", mt.requests[0].URL.Query().Get("timezone"))
}

func TestForecast_Failure(t *testing.T) {
	mt := &mockTransport{
		responses: map[string]string{"/v1/forecast": `{"error":true}`},
		status:    map[string]int{"/v1/forecast": http.StatusBadRequest},
	}
	svc := newService(t, mt)

	got, err := svc.Forecast(context.Background(), types.Coordinates{}, "")
	require.Error(t, err)
	assert.Nil(t, got)

	var se *upstream.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "forecast", se.Upstream)
}

func TestAirQuality(t *testing.T) {
	mt := &mockTransport{responses: map[string]string{"/v1/air-quality": airQualityBody}}
	svc := newService(t, mt)

	got, err := svc.AirQuality(context.Background(), types.Coordinates{Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "air-quality-api.open-meteo.com", mt.requests[0].URL.Host)
	assert.Contains(t, mt.requests[0].URL.Query().Get("current"), "us_aqi")
	require.NotNil(t, got.USAQI)
	assert.InDelta(t, 152, *got.USAQI, 1e-9)
	require.NotNil(t, got.CarbonMonoxide)
}

func TestAirQuality_NoCurrentBlock(t *testing.T) {
	mt := &mockTransport{responses: map[string]string{"/v1/air-quality": `{"latitude":1}`}}
	svc := newService(t, mt)

	got, err := svc.AirQuality(context.Background(), types.Coordinates{})
	require.NoError(t, err)
	assert.Nil(t, got)
}
