package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://geocoding-api.open-meteo.com/v1", cfg.Upstream.GeocodingURL)
	assert.Equal(t, "https://api.open-meteo.com/v1", cfg.Upstream.ForecastURL)
	assert.Equal(t, "https://air-quality-api.open-meteo.com/v1", cfg.Upstream.AirQualityURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, uint32(5), cfg.Upstream.BreakerMaxFailures)
	assert.Equal(t, "auto", cfg.Lookup.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Lookup.GeolocationTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("FORECAST_TIMEZONE", "Europe/Berlin")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "Europe/Berlin", cfg.Lookup.Timezone)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		stage string
	}{
		{"unknown environment", "APP_ENV", "staging", "validate"},
		{"bad url", "FORECAST_URL", "not a url", "validate"},
		{"bad port", "PORT", "http", "validate"},
		{"unparseable duration", "UPSTREAM_TIMEOUT", "soon", "env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.stage, cerr.Stage)
		})
	}
}
