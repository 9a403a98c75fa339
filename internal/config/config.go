// Package config loads process configuration from the environment.
//
// Values come from the OS environment, optionally seeded by a .env file in the
// working directory. Existing environment variables always win over .env.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development" validate:"oneof=development production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server   ServerConfig
	Upstream UpstreamConfig
	Lookup   LookupConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s" validate:"gt=0"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*" validate:"min=1"`
}

// UpstreamConfig points at the Open-Meteo APIs. None of them need a key.
type UpstreamConfig struct {
	GeocodingURL  string        `envconfig:"GEOCODING_URL" default:"https://geocoding-api.open-meteo.com/v1" validate:"required,url"`
	ForecastURL   string        `envconfig:"FORECAST_URL" default:"https://api.open-meteo.com/v1" validate:"required,url"`
	AirQualityURL string        `envconfig:"AIR_QUALITY_URL" default:"https://air-quality-api.open-meteo.com/v1" validate:"required,url"`
	Timeout       time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s" validate:"gt=0"`
	UserAgent     string        `envconfig:"UPSTREAM_USER_AGENT" default:"skypanel/1.0"`

	BreakerMaxFailures uint32        `envconfig:"BREAKER_MAX_FAILURES" default:"5" validate:"min=1"`
	BreakerOpenTimeout time.Duration `envconfig:"BREAKER_OPEN_TIMEOUT" default:"30s" validate:"gt=0"`
}

type LookupConfig struct {
	// Timezone is passed to the forecast API; "auto" resolves it from the
	// coordinates.
	Timezone           string        `envconfig:"FORECAST_TIMEZONE" default:"auto" validate:"required"`
	DefaultLocale      string        `envconfig:"DEFAULT_LOCALE" default:"en"`
	GeolocationTimeout time.Duration `envconfig:"GEOLOCATION_TIMEOUT" default:"10s" validate:"gt=0"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ConfigError wraps a load or validation failure.
type ConfigError struct {
	Stage string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Stage, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads .env (if present), processes the environment and validates the
// result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, &ConfigError{Stage: "dotenv", Err: err}
	}
	return FromEnv()
}

// FromEnv is Load without the .env step.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{Stage: "env", Err: err}
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, &ConfigError{Stage: "validate", Err: describe(err)}
	}
	return &cfg, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
