package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/shuv1824/skypanel/internal/config"
	"github.com/shuv1824/skypanel/internal/handler"
	"github.com/shuv1824/skypanel/internal/services/geocoding"
	"github.com/shuv1824/skypanel/internal/services/lookup"
	"github.com/shuv1824/skypanel/internal/services/upstream"
	"github.com/shuv1824/skypanel/internal/services/weather"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	newUpstream := func(name, baseURL string) *upstream.Client {
		return upstream.New(name, upstream.Options{
			BaseURL:     baseURL,
			UserAgent:   cfg.Upstream.UserAgent,
			Timeout:     cfg.Upstream.Timeout,
			MaxFailures: cfg.Upstream.BreakerMaxFailures,
			OpenTimeout: cfg.Upstream.BreakerOpenTimeout,
			Logger:      logger,
		})
	}

	geocoder := geocoding.NewClient(newUpstream("geocoding", cfg.Upstream.GeocodingURL))
	weatherService := weather.NewWeatherService(
		newUpstream("forecast", cfg.Upstream.ForecastURL),
		newUpstream("air-quality", cfg.Upstream.AirQualityURL),
	)
	lookupService := lookup.NewService(geocoder, weatherService, lookup.Options{
		Timezone:           cfg.Lookup.Timezone,
		Locale:             cfg.Lookup.DefaultLocale,
		GeolocationTimeout: cfg.Lookup.GeolocationTimeout,
		Logger:             logger,
	})
	weatherHandler := handler.NewWeatherHandler(lookupService, cfg.Server.RequestTimeout)

	// Initialize router
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// API v1 subrouter
	api := r.PathPrefix("/api/v1").Subrouter()

	// Weather routes
	api.HandleFunc("/weather", weatherHandler.ByQuery).Methods(http.MethodGet)
	api.HandleFunc("/weather/position", weatherHandler.ByPosition).Methods(http.MethodGet)
	api.HandleFunc("/themes", handler.Themes).Methods(http.MethodGet)

	var h http.Handler = r

	// Recovery (catches panics)
	h = handlers.RecoveryHandler()(h)

	// CORS
	h = handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet}),
		handlers.ExposedHeaders([]string{"X-Lookup-ID", "X-Response-Time"}),
	)(h)

	// Logging
	h = handlers.LoggingHandler(os.Stdout, h)

	slog.Info("starting api server",
		"env", cfg.Environment,
		"geocoding", cfg.Upstream.GeocodingURL,
		"forecast", cfg.Upstream.ForecastURL,
		"air_quality", cfg.Upstream.AirQualityURL,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: h,
	}

	return startServer(server)
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}

	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func startServer(server *http.Server) error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case err := <-serverError:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		slog.Info("server stopped gracefully")
	}

	return nil
}
