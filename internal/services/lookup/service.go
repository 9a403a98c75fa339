// Package lookup runs one weather lookup from user input to view model.
//
// A lookup moves Idle → Resolving → Fetching → Rendered, or ends in Failed
// at the first required step that goes wrong. Lookups share no state: two
// lookups started back to back race, and the shell shows whichever finishes
// last.
package lookup

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shuv1824/skypanel/internal/presentation"
	"github.com/shuv1824/skypanel/internal/services/geocoding"
	"github.com/shuv1824/skypanel/internal/types"
	"github.com/shuv1824/skypanel/internal/view"
)

// DefaultPositionLabel is shown when a position cannot be named.
const DefaultPositionLabel = "Your location"

type Geocoder interface {
	Search(ctx context.Context, name string) (*types.GeocodingResult, error)
	Reverse(ctx context.Context, coords types.Coordinates) (*types.GeocodingResult, error)
}

type Forecaster interface {
	Forecast(ctx context.Context, coords types.Coordinates, timezone string) (*types.ForecastResponse, error)
	AirQuality(ctx context.Context, coords types.Coordinates) (*types.AirQuality, error)
}

type Options struct {
	Timezone           string        // default forecast timezone, "auto" if empty
	Locale             string        // default locale for day and date names
	GeolocationTimeout time.Duration // bound on reading a position, 10s if zero
	Logger             *slog.Logger
}

// Preferences are per-lookup overrides of Options. Zero values fall back.
type Preferences struct {
	Timezone string
	Locale   string
}

type Service struct {
	geocoder   Geocoder
	forecaster Forecaster
	opts       Options
	logger     *slog.Logger
}

func NewService(geocoder Geocoder, forecaster Forecaster, opts Options) *Service {
	if opts.Timezone == "" {
		opts.Timezone = "auto"
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	if opts.GeolocationTimeout <= 0 {
		opts.GeolocationTimeout = 10 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		geocoder:   geocoder,
		forecaster: forecaster,
		opts:       opts,
		logger:     logger,
	}
}

// Outcome is the result of one lookup. View is set only when State is
// Rendered; Err and Status only when it is Failed.
type Outcome struct {
	ID          string
	State       State
	Location    *types.Location
	View        *types.ViewModel
	Status      string
	Err         error
	Transitions []State
}

func newOutcome() *Outcome {
	return &Outcome{
		ID:          uuid.NewString(),
		State:       Idle,
		Transitions: []State{Idle},
	}
}

func (o *Outcome) to(s State) {
	o.State = s
	o.Transitions = append(o.Transitions, s)
}

func (o *Outcome) fail(err *Error) *Outcome {
	o.Err = err
	o.Status = StatusMessage(err)
	o.to(Failed)
	return o
}

// ByQuery looks up the weather for a free-text place name.
func (s *Service) ByQuery(ctx context.Context, query string, prefs Preferences) *Outcome {
	out := newOutcome()
	logger := s.logger.With("lookup_id", out.ID)

	out.to(Resolving)
	query = strings.TrimSpace(query)
	if query == "" {
		return out.fail(fail(ErrInputEmpty, msgInputEmpty, nil))
	}

	match, err := s.geocoder.Search(ctx, query)
	if err != nil {
		logger.Warn("geocoding failed", "query", query, "error", err)
		return out.fail(fail(ErrRequiredFetchFailed, msgGeocodingFailed, err))
	}
	if match == nil {
		logger.Info("no geocoding match", "query", query)
		return out.fail(fail(ErrLocationNotFound, msgCityNotFound, nil))
	}

	loc := geocoding.ToLocation(*match)
	return s.render(ctx, out, logger, loc, false, prefs)
}

// ByPosition looks up the weather for the device's current position. The
// label comes from a best-effort reverse lookup run alongside the fetches.
func (s *Service) ByPosition(ctx context.Context, src PositionSource, prefs Preferences) *Outcome {
	out := newOutcome()
	logger := s.logger.With("lookup_id", out.ID)

	out.to(Resolving)
	coords, err := s.readPosition(ctx, src)
	if err != nil {
		logger.Info("position unavailable", "error", err)
		return out.fail(err)
	}

	loc := types.Location{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Label:     DefaultPositionLabel,
	}
	return s.render(ctx, out, logger, loc, true, prefs)
}

func (s *Service) readPosition(ctx context.Context, src PositionSource) (types.Coordinates, *Error) {
	if src == nil {
		return types.Coordinates{}, fail(ErrGeolocationUnavailable, "Geolocation not supported", nil)
	}

	pctx, cancel := context.WithTimeout(ctx, s.opts.GeolocationTimeout)
	defer cancel()

	coords, err := src.Position(pctx, PositionRequest{
		HighAccuracy: true,
		Timeout:      s.opts.GeolocationTimeout,
		MaximumAge:   0,
	})
	if err != nil {
		return types.Coordinates{}, fail(ErrGeolocationUnavailable, positionMessage(err), err)
	}
	return coords, nil
}

func (s *Service) render(ctx context.Context, out *Outcome, logger *slog.Logger, loc types.Location, reverse bool, prefs Preferences) *Outcome {
	out.to(Fetching)

	timezone := firstNonEmpty(prefs.Timezone, s.opts.Timezone)
	coords := loc.Coordinates()

	var (
		wx   *types.ForecastResponse
		air  *types.AirQuality
		name *types.GeocodingResult
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		wx, err = s.forecaster.Forecast(gctx, coords, timezone)
		return err
	})

	// Air quality is optional: a failure only means no AQI pill.
	g.Go(func() error {
		a, err := s.forecaster.AirQuality(gctx, coords)
		if err != nil {
			logger.Debug("air quality unavailable", "error", err)
			return nil
		}
		air = a
		return nil
	})

	if reverse {
		g.Go(func() error {
			r, err := s.geocoder.Reverse(gctx, coords)
			if err != nil {
				logger.Debug("reverse geocoding failed", "error", err)
				return nil
			}
			name = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Warn("weather fetch failed", "lat", coords.Latitude, "lon", coords.Longitude, "error", err)
		return out.fail(fail(ErrRequiredFetchFailed, msgWeatherFailed, err))
	}

	if name != nil {
		loc.Label = geocoding.Label(*name)
	}

	vm := s.assembler(prefs.Locale).Build(loc, wx, air)
	out.Location = &loc
	out.View = &vm
	out.to(Rendered)

	logger.Info("lookup rendered",
		"label", loc.Label,
		"theme", vm.Theme,
		"days", len(vm.ForecastCards),
		"air_quality", air != nil,
	)
	return out
}

func (s *Service) assembler(locale string) *view.Assembler {
	return view.NewAssembler(presentation.NewDateFormatter(firstNonEmpty(locale, s.opts.Locale)))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
