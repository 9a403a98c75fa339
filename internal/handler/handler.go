package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shuv1824/skypanel/internal/presentation"
	"github.com/shuv1824/skypanel/internal/response"
	"github.com/shuv1824/skypanel/internal/services/lookup"
	"github.com/shuv1824/skypanel/internal/types"
)

type WeatherHandler struct {
	lookups  *lookup.Service
	timeout  time.Duration
	validate *validator.Validate
}

func NewWeatherHandler(lookups *lookup.Service, timeout time.Duration) *WeatherHandler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &WeatherHandler{
		lookups:  lookups,
		timeout:  timeout,
		validate: validator.New(),
	}
}

// positionQuery is the fix the browser read from its geolocation API.
type positionQuery struct {
	Lat string `validate:"required,latitude"`
	Lon string `validate:"required,longitude"`
}

// Health returns a simple health check response
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

type themeInfo struct {
	Tag   string `json:"tag"`
	Class string `json:"class"`
}

// Themes lists every theme tag so the shell can clear all of them before
// applying a new one.
func Themes(w http.ResponseWriter, r *http.Request) {
	themes := presentation.Themes()
	out := make([]themeInfo, 0, len(themes))
	for _, t := range themes {
		out = append(out, themeInfo{Tag: string(t), Class: t.Class()})
	}
	response.JSON(w, http.StatusOK, out)
}

// ByQuery looks up the weather for ?q=<city>.
func (h *WeatherHandler) ByQuery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	out := h.lookups.ByQuery(ctx, r.URL.Query().Get("q"), preferences(r))
	h.write(ctx, w, start, out)
}

// ByPosition looks up the weather for ?lat=&lon=. A browser that could not
// get a fix sends ?error=<reason> instead.
func (h *WeatherHandler) ByPosition(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	out := h.lookups.ByPosition(ctx, h.positionSource(r), preferences(r))
	h.write(ctx, w, start, out)
}

func (h *WeatherHandler) positionSource(r *http.Request) lookup.PositionSource {
	q := r.URL.Query()
	if reason := strings.TrimSpace(q.Get("error")); reason != "" {
		return lookup.UnavailablePosition(reason)
	}

	pq := positionQuery{Lat: q.Get("lat"), Lon: q.Get("lon")}
	if pq.Lat == "" && pq.Lon == "" {
		return nil
	}
	if err := h.validate.Struct(pq); err != nil {
		return lookup.UnavailablePosition("Invalid position")
	}

	lat, err := strconv.ParseFloat(pq.Lat, 64)
	if err != nil {
		return lookup.UnavailablePosition("Invalid position")
	}
	lon, err := strconv.ParseFloat(pq.Lon, 64)
	if err != nil {
		return lookup.UnavailablePosition("Invalid position")
	}
	return lookup.StaticPosition(types.Coordinates{Latitude: lat, Longitude: lon})
}

func (h *WeatherHandler) write(ctx context.Context, w http.ResponseWriter, start time.Time, out *lookup.Outcome) {
	w.Header().Set("X-Lookup-ID", out.ID)
	w.Header().Set("X-Response-Time", time.Since(start).String())

	if out.State == lookup.Rendered {
		response.JSON(w, http.StatusOK, out.View)
		return
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		response.ErrorJSON(w, http.StatusGatewayTimeout, "timeout", "request timeout - try again")
		return
	}
	status, kind := classify(out.Err)
	response.ErrorJSON(w, status, kind, out.Status)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, lookup.ErrInputEmpty):
		return http.StatusBadRequest, "input_empty"
	case errors.Is(err, lookup.ErrLocationNotFound):
		return http.StatusNotFound, "location_not_found"
	case errors.Is(err, lookup.ErrGeolocationUnavailable):
		return http.StatusUnprocessableEntity, "geolocation_unavailable"
	case errors.Is(err, lookup.ErrRequiredFetchFailed):
		return http.StatusBadGateway, "required_fetch_failed"
	}
	return http.StatusInternalServerError, ""
}

// preferences reads ?tz= and the locale from ?lang= or Accept-Language.
func preferences(r *http.Request) lookup.Preferences {
	q := r.URL.Query()
	locale := q.Get("lang")
	if locale == "" {
		locale = r.Header.Get("Accept-Language")
	}
	return lookup.Preferences{
		Timezone: q.Get("tz"),
		Locale:   locale,
	}
}
