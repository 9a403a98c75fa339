// Package upstream is the single HTTP path to the Open-Meteo APIs. Each API
// gets its own Client, and so its own circuit breaker, so an air-quality
// outage never trips the forecast breaker.
//
// Requests are not retried: a failed call fails the caller's lookup and the
// user retries by hand.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	Upstream   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Upstream, e.StatusCode)
}

// ErrUnavailable wraps breaker rejections (open or half-open and saturated).
var ErrUnavailable = errors.New("upstream unavailable")

type Options struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MaxFailures uint32        // consecutive failures before the breaker opens
	OpenTimeout time.Duration // how long the breaker stays open
	Transport   http.RoundTripper
	Logger      *slog.Logger
}

type Client struct {
	name    string
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker[*resty.Response]
	logger  *slog.Logger
}

func New(name string, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("upstream", name)

	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = 30 * time.Second
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Transport != nil {
		rc.SetTransport(opts.Transport)
	}

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("upstream response",
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	maxFailures := opts.MaxFailures
	cb := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A caller giving up is not the upstream's fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		name:    name,
		http:    rc,
		breaker: cb,
		logger:  logger,
	}
}

func (c *Client) Name() string {
	return c.name
}

// GetJSON issues GET path?params and decodes a 2xx body into out.
func (c *Client) GetJSON(ctx context.Context, path string, params map[string]string, out any) error {
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		r, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(path)
		if err != nil {
			return nil, err
		}
		// Only server-side trouble counts against the breaker.
		if r.StatusCode() >= http.StatusInternalServerError || r.StatusCode() == http.StatusTooManyRequests {
			return r, c.statusError(r)
		}
		return r, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%s: %w: %v", c.name, ErrUnavailable, err)
		}
		var se *StatusError
		if errors.As(err, &se) {
			return se
		}
		return fmt.Errorf("%s request failed: %w", c.name, err)
	}

	if !resp.IsSuccess() {
		return c.statusError(resp)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", c.name, err)
	}
	return nil
}

func (c *Client) statusError(r *resty.Response) *StatusError {
	body := string(r.Body())
	if len(body) > 512 {
		body = body[:512]
	}
	return &StatusError{Upstream: c.name, StatusCode: r.StatusCode(), Body: body}
}
