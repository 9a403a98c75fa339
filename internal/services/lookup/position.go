package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/shuv1824/skypanel/internal/types"
)

// PositionRequest mirrors the options of a one-shot device position read.
type PositionRequest struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration // 0: never accept a cached fix
}

// PositionSource reads the device position once.
type PositionSource interface {
	Position(ctx context.Context, req PositionRequest) (types.Coordinates, error)
}

// PositionFunc adapts a plain function to PositionSource.
type PositionFunc func(ctx context.Context, req PositionRequest) (types.Coordinates, error)

func (f PositionFunc) Position(ctx context.Context, req PositionRequest) (types.Coordinates, error) {
	return f(ctx, req)
}

// PositionError is returned by sources that can say why no fix is available
// (permission denied, unavailable, timeout). Reason is shown to the user.
type PositionError struct {
	Reason string
}

func (e *PositionError) Error() string {
	return "position unavailable: " + e.Reason
}

// StaticPosition is a source that already holds its fix, such as
// coordinates a browser sent along with the request.
func StaticPosition(c types.Coordinates) PositionSource {
	return PositionFunc(func(ctx context.Context, _ PositionRequest) (types.Coordinates, error) {
		if err := ctx.Err(); err != nil {
			return types.Coordinates{}, err
		}
		return c, nil
	})
}

// UnavailablePosition is a source that always fails with reason.
func UnavailablePosition(reason string) PositionSource {
	return PositionFunc(func(context.Context, PositionRequest) (types.Coordinates, error) {
		return types.Coordinates{}, &PositionError{Reason: reason}
	})
}

func positionMessage(err error) string {
	var pe *PositionError
	if errors.As(err, &pe) && pe.Reason != "" {
		return pe.Reason
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Location request timed out"
	}
	return msgLocationUnknown
}
