package lookup

import "errors"

// Failure kinds. Every failed lookup wraps exactly one of these.
var (
	ErrInputEmpty             = errors.New("input empty")
	ErrLocationNotFound       = errors.New("location not found")
	ErrRequiredFetchFailed    = errors.New("required fetch failed")
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
)

// Status strings shown to the user.
const (
	msgInputEmpty       = "Please enter a city name."
	msgCityNotFound     = "City not found"
	msgGeocodingFailed  = "Geocoding failed"
	msgWeatherFailed    = "Weather fetch failed"
	msgLocationUnknown  = "Could not get your location"
	defaultFailedStatus = "Failed to load weather"
)

// Error is a terminal lookup failure. Message is safe to show the user.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func fail(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// StatusMessage converts any lookup error to the short status line.
func StatusMessage(err error) string {
	if err == nil {
		return ""
	}
	var le *Error
	if errors.As(err, &le) && le.Message != "" {
		return le.Message
	}
	return defaultFailedStatus
}

// Kind returns the failure kind of err, or nil if it is not a lookup error.
func Kind(err error) error {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return nil
}
