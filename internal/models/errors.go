package models

import "errors"

// The closed set of error kinds the API distinguishes. Operations wrap one
// of these sentinels (errors.Is matches through the wrapping), and handlers
// translate the kind into an HTTP status plus the canonical code string.
var (
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("conflict")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ErrorCode returns the machine-readable code for a known error kind, or
// "INTERNAL" for anything outside the closed set.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "UPSTREAM_UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}
