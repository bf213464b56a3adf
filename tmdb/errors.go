package tmdb

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrNoAPIKey indicates a missing API key
	ErrNoAPIKey = errors.New("tmdb API key is required")
	// ErrNoSession indicates a missing session id for an authenticated call
	ErrNoSession = errors.New("session id is required")
)

// ErrorKind classifies a client failure
type ErrorKind int

const (
	// KindUnknown represents an unclassified failure
	KindUnknown ErrorKind = iota
	// KindInvalidURL indicates a request URL could not be built
	KindInvalidURL
	// KindConnectionFailed indicates the request never completed
	KindConnectionFailed
	// KindHTTPError indicates a non-2xx HTTP response
	KindHTTPError
	// KindMappingFailed indicates a response body could not be mapped
	KindMappingFailed
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "INVALID_URL"
	case KindConnectionFailed:
		return "CONNECTION_FAILED"
	case KindHTTPError:
		return "HTTP_ERROR"
	case KindMappingFailed:
		return "MAPPING_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Error is the single error type returned by the client. Response carries
// the raw body for mapping and HTTP failures so callers can log the exact
// payload that failed.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Response   string
	cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("tmdb: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("tmdb: %s", e.Kind)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.cause
}

// IsMappingFailed checks if the error is a response-mapping failure
func (e *Error) IsMappingFailed() bool {
	return e.Kind == KindMappingFailed
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.Kind == KindHTTPError && e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.Kind == KindHTTPError && (e.StatusCode == 401 || e.StatusCode == 403)
}

func newError(kind ErrorKind, response string, cause error) *Error {
	return &Error{Kind: kind, Response: response, cause: cause}
}
