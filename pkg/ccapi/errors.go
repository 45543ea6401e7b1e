package ccapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error reported by the API as a JSON body.
type APIError struct {
	// StatusCode is the HTTP status of the response carrying the error.
	StatusCode int `json:"-"          yaml:"-"`
	ID         int `json:"id"         yaml:"id"`

	Message string `json:"message" yaml:"message"`
	Kind    string `json:"type"    yaml:"type"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error, status %d", e.StatusCode)
	}

	return fmt.Sprintf("%s (id: %d, status: %d)", e.Message, e.ID, e.StatusCode)
}

// RequestError represents a failure to perform the HTTP round trip itself:
// connection failures, DNS errors, cancelled contexts.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrEndpointRequired      = errors.New("API endpoint is required")
	ErrConfigRequired        = errors.New("config is required")
	ErrIncompleteCredentials = errors.New("incomplete OAuth1 credentials: consumer key/secret and token/secret must all be set")
	ErrProviderNotFound      = errors.New("addon provider not found")
	ErrUploadFailed          = errors.New("upload request failed")
	ErrTriggerFailed         = errors.New("trigger request failed")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrCacheMiss             = errors.New("key not found in cache")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
)

// IsNotFound checks whether the error is an API-reported 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks whether the error is an API-reported 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks whether the error is an API-reported 403.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}

// ParseAPIError builds an APIError from a non-2xx response body. Bodies that
// are not the documented error shape still yield a usable error carrying the
// status code.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	if len(body) > 0 {
		// Best effort: error bodies are JSON on the documented paths, but
		// proxies can return anything.
		if err := json.Unmarshal(body, apiErr); err != nil {
			apiErr.Message = string(body)
		}
	}

	return apiErr
}
