package discord

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrNoExecutor          = errors.New("request has no executor")
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrTokenRequired       = errors.New("a bot token, bearer token or client credentials are required")
	ErrConflictingTokens   = errors.New("only one of bot token and bearer token may be set")
	ErrInvalidAPIVersion   = errors.New("API version must be positive")
)

// ValidationError reports a leaf operation rejected before any request was
// built, because its input is known to be refused by the API.
type ValidationError struct {
	// Operation is the route name of the rejected operation, e.g. "CreateWebhook".
	Operation string
	// Field names the offending input, e.g. "name".
	Field string
	// Err is the failed rule.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %v", e.Operation, e.Field, e.Err)
}

// Unwrap returns the failed rule.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a client-side validation error.
func IsValidation(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

// APIError is an error response returned by the Discord API.
type APIError struct {
	// Status is the HTTP status code.
	Status int `json:"-"`
	// Code is Discord's JSON error code.
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors,omitempty"`
	// RetryAfter is set on 429 responses, in seconds.
	RetryAfter float64 `json:"retry_after,omitempty"`
	Global     bool    `json:"global,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == 0 && e.Message == "" {
		return fmt.Sprintf("discord API error (status: %d)", e.Status)
	}

	return fmt.Sprintf("%s (code: %d, status: %d)", e.Message, e.Code, e.Status)
}

// ParseAPIError parses an error body. A body that is not JSON still yields an
// APIError carrying the status and the raw text.
func ParseAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status}

	err := json.Unmarshal(data, apiErr)
	if err != nil && len(data) > 0 {
		apiErr.Message = string(data)
	}

	apiErr.Status = status

	return apiErr
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}
