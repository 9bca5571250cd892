package skillstacker

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors - transport and session
var (
	ErrBackendUnreachable = errors.New("skillstacker: backend unreachable")
	ErrAuthExpired        = errors.New("skillstacker: session expired")
	ErrSessionUnavailable = errors.New("skillstacker: session storage unavailable")
	ErrSessionCorrupted   = errors.New("skillstacker: session file corrupted")
)

// Sentinel errors - resources
var (
	ErrNotFound = errors.New("skillstacker: resource not found")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Detail is the backend's error message.
	Detail string
	// RequestID echoes the X-Request-ID sent with the failed request.
	RequestID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("skillstacker: API error (HTTP %d)", e.StatusCode)
	}
	return fmt.Sprintf("skillstacker: API error (HTTP %d): %s", e.StatusCode, e.Detail)
}

// Is maps HTTP status codes onto sentinel errors so callers can use
// errors.Is without inspecting status codes themselves.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return errors.Is(target, ErrAuthExpired)
	case http.StatusNotFound:
		return errors.Is(target, ErrNotFound)
	default:
		return false
	}
}

// ValidationError is a rejected write payload, either caught client-side
// before the request or reported by the backend on a 4xx.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("skillstacker: validation failed: %s", e.Message)
	}
	return fmt.Sprintf("skillstacker: validation failed: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// parseAPIError builds an APIError from a response body. The backend
// reports failures as {"detail": "..."}; detail may also be a structured
// list for field-level validation failures, in which case the first
// entry's message is surfaced.
func parseAPIError(statusCode int, body []byte, requestID string) error {
	var detail struct {
		Detail json.RawMessage `json:"detail"`
	}
	apiErr := &APIError{StatusCode: statusCode, RequestID: requestID}

	if err := json.Unmarshal(body, &detail); err == nil && len(detail.Detail) > 0 {
		var msg string
		if err := json.Unmarshal(detail.Detail, &msg); err == nil {
			apiErr.Detail = msg
		} else {
			var fields []struct {
				Loc []json.RawMessage `json:"loc"`
				Msg string            `json:"msg"`
			}
			if err := json.Unmarshal(detail.Detail, &fields); err == nil && len(fields) > 0 {
				apiErr.Detail = fields[0].Msg
			} else {
				apiErr.Detail = string(detail.Detail)
			}
		}
	} else if len(body) > 0 {
		apiErr.Detail = string(body)
	}

	return apiErr
}

// asValidationError converts a rejected write into a ValidationError.
// Only 400 and 422 responses qualify; anything else passes through.
func asValidationError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity {
			return &ValidationError{Message: apiErr.Detail}
		}
	}
	return err
}

// IsAPIError checks if an error is an API error and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
