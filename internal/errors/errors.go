package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when a request carries no token at all.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidToken is returned when a token fails signature or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnauthorized is returned when the token subject has no user row.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbiddenRole is returned when the subject's role is not allowed.
	ErrForbiddenRole = errors.New("admin privileges required")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a rejected input field with a client-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps a failure to persist or delete an image.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents a standardized error response. Message is the
// client-facing text; validation errors carry field-specific messages while
// auth failures stay deliberately generic.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse to
// a generic 500 so internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return NewHTTPError(http.StatusBadRequest, vErr.Message, "VALIDATION_ERROR")
	}
	var sErr *StorageError
	if errors.As(err, &sErr) {
		return NewHTTPError(http.StatusInternalServerError, "failed to store image", "STORAGE_ERROR")
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, "Authentication required", "UNAUTHENTICATED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, "Invalid token", "INVALID_TOKEN")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusForbidden, "Unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrForbiddenRole):
		return NewHTTPError(http.StatusForbidden, "Admin privileges required", "FORBIDDEN_ROLE")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid credentials", "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
	}
}
