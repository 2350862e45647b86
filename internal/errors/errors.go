package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when the authenticated subject has no user record.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotOnboarded is returned when a user has not selected an industry yet.
	ErrNotOnboarded = errors.New("user has not completed onboarding")
	// ErrIndustryExists is returned when an insight record already exists for an industry.
	ErrIndustryExists = errors.New("industry insight already exists")
	// ErrProfileUpdate is returned when the onboarding transaction fails. The
	// underlying cause is logged, never exposed.
	ErrProfileUpdate = errors.New("failed to update profile")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotOnboarded):
		return NewHTTPError(http.StatusConflict, err.Error(), "NOT_ONBOARDED")
	case errors.Is(err, ErrIndustryExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "INDUSTRY_EXISTS")
	case errors.Is(err, ErrProfileUpdate):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "PROFILE_UPDATE_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
