package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any bad identifier/password
	// combination. Callers must not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	// ErrAccountDisabled is returned when a known account is disabled or locked.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email is already in use")
	// ErrInvalidCredentialFormat is returned for empty or malformed secrets.
	ErrInvalidCredentialFormat = errors.New("invalid credential format")
	// ErrInvalidInput is returned for domain payloads failing validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when a request carries no usable identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when an authenticated principal lacks privilege.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrTokenTampered is an internal detail; surfaced externally as ErrUnauthorized.
	ErrTokenTampered = errors.New("token signature or structure is invalid")
	// ErrTokenExpired is an internal detail; surfaced externally as ErrUnauthorized.
	ErrTokenExpired = errors.New("token has expired")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Token-level failures
// collapse into a generic 401 so callers cannot learn which check failed.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAccountDisabled):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "ACCOUNT_DISABLED")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentialFormat):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIAL_FORMAT")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrTokenTampered), errors.Is(err, ErrTokenExpired), errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
