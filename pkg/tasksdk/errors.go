package tasksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/tasks/pkg/httpx"
)

// APIError is the error body returned by every endpoint. It implements the
// error interface and is used both by the server (to write HTTP responses)
// and by the SDK client (to represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Detail is a human-readable description of the error
	Detail string `json:"detail"`

	// Field names the offending request field for validation errors
	Field string `json:"field,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%d: %s: %s", e.StatusCode, e.Field, e.Detail)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Detail)
}

// Is matches another *APIError with the same status code and detail, so
// callers can use errors.Is against the predefined values.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Detail == t.Detail
}

// WriteError writes this APIError to an HTTP response writer. 401 responses
// carry a Bearer challenge.
func (e *APIError) WriteError(w http.ResponseWriter) {
	if e.StatusCode == http.StatusUnauthorized {
		httpx.SetBearerChallenge(w, "")
	}
	httpx.WriteJSON(w, e.StatusCode, e)
}

// WithField returns a copy of e naming the offending field.
func (e *APIError) WithField(field, detail string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Detail: detail, Field: field}
}

var (
	// ErrTaskNotFound is returned when a task does not exist or is owned by
	// another user.
	ErrTaskNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Detail:     "Task not found",
	}

	// ErrUnauthorized is returned when the bearer token is missing or invalid.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Could not validate credentials",
	}

	// ErrTokenExpired is returned when the bearer token has expired.
	ErrTokenExpired = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Token has expired",
	}

	// ErrInvalidCredentials is returned for any failed login. Unknown users
	// and wrong passwords are indistinguishable.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Incorrect username or password",
	}

	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = &APIError{
		StatusCode: http.StatusConflict,
		Detail:     "Username already registered",
	}

	// ErrValidation is returned when a request body fails validation.
	ErrValidation = &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Detail:     "Validation failed",
	}

	// ErrBadRequest is returned when the request cannot be parsed.
	ErrBadRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Bad request",
	}

	// ErrServerError is returned when the server hit an unexpected condition.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Detail:     "Internal server error",
	}
)

// NewAPIError creates an APIError with the given status code and detail.
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail}
}

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Detail != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
