package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// writeServiceError maps a service error onto its canned API error. Anything
// unrecognised is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		tasksdk.ErrValidation.WithField(ve.Field, ve.Message).WriteError(w)
	case errors.Is(err, service.ErrTaskNotFound):
		tasksdk.ErrTaskNotFound.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		tasksdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken):
		tasksdk.ErrUsernameTaken.WriteError(w)
	case errors.Is(err, service.ErrTokenExpired):
		tasksdk.ErrTokenExpired.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrMalformedClaims):
		tasksdk.ErrUnauthorized.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		tasksdk.ErrServerError.WriteError(w)
	}
}
