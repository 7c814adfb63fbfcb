package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// TokenVerifier turns a raw bearer token into the caller's identity.
type TokenVerifier interface {
	VerifyToken(raw string) (domain.Identity, error)
}

type ctxKey struct{}

func withIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the identity attached by Authenticate.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(domain.Identity)
	if !ok || id.IsZero() {
		return domain.Identity{}, false
	}
	return id, true
}

// Authenticate rejects requests without a valid bearer token and attaches
// the verified identity to the request context.
func Authenticate(v TokenVerifier) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := httpx.BearerToken(r)
			if !ok {
				tasksdk.ErrUnauthorized.WriteError(w)
				return
			}

			id, err := v.VerifyToken(raw)
			if err != nil {
				log.Info("bearer token rejected", "err", err)
				if errors.Is(err, service.ErrTokenExpired) {
					tasksdk.ErrTokenExpired.WriteError(w)
					return
				}
				tasksdk.ErrUnauthorized.WriteError(w)
				return
			}

			ctx = withIdentity(ctx, id)
			ctx = slogx.With(ctx, "user_id", id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
