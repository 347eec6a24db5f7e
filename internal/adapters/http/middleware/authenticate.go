package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

const bearerPrefix = "bearer "

// Authenticate returns middleware that requires a bearer access token,
// resolves it to a ports.Actor and stores the actor in the request context.
// Requests without a valid token are answered with 401 and never reach
// next. Mount it only on routes that need an authenticated caller.
func Authenticate(resolver ports.ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			actor, err := resolver.ResolveActor(r.Context(), token)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := ports.WithActor(r.Context(), actor)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.Int64("user_id", actor.UserID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", &domain.AuthenticationError{Reason: "missing bearer token"}
	}
	if len(h) <= len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", &domain.AuthenticationError{Reason: "malformed authorization header"}
	}
	token := strings.TrimSpace(h[len(bearerPrefix):])
	if token == "" {
		return "", fmt.Errorf("%w: empty bearer token", domain.ErrUnauthenticated)
	}
	return token, nil
}
