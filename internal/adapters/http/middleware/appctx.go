package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/task-tracker/internal/app/context"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// AppContext returns middleware that gives each request its own
// RequestContext, shared by every service call the handler makes. Services
// reach it through appctx.FromContext.
//
// Staged writes that are never committed are discarded with the request; a
// warning names the route so the missing Commit can be found.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			req := r.WithContext(ctx)

			next.ServeHTTP(w, req)

			if n := rc.Pending(); n > 0 {
				logging.FromContext(ctx).WarnContext(ctx, "request ended with uncommitted writes",
					slog.Int("pending", n),
					slog.String("method", r.Method),
					slog.String("route", routePattern(req)),
				)
			}
		})
	}
}
