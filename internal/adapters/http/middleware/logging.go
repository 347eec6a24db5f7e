package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion. It
// stores a child logger carrying request_id and correlation_id in the
// context (logging.WithLogger); Authenticate later adds user_id to it.
//
// Completion is logged at Info, Warn for 4xx and Error for 5xx, with the
// matched route template, response size and duration. Headers are logged at
// Debug with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
