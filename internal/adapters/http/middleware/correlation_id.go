package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/platform/httpclient"
)

const headerCorrelationID = "X-Correlation-ID"

type correlationIDKey struct{}

// WithCorrelationID stores id in ctx and forwards it to httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation id, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID returns middleware that tags the request with the caller's
// X-Correlation-ID, falling back to the request id when the header is
// missing or malformed. It must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !validID(id) {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
