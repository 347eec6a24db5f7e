package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxIDLength caps caller-supplied request and correlation ids.
	maxIDLength = 128
)

type requestIDKey struct{}

// WithRequestID stores id in ctx. The id is also handed to httpclient so
// calls to the object store carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID returns middleware that assigns every request an id and echoes
// it in the X-Request-ID response header. A well-formed incoming header is
// kept; anything else is replaced by a new UUID.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !validID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// validID accepts up to maxIDLength letters, digits and the punctuation
// "-_.:". Ids end up in log lines and outbound headers, so nothing else is
// let through.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
