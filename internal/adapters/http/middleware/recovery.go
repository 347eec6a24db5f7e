package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
)

// errPanic stands in for the panic value in the client response; the value
// and stack only go to the log.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into a 500
// problem+json response. It sits outermost, so the request id is read back
// from the X-Request-ID response header that RequestID set. When the
// handler already started its response only the log entry is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.Bool("response_started", rw.headerWritten),
					slog.String("stack", string(debug.Stack())),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
