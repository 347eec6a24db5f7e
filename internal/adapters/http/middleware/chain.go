package middleware

import (
	"net/http"
	"slices"
)

// Chain composes middlewares so the first one is outermost:
//
//	Chain(Recovery(l), RequestID(), Logging(l))(h)
//
// serves like Recovery(l)(RequestID()(Logging(l)(h))).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			handler = mw(handler)
		}
		return handler
	}
}
