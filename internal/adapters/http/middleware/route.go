package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that no route matched (404, 405).
const unmatchedRoute = "unmatched"

// routePattern returns the chi route template that served r, such as
// /api/v1/tasks/{id}/comments. It is only complete once the router has run,
// so middleware reads it after calling next. Task ids never end up in span
// names or metric labels this way.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
