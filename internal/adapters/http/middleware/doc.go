// Package middleware holds the HTTP request pipeline of the task tracker.
//
// NewRouter applies the global chain in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout
//
// Authenticate is mounted only on the protected /api/v1 route group, after
// the chain, so it sees the request logger and the RequestContext. Each
// middleware is a func(http.Handler) http.Handler; Chain composes them.
package middleware
