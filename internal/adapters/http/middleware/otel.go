package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/task-tracker/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/task-tracker/internal/adapters/http"

// OpenTelemetry returns middleware that traces each request and records the
// server request metrics. Incoming W3C trace context is honoured.
//
// The span starts as "HTTP <method>" and is renamed to
// "HTTP <method> <route>" once the router has matched, e.g.
// "HTTP POST /api/v1/tasks/{id}/status". Metrics carry the same route label.
// A nil metrics skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.GetTracerProvider().Tracer(tracerName)
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := routePattern(r)
			status := rw.statusCode
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", status),
				attribute.Int64("http.response_size", rw.written),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, start, status)
		})
	}
}

// recordServerMetrics records server request duration and count. Safe to
// call with nil metrics.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
