package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/middleware"
)

// OTEL tests are NOT parallel because they modify the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

func TestOpenTelemetry_NamesSpanAfterRoute(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Post("/api/v1/tasks/{id}/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/42/status", http.NoBody)
	r.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}

	span := spans[0]
	if want := "HTTP POST /api/v1/tasks/{id}/status"; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}

	attrs := make(map[string]any)
	for _, a := range span.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	if route, ok := attrs["http.route"].(string); !ok || route != "/api/v1/tasks/{id}/status" {
		t.Errorf("http.route attr = %v", attrs["http.route"])
	}
	if target, ok := attrs["http.target"].(string); !ok || target != "/api/v1/tasks/42/status" {
		t.Errorf("http.target attr = %v", attrs["http.target"])
	}
	if status, ok := attrs["http.status_code"].(int64); !ok || status != http.StatusConflict {
		t.Errorf("http.status_code attr = %v, want %d", attrs["http.status_code"], http.StatusConflict)
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nowhere/42", http.NoBody)
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}
	if spans[0].Name != "HTTP GET unmatched" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "HTTP GET unmatched")
	}
}

func TestOpenTelemetry_SetsErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/error", http.NoBody)
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}

	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status code = %d, want %d (Error)", spans[0].Status.Code, codes.Error)
	}
}

func TestOpenTelemetry_NilMetricsNoPanic(t *testing.T) {
	t.Parallel()

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)

	// Should not panic with nil metrics.
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
