package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		wantRequestID bool
	}{
		{name: "caller value kept", header: "checkout-42", wantRequestID: false},
		{name: "missing falls back", header: "", wantRequestID: true},
		{name: "malformed falls back", header: "<script>", wantRequestID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.Chain(middleware.RequestID(), middleware.CorrelationID())(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					got = middleware.CorrelationIDFromContext(r.Context())
				}),
			)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			handler.ServeHTTP(rec, req)

			want := tt.header
			if tt.wantRequestID {
				want = rec.Header().Get("X-Request-ID")
			}
			if got != want {
				t.Errorf("correlation id = %q, want %q", got, want)
			}
			if resp := rec.Header().Get("X-Correlation-ID"); resp != want {
				t.Errorf("response X-Correlation-ID = %q, want %q", resp, want)
			}
		})
	}
}

func TestCorrelationIDContext(t *testing.T) {
	t.Parallel()

	if got := middleware.CorrelationIDFromContext(context.Background()); got != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q, want \"\"", got)
	}
	ctx := middleware.WithCorrelationID(context.Background(), "corr-1")
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want corr-1", got)
	}
}
