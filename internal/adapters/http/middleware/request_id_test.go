package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func serveRequestID(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()

	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get("X-Request-ID")
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "missing", header: "", wantKept: false},
		{name: "caller id kept", header: "gw-7f3a.01:retry_2", wantKept: true},
		{name: "uuid kept", header: "0b8e2f3c-5b4f-4f5e-9d4e-1b2c3d4e5f60", wantKept: true},
		{name: "too long", header: strings.Repeat("a", 129), wantKept: false},
		{name: "max length kept", header: strings.Repeat("a", 128), wantKept: true},
		{name: "log injection", header: "abc\nlevel=ERROR", wantKept: false},
		{name: "spaces", header: "abc def", wantKept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctxID, respID := serveRequestID(t, tt.header)
			if ctxID != respID {
				t.Errorf("context id %q != response header %q", ctxID, respID)
			}
			if tt.wantKept {
				if ctxID != tt.header {
					t.Errorf("id = %q, want caller's %q", ctxID, tt.header)
				}
				return
			}
			if !uuidPattern.MatchString(ctxID) {
				t.Errorf("id = %q, want generated UUID v4", ctxID)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		id, _ := serveRequestID(t, "")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	if got := middleware.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want \"\"", got)
	}
	ctx := middleware.WithRequestID(context.Background(), "req-1")
	if got := middleware.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", got)
	}
}
