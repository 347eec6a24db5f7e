package objectstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	return New(httpclient.New(cfg, "blob-store", nil, logger), logger)
}

// fakeStore is an in-memory object store speaking the /objects protocol.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]string{}, types: map[string]string{}}
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key, ok := strings.CutPrefix(r.URL.Path, "/objects/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = string(body)
		f.types[key] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	case http.MethodGet:
		body, exists := f.objects[key]
		if !exists {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"no such object"}`)
			return
		}
		w.Header().Set("Content-Type", f.types[key])
		_, _ = io.WriteString(w, body)
	case http.MethodDelete:
		if _, exists := f.objects[key]; !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestClient_PutOpenDelete(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	ts := httptest.NewServer(store)
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	ctx := context.Background()

	key, err := c.Put(ctx, ports.BlobObject{
		Prefix:      "tasks/7",
		Filename:    "Notes.TXT",
		ContentType: "text/plain",
		Size:        5,
	}, strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !strings.HasPrefix(key, "tasks/7/") || !strings.HasSuffix(key, ".txt") {
		t.Errorf("key = %q, want tasks/7/<uuid>.txt", key)
	}
	if store.types[key] != "text/plain" {
		t.Errorf("stored content type = %q", store.types[key])
	}

	rc, err := c.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != "hello" {
		t.Errorf("Open() body = %q, want hello", body)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}

	_, err = c.Open(ctx, key)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Open() after delete error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "no such object") {
		t.Errorf("error %q does not carry the problem detail", err)
	}
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.Put(context.Background(), ports.BlobObject{Prefix: "tasks/1", Filename: "a.pdf", Size: 1}, strings.NewReader("x"))
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Put() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_UnreachableIsUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := newTestClient(t, url)
	_, err := c.Open(context.Background(), "tasks/1/x.pdf")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Open() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, "http://127.0.0.1:1")
	if c.Name() != "blob-store" {
		t.Errorf("Name() = %q, want blob-store", c.Name())
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() on a closed breaker = %v, want nil", err)
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "413 maps to ErrValidation", statusCode: http.StatusRequestEntityTooLarge, wantErr: domain.ErrValidation},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "401 maps to ErrUnavailable", statusCode: http.StatusUnauthorized, wantErr: domain.ErrUnavailable},
		{name: "403 maps to ErrUnavailable", statusCode: http.StatusForbidden, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
		{name: "unexpected 3xx maps to ErrUnavailable", statusCode: http.StatusMultipleChoices, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{StatusCode: tt.statusCode, Header: http.Header{}, Body: http.NoBody}

			if got := TranslateHTTPError(resp); !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusUnprocessableEntity,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
		Body: io.NopCloser(strings.NewReader(
			`{"detail":"bad object","errors":[{"location":"body.content_type","message":"is required"}]}`,
		)),
	}

	var verr *domain.ValidationError
	if got := TranslateHTTPError(resp); !errors.As(got, &verr) {
		t.Fatalf("error = %v, want *ValidationError", got)
	}
	if verr.Fields["content_type"] != "is required" {
		t.Errorf("Fields = %v", verr.Fields)
	}
}
