package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/task-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestServer_AddrBeforeAndAfterListen(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler(), nil)
	if got := s.Addr(); got != "127.0.0.1:0" {
		t.Errorf("Addr() before Listen = %q, want 127.0.0.1:0", got)
	}

	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	if got := s.Addr(); got == "127.0.0.1:0" || !strings.HasPrefix(got, "127.0.0.1:") {
		t.Errorf("Addr() after Listen = %q, want the bound port", got)
	}
}

func TestServer_ListenFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	first := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler(), discardLogger())
	if err := first.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, port, _ := strings.Cut(first.Addr(), ":")
	cfg := config.ServerConfig{Host: "127.0.0.1"}
	n, err := strconv.Atoi(port)
	if err != nil {
		t.Fatalf("parsing port %q: %v", port, err)
	}
	cfg.Port = n

	second := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())
	if err := second.Listen(); err == nil {
		t.Fatal("Listen() on a busy port returned nil error")
	}
}

func TestServer_ServesAndDrainsOnShutdown(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			close(started)
			time.Sleep(100 * time.Millisecond)
		}
		_, _ = io.WriteString(w, "ok")
	})

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0}, handler, discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	base := "http://" + s.Addr()
	resp, err := http.Get(base + "/health/live")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	_ = resp.Body.Close()

	type result struct {
		body string
		err  error
	}
	slow := make(chan result, 1)
	go func() {
		resp, err := http.Get(base + "/slow")
		if err != nil {
			slow <- result{err: err}
			return
		}
		defer func() { _ = resp.Body.Close() }()
		b, err := io.ReadAll(resp.Body)
		slow <- result{body: string(b), err: err}
	}()

	<-started
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() after Shutdown = %v, want nil", err)
	}

	res := <-slow
	if res.err != nil || res.body != "ok" {
		t.Errorf("in-flight request = (%q, %v), want it to complete", res.body, res.err)
	}
}
