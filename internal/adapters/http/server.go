package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Server is the task tracker's HTTP listener with graceful shutdown.
type Server struct {
	srv             *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration

	mu sync.Mutex
	ln net.Listener
}

// NewServer configures, but does not bind, a server for handler. A nil
// logger discards output; a zero shutdown timeout means 10s.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	s.srv = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
	return s
}

// Listen binds the configured address, so a port clash fails startup
// before anything else runs. Port 0 picks a free port; Addr reports it.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	return nil
}

// Start serves until Shutdown, binding first when Listen was not called.
// It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))
	if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// such as attachment uploads, until ctx is done. Without a deadline on ctx
// the configured shutdown timeout applies.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server", slog.Duration("timeout", s.shutdownTimeout))
	err := s.srv.Shutdown(ctx)

	// Serve closes its listener; this covers Listen without Start.
	s.mu.Lock()
	if s.ln != nil {
		_ = s.ln.Close()
	}
	s.mu.Unlock()
	return err
}

// Addr is the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}
