// Package logging builds the service's slog loggers and carries the
// request-scoped logger in context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "task created", slog.Int64("task_id", t.ID))
//
// Failures are logged with the operation, the ids involved and the error:
//
//	logger.ErrorContext(ctx, "failed to change status",
//	    slog.String("operation", "ChangeStatus"),
//	    slog.Int64("task_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w. level is parsed by ParseLevel; format
// "text" selects the text handler and anything else JSON. Debug loggers
// include source locations. Credentials are masked by masq before any
// handler sees them.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel reads a slog level name, case-insensitively and with optional
// offset ("debug", "WARN", "info+2"). Unknown names mean info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
