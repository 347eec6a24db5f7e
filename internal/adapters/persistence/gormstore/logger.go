package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// Logger sends GORM output to slog. Queries log at debug, slow queries at
// warn and failures at error. A missing row is not a failure.
type Logger struct {
	logger *slog.Logger
	slow   time.Duration
	level  gormlogger.LogLevel
}

var _ gormlogger.Interface = (*Logger)(nil)

// NewLogger returns a Logger. A zero slow disables slow-query warnings.
func NewLogger(logger *slog.Logger, slow time.Duration) *Logger {
	return &Logger{logger: logger, slow: slow, level: gormlogger.Info}
}

// LogMode implements gormlogger.Interface.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.from(ctx).InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Warn implements gormlogger.Interface.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.from(ctx).WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Error implements gormlogger.Interface.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.from(ctx).ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace implements gormlogger.Interface.
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	log := l.from(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		log.ErrorContext(ctx, "query failed", append(attrs, slog.Any("error", err))...)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		log.WarnContext(ctx, "slow query", append(attrs, slog.Duration("threshold", l.slow))...)
	case l.level >= gormlogger.Info:
		log.DebugContext(ctx, "query", attrs...)
	}
}

// from prefers the request-scoped logger so query lines carry request ids.
func (l *Logger) from(ctx context.Context) *slog.Logger {
	if ctxLogger := logging.FromContext(ctx); ctxLogger != slog.Default() {
		return ctxLogger
	}
	return l.logger
}
