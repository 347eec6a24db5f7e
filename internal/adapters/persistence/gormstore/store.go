// Package gormstore implements the repository ports on top of GORM and
// SQLite. One Store serves every repository interface; multi-row writes run
// in a transaction, and WithinTx lets callers widen that transaction.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var (
	_ ports.TaskRepository       = (*Store)(nil)
	_ ports.UserRepository       = (*Store)(nil)
	_ ports.TagRepository        = (*Store)(nil)
	_ ports.TimeLogRepository    = (*Store)(nil)
	_ ports.CommentRepository    = (*Store)(nil)
	_ ports.AttachmentRepository = (*Store)(nil)
	_ ports.ActivityRepository   = (*Store)(nil)
	_ ports.HealthChecker        = (*Store)(nil)
)

// Open connects to the database described by cfg and applies the pool
// settings. Queries are logged through logger.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger:         NewLogger(logger, cfg.SlowThreshold),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(allRecords()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Store implements the repository ports.
type Store struct {
	db *gorm.DB
}

// New wraps an open connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "database" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type txKey struct{}

// WithinTx runs fn in a transaction. Repository calls made with the context
// passed to fn join it. Nested calls reuse the outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried by ctx, or the pool.
func (s *Store) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// tx runs fn against a transaction, joining the caller's if there is one.
func (s *Store) tx(ctx context.Context, fn func(db *gorm.DB) error) error {
	return s.WithinTx(ctx, func(ctx context.Context) error {
		return fn(s.conn(ctx))
	})
}

// translate maps driver errors onto the domain taxonomy. notFound builds
// the error for a missing row.
func translate(err error, notFound func() error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if notFound != nil {
			return notFound()
		}
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("duplicate value: %w", domain.ErrConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: database: %w", domain.ErrUnavailable, err)
	}
}

func notFound(resource string, id int64) func() error {
	return func() error { return &domain.NotFoundError{Resource: resource, ID: id} }
}

func taskNotFound(id int64) func() error {
	return func() error { return &domain.TaskNotFoundError{TaskID: id} }
}

// requireAffected turns a write that touched no rows into a not-found error.
func requireAffected(res *gorm.DB, missing func() error) error {
	if res.Error != nil {
		return translate(res.Error, missing)
	}
	if res.RowsAffected == 0 {
		return missing()
	}
	return nil
}
