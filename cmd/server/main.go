// Package main is the entry point for the task tracker API. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/auth"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/clients/objectstore"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/events"
	adapthttp "github.com/jsamuelsen11/task-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/storage/localblob"
	"github.com/jsamuelsen11/task-tracker/internal/app"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/platform/health"
	"github.com/jsamuelsen11/task-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-tracker/internal/ports"

	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerInfrastructure(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)

	if cfg.Database.AutoMigrate {
		db := do.MustInvoke[*gorm.DB](injector)
		if err := gormstore.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		logger.Info("database schema up to date")
	}

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// The broker only carries activity events, so losing it degrades
	// readiness instead of failing it.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*gormstore.Store](injector))
	registry.Register(do.MustInvokeNamed[ports.HealthChecker](injector, blobCheckerName))
	if cfg.Events.Enabled {
		registry.RegisterOptional(do.MustInvoke[*events.RedisPublisher](injector))
	}

	if err := server.Listen(); err != nil {
		return err
	}
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain in-flight requests within server.shutdown_timeout.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if cfg.Events.Enabled {
		if err := do.MustInvoke[*events.RedisPublisher](injector).Close(); err != nil {
			logger.Error("redis close error", slog.Any("error", err))
		}
	}
	if err := do.MustInvoke[*gormstore.Store](injector).Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. The providers are
// nil when telemetry is disabled; metrics is then backed by a noop meter.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		metrics, err := telemetry.NewMetrics(noop.NewMeterProvider())
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}
		return &otelProviders{metrics: metrics}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

const blobCheckerName = "blob-checker"

// registerInfrastructure provides the database, blob store, event publisher
// and token/password adapters.
func registerInfrastructure(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		return gormstore.Open(cfg.Database, logger)
	})

	do.Provide(injector, func(i do.Injector) (*gormstore.Store, error) {
		return gormstore.New(do.MustInvoke[*gorm.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BlobStore, error) {
		switch cfg.Blob.Backend {
		case config.BlobBackendHTTP:
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			hc := httpclient.New(&cfg.Client, "blob-store", metrics, logger)
			return objectstore.New(hc, logger), nil
		default:
			return localblob.New(cfg.Blob.RootDir)
		}
	})

	do.ProvideNamed(injector, blobCheckerName, func(i do.Injector) (ports.HealthChecker, error) {
		checker, ok := do.MustInvoke[ports.BlobStore](i).(ports.HealthChecker)
		if !ok {
			return nil, fmt.Errorf("blob backend %q has no health check", cfg.Blob.Backend)
		}
		return checker, nil
	})

	do.Provide(injector, func(_ do.Injector) (*events.RedisPublisher, error) {
		return events.NewRedisPublisher(events.NewRedisClient(cfg.Events), cfg.Events.Channel, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActivityPublisher, error) {
		if !cfg.Events.Enabled {
			return events.Nop{}, nil
		}
		return do.MustInvoke[*events.RedisPublisher](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenIssuer, error) {
		return auth.NewJWTIssuer(cfg.Auth), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return auth.BcryptHasher{Cost: cfg.Auth.BcryptCost}, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func registerServices(injector *do.RootScope, _ *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[*gormstore.Store](i)
		return app.NewTaskService(app.TaskDeps{
			Tasks:       store,
			Users:       store,
			Tags:        store,
			Attachments: store,
			Blobs:       do.MustInvoke[ports.BlobStore](i),
			Activities:  store,
			Publisher:   do.MustInvoke[ports.ActivityPublisher](i),
			Metrics:     do.MustInvoke[*telemetry.Metrics](i),
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CollaborationService, error) {
		store := do.MustInvoke[*gormstore.Store](i)
		return app.NewCollaborationService(app.CollaborationDeps{
			Tasks:      store,
			Comments:   store,
			TimeLogs:   store,
			Activities: store,
			Publisher:  do.MustInvoke[ports.ActivityPublisher](i),
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AttachmentService, error) {
		store := do.MustInvoke[*gormstore.Store](i)
		return app.NewAttachmentService(app.AttachmentDeps{
			Tasks:       store,
			Attachments: store,
			Blobs:       do.MustInvoke[ports.BlobStore](i),
			Activities:  store,
			Publisher:   do.MustInvoke[ports.ActivityPublisher](i),
			Metrics:     do.MustInvoke[*telemetry.Metrics](i),
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TagService, error) {
		return app.NewTagService(do.MustInvoke[*gormstore.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(
			do.MustInvoke[*gormstore.Store](i),
			do.MustInvoke[ports.PasswordHasher](i),
			do.MustInvoke[ports.TokenIssuer](i),
			logger,
		), nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		users := do.MustInvoke[ports.UserService](i)
		return adapthttp.Handlers{
			Auth:          handlers.NewAuthHandler(users),
			Users:         handlers.NewUserHandler(users),
			Tasks:         handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)),
			Collaboration: handlers.NewCollaborationHandler(do.MustInvoke[ports.CollaborationService](i)),
			Attachments:   handlers.NewAttachmentHandler(do.MustInvoke[ports.AttachmentService](i), cfg.Blob.MaxUploadBytes),
			Tags:          handlers.NewTagHandler(do.MustInvoke[ports.TagService](i)),
			Health:        handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		users := do.MustInvoke[ports.UserService](i)

		return adapthttp.NewRouter(h, middleware.Authenticate(users),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
