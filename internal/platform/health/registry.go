// Package health tracks the components the readiness probe depends on:
// the database, the blob store and, when enabled, the event broker.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var (
	_ ports.HealthRegistry = (*Registry)(nil)
	_ ports.HealthChecker  = Check{}
)

// DefaultCheckTimeout bounds a single check when no timeout is configured.
const DefaultCheckTimeout = 2 * time.Second

// Registry runs the registered checks concurrently. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	timeout time.Duration
}

type entry struct {
	checker  ports.HealthChecker
	optional bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a required checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.add(entry{checker: checker})
}

// RegisterOptional adds a checker whose failure leaves the service ready.
func (r *Registry) RegisterOptional(checker ports.HealthChecker) {
	r.add(entry{checker: checker, optional: true})
}

func (r *Registry) add(e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// CheckAll runs every check in parallel, each bounded by the registry
// timeout, and returns the results keyed by checker name. A check that
// outlives the timeout reports context.DeadlineExceeded. When two checkers
// share a name the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	entries := slices.Clone(r.entries)
	r.mu.RUnlock()

	errs := make([]error, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			errs[i] = e.checker.HealthCheck(checkCtx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(ports.HealthReport, len(entries))
	for i, e := range entries {
		results[e.checker.Name()] = ports.HealthResult{Err: errs[i], Optional: e.optional}
	}
	return results
}

// Check adapts a function to ports.HealthChecker.
type Check struct {
	CheckName string
	Fn        func(ctx context.Context) error
}

// Name implements ports.HealthChecker.
func (c Check) Name() string { return c.CheckName }

// HealthCheck implements ports.HealthChecker.
func (c Check) HealthCheck(ctx context.Context) error { return c.Fn(ctx) }
