package ports

import "context"

// HealthChecker is a dependency the readiness probe can ping: the database,
// the blob store or the event broker.
type HealthChecker interface {
	// Name is the key the check is reported under, e.g. "database".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honour
	// ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthResult is one checker's outcome.
type HealthResult struct {
	Err error

	// Optional checks degrade the service when they fail but do not make
	// it unready.
	Optional bool
}

// HealthReport maps checker names to their results.
type HealthReport map[string]HealthResult

// Ready reports whether every required check passed.
func (r HealthReport) Ready() bool {
	for _, res := range r {
		if res.Err != nil && !res.Optional {
			return false
		}
	}
	return true
}

// HealthRegistry collects checkers for GET /health/ready.
type HealthRegistry interface {
	// Register adds a checker the service cannot work without.
	Register(checker HealthChecker)

	// RegisterOptional adds a checker whose failure only loses a side
	// effect, such as activity events on the broker.
	RegisterOptional(checker HealthChecker)

	// CheckAll runs every checker and returns the results by name.
	CheckAll(ctx context.Context) HealthReport
}
