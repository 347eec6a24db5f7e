// Package appctx carries per-request state for the application services:
// a read cache so each entity is loaded once per request, and a queue of
// write actions that commit in order and roll back in reverse on failure.
//
// The HTTP layer attaches one RequestContext per request; services pick it
// up with FromContext:
//
//	rc := appctx.FromContext(ctx)
//	t, err := appctx.GetOrFetch(rc, "task:123", fetchTask)
//	// mutate a copy of t, then
//	err = rc.Stage("task:123", next, &saveTaskAction{...})
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned when a write is queued or Commit is
	// called after Commit has already run.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil action is queued.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch means one cache key was read with two different types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext wraps the request's context.Context with a read cache and
// a write queue. It belongs to one request. Reads through GetOrFetch are
// meant for the request goroutine; queueing and Commit may be called from
// several goroutines.
type RequestContext struct {
	context.Context
	cache     map[string]cacheEntry
	queueMu   sync.Mutex
	items     []actionItem
	committed bool
}

// cacheEntry remembers a fetch result, errors included, so a failing
// lookup is not retried within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New returns an empty RequestContext over ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type ctxKey struct{}

// WithRequestContext returns a copy of ctx carrying rc. Middleware uses it so
// that every service call within one HTTP request shares a single cache and
// commit queue.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored by WithRequestContext, or a
// fresh one wrapping ctx when none is present.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(ctxKey{}).(*RequestContext); ok && rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the value cached under key, calling fetchFn on the
// first lookup. A key must always be read with the same T; a mismatch
// returns ErrTypeMismatch. Not safe for concurrent use.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// DataProvider binds a key to its fetch function so callers cannot pair
// the key with the wrong type.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider returns a DataProvider for key.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get is GetOrFetch with the provider's key and function.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetchFn)
}

// Stage caches entity under key and queues action in one step, so later
// reads of key within the request see the pending write. The cache entry
// is only replaced when the action was queued.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(&singleAction{action: action}, func() {
		rc.cache[key] = cacheEntry{value: entity}
	})
}

// Execute runs action now with the request's context. It bypasses the
// queue, is never rolled back and keeps working after Commit, which is
// where post-commit side effects such as publishing and blob cleanup run.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
