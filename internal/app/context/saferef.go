package appctx

import "sync"

// SafeRef guards a value shared by goroutines, typically a tally filled in
// by fan-out workers. Reads take a shared lock, writes an exclusive one.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef returns a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the value. For maps and slices the copy shares
// backing storage, so read it only after writers are done.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the value.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	r.val = val
	r.mu.Unlock()
}

// Update mutates the value in place under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
