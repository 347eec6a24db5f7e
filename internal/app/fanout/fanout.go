// Package fanout runs one function over many items with bounded
// concurrency and returns the results in input order. Bulk task operations
// use it so that every item gets its own outcome.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight.
// Failures never stop the other items. Items still waiting for a slot
// when ctx is done record ctx.Err() without calling fn.
//
// An empty input yields an empty, non-nil slice. maxWorkers below 1 is
// treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Errors returns the failed results keyed by input index.
func Errors[R any](results []Result[R]) map[int]error {
	out := make(map[int]error)
	for i, r := range results {
		if r.Err != nil {
			out[i] = r.Err
		}
	}
	return out
}
