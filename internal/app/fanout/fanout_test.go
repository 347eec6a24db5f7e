package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/app/fanout"
)

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	got := fanout.Run(context.Background(), 4, []int64(nil), func(context.Context, int64) (string, error) {
		t.Fatal("fn called for empty input")
		return "", nil
	})
	if got == nil || len(got) != 0 {
		t.Fatalf("Run(empty) = %v, want empty non-nil slice", got)
	}
}

func TestRun_KeepsInputOrderAndPerItemErrors(t *testing.T) {
	t.Parallel()

	errMissing := errors.New("task missing")
	ids := []int64{11, 12, 13, 14, 15, 16}

	got := fanout.Run(context.Background(), 2, ids, func(_ context.Context, id int64) (string, error) {
		// Finish in reverse order to prove results are not appended.
		time.Sleep(time.Duration(20-id) * time.Millisecond)
		if id%3 == 0 {
			return "", fmt.Errorf("task %d: %w", id, errMissing)
		}
		return fmt.Sprintf("task-%d", id), nil
	})

	if len(got) != len(ids) {
		t.Fatalf("len(Run()) = %d, want %d", len(got), len(ids))
	}
	for i, id := range ids {
		if id%3 == 0 {
			if !errors.Is(got[i].Err, errMissing) {
				t.Errorf("result[%d].Err = %v, want errMissing", i, got[i].Err)
			}
			continue
		}
		if got[i].Err != nil || got[i].Value != fmt.Sprintf("task-%d", id) {
			t.Errorf("result[%d] = %+v, want task-%d", i, got[i], id)
		}
	}

	errs := fanout.Errors(got)
	if len(errs) != 2 {
		t.Fatalf("Errors() = %v, want 2 entries", errs)
	}
	if _, ok := errs[1]; !ok {
		t.Errorf("Errors() missing index 1 (task 12)")
	}
	if _, ok := errs[4]; !ok {
		t.Errorf("Errors() missing index 4 (task 15)")
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		wantMax    int64
	}{
		{name: "three workers", maxWorkers: 3, wantMax: 3},
		{name: "zero treated as one", maxWorkers: 0, wantMax: 1},
		{name: "more workers than items", maxWorkers: 50, wantMax: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inFlight, peak atomic.Int64
			items := make([]int, 10)
			fanout.Run(context.Background(), tt.maxWorkers, items, func(context.Context, int) (struct{}, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return struct{}{}, nil
			})

			if p := peak.Load(); p > tt.wantMax {
				t.Errorf("peak concurrency = %d, want <= %d", p, tt.wantMax)
			}
		})
	}
}

func TestRun_CanceledContextSkipsWaitingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	got := fanout.Run(ctx, 1, []int{1, 2, 3, 4}, func(context.Context, int) (int, error) {
		calls.Add(1)
		cancel()
		return 1, nil
	})

	if c := calls.Load(); c != 1 {
		t.Errorf("fn called %d times, want 1", c)
	}
	if got[0].Err != nil {
		t.Errorf("result[0].Err = %v, want nil", got[0].Err)
	}
	for i := 1; i < len(got); i++ {
		if !errors.Is(got[i].Err, context.Canceled) {
			t.Errorf("result[%d].Err = %v, want context.Canceled", i, got[i].Err)
		}
	}
}
