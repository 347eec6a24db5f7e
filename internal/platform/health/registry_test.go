package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-tracker/internal/platform/health"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
	"github.com/jsamuelsen11/task-tracker/mocks"
)

func check(name string, err error) health.Check {
	return health.Check{CheckName: name, Fn: func(context.Context) error { return err }}
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errDown := errors.New("connection refused")

	tests := []struct {
		name      string
		required  []health.Check
		optional  []health.Check
		want      ports.HealthReport
		wantReady bool
	}{
		{
			name:      "nothing registered",
			want:      ports.HealthReport{},
			wantReady: true,
		},
		{
			name:     "all healthy",
			required: []health.Check{check("database", nil), check("blob-store", nil)},
			optional: []health.Check{check("redis", nil)},
			want: ports.HealthReport{
				"database":   {},
				"blob-store": {},
				"redis":      {Optional: true},
			},
			wantReady: true,
		},
		{
			name:     "required failure",
			required: []health.Check{check("database", errDown), check("blob-store", nil)},
			want: ports.HealthReport{
				"database":   {Err: errDown},
				"blob-store": {},
			},
			wantReady: false,
		},
		{
			name:     "optional failure degrades only",
			required: []health.Check{check("database", nil)},
			optional: []health.Check{check("redis", errDown)},
			want: ports.HealthReport{
				"database": {},
				"redis":    {Err: errDown, Optional: true},
			},
			wantReady: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.required {
				r.Register(c)
			}
			for _, c := range tt.optional {
				r.RegisterOptional(c)
			}

			got := r.CheckAll(context.Background())
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for name, want := range tt.want {
				res, ok := got[name]
				if !ok {
					t.Errorf("missing result for %q", name)
					continue
				}
				if !errors.Is(res.Err, want.Err) {
					t.Errorf("%s err = %v, want %v", name, res.Err, want.Err)
				}
				if res.Optional != want.Optional {
					t.Errorf("%s optional = %v, want %v", name, res.Optional, want.Optional)
				}
			}
			if ready := got.Ready(); ready != tt.wantReady {
				t.Errorf("Ready() = %v, want %v", ready, tt.wantReady)
			}
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("blob-store")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	if res := r.CheckAll(ctx)["blob-store"]; !errors.Is(res.Err, context.Canceled) {
		t.Errorf("blob-store err = %v, want context.Canceled", res.Err)
	}
}

func TestCheckAll_LaterRegistrationWins(t *testing.T) {
	t.Parallel()

	errSecond := errors.New("second")
	r := health.New()
	r.Register(check("database", nil))
	r.RegisterOptional(check("database", errSecond))

	got := r.CheckAll(context.Background())
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if res := got["database"]; !errors.Is(res.Err, errSecond) || !res.Optional {
		t.Errorf("database = %+v, want the optional failing registration", res)
	}
}

func TestCheckAll_RegisterWhileChecking(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Register(check("database", nil))
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}

func TestCheckAll_RunsChecksInParallel(t *testing.T) {
	t.Parallel()

	r := health.New()
	for _, name := range []string{"database", "blob-store", "redis"} {
		r.Register(health.Check{CheckName: name, Fn: func(context.Context) error {
			time.Sleep(50 * time.Millisecond)
			return nil
		}})
	}

	start := time.Now()
	results := r.CheckAll(context.Background())
	if elapsed := time.Since(start); elapsed > 140*time.Millisecond {
		t.Errorf("CheckAll took %v, checks did not overlap", elapsed)
	}
	if len(results) != 3 {
		t.Errorf("got %d results, want 3", len(results))
	}
}

func TestCheckAll_SlowCheckTimesOut(t *testing.T) {
	t.Parallel()

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.RegisterOptional(health.Check{CheckName: "redis", Fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	if res := r.CheckAll(context.Background())["redis"]; !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Errorf("redis err = %v, want context.DeadlineExceeded", res.Err)
	}
}
