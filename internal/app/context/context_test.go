package appctx

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// recordingAction appends "exec:<desc>" and "undo:<desc>" to a shared log.
type recordingAction struct {
	desc    string
	log     *eventLog
	execErr error
	undoErr error
	delay   time.Duration
}

type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}

func (a *recordingAction) Execute(ctx context.Context) error {
	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			a.log.add("canceled:" + a.desc)
			return ctx.Err()
		}
	}
	if a.execErr != nil {
		return a.execErr
	}
	a.log.add("exec:" + a.desc)
	return nil
}

func (a *recordingAction) Rollback(context.Context) error {
	a.log.add("undo:" + a.desc)
	return a.undoErr
}

func (a *recordingAction) Description() string { return a.desc }

func act(log *eventLog, desc string) *recordingAction {
	return &recordingAction{desc: desc, log: log}
}

// --- GetOrFetch / DataProvider ---

func TestGetOrFetch_LoadsOncePerKey(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	calls := map[string]int{}
	fetch := func(key, title string) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			calls[key]++
			return title, nil
		}
	}

	for range 3 {
		got, err := GetOrFetch(rc, "task:1", fetch("task:1", "Write report"))
		if err != nil || got != "Write report" {
			t.Fatalf("GetOrFetch(task:1) = %q, %v", got, err)
		}
	}
	got, _ := GetOrFetch(rc, "task:2", fetch("task:2", "Deploy"))
	if got != "Deploy" {
		t.Errorf("GetOrFetch(task:2) = %q, want Deploy", got)
	}
	if calls["task:1"] != 1 || calls["task:2"] != 1 {
		t.Errorf("fetch calls = %v, want one per key", calls)
	}
}

func TestGetOrFetch_CachesFailures(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	errMissing := errors.New("task 7 not found")
	calls := 0
	fetch := func(context.Context) (*int, error) {
		calls++
		return nil, errMissing
	}

	for range 2 {
		if _, err := GetOrFetch(rc, "task:7", fetch); !errors.Is(err, errMissing) {
			t.Fatalf("GetOrFetch() error = %v, want %v", err, errMissing)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "user:1", func(context.Context) (string, error) { return "alice", nil })
	_, err := GetOrFetch(rc, "user:1", func(context.Context) (int, error) { return 1, nil })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetOrFetch() error = %v, want ErrTypeMismatch", err)
	}
}

func TestDataProvider_SharesCacheWithGetOrFetch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	calls := 0
	p := NewDataProvider("tag:3", func(context.Context) (string, error) {
		calls++
		return "backend", nil
	})

	first, _ := p.Get(rc)
	second, _ := GetOrFetch(rc, "tag:3", func(context.Context) (string, error) {
		t.Fatal("second fetch should hit the cache")
		return "", nil
	})
	if first != "backend" || second != "backend" || calls != 1 {
		t.Errorf("got %q/%q after %d calls, want backend twice after 1", first, second, calls)
	}
}

// --- Stage / queueing ---

func TestStage_ReadYourWrites(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &eventLog{}

	_, _ = GetOrFetch(rc, "task:1", func(context.Context) (string, error) { return "created", nil })
	if err := rc.Stage("task:1", "in_progress", act(log, "save task 1")); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	got, _ := GetOrFetch(rc, "task:1", func(context.Context) (string, error) {
		t.Fatal("staged key should not be fetched")
		return "", nil
	})
	if got != "in_progress" {
		t.Errorf("after Stage got %q, want in_progress", got)
	}
	if len(log.snapshot()) != 0 {
		t.Errorf("Stage executed eagerly: %v", log.snapshot())
	}
}

func TestQueue_RejectsNilAndCommitted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		queue   func(rc *RequestContext) error
		commit  bool
		wantErr error
	}{
		{name: "nil action", queue: func(rc *RequestContext) error { return rc.AddAction(nil) }, wantErr: ErrNilAction},
		{name: "nil in group", queue: func(rc *RequestContext) error {
			return rc.AddGroup(act(&eventLog{}, "a"), nil)
		}, wantErr: ErrNilAction},
		{name: "nil staged", queue: func(rc *RequestContext) error { return rc.Stage("k", 1, nil) }, wantErr: ErrNilAction},
		{name: "action after commit", commit: true, queue: func(rc *RequestContext) error {
			return rc.AddAction(act(&eventLog{}, "late"))
		}, wantErr: ErrAlreadyCommitted},
		{name: "group after commit", commit: true, queue: func(rc *RequestContext) error {
			return rc.AddGroup(act(&eventLog{}, "late"))
		}, wantErr: ErrAlreadyCommitted},
		{name: "stage after commit", commit: true, queue: func(rc *RequestContext) error {
			return rc.Stage("task:1", "late", act(&eventLog{}, "late"))
		}, wantErr: ErrAlreadyCommitted},
		{name: "second commit", commit: true, queue: func(rc *RequestContext) error {
			return rc.Commit(context.Background())
		}, wantErr: ErrAlreadyCommitted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rc := New(context.Background())
			if tt.commit {
				if err := rc.Commit(context.Background()); err != nil {
					t.Fatalf("Commit() error = %v", err)
				}
			}
			if err := tt.queue(rc); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStage_AfterCommitKeepsCache(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "task:1", func(context.Context) (string, error) { return "created", nil })
	_ = rc.Commit(context.Background())
	_ = rc.Stage("task:1", "completed", act(&eventLog{}, "late"))

	got, _ := GetOrFetch(rc, "task:1", func(context.Context) (string, error) { return "refetched", nil })
	if got != "created" {
		t.Errorf("cache = %q, want created", got)
	}
}

// --- Commit ---

func TestCommit_RunsInOrder(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &eventLog{}

	_ = rc.Stage("task:1", "next", act(log, "save task"))
	_ = rc.AddAction(act(log, "record activity"))
	_ = rc.AddAction(act(log, "delete blob"))

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	want := []string{"exec:save task", "exec:record activity", "exec:delete blob"}
	if got := log.snapshot(); !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestCommit_FailureRollsBackInReverse(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &eventLog{}
	errDisk := errors.New("disk full")

	_ = rc.AddAction(act(log, "store blob"))
	undoFails := act(log, "insert attachment")
	undoFails.undoErr = errors.New("row locked")
	_ = rc.AddAction(undoFails)
	_ = rc.AddAction(&recordingAction{desc: "record activity", log: log, execErr: errDisk})
	_ = rc.AddAction(act(log, "never runs"))

	err := rc.Commit(context.Background())
	if !errors.Is(err, errDisk) {
		t.Fatalf("Commit() error = %v, want %v", err, errDisk)
	}
	if want := "executing record activity: disk full"; err.Error() != want {
		t.Errorf("Commit() error = %q, want %q", err, want)
	}
	want := []string{
		"exec:store blob",
		"exec:insert attachment",
		"undo:insert attachment",
		"undo:store blob",
	}
	if got := log.snapshot(); !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestCommit_EmptyQueue(t *testing.T) {
	t.Parallel()
	if err := New(context.Background()).Commit(context.Background()); err != nil {
		t.Errorf("Commit() error = %v, want nil", err)
	}
}

func TestPending(t *testing.T) {
	t.Parallel()

	log := &eventLog{}
	rc := New(context.Background())
	if got := rc.Pending(); got != 0 {
		t.Fatalf("Pending() on empty = %d, want 0", got)
	}

	_ = rc.AddAction(act(log, "save task 1"))
	_ = rc.AddGroup(act(log, "activity a"), act(log, "activity b"))
	if got := rc.Pending(); got != 2 {
		t.Errorf("Pending() = %d, want 2 (a group counts once)", got)
	}

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if got := rc.Pending(); got != 0 {
		t.Errorf("Pending() after Commit = %d, want 0", got)
	}
}

// --- groups ---

func TestGroup_RunsMembersConcurrently(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &eventLog{}

	members := make([]*recordingAction, 5)
	for i := range members {
		members[i] = &recordingAction{desc: "activity", log: log, delay: 40 * time.Millisecond}
	}
	_ = rc.AddGroup(members[0], members[1], members[2], members[3], members[4])

	start := time.Now()
	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Errorf("group took %v, members did not overlap", elapsed)
	}
	if n := len(log.snapshot()); n != 5 {
		t.Errorf("executed %d members, want 5", n)
	}
}

func TestGroup_FailureUndoesFinishedMembersAndEarlierSteps(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &eventLog{}
	errBoom := errors.New("boom")

	_ = rc.AddAction(act(log, "save task"))
	_ = rc.AddGroup(
		act(log, "title changed"),
		&recordingAction{desc: "status changed", log: log, execErr: errBoom, delay: 10 * time.Millisecond},
		&recordingAction{desc: "slow", log: log, delay: time.Second},
	)

	err := rc.Commit(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("Commit() error = %v, want %v", err, errBoom)
	}

	got := log.snapshot()
	for _, want := range []string{"exec:save task", "exec:title changed", "undo:title changed", "canceled:slow", "undo:save task"} {
		if !slices.Contains(got, want) {
			t.Errorf("events %v missing %q", got, want)
		}
	}
	if slices.Contains(got, "undo:status changed") || slices.Contains(got, "undo:slow") {
		t.Errorf("events %v roll back members that never finished", got)
	}
	if got[len(got)-1] != "undo:save task" {
		t.Errorf("last event = %q, want undo:save task", got[len(got)-1])
	}
}

func TestGroup_Description(t *testing.T) {
	t.Parallel()
	log := &eventLog{}

	tests := []struct {
		name string
		g    *actionGroup
		want string
	}{
		{name: "empty", g: &actionGroup{}, want: "empty group"},
		{name: "single", g: &actionGroup{actions: []domain.Action{act(log, "record activity")}}, want: "record activity"},
		{name: "several", g: &actionGroup{actions: []domain.Action{act(log, "a"), act(log, "b")}}, want: "group of 2 (a, ...)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.g.description(); got != tt.want {
				t.Errorf("description() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Execute / request scoping ---

func TestExecute_BypassesQueueAndWorksAfterCommit(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &eventLog{}

	_ = rc.Commit(context.Background())
	if err := rc.Execute(act(log, "publish activity")); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if err := rc.Execute(nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("Execute(nil) error = %v, want ErrNilAction", err)
	}
	if got := log.snapshot(); !slices.Equal(got, []string{"exec:publish activity"}) {
		t.Errorf("events = %v", got)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns the attached context", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		ctx := WithRequestContext(context.Background(), rc)
		if got := FromContext(ctx); got != rc {
			t.Errorf("FromContext() = %p, want %p", got, rc)
		}
	})

	t.Run("falls back to a fresh context", func(t *testing.T) {
		t.Parallel()
		a := FromContext(context.Background())
		b := FromContext(context.Background())
		if a == nil || b == nil || a == b {
			t.Errorf("FromContext() without attachment should return distinct fresh contexts")
		}
	})
}

func TestAddAction_ConcurrentQueueing(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &eventLog{}

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = rc.AddAction(act(log, "activity"))
		}()
	}
	wg.Wait()

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if n := len(log.snapshot()); n != 50 {
		t.Errorf("executed %d actions, want 50", n)
	}
}
