package task

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

const (
	creatorID  int64 = 1
	assigneeID int64 = 2
	strangerID int64 = 3
	adminID    int64 = 99
)

var testNow = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func newTestTask(t *testing.T) *Task {
	t.Helper()

	tk, err := New(MustTitle("Write report"), "Quarterly numbers", creatorID, testNow)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	tk.ID = 10
	return tk
}

func TestNew(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	if tk.Status != StatusCreated {
		t.Errorf("Status = %s, want %s", tk.Status, StatusCreated)
	}
	if tk.CreatorID != creatorID {
		t.Errorf("CreatorID = %d, want %d", tk.CreatorID, creatorID)
	}
	if tk.AssigneeID != nil {
		t.Errorf("AssigneeID = %v, want nil", *tk.AssigneeID)
	}
	if !tk.CreatedAt.Equal(testNow) || !tk.UpdatedAt.Equal(testNow) {
		t.Errorf("timestamps = %v/%v, want %v", tk.CreatedAt, tk.UpdatedAt, testNow)
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	_, err := New(Title{}, "", 0, testNow)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("New() error = %v, want *ValidationError", err)
	}
	for _, f := range []string{"title", "creator_id"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("Fields missing %q: %v", f, verr.Fields)
		}
	}
}

func TestTask_UpdateTitle(t *testing.T) {
	t.Parallel()

	later := testNow.Add(time.Hour)
	newTitle := MustTitle("Write final report")

	tests := []struct {
		name    string
		userID  int64
		isAdmin bool
		assign  bool
		wantErr error
	}{
		{name: "creator", userID: creatorID},
		{name: "assignee", userID: assigneeID, assign: true},
		{name: "admin", userID: adminID, isAdmin: true},
		{name: "stranger", userID: strangerID, wantErr: domain.ErrForbidden},
		{name: "unassigned would-be assignee", userID: assigneeID, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tk := newTestTask(t)
			if tt.assign {
				if err := tk.AssignTo(assigneeID, creatorID, false, testNow); err != nil {
					t.Fatalf("AssignTo() error: %v", err)
				}
			}
			before := tk.Clone()

			err := tk.UpdateTitle(newTitle, tt.userID, tt.isAdmin, later)
			if tt.wantErr != nil {
				var editErr *domain.UnauthorizedTaskEditError
				if !errors.As(err, &editErr) {
					t.Fatalf("UpdateTitle() error = %v, want *UnauthorizedTaskEditError", err)
				}
				if editErr.TaskID != tk.ID || editErr.UserID != tt.userID {
					t.Errorf("error ids = %d/%d, want %d/%d", editErr.TaskID, editErr.UserID, tk.ID, tt.userID)
				}
				if !reflect.DeepEqual(tk, before) {
					t.Errorf("failed UpdateTitle mutated the task: %+v", tk)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateTitle() unexpected error: %v", err)
			}
			if tk.Title != newTitle {
				t.Errorf("Title = %q, want %q", tk.Title, newTitle)
			}
			if !tk.UpdatedAt.Equal(later) {
				t.Errorf("UpdatedAt = %v, want %v", tk.UpdatedAt, later)
			}
		})
	}
}

func TestTask_UpdateTitle_TerminalTaskStillEditable(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	if err := tk.ChangeStatus(StatusCancelled, creatorID, false, testNow); err != nil {
		t.Fatalf("ChangeStatus() error: %v", err)
	}
	if err := tk.UpdateTitle(MustTitle("Renamed"), creatorID, false, testNow); err != nil {
		t.Errorf("UpdateTitle() on cancelled task error = %v, want nil", err)
	}
	if err := tk.UpdateDescription("still editable", creatorID, false, testNow); err != nil {
		t.Errorf("UpdateDescription() on cancelled task error = %v, want nil", err)
	}
}

func TestTask_AssigneeCanWorkButNotReassign(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	if err := tk.AssignTo(assigneeID, creatorID, false, testNow); err != nil {
		t.Fatalf("AssignTo() error: %v", err)
	}

	if err := tk.StartWork(assigneeID, false, testNow); err != nil {
		t.Fatalf("StartWork() by assignee error = %v, want nil", err)
	}
	if tk.Status != StatusInProgress {
		t.Errorf("Status = %s, want %s", tk.Status, StatusInProgress)
	}

	err := tk.AssignTo(strangerID, assigneeID, false, testNow)
	var assignErr *domain.UnauthorizedAssigneeChangeError
	if !errors.As(err, &assignErr) {
		t.Fatalf("AssignTo() by assignee error = %v, want *UnauthorizedAssigneeChangeError", err)
	}
	if *tk.AssigneeID != assigneeID {
		t.Errorf("AssigneeID = %d, want unchanged %d", *tk.AssigneeID, assigneeID)
	}
}

func TestTask_PermissionMatrixForStranger(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)

	if err := tk.UpdateTitle(MustTitle("x"), strangerID, false, testNow); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger edit error = %v, want ErrForbidden", err)
	}
	if err := tk.EnsureDeletableBy(strangerID, false); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger delete error = %v, want ErrForbidden", err)
	}
	if err := tk.AssignTo(strangerID, strangerID, false, testNow); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger reassign error = %v, want ErrForbidden", err)
	}

	if err := tk.EnsureDeletableBy(adminID, true); err != nil {
		t.Errorf("admin delete error = %v, want nil", err)
	}
	if err := tk.AssignTo(strangerID, adminID, true, testNow); err != nil {
		t.Errorf("admin reassign error = %v, want nil", err)
	}
}

func TestTask_ChangeStatus_ChecksPermissionBeforeTransition(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	err := tk.ChangeStatus(StatusCompleted, strangerID, false, testNow)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("ChangeStatus() error = %v, want ErrForbidden before transition check", err)
	}
	if tk.Status != StatusCreated {
		t.Errorf("Status = %s, want unchanged", tk.Status)
	}
}

func TestTask_ChangeStatus_InvalidTarget(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	if err := tk.ChangeStatus("done", creatorID, false, testNow); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ChangeStatus(done) error = %v, want ErrValidation", err)
	}
}

func TestTask_Unassign(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	_ = tk.AssignTo(assigneeID, creatorID, false, testNow)

	if err := tk.Unassign(assigneeID, false, testNow); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Unassign() by assignee error = %v, want ErrForbidden", err)
	}
	if err := tk.Unassign(creatorID, false, testNow); err != nil {
		t.Fatalf("Unassign() by creator error: %v", err)
	}
	if tk.AssigneeID != nil {
		t.Errorf("AssigneeID = %d, want nil", *tk.AssigneeID)
	}
}

func TestTask_Reschedule(t *testing.T) {
	t.Parallel()

	start := testNow
	end := testNow.Add(48 * time.Hour)

	t.Run("sets both bounds", func(t *testing.T) {
		t.Parallel()
		tk := newTestTask(t)
		if err := tk.Reschedule(&start, &end, creatorID, false, testNow); err != nil {
			t.Fatalf("Reschedule() error: %v", err)
		}
		if !tk.DeadlineStart.Equal(start) || !tk.DeadlineEnd.Equal(end) {
			t.Errorf("deadlines = %v/%v, want %v/%v", tk.DeadlineStart, tk.DeadlineEnd, start, end)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		t.Parallel()
		tk := newTestTask(t)
		if err := tk.Reschedule(&end, &start, creatorID, false, testNow); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Reschedule() error = %v, want ErrValidation", err)
		}
		if tk.DeadlineStart != nil || tk.DeadlineEnd != nil {
			t.Error("failed Reschedule mutated deadlines")
		}
	})
}

func TestTask_SetTags(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	if err := tk.SetTags([]int64{3, 1, 3, 2}, creatorID, false, testNow); err != nil {
		t.Fatalf("SetTags() error: %v", err)
	}
	if want := []int64{1, 2, 3}; !reflect.DeepEqual(tk.TagIDs, want) {
		t.Errorf("TagIDs = %v, want %v", tk.TagIDs, want)
	}
	if err := tk.SetTags([]int64{0}, creatorID, false, testNow); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SetTags([0]) error = %v, want ErrValidation", err)
	}
}

func TestTask_Archive(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)

	if err := tk.Archive(assigneeID, false, testNow); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Archive() by non-creator error = %v, want ErrForbidden", err)
	}
	if err := tk.Archive(creatorID, false, testNow); err != nil {
		t.Fatalf("Archive() error: %v", err)
	}
	if !tk.IsArchived() {
		t.Fatal("IsArchived() = false after Archive")
	}

	var archErr *domain.TaskAlreadyArchivedError
	if err := tk.Archive(creatorID, false, testNow); !errors.As(err, &archErr) {
		t.Errorf("second Archive() error = %v, want *TaskAlreadyArchivedError", err)
	}
	if err := tk.UpdateTitle(MustTitle("frozen"), creatorID, false, testNow); !errors.As(err, &archErr) {
		t.Errorf("UpdateTitle() on archived error = %v, want *TaskAlreadyArchivedError", err)
	}
	if err := tk.StartWork(creatorID, false, testNow); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("StartWork() on archived error = %v, want ErrConflict", err)
	}

	if err := tk.Unarchive(creatorID, false, testNow); err != nil {
		t.Fatalf("Unarchive() error: %v", err)
	}
	if tk.IsArchived() {
		t.Error("IsArchived() = true after Unarchive")
	}
	if err := tk.Unarchive(creatorID, false, testNow); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Unarchive() on active task error = %v, want ErrValidation", err)
	}
}

func TestTask_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	_ = tk.AssignTo(assigneeID, creatorID, false, testNow)
	_ = tk.SetTags([]int64{1}, creatorID, false, testNow)

	c := tk.Clone()
	*c.AssigneeID = 77
	c.TagIDs[0] = 77

	if *tk.AssigneeID != assigneeID || tk.TagIDs[0] != 1 {
		t.Error("Clone shares memory with the original")
	}
}
