package activity

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
)

var testNow = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := New(1, 2, TypeCommentAdded, map[string]any{"comment_id": int64(5)}, testNow)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if a.Type != TypeCommentAdded || a.TaskID != 1 || a.UserID != 2 {
		t.Errorf("New() = %+v", a)
	}

	_, err = New(0, 0, "bogus", nil, testNow)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("New() error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("Fields = %v, want task_id, user_id and type", verr.Fields)
	}
}

func TestFromChange(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		change      task.Change
		wantType    Type
		wantPayload map[string]any
	}{
		{
			name:        "status",
			change:      task.Change{Field: task.FieldStatus, From: task.StatusCreated, To: task.StatusInProgress},
			wantType:    TypeTaskStatusChanged,
			wantPayload: map[string]any{"from": "created", "to": "in_progress"},
		},
		{
			name:        "assigned",
			change:      task.Change{Field: task.FieldAssignee, From: (*int64)(nil), To: int64Ptr(7)},
			wantType:    TypeTaskAssigned,
			wantPayload: map[string]any{"assignee_id": int64(7), "previous_assignee_id": nil},
		},
		{
			name:        "reassigned",
			change:      task.Change{Field: task.FieldAssignee, From: int64Ptr(3), To: int64Ptr(7)},
			wantType:    TypeTaskAssigned,
			wantPayload: map[string]any{"assignee_id": int64(7), "previous_assignee_id": int64(3)},
		},
		{
			name:        "unassigned",
			change:      task.Change{Field: task.FieldAssignee, From: int64Ptr(3), To: (*int64)(nil)},
			wantType:    TypeTaskUnassigned,
			wantPayload: map[string]any{"previous_assignee_id": int64(3)},
		},
		{
			name:     "deadline",
			change:   task.Change{Field: task.FieldDeadline, From: [2]*time.Time{}, To: [2]*time.Time{&start, nil}},
			wantType: TypeTaskUpdated,
			wantPayload: map[string]any{
				"field": task.FieldDeadline,
				"from":  map[string]any{"start": nil, "end": nil},
				"to":    map[string]any{"start": "2026-03-01T09:00:00Z", "end": nil},
			},
		},
		{
			name:        "title",
			change:      task.Change{Field: task.FieldTitle, From: "a", To: "b"},
			wantType:    TypeTaskUpdated,
			wantPayload: map[string]any{"field": task.FieldTitle, "from": "a", "to": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FromChange(9, 1, tt.change, testNow)
			if got.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", got.Type, tt.wantType)
			}
			if got.TaskID != 9 || got.UserID != 1 || !got.CreatedAt.Equal(testNow) {
				t.Errorf("activity = %+v", got)
			}
			if !reflect.DeepEqual(got.Payload, tt.wantPayload) {
				t.Errorf("Payload = %#v, want %#v", got.Payload, tt.wantPayload)
			}
		})
	}
}

func TestFromChanges_PreservesOrder(t *testing.T) {
	t.Parallel()

	changes := []task.Change{
		{Field: task.FieldTitle, From: "a", To: "b"},
		{Field: task.FieldStatus, From: task.StatusCreated, To: task.StatusCompleted},
	}
	got := FromChanges(1, 1, changes, testNow)
	if len(got) != 2 || got[0].Type != TypeTaskUpdated || got[1].Type != TypeTaskStatusChanged {
		t.Errorf("FromChanges() = %+v", got)
	}
	if out := FromChanges(1, 1, nil, testNow); out == nil || len(out) != 0 {
		t.Errorf("FromChanges(nil) = %#v, want empty slice", out)
	}
}

func TestTaskCreatedAndCommentAdded(t *testing.T) {
	t.Parallel()

	tk, _ := task.New(task.MustTitle("Ship it"), "", 1, testNow)
	tk.ID = 3

	created := TaskCreated(tk, 1, testNow)
	if created.Type != TypeTaskCreated || created.Payload["title"] != "Ship it" || created.Payload["status"] != "created" {
		t.Errorf("TaskCreated() = %+v", created)
	}

	c, _ := comment.New(3, 2, "nice", testNow)
	c.ID = 11
	added := CommentAdded(c)
	if added.Type != TypeCommentAdded || added.UserID != 2 || added.Payload["comment_id"] != int64(11) {
		t.Errorf("CommentAdded() = %+v", added)
	}
}

func TestType_IsValid(t *testing.T) {
	t.Parallel()

	if !TypeTimeLogAdded.IsValid() {
		t.Error("TypeTimeLogAdded.IsValid() = false")
	}
	if Type("task_exploded").IsValid() {
		t.Error("unknown type IsValid() = true")
	}
}
