// Package activity describes the audit trail of a task. Activities are
// append-only and built by the caller after a successful mutation; nothing
// in the domain writes them.
package activity

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
)

// Activity is one entry in a task's audit trail. Payload values are plain
// JSON-compatible values.
type Activity struct {
	ID        int64
	TaskID    int64
	UserID    int64
	Type      Type
	Payload   map[string]any
	CreatedAt time.Time
}

// New builds an unsaved activity.
func New(taskID, userID int64, typ Type, payload map[string]any, now time.Time) (*Activity, error) {
	fields := make(map[string]string)
	if taskID <= 0 {
		fields["task_id"] = "must be positive"
	}
	if userID <= 0 {
		fields["user_id"] = "must be positive"
	}
	if !typ.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", typ)
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return &Activity{TaskID: taskID, UserID: userID, Type: typ, Payload: payload, CreatedAt: now}, nil
}

func build(taskID, userID int64, typ Type, payload map[string]any, now time.Time) Activity {
	return Activity{TaskID: taskID, UserID: userID, Type: typ, Payload: payload, CreatedAt: now}
}

// TaskCreated describes the creation of t.
func TaskCreated(t *task.Task, userID int64, now time.Time) Activity {
	return build(t.ID, userID, TypeTaskCreated, map[string]any{
		"title":  t.Title.String(),
		"status": t.Status.String(),
	}, now)
}

// TaskDeleted describes the deletion of t.
func TaskDeleted(t *task.Task, userID int64, now time.Time) Activity {
	return build(t.ID, userID, TypeTaskDeleted, map[string]any{"title": t.Title.String()}, now)
}

// TaskArchived describes archiving t.
func TaskArchived(t *task.Task, userID int64, now time.Time) Activity {
	return build(t.ID, userID, TypeTaskArchived, nil, now)
}

// TaskUnarchived describes restoring t from the archive.
func TaskUnarchived(t *task.Task, userID int64, now time.Time) Activity {
	return build(t.ID, userID, TypeTaskUnarchived, nil, now)
}

// FromChange maps a task.Change to the matching activity type: status
// changes and assignee changes get their own types, every other field is a
// generic update.
func FromChange(taskID, userID int64, c task.Change, now time.Time) Activity {
	switch c.Field {
	case task.FieldStatus:
		return build(taskID, userID, TypeTaskStatusChanged, map[string]any{
			"from": fmt.Sprint(c.From),
			"to":   fmt.Sprint(c.To),
		}, now)
	case task.FieldAssignee:
		prev, _ := c.From.(*int64)
		next, _ := c.To.(*int64)
		if next == nil {
			return build(taskID, userID, TypeTaskUnassigned, map[string]any{
				"previous_assignee_id": derefOrNil(prev),
			}, now)
		}
		return build(taskID, userID, TypeTaskAssigned, map[string]any{
			"assignee_id":          *next,
			"previous_assignee_id": derefOrNil(prev),
		}, now)
	case task.FieldDeadline:
		return build(taskID, userID, TypeTaskUpdated, map[string]any{
			"field": c.Field,
			"from":  deadlinePayload(c.From),
			"to":    deadlinePayload(c.To),
		}, now)
	default:
		return build(taskID, userID, TypeTaskUpdated, map[string]any{
			"field": c.Field,
			"from":  c.From,
			"to":    c.To,
		}, now)
	}
}

// FromChanges maps every change in order.
func FromChanges(taskID, userID int64, changes []task.Change, now time.Time) []Activity {
	out := make([]Activity, 0, len(changes))
	for _, c := range changes {
		out = append(out, FromChange(taskID, userID, c, now))
	}
	return out
}

// CommentAdded describes a new comment.
func CommentAdded(c *comment.Comment) Activity {
	return build(c.TaskID, c.AuthorID, TypeCommentAdded, map[string]any{"comment_id": c.ID}, c.CreatedAt)
}

// AttachmentAdded describes an admitted attachment.
func AttachmentAdded(a *attachment.Attachment) Activity {
	return build(a.TaskID, a.UploaderID, TypeAttachmentAdded, map[string]any{
		"attachment_id": a.ID,
		"filename":      a.Filename,
		"size_bytes":    a.SizeBytes,
	}, a.UploadedAt)
}

// AttachmentDeleted describes removing a by userID.
func AttachmentDeleted(a *attachment.Attachment, userID int64, now time.Time) Activity {
	return build(a.TaskID, userID, TypeAttachmentDeleted, map[string]any{
		"attachment_id": a.ID,
		"filename":      a.Filename,
	}, now)
}

// TimeLogAdded describes a logged interval.
func TimeLogAdded(l *timelog.TimeLog) Activity {
	return build(l.TaskID, l.UserID, TypeTimeLogAdded, map[string]any{
		"time_log_id":      l.ID,
		"duration_seconds": l.Duration.Seconds(),
	}, l.LoggedAt)
}

func derefOrNil(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func deadlinePayload(v any) map[string]any {
	pair, _ := v.([2]*time.Time)
	return map[string]any{
		"start": formatTime(pair[0]),
		"end":   formatTime(pair[1]),
	}
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
