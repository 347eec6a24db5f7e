// Package task models a unit of work and the rules that govern it: the
// lifecycle state machine, who may change what, and partial updates.
//
// Every mutation method checks permission and state before writing any
// field, so a method that returns an error leaves the task exactly as it
// was. Methods never persist anything and never record activity; the
// caller does both after observing success.
package task

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// Task is a tracked unit of work. Relationships to users and tags are held
// by id only.
type Task struct {
	ID            int64
	Title         Title
	Description   string
	Status        Status
	CreatorID     int64
	AssigneeID    *int64
	DeadlineStart *time.Time
	DeadlineEnd   *time.Time
	TagIDs        []int64
	ArchivedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	// Version counts stored writes. Repositories refuse an update carrying
	// a stale Version.
	Version int64
}

// New builds an unsaved task in StatusCreated owned by creatorID.
func New(title Title, description string, creatorID int64, now time.Time) (*Task, error) {
	fields := make(map[string]string)
	if title.IsZero() {
		fields["title"] = domain.MsgRequired
	}
	if creatorID <= 0 {
		fields["creator_id"] = "must be positive"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &Task{
		Title:       title,
		Description: description,
		Status:      StatusCreated,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsArchived reports whether the task has been archived.
func (t *Task) IsArchived() bool {
	return t.ArchivedAt != nil
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	c := *t
	c.AssigneeID = clonePtr(t.AssigneeID)
	c.DeadlineStart = clonePtr(t.DeadlineStart)
	c.DeadlineEnd = clonePtr(t.DeadlineEnd)
	c.ArchivedAt = clonePtr(t.ArchivedAt)
	c.TagIDs = slices.Clone(t.TagIDs)
	return &c
}

// UpdateTitle replaces the title. Terminal tasks remain editable; only
// permission is checked.
func (t *Task) UpdateTitle(title Title, userID int64, isAdmin bool, now time.Time) error {
	if err := t.checkEdit(userID, isAdmin); err != nil {
		return err
	}
	if title.IsZero() {
		return domain.NewValidationError("title", domain.MsgRequired)
	}
	t.Title = title
	t.UpdatedAt = now
	return nil
}

// UpdateDescription replaces the free-text description.
func (t *Task) UpdateDescription(description string, userID int64, isAdmin bool, now time.Time) error {
	if err := t.checkEdit(userID, isAdmin); err != nil {
		return err
	}
	t.Description = description
	t.UpdatedAt = now
	return nil
}

// Reschedule replaces both deadline bounds. Either may be nil; when both are
// set start must not be after end.
func (t *Task) Reschedule(start, end *time.Time, userID int64, isAdmin bool, now time.Time) error {
	if err := t.checkEdit(userID, isAdmin); err != nil {
		return err
	}
	if start != nil && end != nil && start.After(*end) {
		return domain.NewValidationError("deadline_start", "must not be after deadline_end")
	}
	t.DeadlineStart = clonePtr(start)
	t.DeadlineEnd = clonePtr(end)
	t.UpdatedAt = now
	return nil
}

// ChangeStatus moves the task to a new lifecycle state after checking edit
// permission and the transition table.
func (t *Task) ChangeStatus(to Status, userID int64, isAdmin bool, now time.Time) error {
	if err := t.checkEdit(userID, isAdmin); err != nil {
		return err
	}
	if !to.IsValid() {
		return domain.NewValidationError("status", "invalid: "+string(to))
	}
	if err := ValidateTransition(t, to); err != nil {
		return err
	}
	t.Status = to
	t.UpdatedAt = now
	return nil
}

// StartWork is ChangeStatus(StatusInProgress).
func (t *Task) StartWork(userID int64, isAdmin bool, now time.Time) error {
	return t.ChangeStatus(StatusInProgress, userID, isAdmin, now)
}

// AssignTo sets the assignee. Only the creator or an admin may do this;
// whether assigneeID names an existing user is the caller's concern.
func (t *Task) AssignTo(assigneeID, userID int64, isAdmin bool, now time.Time) error {
	if err := t.checkAssignee(userID, isAdmin); err != nil {
		return err
	}
	if assigneeID <= 0 {
		return domain.NewValidationError("assignee_id", "must be positive")
	}
	t.AssigneeID = &assigneeID
	t.UpdatedAt = now
	return nil
}

// Unassign clears the assignee.
func (t *Task) Unassign(userID int64, isAdmin bool, now time.Time) error {
	if err := t.checkAssignee(userID, isAdmin); err != nil {
		return err
	}
	t.AssigneeID = nil
	t.UpdatedAt = now
	return nil
}

// SetTags replaces the tag set. Duplicate ids are collapsed and the result
// is sorted.
func (t *Task) SetTags(tagIDs []int64, userID int64, isAdmin bool, now time.Time) error {
	if err := t.checkEdit(userID, isAdmin); err != nil {
		return err
	}
	for _, id := range tagIDs {
		if id <= 0 {
			return domain.NewValidationError("tag_ids", "must contain positive ids")
		}
	}
	ids := slices.Clone(tagIDs)
	slices.Sort(ids)
	t.TagIDs = slices.Compact(ids)
	t.UpdatedAt = now
	return nil
}

// EnsureDeletableBy returns a *domain.UnauthorizedTaskDeletionError unless
// userID may delete the task.
func (t *Task) EnsureDeletableBy(userID int64, isAdmin bool) error {
	if !CanDelete(userID, t, isAdmin) {
		return &domain.UnauthorizedTaskDeletionError{TaskID: t.ID, UserID: userID}
	}
	return nil
}

// Archive hides the task from default listings and freezes it. It needs the
// same permission as deletion.
func (t *Task) Archive(userID int64, isAdmin bool, now time.Time) error {
	if err := t.EnsureDeletableBy(userID, isAdmin); err != nil {
		return err
	}
	if t.IsArchived() {
		return &domain.TaskAlreadyArchivedError{TaskID: t.ID}
	}
	t.ArchivedAt = &now
	t.UpdatedAt = now
	return nil
}

// Unarchive reverses Archive.
func (t *Task) Unarchive(userID int64, isAdmin bool, now time.Time) error {
	if err := t.EnsureDeletableBy(userID, isAdmin); err != nil {
		return err
	}
	if !t.IsArchived() {
		return domain.NewValidationError("archived", "task is not archived")
	}
	t.ArchivedAt = nil
	t.UpdatedAt = now
	return nil
}

func (t *Task) checkEdit(userID int64, isAdmin bool) error {
	if !CanEdit(userID, t, isAdmin) {
		return &domain.UnauthorizedTaskEditError{TaskID: t.ID, UserID: userID}
	}
	return t.checkActive()
}

func (t *Task) checkAssignee(userID int64, isAdmin bool) error {
	if !CanChangeAssignee(userID, t, isAdmin) {
		return &domain.UnauthorizedAssigneeChangeError{TaskID: t.ID, UserID: userID}
	}
	return t.checkActive()
}

func (t *Task) checkActive() error {
	if t.IsArchived() {
		return &domain.TaskAlreadyArchivedError{TaskID: t.ID}
	}
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
