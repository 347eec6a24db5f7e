package task

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// Field names reported in a Change.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldAssignee    = "assignee_id"
	FieldDeadline    = "deadline"
	FieldTags        = "tag_ids"
)

// Change describes one field a Patch modified, with its value before and
// after. Callers turn changes into activity records.
type Change struct {
	Field string
	From  any
	To    any
}

// Patch lists the task fields that may be updated independently. A nil
// field means "leave unchanged". ClearAssignee removes the assignee and
// may not be combined with AssigneeID. Deadlines are replaced as a pair
// when either pointer is set.
type Patch struct {
	Title         *Title
	Description   *string
	Status        *Status
	AssigneeID    *int64
	ClearAssignee bool
	DeadlineStart *time.Time
	DeadlineEnd   *time.Time
	TagIDs        *[]int64
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.AssigneeID == nil && !p.ClearAssignee &&
		p.DeadlineStart == nil && p.DeadlineEnd == nil && p.TagIDs == nil
}

// Apply runs every non-empty field through the matching mutation method on a
// copy of t and returns the updated copy with the list of changes. The first
// failing method aborts the whole patch and t is never modified.
func (p Patch) Apply(t *Task, userID int64, isAdmin bool, now time.Time) (*Task, []Change, error) {
	if p.IsEmpty() {
		return nil, nil, domain.NewValidationError("body", "at least one field must be provided")
	}
	if p.ClearAssignee && p.AssigneeID != nil {
		return nil, nil, domain.NewValidationError("assignee_id", "cannot be set while clearing the assignee")
	}

	// Every patch needs at least edit rights, even one that turns out to be
	// a no-op.
	if err := t.checkEdit(userID, isAdmin); err != nil {
		return nil, nil, err
	}

	next := t.Clone()
	var changes []Change

	if p.Title != nil && *p.Title != next.Title {
		from := next.Title.String()
		if err := next.UpdateTitle(*p.Title, userID, isAdmin, now); err != nil {
			return nil, nil, err
		}
		changes = append(changes, Change{Field: FieldTitle, From: from, To: next.Title.String()})
	}

	if p.Description != nil && *p.Description != next.Description {
		from := next.Description
		if err := next.UpdateDescription(*p.Description, userID, isAdmin, now); err != nil {
			return nil, nil, err
		}
		changes = append(changes, Change{Field: FieldDescription, From: from, To: next.Description})
	}

	if p.DeadlineStart != nil || p.DeadlineEnd != nil {
		from := [2]*time.Time{next.DeadlineStart, next.DeadlineEnd}
		if err := next.Reschedule(p.DeadlineStart, p.DeadlineEnd, userID, isAdmin, now); err != nil {
			return nil, nil, err
		}
		changes = append(changes, Change{Field: FieldDeadline, From: from, To: [2]*time.Time{next.DeadlineStart, next.DeadlineEnd}})
	}

	if p.TagIDs != nil {
		from := slices.Clone(next.TagIDs)
		if err := next.SetTags(*p.TagIDs, userID, isAdmin, now); err != nil {
			return nil, nil, err
		}
		if !slices.Equal(from, next.TagIDs) {
			changes = append(changes, Change{Field: FieldTags, From: from, To: slices.Clone(next.TagIDs)})
		}
	}

	if (p.AssigneeID != nil || p.ClearAssignee) && !p.keepsAssignee(next.AssigneeID) {
		from := clonePtr(next.AssigneeID)
		var err error
		if p.ClearAssignee {
			err = next.Unassign(userID, isAdmin, now)
		} else {
			err = next.AssignTo(*p.AssigneeID, userID, isAdmin, now)
		}
		if err != nil {
			return nil, nil, err
		}
		changes = append(changes, Change{Field: FieldAssignee, From: from, To: clonePtr(next.AssigneeID)})
	}

	// Status last so that a task can be edited and closed in one request.
	if p.Status != nil {
		from := next.Status
		if err := next.ChangeStatus(*p.Status, userID, isAdmin, now); err != nil {
			return nil, nil, err
		}
		changes = append(changes, Change{Field: FieldStatus, From: from, To: next.Status})
	}

	return next, changes, nil
}

// keepsAssignee reports whether the assignee part of p leaves current as is.
func (p Patch) keepsAssignee(current *int64) bool {
	if p.ClearAssignee {
		return current == nil
	}
	return p.AssigneeID != nil && current != nil && *p.AssigneeID == *current
}
