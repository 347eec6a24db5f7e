package domain

import "fmt"

// PermissionDeniedError is the general authorization failure used when no
// task-specific error applies.
type PermissionDeniedError struct {
	Action   string
	Resource string
}

func (e *PermissionDeniedError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("permission denied: cannot %s", e.Action)
	}
	return fmt.Sprintf("permission denied: cannot %s %s", e.Action, e.Resource)
}

func (e *PermissionDeniedError) Unwrap() error { return ErrForbidden }

// Code implements CodedError.
func (e *PermissionDeniedError) Code() string { return "PERMISSION_DENIED" }

// UnauthorizedTaskEditError is returned when a user who is neither the
// creator, the assignee nor an admin tries to modify a task.
type UnauthorizedTaskEditError struct {
	TaskID int64
	UserID int64
}

func (e *UnauthorizedTaskEditError) Error() string {
	return fmt.Sprintf("user %d is not authorized to edit task %d", e.UserID, e.TaskID)
}

func (e *UnauthorizedTaskEditError) Unwrap() error { return ErrForbidden }

// Code implements CodedError.
func (e *UnauthorizedTaskEditError) Code() string { return "UNAUTHORIZED_TASK_EDIT" }

// UnauthorizedTaskDeletionError is returned when a user who is neither the
// creator nor an admin tries to delete or archive a task.
type UnauthorizedTaskDeletionError struct {
	TaskID int64
	UserID int64
}

func (e *UnauthorizedTaskDeletionError) Error() string {
	return fmt.Sprintf("user %d is not authorized to delete task %d", e.UserID, e.TaskID)
}

func (e *UnauthorizedTaskDeletionError) Unwrap() error { return ErrForbidden }

// Code implements CodedError.
func (e *UnauthorizedTaskDeletionError) Code() string { return "UNAUTHORIZED_TASK_DELETION" }

// UnauthorizedAssigneeChangeError is returned when a user who is neither the
// creator nor an admin tries to assign or unassign a task.
type UnauthorizedAssigneeChangeError struct {
	TaskID int64
	UserID int64
}

func (e *UnauthorizedAssigneeChangeError) Error() string {
	return fmt.Sprintf("user %d is not authorized to change assignee for task %d", e.UserID, e.TaskID)
}

func (e *UnauthorizedAssigneeChangeError) Unwrap() error { return ErrForbidden }

// Code implements CodedError.
func (e *UnauthorizedAssigneeChangeError) Code() string { return "UNAUTHORIZED_ASSIGNEE_CHANGE" }
