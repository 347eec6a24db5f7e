package domain

import "fmt"

// TaskNotFoundError is returned when a task lookup finds nothing.
type TaskNotFoundError struct {
	TaskID int64
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.TaskID)
}

func (e *TaskNotFoundError) Unwrap() error { return ErrNotFound }

// Code implements CodedError.
func (e *TaskNotFoundError) Code() string { return "TASK_NOT_FOUND" }

// TaskAlreadyArchivedError is returned when an archived task is modified or
// archived a second time.
type TaskAlreadyArchivedError struct {
	TaskID int64
}

func (e *TaskAlreadyArchivedError) Error() string {
	return fmt.Sprintf("task %d is archived and cannot be modified", e.TaskID)
}

func (e *TaskAlreadyArchivedError) Unwrap() error { return ErrConflict }

// Code implements CodedError.
func (e *TaskAlreadyArchivedError) Code() string { return "TASK_ALREADY_ARCHIVED" }

// InvalidTaskStatusTransitionError is returned when the lifecycle table
// forbids moving a task from its current status to the requested one.
// From and To hold the status names.
type InvalidTaskStatusTransitionError struct {
	TaskID int64
	From   string
	To     string
}

func (e *InvalidTaskStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from '%s' to '%s' for task %d", e.From, e.To, e.TaskID)
}

func (e *InvalidTaskStatusTransitionError) Unwrap() error { return ErrConflict }

// Code implements CodedError.
func (e *InvalidTaskStatusTransitionError) Code() string { return "INVALID_STATUS_TRANSITION" }

// TaskTitleTooLongError is returned when a trimmed title exceeds Max runes.
type TaskTitleTooLongError struct {
	Length int
	Max    int
}

func (e *TaskTitleTooLongError) Error() string {
	return fmt.Sprintf("task title too long: %d characters (max %d)", e.Length, e.Max)
}

func (e *TaskTitleTooLongError) Unwrap() error { return ErrValidation }

// Code implements CodedError.
func (e *TaskTitleTooLongError) Code() string { return "TASK_TITLE_TOO_LONG" }
