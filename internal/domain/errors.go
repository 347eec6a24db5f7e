package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnavailable     = errors.New("unavailable")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Common field-level validation messages.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// CodedError is implemented by every typed domain error. Code returns a
// stable, machine-readable identifier such as "TASK_NOT_FOUND".
type CodedError interface {
	error
	Code() string
}

// CodeInternal is reported by ErrorCode for errors outside the taxonomy.
const CodeInternal = "INTERNAL_ERROR"

// ErrorCode returns the code of the first CodedError in err's chain, or
// CodeInternal when there is none.
func ErrorCode(err error) string {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return CodeInternal
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError is shorthand for a single-field ValidationError.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Code implements CodedError.
func (e *ValidationError) Code() string { return "VALIDATION_ERROR" }

// InvalidEmailError reports a malformed email address.
type InvalidEmailError struct {
	Value string
}

func (e *InvalidEmailError) Error() string {
	if e.Value == "" {
		return "invalid email format: email must not be empty"
	}
	return fmt.Sprintf("invalid email format: %s", e.Value)
}

func (e *InvalidEmailError) Unwrap() error { return ErrValidation }

// Code implements CodedError.
func (e *InvalidEmailError) Code() string { return "INVALID_EMAIL" }

// InvalidDurationError reports a time-log duration outside [0, 86400] seconds.
type InvalidDurationError struct {
	Seconds int64
	Reason  string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %d: %s", e.Seconds, e.Reason)
}

func (e *InvalidDurationError) Unwrap() error { return ErrValidation }

// Code implements CodedError.
func (e *InvalidDurationError) Code() string { return "INVALID_DURATION" }

// NotFoundError reports a missing entity other than a task.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Code implements CodedError.
func (e *NotFoundError) Code() string { return "NOT_FOUND" }
