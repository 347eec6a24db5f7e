package domain

import (
	"fmt"
	"strings"
)

// FileValidationError is the general attachment rejection.
type FileValidationError struct {
	Filename string
	Reason   string
}

func (e *FileValidationError) Error() string {
	return fmt.Sprintf("file '%s' rejected: %s", e.Filename, e.Reason)
}

func (e *FileValidationError) Unwrap() error { return ErrValidation }

// Code implements CodedError.
func (e *FileValidationError) Code() string { return "FILE_VALIDATION_ERROR" }

// UnsupportedFileTypeError is returned when a file's extension is not
// allowed or its content type does not match the extension.
type UnsupportedFileTypeError struct {
	Filename    string
	Extension   string
	ContentType string
	Supported   []string
}

func (e *UnsupportedFileTypeError) Error() string {
	msg := fmt.Sprintf("file '%s' has unsupported type", e.Filename)
	if e.Extension != "" {
		msg = fmt.Sprintf("file '%s' has unsupported type %q for extension %s", e.Filename, e.ContentType, e.Extension)
	}
	if len(e.Supported) > 0 {
		msg += ". Supported types: " + strings.Join(e.Supported, ", ")
	}
	return msg
}

func (e *UnsupportedFileTypeError) Unwrap() error { return ErrValidation }

// Code implements CodedError.
func (e *UnsupportedFileTypeError) Code() string { return "UNSUPPORTED_FILE_TYPE" }

// FileSizeExceededError is returned when a file is larger than Max bytes.
type FileSizeExceededError struct {
	Filename string
	Size     int64
	Max      int64
}

func (e *FileSizeExceededError) Error() string {
	return fmt.Sprintf("file '%s' size (%d bytes) exceeds maximum allowed size (%d bytes)", e.Filename, e.Size, e.Max)
}

func (e *FileSizeExceededError) Unwrap() error { return ErrValidation }

// Code implements CodedError.
func (e *FileSizeExceededError) Code() string { return "FILE_SIZE_EXCEEDED" }

// MaxAttachmentsExceededError is returned when a task already holds the
// maximum number of attachments.
type MaxAttachmentsExceededError struct {
	TaskID  int64
	Current int
	Max     int
}

func (e *MaxAttachmentsExceededError) Error() string {
	return fmt.Sprintf("task %d already has %d attachments, maximum allowed: %d", e.TaskID, e.Current, e.Max)
}

func (e *MaxAttachmentsExceededError) Unwrap() error { return ErrConflict }

// Code implements CodedError.
func (e *MaxAttachmentsExceededError) Code() string { return "MAX_ATTACHMENTS_EXCEEDED" }
