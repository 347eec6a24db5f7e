package attachment

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// Admission limits.
const (
	MaxSizeBytes int64 = 10 * 1024 * 1024
	MaxPerTask         = 10
)

// allowedTypes binds every accepted extension to the content type a file
// with that extension must declare.
var allowedTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// SupportedExtensions returns the accepted extensions in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(allowedTypes))
	for ext := range allowedTypes {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// ContentTypeFor returns the content type bound to filename's extension.
func ContentTypeFor(filename string) (string, bool) {
	ct, ok := allowedTypes[strings.ToLower(filepath.Ext(filename))]
	return ct, ok
}

// ValidateFile checks, in order, that the extension is supported and matches
// contentType, and that sizeBytes does not exceed MaxSizeBytes.
// Content-type parameters such as "; charset=utf-8" are ignored.
func ValidateFile(filename, contentType string, sizeBytes int64) error {
	if strings.TrimSpace(filename) == "" {
		return &domain.FileValidationError{Filename: filename, Reason: "filename must not be empty"}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	want, ok := allowedTypes[ext]
	if !ok || want != baseContentType(contentType) {
		return &domain.UnsupportedFileTypeError{
			Filename:    filename,
			Extension:   ext,
			ContentType: contentType,
			Supported:   SupportedExtensions(),
		}
	}

	if sizeBytes < 0 {
		return &domain.FileValidationError{Filename: filename, Reason: "size must not be negative"}
	}
	if sizeBytes > MaxSizeBytes {
		return &domain.FileSizeExceededError{Filename: filename, Size: sizeBytes, Max: MaxSizeBytes}
	}
	return nil
}

// CheckCapacity returns a *domain.MaxAttachmentsExceededError when a task
// already holds MaxPerTask attachments.
func CheckCapacity(taskID int64, currentCount int) error {
	if currentCount >= MaxPerTask {
		return &domain.MaxAttachmentsExceededError{TaskID: taskID, Current: currentCount, Max: MaxPerTask}
	}
	return nil
}

func baseContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
