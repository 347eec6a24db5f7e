// Package attachment models files uploaded to tasks and the rules for
// accepting them.
package attachment

import (
	"path/filepath"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// Attachment is the metadata of an uploaded file. The bytes live in blob
// storage under StoragePath.
type Attachment struct {
	ID          int64
	TaskID      int64
	UploaderID  int64
	Filename    string
	ContentType string
	SizeBytes   int64
	StoragePath string
	UploadedAt  time.Time
}

// Upload describes a file offered for admission.
type Upload struct {
	TaskID      int64
	UploaderID  int64
	Filename    string
	ContentType string
	SizeBytes   int64
}

// Admit runs the capacity check and file validation and, when both pass,
// returns an unsaved attachment without a storage path. currentCount is the
// number of attachments the task already has.
func Admit(u Upload, currentCount int, now time.Time) (*Attachment, error) {
	if u.TaskID <= 0 || u.UploaderID <= 0 {
		return nil, &domain.FileValidationError{Filename: u.Filename, Reason: "task and uploader are required"}
	}
	if err := CheckCapacity(u.TaskID, currentCount); err != nil {
		return nil, err
	}
	if err := ValidateFile(u.Filename, u.ContentType, u.SizeBytes); err != nil {
		return nil, err
	}

	ct, _ := ContentTypeFor(u.Filename)
	return &Attachment{
		TaskID:      u.TaskID,
		UploaderID:  u.UploaderID,
		Filename:    filepath.Base(u.Filename),
		ContentType: ct,
		SizeBytes:   u.SizeBytes,
		UploadedAt:  now,
	}, nil
}

// AssignStorage records where the bytes were stored.
func (a *Attachment) AssignStorage(path string) error {
	if path == "" {
		return domain.NewValidationError("storage_path", domain.MsgRequired)
	}
	a.StoragePath = path
	return nil
}

// CanRemove reports whether userID may delete the attachment: its uploader,
// or anyone allowed to delete the owning task.
func (a *Attachment) CanRemove(userID int64, canDeleteTask bool) bool {
	return canDeleteTask || a.UploaderID == userID
}
