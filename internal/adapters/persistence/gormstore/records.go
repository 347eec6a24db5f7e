package gormstore

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tag"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
)

// Timestamps come from the domain's clock, so GORM must not overwrite them.

type userRecord struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"size:64;not null;uniqueIndex"`
	Email        string    `gorm:"size:320;not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	LastLoginAt  *time.Time
}

func (userRecord) TableName() string { return "users" }

type taskRecord struct {
	ID            int64  `gorm:"primaryKey"`
	Title         string `gorm:"size:255;not null"`
	Description   string
	Status        string `gorm:"size:20;not null;index"`
	CreatorID     int64  `gorm:"not null;index"`
	AssigneeID    *int64 `gorm:"index"`
	DeadlineStart *time.Time
	DeadlineEnd   *time.Time
	ArchivedAt    *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime:false;index"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime:false"`
	Version       int64      `gorm:"not null;default:1"`
}

func (taskRecord) TableName() string { return "tasks" }

type taskTagRecord struct {
	TaskID int64 `gorm:"primaryKey"`
	TagID  int64 `gorm:"primaryKey;index"`
}

func (taskTagRecord) TableName() string { return "task_tags" }

type tagRecord struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:50;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (tagRecord) TableName() string { return "tags" }

type timeLogRecord struct {
	ID              int64 `gorm:"primaryKey"`
	TaskID          int64 `gorm:"not null;index"`
	UserID          int64 `gorm:"not null"`
	DurationSeconds int64 `gorm:"not null"`
	Comment         string
	LoggedAt        time.Time `gorm:"not null"`
}

func (timeLogRecord) TableName() string { return "time_logs" }

type commentRecord struct {
	ID        int64     `gorm:"primaryKey"`
	TaskID    int64     `gorm:"not null;index"`
	AuthorID  int64     `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (commentRecord) TableName() string { return "comments" }

type attachmentRecord struct {
	ID          int64  `gorm:"primaryKey"`
	TaskID      int64  `gorm:"not null;index"`
	UploaderID  int64  `gorm:"not null"`
	Filename    string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:255;not null"`
	SizeBytes   int64  `gorm:"not null"`
	StoragePath string `gorm:"size:512;not null"`
	UploadedAt  time.Time
}

func (attachmentRecord) TableName() string { return "attachments" }

// activityRecord keeps its payload as JSON text. Numbers read back as
// float64.
type activityRecord struct {
	ID        int64          `gorm:"primaryKey"`
	TaskID    int64          `gorm:"not null;index"`
	UserID    int64          `gorm:"not null"`
	Type      string         `gorm:"size:40;not null"`
	Payload   map[string]any `gorm:"serializer:json"`
	CreatedAt time.Time      `gorm:"autoCreateTime:false"`
}

func (activityRecord) TableName() string { return "activities" }

// allRecords lists every table in migration order.
func allRecords() []any {
	return []any{
		&userRecord{},
		&tagRecord{},
		&taskRecord{},
		&taskTagRecord{},
		&timeLogRecord{},
		&commentRecord{},
		&attachmentRecord{},
		&activityRecord{},
	}
}

// --- user ---

func userToRecord(u *user.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email.String(),
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

func (r userRecord) toDomain() (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, fmt.Errorf("decoding user %d: %w", r.ID, err)
	}
	return &user.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        email,
		PasswordHash: r.PasswordHash,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    r.CreatedAt,
		LastLoginAt:  r.LastLoginAt,
	}, nil
}

// --- task ---

func taskToRecord(t *task.Task) taskRecord {
	return taskRecord{
		ID:            t.ID,
		Title:         t.Title.String(),
		Description:   t.Description,
		Status:        string(t.Status),
		CreatorID:     t.CreatorID,
		AssigneeID:    t.AssigneeID,
		DeadlineStart: t.DeadlineStart,
		DeadlineEnd:   t.DeadlineEnd,
		ArchivedAt:    t.ArchivedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		Version:       t.Version,
	}
}

func (r taskRecord) toDomain(tagIDs []int64) (*task.Task, error) {
	title, err := task.NewTitle(r.Title)
	if err != nil {
		return nil, fmt.Errorf("decoding task %d: %w", r.ID, err)
	}
	status := task.Status(r.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("decoding task %d: unknown status %q", r.ID, r.Status)
	}
	return &task.Task{
		ID:            r.ID,
		Title:         title,
		Description:   r.Description,
		Status:        status,
		CreatorID:     r.CreatorID,
		AssigneeID:    r.AssigneeID,
		DeadlineStart: r.DeadlineStart,
		DeadlineEnd:   r.DeadlineEnd,
		TagIDs:        tagIDs,
		ArchivedAt:    r.ArchivedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Version:       r.Version,
	}, nil
}

// --- tag ---

func tagToRecord(t *tag.Tag) tagRecord {
	return tagRecord{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func (r tagRecord) toDomain() tag.Tag {
	return tag.Tag{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

// --- time log ---

func timeLogToRecord(l *timelog.TimeLog) timeLogRecord {
	return timeLogRecord{
		ID:              l.ID,
		TaskID:          l.TaskID,
		UserID:          l.UserID,
		DurationSeconds: l.Duration.Seconds(),
		Comment:         l.Comment,
		LoggedAt:        l.LoggedAt,
	}
}

func (r timeLogRecord) toDomain() (timelog.TimeLog, error) {
	d, err := timelog.NewDuration(r.DurationSeconds)
	if err != nil {
		return timelog.TimeLog{}, fmt.Errorf("decoding time log %d: %w", r.ID, err)
	}
	return timelog.TimeLog{
		ID:       r.ID,
		TaskID:   r.TaskID,
		UserID:   r.UserID,
		Duration: d,
		Comment:  r.Comment,
		LoggedAt: r.LoggedAt,
	}, nil
}

// --- comment ---

func commentToRecord(c *comment.Comment) commentRecord {
	return commentRecord{ID: c.ID, TaskID: c.TaskID, AuthorID: c.AuthorID, Content: c.Content, CreatedAt: c.CreatedAt}
}

func (r commentRecord) toDomain() comment.Comment {
	return comment.Comment{ID: r.ID, TaskID: r.TaskID, AuthorID: r.AuthorID, Content: r.Content, CreatedAt: r.CreatedAt}
}

// --- attachment ---

func attachmentToRecord(a *attachment.Attachment) attachmentRecord {
	return attachmentRecord{
		ID:          a.ID,
		TaskID:      a.TaskID,
		UploaderID:  a.UploaderID,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		StoragePath: a.StoragePath,
		UploadedAt:  a.UploadedAt,
	}
}

func (r attachmentRecord) toDomain() attachment.Attachment {
	return attachment.Attachment{
		ID:          r.ID,
		TaskID:      r.TaskID,
		UploaderID:  r.UploaderID,
		Filename:    r.Filename,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		StoragePath: r.StoragePath,
		UploadedAt:  r.UploadedAt,
	}
}

// --- activity ---

func activityToRecord(a *activity.Activity) activityRecord {
	return activityRecord{
		ID:        a.ID,
		TaskID:    a.TaskID,
		UserID:    a.UserID,
		Type:      string(a.Type),
		Payload:   a.Payload,
		CreatedAt: a.CreatedAt,
	}
}

func (r activityRecord) toDomain() activity.Activity {
	return activity.Activity{
		ID:        r.ID,
		TaskID:    r.TaskID,
		UserID:    r.UserID,
		Type:      activity.Type(r.Type),
		Payload:   r.Payload,
		CreatedAt: r.CreatedAt,
	}
}
