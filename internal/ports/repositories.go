package ports

import (
	"context"

	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tag"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
)

// TaskRepository persists tasks together with their tag links.
// Implemented by the persistence adapter; called by the application layer.
type TaskRepository interface {
	// GetTask returns a single task by ID.
	// Returns *domain.TaskNotFoundError if the task does not exist.
	GetTask(ctx context.Context, id int64) (*task.Task, error)

	// ListTasks returns tasks matching the filter, newest first.
	// Archived tasks are excluded unless filter.IncludeArchived is set.
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// CreateTask inserts t and returns it with ID assigned.
	CreateTask(ctx context.Context, t *task.Task) (*task.Task, error)

	// UpdateTask overwrites the stored task, including its tag set.
	// Returns *domain.TaskNotFoundError if the task does not exist.
	UpdateTask(ctx context.Context, t *task.Task) (*task.Task, error)

	// DeleteTask removes the task and everything hanging off it.
	// Returns *domain.TaskNotFoundError if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	// GetUser returns a user by ID.
	// Returns *domain.NotFoundError if the user does not exist.
	GetUser(ctx context.Context, id int64) (*user.User, error)

	// GetUserByUsername returns a user by exact username.
	// Returns *domain.NotFoundError if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)

	// ListUsers returns a page of users ordered by ID.
	ListUsers(ctx context.Context, limit, offset int) ([]user.User, error)

	// CreateUser inserts u and returns it with ID assigned.
	// Returns domain.ErrConflict if the username or email is taken.
	CreateUser(ctx context.Context, u *user.User) (*user.User, error)

	// UpdateUser overwrites the stored user.
	// Returns domain.ErrConflict if the new username or email is taken.
	UpdateUser(ctx context.Context, u *user.User) (*user.User, error)
}

// TimeLogRepository persists time logs. Time logs are never updated.
type TimeLogRepository interface {
	CreateTimeLog(ctx context.Context, l *timelog.TimeLog) (*timelog.TimeLog, error)
	DeleteTimeLog(ctx context.Context, id int64) error
	ListTimeLogs(ctx context.Context, taskID int64) ([]timelog.TimeLog, error)
}

// CommentRepository persists comments. ListComments orders by creation time.
type CommentRepository interface {
	CreateComment(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	ListComments(ctx context.Context, taskID int64) ([]comment.Comment, error)
}

// AttachmentRepository persists attachment metadata.
type AttachmentRepository interface {
	// GetAttachment returns *domain.NotFoundError if the attachment does
	// not exist.
	GetAttachment(ctx context.Context, id int64) (*attachment.Attachment, error)
	ListAttachments(ctx context.Context, taskID int64) ([]attachment.Attachment, error)

	// CountByTask returns how many attachments the task currently holds.
	CountByTask(ctx context.Context, taskID int64) (int, error)

	CreateAttachment(ctx context.Context, a *attachment.Attachment) (*attachment.Attachment, error)
	DeleteAttachment(ctx context.Context, id int64) error
}

// ActivityRepository is the append-only audit log. DeleteActivity exists
// only to roll back an append whose surrounding write failed.
type ActivityRepository interface {
	AppendActivity(ctx context.Context, a *activity.Activity) (*activity.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error

	// ListActivity returns a task's activity, oldest first.
	ListActivity(ctx context.Context, taskID int64) ([]activity.Activity, error)
}

// TagRepository persists tags.
type TagRepository interface {
	GetTag(ctx context.Context, id int64) (*tag.Tag, error)
	ListTags(ctx context.Context) ([]tag.Tag, error)

	// FindTags returns the subset of ids that exist.
	FindTags(ctx context.Context, ids []int64) ([]tag.Tag, error)

	// CreateTag returns domain.ErrConflict if the name is taken.
	CreateTag(ctx context.Context, t *tag.Tag) (*tag.Tag, error)
	UpdateTag(ctx context.Context, t *tag.Tag) (*tag.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}
