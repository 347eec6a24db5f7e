package ports

import (
	"context"
	"io"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tag"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
)

// Every service method acts on behalf of the Actor found in ctx and returns
// an error wrapping domain.ErrUnauthenticated when there is none, unless the
// method documents otherwise.

// TaskService defines the service port for the task aggregate.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// CreateTask creates a task owned by the actor. AssigneeID and TagIDs,
	// when set, must reference existing users and tags.
	CreateTask(ctx context.Context, in NewTask) (*task.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*task.Task, error)

	// ListTasks returns tasks matching the filter.
	// Returns domain.ErrValidation if the filter is out of range.
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// UpdateTask applies a partial update and records one activity per
	// changed field.
	UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error)

	// ChangeStatus moves the task through the lifecycle state machine.
	// Returns domain.ErrConflict for a transition the machine forbids.
	ChangeStatus(ctx context.Context, id int64, to task.Status) (*task.Task, error)

	AssignTask(ctx context.Context, id, assigneeID int64) (*task.Task, error)
	UnassignTask(ctx context.Context, id int64) (*task.Task, error)
	ArchiveTask(ctx context.Context, id int64) (*task.Task, error)
	UnarchiveTask(ctx context.Context, id int64) (*task.Task, error)

	// DeleteTask removes the task, its attachments' bytes included.
	DeleteTask(ctx context.Context, id int64) error

	// BulkChangeStatus changes the status of several tasks concurrently.
	// Uses partial success semantics: each task succeeds or fails
	// independently. Returns a hard error only for request-level failures.
	BulkChangeStatus(ctx context.Context, ids []int64, to task.Status) (*BulkStatusResult, error)

	// ListActivity returns the task's audit trail, oldest first.
	ListActivity(ctx context.Context, taskID int64) ([]activity.Activity, error)
}

// NewTask carries the fields accepted when creating a task.
type NewTask struct {
	Title         task.Title
	Description   string
	AssigneeID    *int64
	DeadlineStart *time.Time
	DeadlineEnd   *time.Time
	TagIDs        []int64
}

// BulkStatusError records a single failed task within a bulk operation.
type BulkStatusError struct {
	TaskID int64
	Err    error
}

// BulkStatusResult holds the outcomes of a bulk status change.
type BulkStatusResult struct {
	Updated []task.Task
	Errors  []BulkStatusError
}

// CollaborationService covers comments and time tracking on a task.
type CollaborationService interface {
	// AddComment is open to any authenticated user on a task that is not
	// archived.
	AddComment(ctx context.Context, taskID int64, content string) (*comment.Comment, error)
	ListComments(ctx context.Context, taskID int64) ([]comment.Comment, error)

	// LogTime requires edit permission on the task.
	LogTime(ctx context.Context, taskID int64, d timelog.Duration, note string) (*timelog.TimeLog, error)
	ListTimeLogs(ctx context.Context, taskID int64) ([]timelog.TimeLog, error)

	// TotalTime returns the seconds logged against the task.
	TotalTime(ctx context.Context, taskID int64) (int64, error)
}

// AttachmentService manages files uploaded to tasks.
type AttachmentService interface {
	// UploadAttachment validates the file, stores its bytes and records the
	// metadata. Nothing is left in blob storage when it fails.
	UploadAttachment(ctx context.Context, in NewAttachment) (*attachment.Attachment, error)
	GetAttachment(ctx context.Context, id int64) (*attachment.Attachment, error)
	ListAttachments(ctx context.Context, taskID int64) ([]attachment.Attachment, error)

	// OpenAttachment returns the metadata and a reader for the bytes.
	// The caller closes the reader.
	OpenAttachment(ctx context.Context, id int64) (*attachment.Attachment, io.ReadCloser, error)

	// DeleteAttachment is allowed to the uploader and to anyone who may
	// delete the owning task.
	DeleteAttachment(ctx context.Context, id int64) error
}

// NewAttachment is an upload as received from the client.
type NewAttachment struct {
	TaskID      int64
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UserService manages accounts and authentication.
type UserService interface {
	// Register creates an account. It does not require an actor. The HTTP
	// adapter never sets Registration.IsAdmin.
	Register(ctx context.Context, in Registration) (*user.User, error)

	// Authenticate checks credentials, records the login and issues tokens.
	// It does not require an actor.
	Authenticate(ctx context.Context, username, password string) (*TokenPair, error)

	// Refresh exchanges a refresh token for a new pair. It does not require
	// an actor.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	GetUser(ctx context.Context, id int64) (*user.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]user.User, error)

	// UpdateUser is allowed to the user themselves and to admins.
	UpdateUser(ctx context.Context, id int64, patch user.Patch) (*user.User, error)

	ActorResolver
}

// Registration carries the fields accepted when creating an account.
type Registration struct {
	Username string
	Email    user.Email
	Password string
	IsAdmin  bool
}

// TagService manages the shared tag vocabulary. Only admins may create,
// rename or delete tags.
type TagService interface {
	CreateTag(ctx context.Context, name string) (*tag.Tag, error)
	ListTags(ctx context.Context) ([]tag.Tag, error)
	RenameTag(ctx context.Context, id int64, name string) (*tag.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}
