package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Requests validate only what the domain cannot see: presence and shape.
// Value rules (title length, lifecycle, deadlines) stay in the domain.

func validationError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// --- auth ---

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}
	return validationError(fields)
}

// ToRegistration parses the email. IsAdmin is never set from a request.
func (r *RegisterRequest) ToRegistration() (ports.Registration, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return ports.Registration{}, err
	}
	return ports.Registration{Username: r.Username, Email: email, Password: r.Password}, nil
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}
	return validationError(fields)
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Validate checks required fields.
func (r *RefreshRequest) Validate() error {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return domain.NewValidationError("refresh_token", domain.MsgRequired)
	}
	return nil
}

// --- users ---

// UpdateUserRequest is the body of PATCH /users/{id}. Nil fields are left
// unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Validate rejects an empty patch and blank values.
func (r *UpdateUserRequest) Validate() error {
	fields := make(map[string]string)
	if r.Username == nil && r.Email == nil {
		fields["body"] = "at least one field must be provided"
	}
	if r.Username != nil && strings.TrimSpace(*r.Username) == "" {
		fields["username"] = domain.MsgMustNotEmpty
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		fields["email"] = domain.MsgMustNotEmpty
	}
	return validationError(fields)
}

// ToPatch converts the request to a user.Patch.
func (r *UpdateUserRequest) ToPatch() (user.Patch, error) {
	patch := user.Patch{Username: r.Username}
	if r.Email != nil {
		email, err := user.NewEmail(*r.Email)
		if err != nil {
			return user.Patch{}, err
		}
		patch.Email = &email
	}
	return patch, nil
}

// --- tasks ---

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	AssigneeID    *int64     `json:"assignee_id,omitempty"`
	DeadlineStart *time.Time `json:"deadline_start,omitempty"`
	DeadlineEnd   *time.Time `json:"deadline_end,omitempty"`
	TagIDs        []int64    `json:"tag_ids,omitempty"`
}

// Validate checks required fields.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.AssigneeID != nil && *r.AssigneeID <= 0 {
		fields["assignee_id"] = "must be positive"
	}
	return validationError(fields)
}

// ToNewTask converts the request for the task service.
func (r *CreateTaskRequest) ToNewTask() (ports.NewTask, error) {
	title, err := task.NewTitle(r.Title)
	if err != nil {
		return ports.NewTask{}, err
	}
	return ports.NewTask{
		Title:         title,
		Description:   r.Description,
		AssigneeID:    r.AssigneeID,
		DeadlineStart: r.DeadlineStart,
		DeadlineEnd:   r.DeadlineEnd,
		TagIDs:        r.TagIDs,
	}, nil
}

// UpdateTaskRequest is the body of PATCH /tasks/{id}. Nil fields are left
// unchanged; clear_assignee removes the assignee.
type UpdateTaskRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Status        *string    `json:"status,omitempty"`
	AssigneeID    *int64     `json:"assignee_id,omitempty"`
	ClearAssignee bool       `json:"clear_assignee,omitempty"`
	DeadlineStart *time.Time `json:"deadline_start,omitempty"`
	DeadlineEnd   *time.Time `json:"deadline_end,omitempty"`
	TagIDs        *[]int64   `json:"tag_ids,omitempty"`
}

// Validate checks the shape of provided fields.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	if r.Status != nil && !task.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	if r.AssigneeID != nil && *r.AssigneeID <= 0 {
		fields["assignee_id"] = "must be positive"
	}
	return validationError(fields)
}

// ToPatch converts the request to a task.Patch.
func (r *UpdateTaskRequest) ToPatch() (task.Patch, error) {
	patch := task.Patch{
		Description:   r.Description,
		AssigneeID:    r.AssigneeID,
		ClearAssignee: r.ClearAssignee,
		DeadlineStart: r.DeadlineStart,
		DeadlineEnd:   r.DeadlineEnd,
		TagIDs:        r.TagIDs,
	}
	if r.Title != nil {
		title, err := task.NewTitle(*r.Title)
		if err != nil {
			return task.Patch{}, err
		}
		patch.Title = &title
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		patch.Status = &s
	}
	return patch, nil
}

// ChangeStatusRequest is the body of POST /tasks/{id}/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the status name.
func (r *ChangeStatusRequest) Validate() error {
	switch {
	case r.Status == "":
		return domain.NewValidationError("status", domain.MsgRequired)
	case !task.Status(r.Status).IsValid():
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", r.Status))
	}
	return nil
}

// AssignRequest is the body of POST /tasks/{id}/assign.
type AssignRequest struct {
	AssigneeID int64 `json:"assignee_id"`
}

// Validate checks the assignee id.
func (r *AssignRequest) Validate() error {
	if r.AssigneeID <= 0 {
		return domain.NewValidationError("assignee_id", "must be positive")
	}
	return nil
}

// BulkStatusRequest is the body of POST /tasks/bulk/status.
type BulkStatusRequest struct {
	TaskIDs []int64 `json:"task_ids"`
	Status  string  `json:"status"`
}

// Validate checks required fields. The service enforces the batch limit.
func (r *BulkStatusRequest) Validate() error {
	fields := make(map[string]string)
	if len(r.TaskIDs) == 0 {
		fields["task_ids"] = domain.MsgRequired
	}
	if r.Status == "" {
		fields["status"] = domain.MsgRequired
	} else if !task.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	return validationError(fields)
}

// --- collaboration ---

// CommentRequest is the body of POST /tasks/{id}/comments.
type CommentRequest struct {
	Content string `json:"content"`
}

// Validate checks required fields.
func (r *CommentRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return domain.NewValidationError("content", domain.MsgRequired)
	}
	return nil
}

// TimeLogRequest is the body of POST /tasks/{id}/time-logs.
type TimeLogRequest struct {
	DurationSeconds int64  `json:"duration_seconds"`
	Comment         string `json:"comment,omitempty"`
}

// Validate defers the range check to timelog.NewDuration.
func (r *TimeLogRequest) Validate() error {
	_, err := r.Duration()
	return err
}

// Duration converts the request's seconds to a timelog.Duration.
func (r *TimeLogRequest) Duration() (timelog.Duration, error) {
	return timelog.NewDuration(r.DurationSeconds)
}

// --- tags ---

// TagRequest is the body of POST /tags and PATCH /tags/{id}.
type TagRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields.
func (r *TagRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}
