// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tag"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// ListResponse wraps a collection.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func toList[E, T any](in []E, conv func(*E) T) ListResponse[T] {
	items := make([]T, len(in))
	for i := range in {
		items[i] = conv(&in[i])
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ToTokenResponse converts a token pair. ExpiresIn is in seconds.
func ToTokenResponse(p *ports.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		ExpiresIn:    int64(p.ExpiresIn.Seconds()),
	}
}

// UserResponse never includes the password hash.
type UserResponse struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	IsAdmin     bool    `json:"is_admin"`
	CreatedAt   string  `json:"created_at"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
}

// ToUserResponse converts a domain user.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email.String(),
		IsAdmin:     u.IsAdmin,
		CreatedAt:   formatTime(u.CreatedAt),
		LastLoginAt: formatTimePtr(u.LastLoginAt),
	}
}

// ToUserListResponse converts a page of users.
func ToUserListResponse(users []user.User) ListResponse[UserResponse] {
	return toList(users, ToUserResponse)
}

// TaskResponse represents a task.
type TaskResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	CreatorID     int64   `json:"creator_id"`
	AssigneeID    *int64  `json:"assignee_id"`
	DeadlineStart *string `json:"deadline_start,omitempty"`
	DeadlineEnd   *string `json:"deadline_end,omitempty"`
	TagIDs        []int64 `json:"tag_ids"`
	Archived      bool    `json:"archived"`
	ArchivedAt    *string `json:"archived_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ToTaskResponse converts a domain task.
func ToTaskResponse(t *task.Task) TaskResponse {
	tags := t.TagIDs
	if tags == nil {
		tags = []int64{}
	}
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title.String(),
		Description:   t.Description,
		Status:        t.Status.String(),
		CreatorID:     t.CreatorID,
		AssigneeID:    t.AssigneeID,
		DeadlineStart: formatTimePtr(t.DeadlineStart),
		DeadlineEnd:   formatTimePtr(t.DeadlineEnd),
		TagIDs:        tags,
		Archived:      t.ArchivedAt != nil,
		ArchivedAt:    formatTimePtr(t.ArchivedAt),
		CreatedAt:     formatTime(t.CreatedAt),
		UpdatedAt:     formatTime(t.UpdatedAt),
	}
}

// ToTaskListResponse converts a page of tasks.
func ToTaskListResponse(tasks []task.Task) ListResponse[TaskResponse] {
	return toList(tasks, ToTaskResponse)
}

// TransitionsResponse lists the statuses a task may move to next.
type TransitionsResponse struct {
	TaskID  int64    `json:"task_id"`
	Current string   `json:"current"`
	Allowed []string `json:"allowed"`
}

// ToTransitionsResponse reads the lifecycle table for t's status.
func ToTransitionsResponse(t *task.Task) TransitionsResponse {
	next := task.AllowedTransitions(t.Status)
	allowed := make([]string, len(next))
	for i, s := range next {
		allowed[i] = s.String()
	}
	return TransitionsResponse{TaskID: t.ID, Current: t.Status.String(), Allowed: allowed}
}

// BulkStatusResponse reports the outcome of a bulk status change.
type BulkStatusResponse struct {
	Updated   []TaskResponse        `json:"updated"`
	Errors    []BulkStatusErrorItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BulkStatusErrorItem is a single failed task within a bulk operation.
type BulkStatusErrorItem struct {
	TaskID  int64  `json:"task_id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToBulkStatusResponse converts a ports.BulkStatusResult.
func ToBulkStatusResponse(result *ports.BulkStatusResult) BulkStatusResponse {
	updated := make([]TaskResponse, len(result.Updated))
	for i := range result.Updated {
		updated[i] = ToTaskResponse(&result.Updated[i])
	}

	errs := make([]BulkStatusErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkStatusErrorItem{
			TaskID:  e.TaskID,
			Code:    domain.ErrorCode(e.Err),
			Message: e.Err.Error(),
		}
	}

	return BulkStatusResponse{
		Updated:   updated,
		Errors:    errs,
		Total:     len(updated) + len(errs),
		Succeeded: len(updated),
		Failed:    len(errs),
	}
}

// ActivityResponse is one audit trail entry.
type ActivityResponse struct {
	ID        int64          `json:"id"`
	TaskID    int64          `json:"task_id"`
	UserID    int64          `json:"user_id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// ToActivityResponse converts a domain activity.
func ToActivityResponse(a *activity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		TaskID:    a.TaskID,
		UserID:    a.UserID,
		Type:      a.Type.String(),
		Payload:   a.Payload,
		CreatedAt: formatTime(a.CreatedAt),
	}
}

// ToActivityListResponse converts an audit trail.
func ToActivityListResponse(acts []activity.Activity) ListResponse[ActivityResponse] {
	return toList(acts, ToActivityResponse)
}

// CommentResponse represents a comment.
type CommentResponse struct {
	ID        int64  `json:"id"`
	TaskID    int64  `json:"task_id"`
	AuthorID  int64  `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ToCommentResponse converts a domain comment.
func ToCommentResponse(c *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

// ToCommentListResponse converts a task's comments.
func ToCommentListResponse(cs []comment.Comment) ListResponse[CommentResponse] {
	return toList(cs, ToCommentResponse)
}

// TimeLogResponse represents a time log.
type TimeLogResponse struct {
	ID              int64  `json:"id"`
	TaskID          int64  `json:"task_id"`
	UserID          int64  `json:"user_id"`
	DurationSeconds int64  `json:"duration_seconds"`
	Duration        string `json:"duration"`
	Comment         string `json:"comment,omitempty"`
	LoggedAt        string `json:"logged_at"`
}

// ToTimeLogResponse converts a domain time log.
func ToTimeLogResponse(l *timelog.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		ID:              l.ID,
		TaskID:          l.TaskID,
		UserID:          l.UserID,
		DurationSeconds: l.Duration.Seconds(),
		Duration:        l.Duration.String(),
		Comment:         l.Comment,
		LoggedAt:        formatTime(l.LoggedAt),
	}
}

// TimeLogListResponse adds the task total to the listing.
type TimeLogListResponse struct {
	ListResponse[TimeLogResponse]
	TotalSeconds int64 `json:"total_seconds"`
}

// ToTimeLogListResponse converts a task's time logs and sums them.
func ToTimeLogListResponse(logs []timelog.TimeLog) TimeLogListResponse {
	var total int64
	for _, l := range logs {
		total += l.Duration.Seconds()
	}
	return TimeLogListResponse{
		ListResponse: toList(logs, ToTimeLogResponse),
		TotalSeconds: total,
	}
}

// AttachmentResponse is attachment metadata. The storage path stays
// internal.
type AttachmentResponse struct {
	ID          int64  `json:"id"`
	TaskID      int64  `json:"task_id"`
	UploaderID  int64  `json:"uploader_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	UploadedAt  string `json:"uploaded_at"`
}

// ToAttachmentResponse converts domain attachment metadata.
func ToAttachmentResponse(a *attachment.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.ID,
		TaskID:      a.TaskID,
		UploaderID:  a.UploaderID,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		UploadedAt:  formatTime(a.UploadedAt),
	}
}

// ToAttachmentListResponse converts a task's attachments.
func ToAttachmentListResponse(as []attachment.Attachment) ListResponse[AttachmentResponse] {
	return toList(as, ToAttachmentResponse)
}

// TagResponse represents a tag.
type TagResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToTagResponse converts a domain tag.
func ToTagResponse(t *tag.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

// ToTagListResponse converts the tag vocabulary.
func ToTagListResponse(tags []tag.Tag) ListResponse[TagResponse] {
	return toList(tags, ToTagResponse)
}
