// Package comment models discussion attached to a task.
package comment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// MaxContentLength bounds comment text in characters.
const MaxContentLength = 10000

// Comment is an immutable note on a task. Listings order comments by
// CreatedAt.
type Comment struct {
	ID        int64
	TaskID    int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
}

// New builds an unsaved comment with trimmed, non-empty content.
func New(taskID, authorID int64, content string, now time.Time) (*Comment, error) {
	fields := make(map[string]string)

	trimmed := strings.TrimSpace(content)
	switch {
	case trimmed == "":
		fields["content"] = domain.MsgMustNotEmpty
	case utf8.RuneCountInString(trimmed) > MaxContentLength:
		fields["content"] = "must be at most 10000 characters"
	}
	if taskID <= 0 {
		fields["task_id"] = "must be positive"
	}
	if authorID <= 0 {
		fields["author_id"] = "must be positive"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &Comment{
		TaskID:    taskID,
		AuthorID:  authorID,
		Content:   trimmed,
		CreatedAt: now,
	}, nil
}
