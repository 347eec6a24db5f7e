package timelog

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// TimeLog is an immutable record of time a user spent on a task.
type TimeLog struct {
	ID       int64
	TaskID   int64
	UserID   int64
	Duration Duration
	Comment  string
	LoggedAt time.Time
}

// New builds an unsaved time log.
func New(taskID, userID int64, d Duration, comment string, loggedAt time.Time) (*TimeLog, error) {
	fields := make(map[string]string)
	if taskID <= 0 {
		fields["task_id"] = "must be positive"
	}
	if userID <= 0 {
		fields["user_id"] = "must be positive"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &TimeLog{
		TaskID:   taskID,
		UserID:   userID,
		Duration: d,
		Comment:  strings.TrimSpace(comment),
		LoggedAt: loggedAt,
	}, nil
}

// TotalSeconds sums the logged seconds. The total is not a Duration because
// several entries together may exceed the per-entry ceiling.
func TotalSeconds(logs []TimeLog) int64 {
	var total int64
	for i := range logs {
		total += logs[i].Duration.Seconds()
	}
	return total
}
