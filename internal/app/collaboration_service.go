package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/task-tracker/internal/app/context"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time check that CollaborationService implements ports.CollaborationService.
var _ ports.CollaborationService = (*CollaborationService)(nil)

// CollaborationDeps groups the ports CollaborationService depends on.
// Publisher may be nil.
type CollaborationDeps struct {
	Tasks      ports.TaskRepository
	Comments   ports.CommentRepository
	TimeLogs   ports.TimeLogRepository
	Activities ports.ActivityRepository
	Publisher  ports.ActivityPublisher
}

// CollaborationService implements ports.CollaborationService.
type CollaborationService struct {
	tasks    ports.TaskRepository
	comments ports.CommentRepository
	timeLogs ports.TimeLogRepository
	recorder *activityRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewCollaborationService creates a CollaborationService. A nil logger
// discards output.
func NewCollaborationService(deps CollaborationDeps, logger *slog.Logger) *CollaborationService {
	logger = orDiscard(logger)
	return &CollaborationService{
		tasks:    deps.Tasks,
		comments: deps.Comments,
		timeLogs: deps.TimeLogs,
		recorder: newActivityRecorder(deps.Activities, deps.Publisher, logger),
		logger:   logger,
		now:      utcNow,
	}
}

// AddComment adds a comment by the actor to an active task.
func (s *CollaborationService) AddComment(ctx context.Context, taskID int64, content string) (*comment.Comment, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "adding comment", slog.Int64("task_id", taskID))

	rc := appctx.FromContext(ctx)
	t, err := loadTask(rc, s.tasks, taskID)
	if err != nil {
		return nil, err
	}
	if t.IsArchived() {
		return nil, &domain.TaskAlreadyArchivedError{TaskID: taskID}
	}

	c, err := comment.New(taskID, actor.UserID, content, s.now())
	if err != nil {
		return nil, err
	}

	insert := &insertAction[*comment.Comment]{
		desc: fmt.Sprintf("add comment to task %d", taskID),
		insert: func(ctx context.Context) (*comment.Comment, error) {
			return s.comments.CreateComment(ctx, c)
		},
		remove: func(ctx context.Context, created *comment.Comment) error {
			return s.comments.DeleteComment(ctx, created.ID)
		},
	}
	batch := s.recorder.batch()
	if err := rc.AddAction(insert); err != nil {
		return nil, err
	}
	if err := batch.stage(rc, func() activity.Activity { return activity.CommentAdded(insert.created) }); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to add comment",
			slog.String("operation", "AddComment"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	batch.publish(rc)

	return insert.created, nil
}

// ListComments returns the task's comments in creation order.
func (s *CollaborationService) ListComments(ctx context.Context, taskID int64) ([]comment.Comment, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listing comments", slog.Int64("task_id", taskID))

	if _, err := loadTask(appctx.FromContext(ctx), s.tasks, taskID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListComments(ctx, taskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list comments",
			slog.String("operation", "ListComments"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return comments, nil
}

// LogTime records time the actor spent on the task. The actor needs edit
// permission on it.
func (s *CollaborationService) LogTime(ctx context.Context, taskID int64, d timelog.Duration, note string) (*timelog.TimeLog, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "logging time",
		slog.Int64("task_id", taskID),
		slog.Int64("seconds", d.Seconds()),
	)

	rc := appctx.FromContext(ctx)
	t, err := loadTask(rc, s.tasks, taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanEdit(actor.UserID, t, actor.IsAdmin) {
		return nil, &domain.UnauthorizedTaskEditError{TaskID: taskID, UserID: actor.UserID}
	}
	if t.IsArchived() {
		return nil, &domain.TaskAlreadyArchivedError{TaskID: taskID}
	}

	l, err := timelog.New(taskID, actor.UserID, d, note, s.now())
	if err != nil {
		return nil, err
	}

	insert := &insertAction[*timelog.TimeLog]{
		desc: fmt.Sprintf("log %s on task %d", d, taskID),
		insert: func(ctx context.Context) (*timelog.TimeLog, error) {
			return s.timeLogs.CreateTimeLog(ctx, l)
		},
		remove: func(ctx context.Context, created *timelog.TimeLog) error {
			return s.timeLogs.DeleteTimeLog(ctx, created.ID)
		},
	}
	batch := s.recorder.batch()
	if err := rc.AddAction(insert); err != nil {
		return nil, err
	}
	if err := batch.stage(rc, func() activity.Activity { return activity.TimeLogAdded(insert.created) }); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to log time",
			slog.String("operation", "LogTime"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("logging time: %w", err)
	}
	batch.publish(rc)

	return insert.created, nil
}

// ListTimeLogs returns the task's time logs.
func (s *CollaborationService) ListTimeLogs(ctx context.Context, taskID int64) ([]timelog.TimeLog, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listing time logs", slog.Int64("task_id", taskID))
	return s.listTimeLogs(ctx, taskID)
}

// TotalTime sums the logged seconds. Several entries may add up to more than
// a single Duration can hold, so the sum is plain seconds.
func (s *CollaborationService) TotalTime(ctx context.Context, taskID int64) (int64, error) {
	if _, err := actorFrom(ctx); err != nil {
		return 0, err
	}
	logs, err := s.listTimeLogs(ctx, taskID)
	if err != nil {
		return 0, err
	}
	return timelog.TotalSeconds(logs), nil
}

func (s *CollaborationService) listTimeLogs(ctx context.Context, taskID int64) ([]timelog.TimeLog, error) {
	if _, err := loadTask(appctx.FromContext(ctx), s.tasks, taskID); err != nil {
		return nil, err
	}

	logs, err := s.timeLogs.ListTimeLogs(ctx, taskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list time logs",
			slog.String("operation", "ListTimeLogs"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return logs, nil
}
