package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	appctx "github.com/jsamuelsen11/task-tracker/internal/app/context"
	"github.com/jsamuelsen11/task-tracker/internal/app/fanout"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// MaxBulkTasks bounds a single BulkChangeStatus request.
const MaxBulkTasks = 100

const defaultBulkWorkers = 8

// TaskDeps groups the ports TaskService depends on. Publisher and Metrics
// may be nil.
type TaskDeps struct {
	Tasks       ports.TaskRepository
	Users       ports.UserRepository
	Tags        ports.TagRepository
	Attachments ports.AttachmentRepository
	Blobs       ports.BlobStore
	Activities  ports.ActivityRepository
	Publisher   ports.ActivityPublisher
	Metrics     ports.DomainMetrics
}

// TaskService implements ports.TaskService. Every decision about what may
// change is delegated to the task package; the service loads, stages,
// commits and records activity.
type TaskService struct {
	tasks       ports.TaskRepository
	users       ports.UserRepository
	tags        ports.TagRepository
	attachments ports.AttachmentRepository
	blobs       ports.BlobStore
	activities  ports.ActivityRepository
	recorder    *activityRecorder
	metrics     ports.DomainMetrics
	logger      *slog.Logger
	now         func() time.Time
	bulkWorkers int
}

// NewTaskService creates a TaskService. A nil logger discards output.
func NewTaskService(deps TaskDeps, logger *slog.Logger) *TaskService {
	logger = orDiscard(logger)
	return &TaskService{
		tasks:       deps.Tasks,
		users:       deps.Users,
		tags:        deps.Tags,
		attachments: deps.Attachments,
		blobs:       deps.Blobs,
		activities:  deps.Activities,
		recorder:    newActivityRecorder(deps.Activities, deps.Publisher, logger),
		metrics:     orNopMetrics(deps.Metrics),
		logger:      logger,
		now:         utcNow,
		bulkWorkers: defaultBulkWorkers,
	}
}

// CreateTask creates a task owned by the actor.
func (s *TaskService) CreateTask(ctx context.Context, in ports.NewTask) (*task.Task, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "creating task", slog.Int64("creator_id", actor.UserID))

	if err := s.ensureUserExists(ctx, "creator_id", actor.UserID); err != nil {
		return nil, err
	}

	now := s.now()
	t, err := task.New(in.Title, in.Description, actor.UserID, now)
	if err != nil {
		return nil, err
	}
	if in.DeadlineStart != nil || in.DeadlineEnd != nil {
		if err := t.Reschedule(in.DeadlineStart, in.DeadlineEnd, actor.UserID, actor.IsAdmin, now); err != nil {
			return nil, err
		}
	}
	if len(in.TagIDs) > 0 {
		if err := s.ensureTagsExist(ctx, in.TagIDs); err != nil {
			return nil, err
		}
		if err := t.SetTags(in.TagIDs, actor.UserID, actor.IsAdmin, now); err != nil {
			return nil, err
		}
	}
	if in.AssigneeID != nil {
		if err := s.ensureUserExists(ctx, "assignee_id", *in.AssigneeID); err != nil {
			return nil, err
		}
		if err := t.AssignTo(*in.AssigneeID, actor.UserID, actor.IsAdmin, now); err != nil {
			return nil, err
		}
	}

	rc := appctx.FromContext(ctx)
	batch := s.recorder.batch()
	create := &insertAction[*task.Task]{
		desc: "create task " + t.Title.String(),
		insert: func(ctx context.Context) (*task.Task, error) {
			return s.tasks.CreateTask(ctx, t)
		},
		remove: func(ctx context.Context, created *task.Task) error {
			return s.tasks.DeleteTask(ctx, created.ID)
		},
	}
	if err := rc.AddAction(create); err != nil {
		return nil, err
	}
	if err := batch.stage(rc, func() activity.Activity {
		return activity.TaskCreated(create.created, actor.UserID, now)
	}); err != nil {
		return nil, err
	}
	if t.AssigneeID != nil {
		if err := batch.stage(rc, func() activity.Activity {
			c := task.Change{Field: task.FieldAssignee, From: (*int64)(nil), To: create.created.AssigneeID}
			return activity.FromChange(create.created.ID, actor.UserID, c, now)
		}); err != nil {
			return nil, err
		}
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Int64("creator_id", actor.UserID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating task: %w", err)
	}
	batch.publish(rc)

	return create.created, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "fetching task", slog.Int64("task_id", id))

	t, err := loadTask(appctx.FromContext(ctx), s.tasks, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// ListTasks returns tasks matching the filter.
func (s *TaskService) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listing tasks", slog.String("status", filter.Status.String()))

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter.Limit = filter.EffectiveLimit()

	tasks, err := s.tasks.ListTasks(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies a partial update and records one activity per changed
// field. A patch that changes nothing writes nothing.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "updating task", slog.Int64("task_id", id))

	rc := appctx.FromContext(ctx)
	current, err := loadTask(rc, s.tasks, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	next, changes, err := patch.Apply(current, actor.UserID, actor.IsAdmin, now)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return current, nil
	}

	var statusChange *task.Change
	for i := range changes {
		switch changes[i].Field {
		case task.FieldAssignee:
			if next.AssigneeID != nil {
				if err := s.ensureUserExists(ctx, "assignee_id", *next.AssigneeID); err != nil {
					return nil, err
				}
			}
		case task.FieldTags:
			if err := s.ensureTagsExist(ctx, next.TagIDs); err != nil {
				return nil, err
			}
		case task.FieldStatus:
			statusChange = &changes[i]
		}
	}

	save := &saveTaskAction{repo: s.tasks, prev: current, next: next}
	if err := rc.Stage(taskKey(id), next, save); err != nil {
		return nil, err
	}
	batch := s.recorder.batch()
	if err := batch.stageAll(rc, activity.FromChanges(id, actor.UserID, changes, now)); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.Int64("task_id", id),
			slog.Int("changes", len(changes)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating task: %w", err)
	}
	batch.publish(rc)
	if statusChange != nil {
		s.metrics.StatusTransition(ctx, current.Status, next.Status)
	}

	return save.result(), nil
}

// ChangeStatus moves the task through the lifecycle state machine.
func (s *TaskService) ChangeStatus(ctx context.Context, id int64, to task.Status) (*task.Task, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	_, saved, err := s.changeStatus(ctx, appctx.FromContext(ctx), actor, id, to)
	return saved, err
}

func (s *TaskService) changeStatus(ctx context.Context, rc *appctx.RequestContext, actor ports.Actor, id int64, to task.Status) (*task.Task, *task.Task, error) {
	prev, saved, err := s.mutate(ctx, rc, actor, "ChangeStatus", id,
		func(t *task.Task, now time.Time) error {
			return t.ChangeStatus(to, actor.UserID, actor.IsAdmin, now)
		},
		func(prev, next *task.Task, now time.Time) activity.Activity {
			c := task.Change{Field: task.FieldStatus, From: prev.Status, To: next.Status}
			return activity.FromChange(id, actor.UserID, c, now)
		},
	)
	if err != nil {
		return nil, nil, err
	}
	s.metrics.StatusTransition(ctx, prev.Status, saved.Status)
	return prev, saved, nil
}

// AssignTask sets the assignee, who must be an existing user.
func (s *TaskService) AssignTask(ctx context.Context, id, assigneeID int64) (*task.Task, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(ctx, "assignee_id", assigneeID); err != nil {
		return nil, err
	}

	_, saved, err := s.mutate(ctx, appctx.FromContext(ctx), actor, "AssignTask", id,
		func(t *task.Task, now time.Time) error {
			return t.AssignTo(assigneeID, actor.UserID, actor.IsAdmin, now)
		},
		assigneeActivity(id, actor),
	)
	return saved, err
}

// UnassignTask clears the assignee.
func (s *TaskService) UnassignTask(ctx context.Context, id int64) (*task.Task, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, saved, err := s.mutate(ctx, appctx.FromContext(ctx), actor, "UnassignTask", id,
		func(t *task.Task, now time.Time) error {
			return t.Unassign(actor.UserID, actor.IsAdmin, now)
		},
		assigneeActivity(id, actor),
	)
	return saved, err
}

func assigneeActivity(id int64, actor ports.Actor) func(prev, next *task.Task, now time.Time) activity.Activity {
	return func(prev, next *task.Task, now time.Time) activity.Activity {
		c := task.Change{Field: task.FieldAssignee, From: prev.AssigneeID, To: next.AssigneeID}
		return activity.FromChange(id, actor.UserID, c, now)
	}
}

// ArchiveTask hides the task from default listings and freezes it.
func (s *TaskService) ArchiveTask(ctx context.Context, id int64) (*task.Task, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, saved, err := s.mutate(ctx, appctx.FromContext(ctx), actor, "ArchiveTask", id,
		func(t *task.Task, now time.Time) error {
			return t.Archive(actor.UserID, actor.IsAdmin, now)
		},
		func(_, next *task.Task, now time.Time) activity.Activity {
			return activity.TaskArchived(next, actor.UserID, now)
		},
	)
	return saved, err
}

// UnarchiveTask restores an archived task.
func (s *TaskService) UnarchiveTask(ctx context.Context, id int64) (*task.Task, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, saved, err := s.mutate(ctx, appctx.FromContext(ctx), actor, "UnarchiveTask", id,
		func(t *task.Task, now time.Time) error {
			return t.Unarchive(actor.UserID, actor.IsAdmin, now)
		},
		func(_, next *task.Task, now time.Time) activity.Activity {
			return activity.TaskUnarchived(next, actor.UserID, now)
		},
	)
	return saved, err
}

// mutate loads the task, applies fn to a copy and commits the copy together
// with the activity describe builds from the before and after versions.
func (s *TaskService) mutate(
	ctx context.Context,
	rc *appctx.RequestContext,
	actor ports.Actor,
	op string,
	id int64,
	fn func(t *task.Task, now time.Time) error,
	describe func(prev, next *task.Task, now time.Time) activity.Activity,
) (*task.Task, *task.Task, error) {
	s.logger.InfoContext(ctx, "changing task",
		slog.String("operation", op),
		slog.Int64("task_id", id),
		slog.Int64("user_id", actor.UserID),
	)

	current, err := loadTask(rc, s.tasks, id)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	next := current.Clone()
	if err := fn(next, now); err != nil {
		return nil, nil, err
	}

	save := &saveTaskAction{repo: s.tasks, prev: current, next: next}
	if err := rc.Stage(taskKey(id), next, save); err != nil {
		return nil, nil, err
	}
	batch := s.recorder.batch()
	if err := batch.stage(rc, func() activity.Activity { return describe(current, next, now) }); err != nil {
		return nil, nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to change task",
			slog.String("operation", op),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return nil, nil, fmt.Errorf("saving task %d: %w", id, err)
	}
	batch.publish(rc)

	return current, save.result(), nil
}

// DeleteTask removes the task. The task_deleted activity outlives it.
// Attachment bytes are removed after the metadata is gone; failures there
// are logged and leave orphaned blobs rather than failing the request.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("task_id", id))

	rc := appctx.FromContext(ctx)
	current, err := loadTask(rc, s.tasks, id)
	if err != nil {
		return err
	}
	if err := current.EnsureDeletableBy(actor.UserID, actor.IsAdmin); err != nil {
		return err
	}

	atts, err := s.attachments.ListAttachments(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list attachments",
			slog.String("operation", "DeleteTask"),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("listing attachments: %w", err)
	}

	now := s.now()
	batch := s.recorder.batch()
	if err := batch.stage(rc, func() activity.Activity {
		return activity.TaskDeleted(current, actor.UserID, now)
	}); err != nil {
		return err
	}
	if err := rc.AddAction(&deleteTaskAction{repo: s.tasks, id: id}); err != nil {
		return err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting task: %w", err)
	}
	batch.publish(rc)

	for _, a := range atts {
		if err := rc.Execute(&deleteBlobAction{store: s.blobs, path: a.StoragePath}); err != nil {
			s.logger.WarnContext(ctx, "failed to delete attachment blob",
				slog.String("operation", "DeleteTask"),
				slog.Int64("task_id", id),
				slog.Int64("attachment_id", a.ID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// BulkChangeStatus changes the status of several tasks with bounded
// concurrency. Each task gets its own RequestContext so one failure never
// rolls back another task.
func (s *TaskService) BulkChangeStatus(ctx context.Context, ids []int64, to task.Status) (*ports.BulkStatusResult, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "bulk changing task status",
		slog.Int("count", len(ids)),
		slog.String("to", to.String()),
	)

	switch {
	case len(ids) == 0:
		return nil, domain.NewValidationError("task_ids", domain.MsgRequired)
	case len(ids) > MaxBulkTasks:
		return nil, domain.NewValidationError("task_ids", fmt.Sprintf("must contain at most %d ids", MaxBulkTasks))
	case !to.IsValid():
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", to))
	}
	ids = uniqueIDs(ids)

	fromCounts := appctx.NewRef(map[task.Status]int{})
	results := fanout.Run(ctx, s.bulkWorkers, ids, func(ctx context.Context, id int64) (*task.Task, error) {
		prev, saved, err := s.changeStatus(ctx, appctx.New(ctx), actor, id, to)
		if err != nil {
			return nil, err
		}
		fromCounts.Update(func(m *map[task.Status]int) { (*m)[prev.Status]++ })
		return saved, nil
	})

	out := &ports.BulkStatusResult{}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkStatusError{TaskID: ids[i], Err: r.Err})
			continue
		}
		out.Updated = append(out.Updated, *r.Value)
	}

	attrs := []any{slog.Int("updated", len(out.Updated)), slog.Int("failed", len(out.Errors))}
	for from, n := range fromCounts.Get() {
		attrs = append(attrs, slog.Int("from_"+from.String(), n))
	}
	s.logger.InfoContext(ctx, "bulk status change finished", attrs...)

	return out, nil
}

// ListActivity returns the task's audit trail, oldest first.
func (s *TaskService) ListActivity(ctx context.Context, taskID int64) ([]activity.Activity, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listing task activity", slog.Int64("task_id", taskID))

	if _, err := loadTask(appctx.FromContext(ctx), s.tasks, taskID); err != nil {
		return nil, err
	}

	acts, err := s.activities.ListActivity(ctx, taskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list activity",
			slog.String("operation", "ListActivity"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return acts, nil
}

// ensureUserExists turns a missing referenced user into a validation error
// on field.
func (s *TaskService) ensureUserExists(ctx context.Context, field string, id int64) error {
	if _, err := s.users.GetUser(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError(field, fmt.Sprintf("user %d does not exist", id))
		}
		return fmt.Errorf("checking user %d: %w", id, err)
	}
	return nil
}

func (s *TaskService) ensureTagsExist(ctx context.Context, ids []int64) error {
	found, err := s.tags.FindTags(ctx, ids)
	if err != nil {
		return fmt.Errorf("checking tags: %w", err)
	}
	known := make(map[int64]bool, len(found))
	for _, t := range found {
		known[t.ID] = true
	}
	var missing []int64
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return domain.NewValidationError("tag_ids", fmt.Sprintf("unknown tags: %v", slices.Compact(missing)))
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
