package app

import (
	"context"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/task-tracker/internal/app/context"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// activityRecorder persists activity inside a commit and publishes it after.
// It is shared by all services; per-use-case state lives in activityBatch.
type activityRecorder struct {
	repo      ports.ActivityRepository
	publisher ports.ActivityPublisher
	logger    *slog.Logger
}

func newActivityRecorder(repo ports.ActivityRepository, publisher ports.ActivityPublisher, logger *slog.Logger) *activityRecorder {
	return &activityRecorder{repo: repo, publisher: publisher, logger: logger}
}

func (r *activityRecorder) batch() *activityBatch {
	return &activityBatch{recorder: r}
}

type activityBatch struct {
	recorder *activityRecorder
	actions  []*recordActivityAction
}

// newAction builds the action without staging it. build runs at execution
// time so it may read ids assigned by earlier actions in the same commit.
func (b *activityBatch) newAction(build func() activity.Activity) *recordActivityAction {
	a := &recordActivityAction{repo: b.recorder.repo, build: build}
	b.actions = append(b.actions, a)
	return a
}

// stage queues a single activity insert.
func (b *activityBatch) stage(rc *appctx.RequestContext, build func() activity.Activity) error {
	return rc.AddAction(b.newAction(build))
}

// stageAll queues several independent inserts as one parallel group.
func (b *activityBatch) stageAll(rc *appctx.RequestContext, activities []activity.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	actions := make([]domain.Action, 0, len(activities))
	for _, act := range activities {
		actions = append(actions, b.newAction(func() activity.Activity { return act }))
	}
	return rc.AddGroup(actions...)
}

// publish announces every recorded activity. Failures are logged only: the
// activity is already persisted.
func (b *activityBatch) publish(rc *appctx.RequestContext) {
	if b.recorder.publisher == nil {
		return
	}
	for _, a := range b.actions {
		if a.saved == nil {
			continue
		}
		pub := &publishActivityAction{publisher: b.recorder.publisher, act: *a.saved}
		if err := rc.Execute(pub); err != nil {
			b.recorder.logger.WarnContext(rc, "failed to publish activity",
				slog.String("operation", "publishActivity"),
				slog.Int64("task_id", a.saved.TaskID),
				slog.String("type", a.saved.Type.String()),
				slog.Any("error", err),
			)
		}
	}
}

type recordActivityAction struct {
	repo  ports.ActivityRepository
	build func() activity.Activity
	saved *activity.Activity
}

func (a *recordActivityAction) Execute(ctx context.Context) error {
	act := a.build()
	saved, err := a.repo.AppendActivity(ctx, &act)
	if err != nil {
		return err
	}
	a.saved = saved
	return nil
}

func (a *recordActivityAction) Rollback(ctx context.Context) error {
	if a.saved == nil {
		return nil
	}
	return a.repo.DeleteActivity(ctx, a.saved.ID)
}

func (a *recordActivityAction) Description() string { return "record activity" }

type publishActivityAction struct {
	publisher ports.ActivityPublisher
	act       activity.Activity
}

func (a *publishActivityAction) Execute(ctx context.Context) error {
	return a.publisher.Publish(ctx, a.act)
}

func (a *publishActivityAction) Rollback(context.Context) error { return errIrreversible }

func (a *publishActivityAction) Description() string {
	return fmt.Sprintf("publish %s for task %d", a.act.Type, a.act.TaskID)
}
