package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// actionItem is one step of a commit: a single action or a group.
type actionItem interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

// singleAction adapts a domain.Action to actionItem.
type singleAction struct {
	action domain.Action
}

func (s *singleAction) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *singleAction) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *singleAction) description() string                { return s.action.Description() }

// actionGroup runs independent actions concurrently. The first failure
// cancels the others; members that finished are rolled back before the
// error is returned, so a failed group leaves nothing behind.
type actionGroup struct {
	actions   []domain.Action
	completed []domain.Action
}

func (g *actionGroup) execute(ctx context.Context) error {
	g.completed = nil
	if len(g.actions) == 0 {
		return nil
	}

	done := make([]bool, len(g.actions))
	eg, groupCtx := errgroup.WithContext(ctx)
	for i, a := range g.actions {
		eg.Go(func() error {
			if err := a.Execute(groupCtx); err != nil {
				return err
			}
			done[i] = true
			return nil
		})
	}
	err := eg.Wait()

	for i, ok := range done {
		if ok {
			g.completed = append(g.completed, g.actions[i])
		}
	}
	if err != nil {
		g.rollbackCompleted(ctx)
		return err
	}
	return nil
}

func (g *actionGroup) rollback(ctx context.Context) error {
	g.rollbackCompleted(ctx)
	return nil
}

// rollbackCompleted undoes finished members newest first. Failures are
// logged and the remaining members are still rolled back.
func (g *actionGroup) rollbackCompleted(ctx context.Context) {
	logger := logging.FromContext(ctx)
	for i := len(g.completed) - 1; i >= 0; i-- {
		a := g.completed[i]
		if err := a.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to roll back grouped action",
				slog.String("operation", "RequestContext.Commit"),
				slog.String("action", a.Description()),
				slog.Any("error", err),
			)
		}
	}
}

func (g *actionGroup) description() string {
	switch len(g.actions) {
	case 0:
		return "empty group"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("group of %d (%s, ...)", len(g.actions), g.actions[0].Description())
	}
}

// AddAction queues one action for Commit. It returns ErrNilAction for a
// nil action and ErrAlreadyCommitted once Commit has run. Safe for
// concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(&singleAction{action: action})
}

// AddGroup queues actions that Commit runs concurrently as one step. Use it
// for writes that do not depend on each other, such as one activity row
// per changed field.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	if slices.Contains(actions, nil) {
		return ErrNilAction
	}
	return rc.enqueue(&actionGroup{actions: slices.Clone(actions)})
}

// enqueue appends item unless the context is committed. onQueued, when
// set, runs under the same lock.
func (rc *RequestContext) enqueue(item actionItem, onQueued ...func()) error {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, item)
	for _, fn := range onQueued {
		fn()
	}
	return nil
}
