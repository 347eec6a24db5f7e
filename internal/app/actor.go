package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/task-tracker/internal/app/context"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

func actorFrom(ctx context.Context) (ports.Actor, error) {
	a, ok := ports.ActorFromContext(ctx)
	if !ok || a.UserID <= 0 {
		return ports.Actor{}, fmt.Errorf("no authenticated user: %w", domain.ErrUnauthenticated)
	}
	return a, nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

func utcNow() time.Time { return time.Now().UTC() }

type nopMetrics struct{}

func (nopMetrics) StatusTransition(context.Context, task.Status, task.Status) {}
func (nopMetrics) AttachmentUploaded(context.Context, int64)                  {}

func orNopMetrics(m ports.DomainMetrics) ports.DomainMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}

func taskKey(id int64) string { return fmt.Sprintf("task:%d", id) }

// loadTask reads a task through the request cache so repeated loads within
// one request hit the repository once.
func loadTask(rc *appctx.RequestContext, repo ports.TaskRepository, id int64) (*task.Task, error) {
	return appctx.GetOrFetch(rc, taskKey(id), func(ctx context.Context) (*task.Task, error) {
		return repo.GetTask(ctx, id)
	})
}
