package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// Commit runs the queued items in order. When one fails, the items before
// it are rolled back newest first and the failure is returned wrapped with
// the item's description. Rollback failures are logged only.
//
// Commit runs at most once; later calls, and later attempts to queue,
// return ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	items, err := rc.seal()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	for i, item := range items {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.description()),
		)

		if err := item.execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
			rollback(ctx, logger, items[:i])
			return fmt.Errorf("executing %s: %w", item.description(), err)
		}
	}
	return nil
}

// seal marks the context committed and hands back the queue. Nothing can
// be appended afterwards, so the returned slice is safe to read unlocked.
func (rc *RequestContext) seal() ([]actionItem, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	return rc.items, nil
}

func rollback(ctx context.Context, logger *slog.Logger, done []actionItem) {
	for i := len(done) - 1; i >= 0; i-- {
		item := done[i]
		logger.InfoContext(ctx, "rolling back action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", item.description()),
		)
		if err := item.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to roll back action",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
		}
	}
}

// Pending reports how many queued items have not been committed. It is zero
// after Commit, whatever the outcome.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return 0
	}
	return len(rc.items)
}
