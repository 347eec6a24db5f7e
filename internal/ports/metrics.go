package ports

import (
	"context"

	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
)

// DomainMetrics records business events. Implemented by the telemetry
// package; called by the application layer after a successful commit.
type DomainMetrics interface {
	StatusTransition(ctx context.Context, from, to task.Status)
	AttachmentUploaded(ctx context.Context, sizeBytes int64)
}
