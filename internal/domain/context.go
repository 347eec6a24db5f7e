package domain

import "context"

// Action is one reversible write, such as saving a task or appending an
// activity. Rollback is only called after a successful Execute and may
// receive a different context.
type Action interface {
	Execute(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Description names the write for logs, e.g. "save task 12".
	Description() string
}

// WriteStager is the part of the request context that queues writes.
// Stage makes entity visible to later reads of key before the write runs;
// Execute runs an action immediately and outside the rollback queue.
type WriteStager interface {
	Stage(key string, entity any, action Action) error
	Execute(action Action) error
}
