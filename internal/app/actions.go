package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var (
	_ domain.Action = (*insertAction[int])(nil)
	_ domain.Action = (*saveTaskAction)(nil)
	_ domain.Action = (*deleteTaskAction)(nil)
	_ domain.Action = (*storeBlobAction)(nil)
	_ domain.Action = (*deleteBlobAction)(nil)
)

// errIrreversible is returned by Rollback of actions that cannot be undone.
// Such actions are staged last so that Commit never needs to roll them back.
var errIrreversible = errors.New("action cannot be rolled back")

// insertAction creates a row and deletes it again on rollback.
type insertAction[T any] struct {
	desc    string
	insert  func(ctx context.Context) (T, error)
	remove  func(ctx context.Context, created T) error
	created T
}

func (a *insertAction[T]) Execute(ctx context.Context) error {
	created, err := a.insert(ctx)
	if err != nil {
		return err
	}
	a.created = created
	return nil
}

func (a *insertAction[T]) Rollback(ctx context.Context) error {
	return a.remove(ctx, a.created)
}

func (a *insertAction[T]) Description() string { return a.desc }

// saveTaskAction writes an updated task and restores the previous version on
// rollback.
type saveTaskAction struct {
	repo  ports.TaskRepository
	prev  *task.Task
	next  *task.Task
	saved *task.Task
}

func (a *saveTaskAction) Execute(ctx context.Context) error {
	saved, err := a.repo.UpdateTask(ctx, a.next)
	if err != nil {
		return err
	}
	a.saved = saved
	return nil
}

// Rollback writes prev back over the version Execute stored.
func (a *saveTaskAction) Rollback(ctx context.Context) error {
	restore := a.prev.Clone()
	if a.saved != nil {
		restore.Version = a.saved.Version
	}
	_, err := a.repo.UpdateTask(ctx, restore)
	return err
}

func (a *saveTaskAction) Description() string {
	return fmt.Sprintf("save task %d", a.next.ID)
}

// result returns what the repository stored, falling back to the staged
// version for repositories that return nothing.
func (a *saveTaskAction) result() *task.Task {
	if a.saved != nil {
		return a.saved
	}
	return a.next
}

type deleteTaskAction struct {
	repo ports.TaskRepository
	id   int64
}

func (a *deleteTaskAction) Execute(ctx context.Context) error {
	return a.repo.DeleteTask(ctx, a.id)
}

func (a *deleteTaskAction) Rollback(context.Context) error { return errIrreversible }

func (a *deleteTaskAction) Description() string {
	return fmt.Sprintf("delete task %d", a.id)
}

// storeBlobAction writes attachment bytes and removes them on rollback.
type storeBlobAction struct {
	store ports.BlobStore
	obj   ports.BlobObject
	body  io.Reader
	path  string
}

func (a *storeBlobAction) Execute(ctx context.Context) error {
	path, err := a.store.Put(ctx, a.obj, a.body)
	if err != nil {
		return err
	}
	a.path = path
	return nil
}

func (a *storeBlobAction) Rollback(ctx context.Context) error {
	if a.path == "" {
		return nil
	}
	return a.store.Delete(ctx, a.path)
}

func (a *storeBlobAction) Description() string {
	return fmt.Sprintf("store blob %s under %s", a.obj.Filename, a.obj.Prefix)
}

// deleteBlobAction is run with RequestContext.Execute once the metadata is
// gone, so it never takes part in a rollback.
type deleteBlobAction struct {
	store ports.BlobStore
	path  string
}

func (a *deleteBlobAction) Execute(ctx context.Context) error {
	return a.store.Delete(ctx, a.path)
}

func (a *deleteBlobAction) Rollback(context.Context) error { return errIrreversible }

func (a *deleteBlobAction) Description() string {
	return "delete blob " + a.path
}

func newAttachmentInsert(repo ports.AttachmentRepository, a *attachment.Attachment, blob *storeBlobAction) *insertAction[*attachment.Attachment] {
	return &insertAction[*attachment.Attachment]{
		desc: fmt.Sprintf("save attachment %s for task %d", a.Filename, a.TaskID),
		insert: func(ctx context.Context) (*attachment.Attachment, error) {
			if err := a.AssignStorage(blob.path); err != nil {
				return nil, err
			}
			return repo.CreateAttachment(ctx, a)
		},
		remove: func(ctx context.Context, created *attachment.Attachment) error {
			return repo.DeleteAttachment(ctx, created.ID)
		},
	}
}
