package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
)

// BlobObject describes bytes about to be written to a BlobStore.
type BlobObject struct {
	// Prefix groups related objects, e.g. "tasks/42".
	Prefix      string
	Filename    string
	ContentType string
	Size        int64
}

// BlobStore keeps attachment bytes behind an opaque storage path.
// Implemented by the blob adapters (local filesystem, remote object store).
type BlobStore interface {
	// Put writes exactly obj.Size bytes from r and returns the storage path
	// under which they can be read back.
	Put(ctx context.Context, obj BlobObject, r io.Reader) (string, error)

	// Open returns a reader for the object. The caller closes it.
	// Returns domain.ErrNotFound if nothing is stored under path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error
}

// ActivityPublisher announces recorded activity to other processes.
// Publishing is best effort: the activity is already persisted when
// Publish is called.
type ActivityPublisher interface {
	Publish(ctx context.Context, a activity.Activity) error
}
