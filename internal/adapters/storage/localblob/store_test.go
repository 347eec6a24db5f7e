package localblob_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/storage/localblob"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

func newStore(t *testing.T) (*localblob.Store, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "blobs")
	s, err := localblob.New(root)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, root
}

func TestStore_PutOpenDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, root := newStore(t)

	key, err := s.Put(ctx, ports.BlobObject{
		Prefix:      "tasks/3",
		Filename:    "Report.PDF",
		ContentType: "application/pdf",
		Size:        7,
	}, strings.NewReader("%PDF-1."))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !strings.HasPrefix(key, "tasks/3/") || !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key = %q, want tasks/3/<uuid>.pdf", key)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(key))); err != nil {
		t.Errorf("object not on disk: %v", err)
	}

	rc, err := s.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != "%PDF-1." {
		t.Errorf("Open() = %q", data)
	}

	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Errorf("Delete() of missing object = %v, want nil", err)
	}
	if _, err := s.Open(ctx, key); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Open() after delete = %v, want ErrNotFound", err)
	}
}

func TestStore_PutSizeMismatchLeavesNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "short", body: "abc"},
		{name: "long", body: "abcdefghij"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, root := newStore(t)

			_, err := s.Put(context.Background(), ports.BlobObject{Prefix: "tasks/1", Filename: "a.txt", Size: 5}, strings.NewReader(tt.body))
			var fve *domain.FileValidationError
			if !errors.As(err, &fve) {
				t.Fatalf("Put() error = %v, want FileValidationError", err)
			}

			entries, _ := os.ReadDir(filepath.Join(root, "tasks", "1"))
			if len(entries) != 0 {
				t.Errorf("partial files left behind: %v", entries)
			}
		})
	}
}

func TestStore_RejectsEscapingPaths(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)

	for _, key := range []string{"../etc/passwd", "tasks/../../x", "/abs/path", "", "..", `tasks\..\x`} {
		if _, err := s.Open(context.Background(), key); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Open(%q) error = %v, want ErrValidation", key, err)
		}
		if err := s.Delete(context.Background(), key); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Delete(%q) error = %v, want ErrValidation", key, err)
		}
	}

	_, err := s.Put(context.Background(), ports.BlobObject{Prefix: "../outside", Filename: "a.txt", Size: 1}, strings.NewReader("x"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Put() with escaping prefix error = %v, want ErrValidation", err)
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	s, root := newStore(t)

	if s.Name() != "blob-store" {
		t.Errorf("Name() = %q", s.Name())
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v", err)
	}

	if err := os.RemoveAll(root); err != nil {
		t.Fatal(err)
	}
	if err := s.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() with missing root should fail")
	}
}
