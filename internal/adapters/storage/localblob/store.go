// Package localblob keeps attachment bytes on the local filesystem under a
// single root directory.
package localblob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var (
	_ ports.BlobStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store writes objects to root/<prefix>/<uuid><ext>.
type Store struct {
	root string
}

// New creates root if needed and returns a Store rooted there.
func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving blob root %q: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("creating blob root %q: %w", abs, err)
	}
	return &Store{root: abs}, nil
}

// Put writes the object and returns its path relative to the root. A short
// read removes the partial file.
func (s *Store) Put(ctx context.Context, obj ports.BlobObject, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := path.Join(obj.Prefix, uuid.NewString()+strings.ToLower(path.Ext(obj.Filename)))
	full, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", fmt.Errorf("%w: creating blob directory: %w", domain.ErrUnavailable, err)
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("%w: creating blob: %w", domain.ErrUnavailable, err)
	}

	n, copyErr := io.Copy(f, io.LimitReader(r, obj.Size+1))
	closeErr := f.Close()
	switch {
	case copyErr != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("%w: writing blob: %w", domain.ErrUnavailable, copyErr)
	case closeErr != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("%w: closing blob: %w", domain.ErrUnavailable, closeErr)
	case n != obj.Size:
		_ = os.Remove(full)
		return "", &domain.FileValidationError{
			Filename: obj.Filename,
			Reason:   fmt.Sprintf("declared %d bytes, received %d", obj.Size, n),
		}
	}
	return key, nil
}

// Open returns the stored object.
func (s *Store) Open(_ context.Context, key string) (io.ReadCloser, error) {
	full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("blob %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening blob: %w", domain.ErrUnavailable, err)
	}
	return f, nil
}

// Delete removes the object. Missing objects are ignored.
func (s *Store) Delete(_ context.Context, key string) error {
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: deleting blob: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "blob-store" }

// HealthCheck verifies the root is a writable directory.
func (s *Store) HealthCheck(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("blob root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("blob root %q is not a directory", s.root)
	}
	probe, err := os.CreateTemp(s.root, ".health-*")
	if err != nil {
		return fmt.Errorf("blob root not writable: %w", err)
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}

// resolve maps a key onto the filesystem, refusing anything that escapes
// the root.
func (s *Store) resolve(key string) (string, error) {
	if key == "" || filepath.IsAbs(key) || strings.Contains(key, "\\") {
		return "", &domain.ValidationError{Fields: map[string]string{"path": "invalid storage path"}}
	}
	full := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &domain.ValidationError{Fields: map[string]string{"path": "escapes storage root"}}
	}
	return full, nil
}
