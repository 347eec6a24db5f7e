// Package tag models labels that group tasks.
package tag

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// MaxNameLength bounds a tag name in characters.
const MaxNameLength = 50

// Tag is a named label. Names are unique across the tracker.
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New builds an unsaved tag.
func New(name string, now time.Time) (*Tag, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return &Tag{Name: n, CreatedAt: now, UpdatedAt: now}, nil
}

// Rename replaces the name.
func (t *Tag) Rename(name string, now time.Time) error {
	n, err := normalizeName(name)
	if err != nil {
		return err
	}
	t.Name = n
	t.UpdatedAt = now
	return nil
}

func normalizeName(raw string) (string, error) {
	n := strings.TrimSpace(raw)
	if n == "" {
		return "", domain.NewValidationError("name", domain.MsgMustNotEmpty)
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		return "", domain.NewValidationError("name", "must be at most 50 characters")
	}
	return n, nil
}
