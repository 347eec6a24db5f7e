package task

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// MaxTitleLength is the maximum number of characters in a trimmed title.
const MaxTitleLength = 255

// Title is a trimmed, non-empty task title of at most MaxTitleLength
// characters. Construct with NewTitle.
type Title struct {
	value string
}

// NewTitle trims raw and validates its length. An empty result yields a
// *domain.ValidationError, an overlong one a *domain.TaskTitleTooLongError.
func NewTitle(raw string) (Title, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Title{}, domain.NewValidationError("title", domain.MsgMustNotEmpty)
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxTitleLength {
		return Title{}, &domain.TaskTitleTooLongError{Length: n, Max: MaxTitleLength}
	}
	return Title{value: trimmed}, nil
}

// MustTitle is like NewTitle but panics on invalid input.
func MustTitle(raw string) Title {
	t, err := NewTitle(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the trimmed title.
func (t Title) String() string { return t.value }

// IsZero reports whether t was never constructed.
func (t Title) IsZero() bool { return t.value == "" }
