package user

import (
	"regexp"
	"strings"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a normalized, validated email address. The zero value is not a
// valid address; construct with NewEmail.
type Email struct {
	value string
}

// NewEmail trims and lower-cases raw and validates the result. It returns
// a *domain.InvalidEmailError when the address is empty or malformed.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" || !emailPattern.MatchString(normalized) {
		return Email{}, &domain.InvalidEmailError{Value: raw}
	}
	return Email{value: normalized}, nil
}

// MustEmail is like NewEmail but panics on invalid input. Intended for
// tests and static fixtures.
func MustEmail(raw string) Email {
	e, err := NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the normalized address.
func (e Email) String() string { return e.value }

// Equal reports whether both addresses have the same normalized form.
func (e Email) Equal(other Email) bool { return e.value == other.value }

// IsZero reports whether e was never constructed.
func (e Email) IsZero() bool { return e.value == "" }
