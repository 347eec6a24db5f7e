// Package user models the people who create, own and work on tasks.
package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// Username length bounds.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
)

// User is a registered account. PasswordHash is an opaque credential and
// never the plaintext password.
type User struct {
	ID           int64
	Username     string
	Email        Email
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// New builds an unsaved user. The username is trimmed and must be between
// MinUsernameLength and MaxUsernameLength characters.
func New(username string, email Email, passwordHash string, now time.Time) (*User, error) {
	name, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if email.IsZero() {
		return nil, domain.NewValidationError("email", domain.MsgRequired)
	}
	if passwordHash == "" {
		return nil, domain.NewValidationError("password", domain.MsgRequired)
	}
	return &User{
		Username:     name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}

// UpdateEmail replaces the address. The value object guarantees it is
// already normalized.
func (u *User) UpdateEmail(email Email) error {
	if email.IsZero() {
		return domain.NewValidationError("email", domain.MsgRequired)
	}
	u.Email = email
	return nil
}

// Rename replaces the username after validating it.
func (u *User) Rename(username string) error {
	name, err := normalizeUsername(username)
	if err != nil {
		return err
	}
	u.Username = name
	return nil
}

// ChangePassword replaces the stored credential hash.
func (u *User) ChangePassword(hash string) error {
	if hash == "" {
		return domain.NewValidationError("password", domain.MsgRequired)
	}
	u.PasswordHash = hash
	return nil
}

// RecordLogin stamps the last successful authentication.
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
}

// Patch lists the user fields that may be updated independently. Nil
// fields are left unchanged.
type Patch struct {
	Username *string
	Email    *Email
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil
}

// Apply writes the non-nil fields to a copy of u and returns it. On error
// u is left untouched.
func (p Patch) Apply(u *User) (*User, error) {
	next := *u
	if p.Username != nil {
		if err := next.Rename(*p.Username); err != nil {
			return nil, err
		}
	}
	if p.Email != nil {
		if err := next.UpdateEmail(*p.Email); err != nil {
			return nil, err
		}
	}
	return &next, nil
}

func normalizeUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domain.NewValidationError("username", domain.MsgMustNotEmpty)
	}
	if n := utf8.RuneCountInString(name); n < MinUsernameLength || n > MaxUsernameLength {
		return "", domain.NewValidationError("username", "must be between 3 and 64 characters")
	}
	return name, nil
}
