package user

import (
	"fmt"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// Plaintext password bounds. The upper bound is the bcrypt input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// ValidatePassword checks a plaintext password before it is hashed.
func ValidatePassword(password string) error {
	switch n := len(password); {
	case n == 0:
		return domain.NewValidationError("password", domain.MsgRequired)
	case n < MinPasswordLength:
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	case n > MaxPasswordLength:
		return domain.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", MaxPasswordLength))
	}
	return nil
}
