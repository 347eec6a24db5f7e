package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var _ ports.PasswordHasher = BcryptHasher{}

// BcryptHasher hashes passwords at a fixed cost.
type BcryptHasher struct {
	Cost int
}

// Hash implements ports.PasswordHasher.
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(b), nil
}

// Verify implements ports.PasswordHasher. A malformed hash is reported the
// same way as a wrong password.
func (h BcryptHasher) Verify(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return &domain.AuthenticationError{Reason: "invalid credentials"}
	}
	return nil
}
