package auth

import (
	"errors"

	"github.com/technova/placement/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for stored password digests.
const BcryptCost = 12

// PasswordHasher is the one-way credential primitive used by every login flow.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher using cost, or BcryptCost when cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = BcryptCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash returns the bcrypt digest of plaintext.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewValidationError("password", "password must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares plaintext against digest. Timing is whatever bcrypt provides.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		// Malformed digest: treat as a mismatch.
		return false
	}
	return err == nil
}
