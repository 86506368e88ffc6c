package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tcworld/magadmin/internal/domain/admin"
)

// BcryptPasswordHasher salts and hashes admin passwords with bcrypt at a fixed cost.
type BcryptPasswordHasher struct {
	cost int
}

var (
	_ admin.PasswordHasher = (*BcryptPasswordHasher)(nil)
	_ admin.Rehasher       = (*BcryptPasswordHasher)(nil)
)

// NewBcryptPasswordHasher falls back to bcrypt.DefaultCost when cost is out of range.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	h := &BcryptPasswordHasher{cost: bcrypt.DefaultCost}
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		h.cost = cost
	}
	return h
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(out), nil
}

// Verify does not distinguish a wrong password from a malformed hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// NeedsRehash reports a hash made with a different cost than the configured one.
func (h *BcryptPasswordHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != h.cost
}
