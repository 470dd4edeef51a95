package password

import (
	"fmt"

	"github.com/FrancisEgan/TodoApp/internal/core/app"
	"github.com/alexedwards/argon2id"
)

// Hasher hashes passwords with argon2id.
type Hasher struct {
	params *argon2id.Params
}

// NewHasher creates a hasher with the library defaults.
func NewHasher() *Hasher {
	return &Hasher{params: argon2id.DefaultParams}
}

var _ app.PasswordHasher = (*Hasher)(nil)

// Hash returns the encoded $argon2id$... hash suitable for storage.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := argon2id.CreateHash(plain, h.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

// Verify reports whether plain matches the stored hash. An unparseable hash
// (e.g. an account that never set a password) verifies as false.
func (h *Hasher) Verify(plain, hash string) (bool, error) {
	if hash == "" {
		return false, nil
	}

	ok, err := argon2id.ComparePasswordAndHash(plain, hash)
	if err != nil {
		return false, nil
	}

	return ok, nil
}
