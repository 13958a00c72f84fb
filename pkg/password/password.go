// Package password wraps bcrypt behind a narrow hash/verify surface so
// the rest of the code never touches cryptographic primitives directly.
package password

import "golang.org/x/crypto/bcrypt"

const defaultCost = 12

type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: defaultCost}
}

// Hash generates a salted bcrypt hash of the plaintext password.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
