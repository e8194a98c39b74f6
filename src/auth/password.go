package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"fintrack-server/src/apperr"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns passwords into self-describing bcrypt digests.
type Hasher struct {
	cost int

	once  sync.Once
	dummy []byte
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", apperr.ErrInvalidRequest)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. Digests from an unknown scheme
// or otherwise malformed never match.
func (h *Hasher) Verify(plain, digest string) bool {
	if !strings.HasPrefix(digest, "$2") {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// Mismatch costs the same as a failed Verify. Callers use it when there is no
// digest to check, so unknown accounts answer as slowly as wrong passwords.
func (h *Hasher) Mismatch(plain string) {
	h.once.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("no account"), h.cost)
	})
	bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
}
