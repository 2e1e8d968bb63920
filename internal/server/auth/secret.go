package auth

import (
	"fmt"

	"github.com/dmitrijs2005/wanttogo/internal/cryptox"
)

// SecretHasher turns a presented secret into its stored form and checks a
// candidate against a stored value. Verify must be an exact-match check:
// any byte difference in the candidate fails.
type SecretHasher interface {
	Hash(secret []byte) ([]byte, error)
	Verify(stored, candidate []byte) bool
}

// NewSecretHasher returns the hasher registered under name.
func NewSecretHasher(name string) (SecretHasher, error) {
	switch name {
	case "", "argon2":
		return Argon2Hasher{}, nil
	case "plain":
		return PlainHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

// Argon2Hasher stores salt || argon2id(secret, salt).
type Argon2Hasher struct{}

func (Argon2Hasher) Hash(secret []byte) ([]byte, error) {
	salt := cryptox.NewSalt()
	key := cryptox.DeriveKey(secret, salt)
	return append(salt, key...), nil
}

func (Argon2Hasher) Verify(stored, candidate []byte) bool {
	if len(stored) != cryptox.SaltLen+cryptox.KeyLen {
		return false
	}
	salt, key := stored[:cryptox.SaltLen], stored[cryptox.SaltLen:]
	return cryptox.Equal(key, cryptox.DeriveKey(candidate, salt))
}

// PlainHasher stores the secret as given. Only for development and for
// stores seeded with unhashed credentials.
type PlainHasher struct{}

func (PlainHasher) Hash(secret []byte) ([]byte, error) {
	return append([]byte(nil), secret...), nil
}

func (PlainHasher) Verify(stored, candidate []byte) bool {
	return cryptox.Equal(stored, candidate)
}
