// Package cryptox wraps the key-derivation primitives used to store
// account secrets.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing them invalidates every stored credential.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	KeyLen       = 32
	SaltLen      = 16
)

// DeriveKey stretches secret with salt using argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, KeyLen)
}

// NewSalt returns SaltLen random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltLen)
}

// Equal compares a and b in constant time.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
