// Package cryptox derives the account credentials sent to the server. The
// account password never leaves the client: only the verifier does.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// MakeVerifier returns the value the server stores and compares on login.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}
