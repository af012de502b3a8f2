// Package models defines the rows the journal server persists.
package models

import "time"

// User is an account. Salt and Verifier come from the client's argon2
// derivation; the server never sees the account password.
type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
