// Package metadata stores the client's offline account data as key/value
// pairs: enough to unlock the cache without reaching the server.
package metadata

import "context"

// Key names a metadata entry.
type Key string

const (
	KeyUsername Key = "username"
	KeySalt     Key = "salt"
	KeyVerifier Key = "verifier"
	KeyTimezone Key = "timezone"
)

type Repository interface {
	// Get returns common.ErrorNotFound for absent keys.
	Get(ctx context.Context, key Key) ([]byte, error)
	Set(ctx context.Context, key Key, value []byte) error
	// Clear removes every entry; used on logout.
	Clear(ctx context.Context) error
}
