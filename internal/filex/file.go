// Package filex holds small filesystem helpers for the client.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir and any missing parents. The directory is private
// to the owner since it holds the journal cache.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
