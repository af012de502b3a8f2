package cli

import (
	"context"
	"fmt"
)

// Archive uploads all stored envelopes, or with "get <key>" fetches an
// earlier upload and summarizes it. Nothing is decrypted.
func (a *App) Archive(ctx context.Context, args []string) error {
	if len(args) == 2 && args[0] == "get" {
		b, err := a.archives.Download(ctx, args[1])
		if err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", err)
			return err
		}
		fmt.Fprintf(a.out, "Archive from %s holds %d reflections.\n",
			b.CreatedAt.Local().Format(dateLayout), len(b.Reflections))
		return nil
	}
	if len(args) != 0 {
		fmt.Fprintln(a.out, "Usage: archive | archive get <key>")
		return nil
	}

	key, n, err := a.archives.Upload(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Archived %d reflections as %s\n", n, key)
	return nil
}
