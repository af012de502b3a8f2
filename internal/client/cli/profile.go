package cli

import (
	"context"
	"fmt"
)

func (a *App) Profile(ctx context.Context, _ []string) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Timezone: %s\nEmail reminders: %t\nPush notifications: %t\n",
		p.Timezone, p.EmailReminders, p.PushNotifications)
	return nil
}

// SetTimezone changes the profile timezone. Week boundaries move with it.
func (a *App) SetTimezone(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: tz <IANA zone, e.g. Europe/Riga>")
		return nil
	}

	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	p.Timezone = args[0]

	if p, err = a.profiles.Update(ctx, p); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Timezone set to %s.\n", p.Timezone)
	return nil
}
