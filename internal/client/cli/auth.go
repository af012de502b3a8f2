package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/common"
)

// Input helpers, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirm       = Confirm
)

func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter account password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Success! You can log in now.")
	return nil
}

// Login tries the server first and falls back to the offline verifier when
// the server is unreachable. Offline sessions can read the cache only.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter account password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.authService.OnlineLogin(ctx, userName, password)
	switch {
	case err == nil:
		log.Printf("Login successful")
		a.setMode(ModeOnline)
	case errors.Is(err, client.ErrUnavailable):
		log.Printf("Server unavailable, trying offline login...")
		if err = a.authService.OfflineLogin(ctx, userName, password); err != nil {
			log.Printf("Offline login unsuccessful: %s", err.Error())
			a.setMode(ModeDisabled)
			return err
		}
		log.Printf("Offline login successful")
		a.setMode(ModeOffline)
	default:
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	a.loggedIn = true
	return nil
}

// Logout forgets the session and the passphrase and wipes local data.
func (a *App) Logout(ctx context.Context) error {
	a.Lock(ctx)
	a.loggedIn = false
	a.userName = ""

	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not clear local data: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
