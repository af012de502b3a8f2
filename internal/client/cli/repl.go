package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printFn is a test seam for the prompt and REPL messages.
var printFn = fmt.Print

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Unlock(ctx context.Context) error
	Lock(ctx context.Context)
	Week(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Write(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Restore(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	SetTimezone(ctx context.Context, args []string) error
	Archive(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: week, write [date], show [date], (l)ist, delete <id>, restore <id>, " +
		"profile, tz <zone>, archive [get <key>], unlock, lock, logout, exit"
)

// runREPL reads commands from reader until EOF or "exit". Handlers report
// their own errors to the user, so the loop ignores them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("journal %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printFn("Bye!\n")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printFn(helpLoggedOut + "\n")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printFn("Please log in first. " + helpLoggedOut + "\n")
			}
			continue
		}

		switch cmd {
		case "help":
			printFn(helpLoggedIn + "\n")
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "unlock":
			_ = a.Unlock(ctx)
		case "lock":
			a.Lock(ctx)
		case "week":
			_ = a.Week(ctx, args)
		case "show":
			_ = a.Show(ctx, args)
		case "write":
			_ = a.Write(ctx, args)
		case "l", "list":
			_ = a.List(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "restore":
			_ = a.Restore(ctx, args)
		case "profile":
			_ = a.Profile(ctx, args)
		case "tz":
			_ = a.SetTimezone(ctx, args)
		case "archive":
			_ = a.Archive(ctx, args)
		default:
			printFn("Unknown command: " + cmd + "\n")
		}

		if err != nil {
			return
		}
	}
}
