package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/reflection"
	"github.com/dmitrijs2005/weekjournal/internal/week"
)

const dateLayout = "2006-01-02 15:04 MST"

// Unlock asks for the journal passphrase and checks it against the newest
// stored week. With nothing stored yet the passphrase is being chosen, so
// it is validated and confirmed instead.
func (a *App) Unlock(ctx context.Context) error {
	pass, err := getPassword("Enter journal passphrase", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pass)

	weeks, err := a.reflections.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	if len(weeks) == 0 {
		again, err := getPassword("Repeat journal passphrase", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(again)

		if err := reflection.ValidatePassphrase(string(pass), string(again)); err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", err)
			return err
		}
		fmt.Fprintln(a.out, "Passphrase set. It cannot be recovered, keep it safe.")
	} else if err := a.reflections.VerifyPassphrase(ctx, string(pass)); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	a.passphrase = string(pass)
	return nil
}

// Lock forgets the journal passphrase.
func (a *App) Lock(context.Context) {
	a.passphrase = ""
}

func (a *App) ensureUnlocked(ctx context.Context) error {
	if a.passphrase != "" {
		return nil
	}
	return a.Unlock(ctx)
}

// weekArg reads an optional YYYY-MM-DD argument; the default is the current
// week.
func (a *App) weekArg(ctx context.Context, args []string) (civil.Date, error) {
	if len(args) > 0 {
		return week.Parse(args[0])
	}
	return a.reflections.CurrentWeek(ctx)
}

// Week prints the start of the current week in the profile timezone.
func (a *App) Week(ctx context.Context, _ []string) error {
	start, err := a.reflections.CurrentWeek(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Current week starts %s\n", start)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	start, err := a.weekArg(ctx, args)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}

	w, err := a.reflections.Load(ctx, start, a.passphrase)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	var sum *reflection.Summary
	if w.Record != nil {
		sum = &reflection.Summary{ID: w.Record.ID, WeekStartDate: start, IsCompleted: w.Record.IsCompleted}
	}
	status := reflection.StatusOf(w.Locked, sum)

	fmt.Fprintf(a.out, "Week of %s: %s", start, status)
	if !w.Locked {
		fmt.Fprintf(a.out, " (locks %s)", w.LocksAt.Format(dateLayout))
	}
	if w.Cached {
		fmt.Fprint(a.out, " [offline copy]")
	}
	fmt.Fprintln(a.out)

	if w.Answers == nil {
		return nil
	}
	answered, percent := w.Answers.Progress()
	fmt.Fprintf(a.out, "%d/%d answered (%d%%)\n", answered, len(reflection.Questions), percent)
	for i, q := range reflection.Questions {
		fmt.Fprintf(a.out, "\n%d. %s\n", i+1, q.Text)
		if ans := w.Answers.Get(i); ans != "" {
			fmt.Fprintln(a.out, ans)
		} else {
			fmt.Fprintln(a.out, "-")
		}
	}
	return nil
}

// Write walks through the seven questions. An empty answer keeps the
// current one, a single "-" clears it.
func (a *App) Write(ctx context.Context, args []string) error {
	start, err := a.weekArg(ctx, args)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}

	w, err := a.reflections.Load(ctx, start, a.passphrase)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if w.Locked {
		fmt.Fprintf(a.out, "The week of %s is locked and read-only.\n", start)
		return common.ErrWeekLocked
	}

	answers := &reflection.Answers{}
	if w.Answers != nil {
		answers = w.Answers
	}

	for i, q := range reflection.Questions {
		prompt := fmt.Sprintf("%d. %s\n   %s", i+1, q.Text, q.Description)
		if cur := answers.Get(i); cur != "" {
			prompt += "\n   current: " + strings.ReplaceAll(cur, "\n", " ")
		}
		text, err := getMultiline(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch text {
		case "":
		case "-":
			answers.Set(i, "")
		default:
			answers.Set(i, text)
		}
	}

	answered, percent := answers.Progress()
	fmt.Fprintf(a.out, "%d/%d answered (%d%%)\n", answered, len(reflection.Questions), percent)

	complete := false
	if answers.Complete() {
		if complete, err = confirm(a.reader, "Mark the week as completed?", a.out); err != nil {
			return err
		}
	}

	saved, err := a.reflections.Save(ctx, start, answers, a.passphrase, complete)
	if err != nil {
		if errors.Is(err, common.ErrWeekLocked) {
			fmt.Fprintf(a.out, "The week of %s locked while you were writing.\n", start)
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", err)
		}
		return err
	}

	if saved.IsCompleted {
		fmt.Fprintln(a.out, "Saved and completed.")
	} else {
		fmt.Fprintln(a.out, "Draft saved.")
	}
	return nil
}

func (a *App) List(ctx context.Context, _ []string) error {
	weeks, err := a.reflections.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if len(weeks) == 0 {
		fmt.Fprintln(a.out, "No reflections yet.")
		return nil
	}
	if weeks[0].Cached {
		fmt.Fprintln(a.out, "[offline copy]")
	}
	for _, w := range weeks {
		fmt.Fprintf(a.out, "%s  %-12s %s  updated %s\n",
			w.WeekStartDate, w.Status, w.ID, w.UpdatedAt.Local().Format(dateLayout))
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}
	if err := a.reflections.Delete(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s. Use 'restore %s' to undo.\n", args[0], args[0])
	return nil
}

func (a *App) Restore(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: restore <id>")
		return nil
	}
	if err := a.reflections.Restore(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Restored %s.\n", args[0])
	return nil
}
