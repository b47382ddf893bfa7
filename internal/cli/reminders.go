package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskpilot/internal/api"
	"github.com/dmitrijs2005/taskpilot/internal/models"
)

// Reminders lists and manages reminders. Subcommands:
//
//	reminders            list
//	reminders add        prompt for a new reminder
//	reminders done <id>  mark completed
//	reminders rm <id>    delete
func (a *App) Reminders(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return a.listReminders(ctx)
	case "add":
		return a.addReminder(ctx)
	case "done":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: reminders done <id>")
			return nil
		}
		return a.completeReminder(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: reminders rm <id>")
			return nil
		}
		return a.removeReminder(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "Usage: reminders [list|add|done <id>|rm <id>]")
		return nil
	}
}

func (a *App) listReminders(ctx context.Context) error {
	var reminders []models.Reminder
	err := a.track(func() error {
		var lerr error
		reminders, lerr = a.api.Reminders(ctx, a.user.ID)
		return lerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	if len(reminders) == 0 {
		fmt.Fprintln(a.out, "No reminders.")
		return nil
	}
	for _, rem := range reminders {
		box := "[ ]"
		if rem.Completed {
			box = "[x]"
		}
		fmt.Fprintf(a.out, "%s %s  %s  at %s\n",
			box, rem.ID, rem.Title, rem.RemindAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) addReminder(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Reminder title", a.out)
	if err != nil {
		return err
	}
	when, err := getSimpleText(a.reader, "When? (2006-01-02 15:04 or a duration like 45m)", a.out)
	if err != nil {
		return err
	}

	remindAt, err := parseRemindAt(when, time.Now())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	var rem *models.Reminder
	err = a.track(func() error {
		var aerr error
		rem, aerr = a.api.CreateReminder(ctx, a.user.ID, models.ReminderRequest{
			Title:    title,
			RemindAt: remindAt,
		})
		return aerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Reminder %s set for %s.\n", rem.ID, rem.RemindAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func (a *App) completeReminder(ctx context.Context, id string) error {
	var rem *models.Reminder
	err := a.track(func() error {
		var cerr error
		rem, cerr = a.api.CompleteReminder(ctx, a.user.ID, id)
		return cerr
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No such reminder.")
			return nil
		}
		a.report(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Done: %s\n", rem.Title)
	return nil
}

func (a *App) removeReminder(ctx context.Context, id string) error {
	err := a.track(func() error {
		return a.api.DeleteReminder(ctx, a.user.ID, id)
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No such reminder.")
			return nil
		}
		a.report(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Removed.")
	return nil
}

// parseRemindAt accepts either an absolute timestamp ("2006-01-02 15:04" or
// "2006-01-02") or a relative duration like "45m" counted from now.
func parseRemindAt(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return time.Time{}, errors.New("duration must be positive")
		}
		return now.Add(d), nil
	}

	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time %q, use 2006-01-02 15:04 or a duration like 45m", s)
}
