package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskpilot/internal/api"
	"github.com/dmitrijs2005/taskpilot/internal/apierr"
	"github.com/dmitrijs2005/taskpilot/internal/models"
)

// Conversations lists and manages conversation threads. Subcommands:
//
//	conversations                 list (remote, cache fallback when offline)
//	conversations open <id>       make <id> the current conversation
//	conversations new [title]     start a fresh conversation
//	conversations rename <id> <title>
//	conversations delete <id>
func (a *App) Conversations(ctx context.Context, args []string) error {
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
		return a.listConversations(ctx)
	case "open":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: conversations open <id>")
			return nil
		}
		return a.openConversation(ctx, args[1])
	case "new":
		return a.newConversation(ctx, strings.Join(args[1:], " "))
	case "rename":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "Usage: conversations rename <id> <title>")
			return nil
		}
		return a.renameConversation(ctx, args[1], strings.Join(args[2:], " "))
	case "delete":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: conversations delete <id>")
			return nil
		}
		return a.deleteConversation(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "Usage: conversations [list|open <id>|new [title]|rename <id> <title>|delete <id>]")
		return nil
	}
}

func (a *App) listConversations(ctx context.Context) error {
	var list []models.Conversation
	err := a.track(func() error {
		var lerr error
		list, lerr = a.api.Conversations(ctx, a.user.ID, api.ListOptions{})
		return lerr
	})
	switch {
	case err == nil:
		for _, conv := range list {
			a.cache.SaveConversation(ctx, conv)
		}
	case apierr.Classify(err).Kind == apierr.KindNetwork:
		// Unreachable backend: serve the local cache instead.
		list = a.cache.UserConversations(ctx, a.user.ID)
		fmt.Fprintln(a.out, "Backend unreachable, showing cached conversations.")
	default:
		a.report(ctx, err)
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No conversations yet. Type 'chat' to start one.")
		return nil
	}

	current := a.cache.CurrentConversation(ctx)
	for _, conv := range list {
		marker := "  "
		if conv.ID == current {
			marker = "* "
		}
		fmt.Fprintf(a.out, "%s%s  %s\n", marker, conv.ID, conv.Title)
	}
	return nil
}

func (a *App) openConversation(ctx context.Context, id string) error {
	var conv *models.Conversation
	err := a.track(func() error {
		var oerr error
		conv, oerr = a.api.Conversation(ctx, a.user.ID, id)
		return oerr
	})
	switch {
	case err == nil:
		a.cache.SaveConversation(ctx, *conv)
	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintln(a.out, "No such conversation.")
		return nil
	case apierr.Classify(err).Kind == apierr.KindNetwork:
		// Trust the cache so reads keep working offline.
	default:
		a.report(ctx, err)
		return err
	}

	a.cache.SetCurrentConversation(ctx, id)
	a.cache.SetLastConversation(ctx, a.user.ID, id)
	fmt.Fprintf(a.out, "Conversation %s is now current.\n", id)
	return nil
}

func (a *App) newConversation(ctx context.Context, title string) error {
	var conv *models.Conversation
	err := a.track(func() error {
		var cerr error
		conv, cerr = a.api.CreateConversation(ctx, a.user.ID, title)
		return cerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	a.cache.SaveConversation(ctx, *conv)
	a.cache.SetCurrentConversation(ctx, conv.ID)
	a.cache.SetLastConversation(ctx, a.user.ID, conv.ID)
	fmt.Fprintf(a.out, "Started conversation %s.\n", conv.ID)
	return nil
}

func (a *App) renameConversation(ctx context.Context, id, title string) error {
	var conv *models.Conversation
	err := a.track(func() error {
		var rerr error
		conv, rerr = a.api.RenameConversation(ctx, a.user.ID, id, title)
		return rerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	a.cache.SaveConversation(ctx, *conv)
	fmt.Fprintf(a.out, "Renamed to %q.\n", conv.Title)
	return nil
}

func (a *App) deleteConversation(ctx context.Context, id string) error {
	err := a.track(func() error {
		return a.api.DeleteConversation(ctx, a.user.ID, id)
	})
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		a.report(ctx, err)
		return err
	}

	a.cache.RemoveConversation(ctx, id, a.user.ID)
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
