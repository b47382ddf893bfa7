package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskpilot/internal/api"
	"github.com/dmitrijs2005/taskpilot/internal/models"
)

// Tasks lists and manages the task list. Subcommands:
//
//	tasks              list
//	tasks add          prompt for a new task
//	tasks done <id>    toggle completion
//	tasks rm <id>      delete
func (a *App) Tasks(ctx context.Context, args []string) error {
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
		return a.listTasks(ctx)
	case "add":
		return a.addTask(ctx)
	case "done":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: tasks done <id>")
			return nil
		}
		return a.toggleTask(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: tasks rm <id>")
			return nil
		}
		return a.removeTask(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "Usage: tasks [list|add|done <id>|rm <id>]")
		return nil
	}
}

func (a *App) listTasks(ctx context.Context) error {
	var tasks []models.Task
	err := a.track(func() error {
		var lerr error
		tasks, lerr = a.api.Tasks(ctx, a.user.ID)
		return lerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return nil
	}
	for _, task := range tasks {
		box := "[ ]"
		if task.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s", box, task.ID, task.Title)
		if task.DueDate != nil {
			line += "  due " + task.DueDate.Format("2006-01-02 15:04")
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) addTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Task title", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	var task *models.Task
	err = a.track(func() error {
		var aerr error
		task, aerr = a.api.CreateTask(ctx, a.user.ID, models.TaskRequest{
			Title:       title,
			Description: description,
		})
		return aerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Added task %s.\n", task.ID)
	return nil
}

func (a *App) toggleTask(ctx context.Context, id string) error {
	var task *models.Task
	err := a.track(func() error {
		var terr error
		task, terr = a.api.ToggleTask(ctx, a.user.ID, id)
		return terr
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No such task.")
			return nil
		}
		a.report(ctx, err)
		return err
	}

	if task.Completed {
		fmt.Fprintf(a.out, "Done: %s\n", task.Title)
	} else {
		fmt.Fprintf(a.out, "Reopened: %s\n", task.Title)
	}
	return nil
}

func (a *App) removeTask(ctx context.Context, id string) error {
	err := a.track(func() error {
		return a.api.DeleteTask(ctx, a.user.ID, id)
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No such task.")
			return nil
		}
		a.report(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Removed.")
	return nil
}
