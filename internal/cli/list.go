package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/journal"
)

// newListCommand creates the 'list' command, which prints the open tasks
// in the journal file.
func newListCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List open tasks in the journal file",
		Action: func(_ context.Context, cmd *cli.Command) error {
			path, err := app.journal(cmd)
			if err != nil {
				return err
			}
			return printTasks(app.out, path, false, app.cfg.PadWidth)
		},
	}
}

// newListCompletedCommand creates the 'list-completed' command, which
// prints the completed tasks in the journal file.
func newListCompletedCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "list-completed",
		Usage: "List completed tasks in the journal file",
		Action: func(_ context.Context, cmd *cli.Command) error {
			path, err := app.journal(cmd)
			if err != nil {
				return err
			}
			return printTasks(app.out, path, true, app.cfg.PadWidth)
		},
	}
}

// printTasks prints the tasks matching the completion state, ranked
// 1-based within the filtered view. Only a journal with no tasks at all
// prints the empty notice; an empty filtered view over a non-empty journal
// prints nothing.
func printTasks(w io.Writer, path string, completed bool, padWidth int) error {
	tasks, _, err := journal.Load(path)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "Task list is empty!")
		return err
	}

	rank := color.New(color.FgYellow).SprintfFunc()
	if completed {
		rank = color.New(color.FgGreen).SprintfFunc()
	}

	view := journal.Incomplete(tasks)
	if completed {
		view = journal.Completed(tasks)
	}
	for i := range view {
		if _, err := fmt.Fprintf(w, "%s %s\n", rank("%d.", i+1), view[i].Format(padWidth)); err != nil {
			return err
		}
	}
	return nil
}
