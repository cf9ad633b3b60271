package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/journal"
)

// newDoneCommand creates the 'done' command, which marks a task as
// completed by its position in the open-task list.
func newDoneCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "done",
		Usage: "Mark a task as completed by position",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "position"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			position, err := parsePosition(cmd.StringArg("position"))
			if err != nil {
				return err
			}
			path, err := app.journal(cmd)
			if err != nil {
				return err
			}
			task, err := journal.Complete(path, position)
			if err != nil {
				return err
			}
			app.logger.Debug("completed task", "position", position, "text", task.Text)
			return nil
		},
	}
}
