package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/journal"
)

// newRemoveCommand creates the 'remove' command, which deletes an open
// task addressed by its position in the open-task list.
func newRemoveCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "Remove a task from the journal file by position",
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
			task, err := journal.Remove(path, position)
			if err != nil {
				return err
			}
			app.logger.Debug("removed task", "position", position, "text", task.Text)
			return nil
		},
	}
}
