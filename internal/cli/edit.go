package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/journal"
)

// newEditCommand creates the 'edit' command, which replaces the text of an
// open task addressed by its position in the open-task list.
func newEditCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Modify an existing task by position",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "position"},
			&cli.StringArg{Name: "text"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			position, err := parsePosition(cmd.StringArg("position"))
			if err != nil {
				return err
			}
			text := cmd.StringArg("text")
			if strings.TrimSpace(text) == "" {
				return errors.New("no replacement text specified")
			}
			path, err := app.journal(cmd)
			if err != nil {
				return err
			}
			task, err := journal.Edit(path, position, text)
			if err != nil {
				return err
			}
			app.logger.Debug("edited task", "position", position, "text", task.Text)
			return nil
		},
	}
}
