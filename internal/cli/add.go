package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/journal"
)

// newAddCommand creates the 'add' command, which appends a task to the
// journal file.
func newAddCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Write a task to the journal file",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "text"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			text := cmd.StringArg("text")
			if strings.TrimSpace(text) == "" {
				return errors.New("no task text specified")
			}
			path, err := app.journal(cmd)
			if err != nil {
				return err
			}
			task, err := journal.Add(path, text)
			if err != nil {
				return err
			}
			app.logger.Debug("added task", "text", task.Text)
			return nil
		},
	}
}
