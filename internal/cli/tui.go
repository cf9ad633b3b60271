package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/ui"
)

// newTUICommand creates the 'tui' command, which opens an interactive
// browser over the journal file.
func newTUICommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse the journal interactively",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := app.journal(cmd)
			if err != nil {
				return err
			}
			return ui.Run(ctx, path, app.cfg.PadWidth)
		},
	}
}
