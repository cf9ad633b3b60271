package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/journal"
)

// newDoctorCommand creates the 'doctor' command, which checks the journal
// file against the journal schema and reports anything off.
func newDoctorCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check the journal file for format problems",
		Action: func(_ context.Context, cmd *cli.Command) error {
			path, err := app.journal(cmd)
			if err != nil {
				return err
			}

			result, err := journal.Validate(path)
			if err != nil {
				return err
			}

			for _, w := range result.Warnings {
				fmt.Fprintf(app.out, "warning: %s\n", w)
			}
			if !result.Valid {
				for _, e := range result.Errors {
					fmt.Fprintf(app.out, "error: %s\n", e)
				}
				return errors.New("journal file is invalid")
			}

			tasks, _, err := journal.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "journal OK: %d tasks (%d open, %d completed)\n",
				len(tasks), len(journal.Incomplete(tasks)), len(journal.Completed(tasks)))
			return nil
		},
	}
}
