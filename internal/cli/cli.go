// Package cli implements the command-line interface of the journal tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/task-journal/journal/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

// App carries the configuration and diagnostics shared by all commands.
type App struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

// Run executes the journal CLI.
func Run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Color == "off" {
		color.NoColor = true
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "journal",
	})

	app := &App{cfg: cfg, logger: logger, out: os.Stdout}
	return newRootCommand(app).Run(ctx, args)
}

// newRootCommand creates the root command of the journal CLI.
func newRootCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "journal",
		Version: Version,
		Usage:   "A command line to-do journal",
		Commands: []*cli.Command{
			newAddCommand(app),
			newDoneCommand(app),
			newListCommand(app),
			newEditCommand(app),
			newListCompletedCommand(app),
			newRemoveCommand(app),
			newDoctorCommand(app),
			newTUICommand(app),
		},
		CommandNotFound: func(_ context.Context, _ *cli.Command, name string) {
			fmt.Fprintf(os.Stderr, "journal: invalid command: '%s'\n", name)
			os.Exit(2)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "journal-file",
				Aliases:   []string{"j"},
				Usage:     "use a different journal file",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug diagnostics",
			},
		},
	}
}

// journal resolves the journal file path for a command invocation and
// applies the verbose flag.
func (a *App) journal(cmd *cli.Command) (string, error) {
	if cmd.Bool("verbose") {
		a.logger.SetLevel(log.DebugLevel)
	}
	path, err := config.ResolveJournalFile(cmd.String("journal-file"), a.cfg)
	if err != nil {
		return "", err
	}
	a.logger.Debug("using journal file", "path", path)
	return path, nil
}

// parsePosition parses a 1-based position argument. Positions must be
// non-negative integers; 0 passes parsing and is rejected by the store.
func parsePosition(arg string) (uint, error) {
	if arg == "" {
		return 0, fmt.Errorf("no task position specified")
	}
	pos, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: must be a non-negative integer", arg)
	}
	return uint(pos), nil
}
