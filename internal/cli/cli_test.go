package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/task-journal/journal/internal/config"
	"github.com/task-journal/journal/internal/journal"
)

func newTestApp(out io.Writer) *App {
	return &App{
		cfg:    &config.Config{PadWidth: config.DefaultPadWidth, LogLevel: "error", Color: "off"},
		logger: log.New(io.Discard),
		out:    out,
	}
}

func run(t *testing.T, app *App, args ...string) error {
	t.Helper()
	return newRootCommand(app).Run(context.Background(), append([]string{"journal"}, args...))
}

func TestAddDoneListScenario(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "journal.json")

	var out bytes.Buffer
	app := newTestApp(&out)

	if err := run(t, app, "-j", path, "add", "buy milk"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := run(t, app, "-j", path, "list"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	today := time.Now().Local().Format("2006-01-02")
	if !strings.HasPrefix(out.String(), "1. buy milk") {
		t.Errorf("list output: got %q, want it to start with \"1. buy milk\"", out.String())
	}
	if !strings.Contains(out.String(), "["+today) {
		t.Errorf("list output misses today's date %s: %q", today, out.String())
	}

	if err := run(t, app, "-j", path, "done", "1"); err != nil {
		t.Fatalf("done failed: %v", err)
	}

	// The completed task persists in the file, so the journal is not
	// raw-empty and the open listing prints nothing.
	out.Reset()
	if err := run(t, app, "-j", path, "list"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out.String() != "" {
		t.Errorf("list after done: got %q, want nothing", out.String())
	}

	out.Reset()
	if err := run(t, app, "-j", path, "list-completed"); err != nil {
		t.Fatalf("list-completed failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "1. buy milk") {
		t.Errorf("list-completed output: got %q", out.String())
	}
	if !strings.Contains(out.String(), "(completed at ") {
		t.Errorf("list-completed output misses completion time: %q", out.String())
	}
}

func TestEditScenario(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "journal.json")

	var out bytes.Buffer
	app := newTestApp(&out)

	for _, text := range []string{"a", "b"} {
		if err := run(t, app, "-j", path, "add", text); err != nil {
			t.Fatalf("add %q failed: %v", text, err)
		}
	}
	if err := run(t, app, "-j", path, "edit", "1", "a-renamed"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	if err := run(t, app, "-j", path, "list"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("list lines: got %d, want 2 (%q)", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "1. a-renamed") {
		t.Errorf("line 1: got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2. b") {
		t.Errorf("line 2: got %q", lines[1])
	}
}

func TestDoneInvalidPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	app := newTestApp(io.Discard)

	if err := run(t, app, "-j", path, "add", "only"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tests := []string{"0", "2"}
	for _, pos := range tests {
		err := run(t, app, "-j", path, "done", pos)
		if !errors.Is(err, journal.ErrInvalidPosition) {
			t.Errorf("done %s: got %v, want ErrInvalidPosition", pos, err)
		}
	}

	err := run(t, app, "-j", path, "done", "nope")
	if err == nil || errors.Is(err, journal.ErrInvalidPosition) {
		t.Errorf("done nope: got %v, want a parse error", err)
	}
}

func TestDoctorReportsHealthyJournal(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "journal.json")

	var out bytes.Buffer
	app := newTestApp(&out)

	if err := run(t, app, "-j", path, "add", "check me"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := run(t, app, "-j", path, "doctor"); err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	if !strings.Contains(out.String(), "journal OK: 1 tasks (1 open, 0 completed)") {
		t.Errorf("doctor output: got %q", out.String())
	}
}

func TestDoctorFailsOnMalformedJournal(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.json")

	var out bytes.Buffer
	app := newTestApp(&out)

	if err := writeFile(path, `[{"text":"a","create_at":"not a number"}]`); err != nil {
		t.Fatalf("write journal: %v", err)
	}
	err := run(t, app, "-j", path, "doctor")
	if err == nil {
		t.Fatal("doctor succeeded on malformed journal")
	}
	if !strings.Contains(out.String(), "error:") {
		t.Errorf("doctor output misses error details: %q", out.String())
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
