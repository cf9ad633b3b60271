// Package ui provides an optional terminal interface over the journal.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/task-journal/journal/internal/journal"
)

// filterMode selects which tasks the browser shows.
type filterMode int

const (
	filterOpen filterMode = iota
	filterDone
	filterAll
)

func (f filterMode) String() string {
	switch f {
	case filterOpen:
		return "open"
	case filterDone:
		return "completed"
	default:
		return "all"
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Run starts the journal browser over the journal file at path.
func Run(ctx context.Context, path string, padWidth int) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	m := newModel(path, padWidth)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if final, ok := finalModel.(*model); ok && final.fatal != nil {
		return final.fatal
	}
	return nil
}

// IsTTY reports whether the writer is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}

type model struct {
	path     string
	padWidth int

	tasks  []journal.Task
	cursor int
	filter filterMode
	status string
	actErr error
	fatal  error
}

func newModel(path string, padWidth int) *model {
	m := &model{path: path, padWidth: padWidth}
	m.refresh()
	return m
}

// refresh reloads the journal from disk and clamps the cursor.
func (m *model) refresh() {
	tasks, _, err := journal.Load(m.path)
	if err != nil {
		m.fatal = err
		return
	}
	m.tasks = tasks
	m.clampCursor()
}

func (m *model) view() []journal.Task {
	switch m.filter {
	case filterOpen:
		return journal.Incomplete(m.tasks)
	case filterDone:
		return journal.Completed(m.tasks)
	default:
		return m.tasks
	}
}

func (m *model) clampCursor() {
	n := len(m.view())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "tab":
		m.filter = (m.filter + 1) % 3
		m.cursor = 0
		m.status = ""
		m.actErr = nil
	case "r", "f5":
		m.refresh()
		m.status = "reloaded"
		m.actErr = nil
	case "enter", "d":
		m.completeSelected()
	}
	if m.fatal != nil {
		return m, tea.Quit
	}
	return m, nil
}

// completeSelected marks the task under the cursor as done. The store
// addresses tasks by rank within the incomplete view, so the cursor index
// is translated to that rank first.
func (m *model) completeSelected() {
	view := m.view()
	if m.cursor >= len(view) {
		return
	}
	selected := &view[m.cursor]
	if selected.Completed() {
		m.status = "already completed"
		return
	}

	position := m.openRank(m.cursor)
	if position == 0 {
		return
	}
	task, err := journal.Complete(m.path, position)
	if err != nil {
		m.actErr = err
		return
	}
	m.status = fmt.Sprintf("completed: %s", task.Text)
	m.actErr = nil
	m.refresh()
}

// openRank maps an index into the current view to a 1-based rank within
// the incomplete view, or 0 when the entry is not an open task.
func (m *model) openRank(idx int) uint {
	view := m.view()
	if idx >= len(view) || view[idx].Completed() {
		return 0
	}
	rank := uint(0)
	for i := 0; i <= idx; i++ {
		if !view[i].Completed() {
			rank++
		}
	}
	return rank
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Task Journal"))
	b.WriteString(fmt.Sprintf("  %s\n\n", helpStyle.Render(m.path)))

	view := m.view()
	if len(m.tasks) == 0 {
		b.WriteString("Task list is empty!\n")
	} else if len(view) == 0 {
		b.WriteString(fmt.Sprintf("No %s tasks.\n", m.filter))
	}
	for i := range view {
		t := &view[i]
		line := fmt.Sprintf("%d. %s", i+1, t.Format(m.padWidth))
		if t.Completed() {
			line = doneStyle.Render(line)
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.actErr != nil {
		b.WriteString(errStyle.Render(m.actErr.Error()))
		b.WriteByte('\n')
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"filter: %s  |  j/k move  tab filter  enter/d done  r reload  q quit", m.filter)))
	b.WriteByte('\n')
	return b.String()
}
