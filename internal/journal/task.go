// Package journal reads, mutates, and rewrites the on-disk task journal.
//
// The journal is a single JSON array of task records. Each command performs
// a full load/mutate/store cycle; no state survives between invocations.
package journal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// TimeFormat is the layout used for timestamps in list output.
const TimeFormat = "2006-01-02 15:04:05"

// PadWidth is the display width the task text is padded to in list output.
const PadWidth = 80

// Task is a single journal entry. Tasks carry no identifier; they are
// addressed by their position in the stored sequence.
type Task struct {
	Text        string
	CreateAt    time.Time
	CompletedAt *time.Time
}

// NewTask creates an incomplete task with the current time as its creation
// timestamp.
func NewTask(text string) Task {
	return Task{
		Text:     text,
		CreateAt: time.Now().UTC(),
	}
}

// Completed reports whether the task has been marked done.
func (t *Task) Completed() bool {
	return t.CompletedAt != nil
}

// taskWire is the on-disk shape of a task. Timestamps are UTC epoch
// seconds; completed_at is omitted entirely while the task is open.
type taskWire struct {
	Text        string `json:"text"`
	CreateAt    int64  `json:"create_at"`
	CompletedAt *int64 `json:"completed_at,omitempty"`
}

// MarshalJSON encodes the task in the journal wire format.
func (t Task) MarshalJSON() ([]byte, error) {
	w := taskWire{
		Text:     t.Text,
		CreateAt: t.CreateAt.Unix(),
	}
	if t.CompletedAt != nil {
		secs := t.CompletedAt.Unix()
		w.CompletedAt = &secs
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a task from the journal wire format.
func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.Text = w.Text
	t.CreateAt = time.Unix(w.CreateAt, 0).UTC()
	t.CompletedAt = nil
	if w.CompletedAt != nil {
		completed := time.Unix(*w.CompletedAt, 0).UTC()
		t.CompletedAt = &completed
	}
	return nil
}

// Format renders the task for list output: the text padded to width display
// columns, the creation time in the local zone, and the completion time when
// present. Width is counted in display cells so wide runes line up.
func (t *Task) Format(width int) string {
	text := t.Text
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	created := t.CreateAt.Local().Format(TimeFormat)
	if t.CompletedAt == nil {
		return fmt.Sprintf("%s [%s]", text, created)
	}
	completed := t.CompletedAt.Local().Format(TimeFormat)
	return fmt.Sprintf("%s [%s] (completed at %s)", text, created, completed)
}

// String renders the task with the default pad width.
func (t *Task) String() string {
	return t.Format(PadWidth)
}
