package journal

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPosition is returned when a position is 0 or beyond the length
// of the filtered view it addresses. The journal file is left untouched.
var ErrInvalidPosition = errors.New("invalid task position")

// Add appends a new task with the given text to the end of the journal and
// rewrites the file. Insertion order is preserved.
func Add(path, text string) (Task, error) {
	task := NewTask(text)
	err := withLock(path, func() error {
		tasks, _, err := Load(path)
		if err != nil {
			return err
		}
		return Save(path, append(tasks, task))
	})
	return task, err
}

// Complete marks the position-th incomplete task as done and rewrites the
// journal. Positions are 1-based ranks within the incomplete view, not
// indexes into the stored sequence.
func Complete(path string, position uint) (Task, error) {
	return mutate(path, position, func(t *Task) {
		now := time.Now().UTC()
		t.CompletedAt = &now
	})
}

// Edit replaces the text of the position-th incomplete task and rewrites
// the journal. Same positional contract as Complete.
func Edit(path string, position uint, text string) (Task, error) {
	return mutate(path, position, func(t *Task) {
		t.Text = text
	})
}

// Remove deletes the position-th incomplete task from the journal and
// rewrites the file. Same positional contract as Complete.
func Remove(path string, position uint) (Task, error) {
	var removed Task
	err := withLock(path, func() error {
		tasks, _, err := Load(path)
		if err != nil {
			return err
		}
		idx, err := resolvePosition(tasks, position)
		if err != nil {
			return err
		}
		removed = tasks[idx]
		return Save(path, append(tasks[:idx], tasks[idx+1:]...))
	})
	return removed, err
}

// Incomplete returns the open tasks in their stored order.
func Incomplete(tasks []Task) []Task {
	return filter(tasks, false)
}

// Completed returns the done tasks in their stored order.
func Completed(tasks []Task) []Task {
	return filter(tasks, true)
}

// mutate applies fn to the underlying entry addressed by a position in the
// incomplete view, then rewrites the full sequence. The lookup runs in two
// steps: collect the indexes of incomplete entries, then mutate the
// underlying slice through the selected index.
func mutate(path string, position uint, fn func(*Task)) (Task, error) {
	var changed Task
	err := withLock(path, func() error {
		tasks, _, err := Load(path)
		if err != nil {
			return err
		}
		idx, err := resolvePosition(tasks, position)
		if err != nil {
			return err
		}
		fn(&tasks[idx])
		changed = tasks[idx]
		return Save(path, tasks)
	})
	return changed, err
}

// resolvePosition maps a 1-based rank in the incomplete view to an index
// into the full sequence.
func resolvePosition(tasks []Task, position uint) (int, error) {
	var open []int
	for i := range tasks {
		if !tasks[i].Completed() {
			open = append(open, i)
		}
	}
	if position == 0 || position > uint(len(open)) {
		return 0, fmt.Errorf("%w: %d (journal has %d open tasks)", ErrInvalidPosition, position, len(open))
	}
	return open[position-1], nil
}

func filter(tasks []Task, completed bool) []Task {
	var out []Task
	for i := range tasks {
		if tasks[i].Completed() == completed {
			out = append(out, tasks[i])
		}
	}
	return out
}
