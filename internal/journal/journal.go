package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DecodeState classifies the result of reading the journal file.
type DecodeState int

const (
	// DecodeEmpty means the file is missing, zero bytes, or whitespace
	// only. An empty journal is a valid "no tasks" state, not an error.
	DecodeEmpty DecodeState = iota
	// DecodeTasks means the file held a well-formed task array.
	DecodeTasks
	// DecodeMalformed means the file held something other than a JSON
	// task array.
	DecodeMalformed
)

// Load reads the whole journal file and decodes it as a task array. A
// missing or empty file yields an empty task list with DecodeEmpty; any
// other decode failure returns DecodeMalformed and a non-nil error.
func Load(path string) ([]Task, DecodeState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, DecodeEmpty, nil
		}
		return nil, DecodeMalformed, fmt.Errorf("read journal: %w", err)
	}

	if isBlank(data) {
		return nil, DecodeEmpty, nil
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, DecodeMalformed, fmt.Errorf("parse journal: %w", err)
	}
	return tasks, DecodeTasks, nil
}

// Save writes the full task sequence back to the journal file. The new
// content goes to a temporary file in the same directory first and is
// renamed over the original, so a crash mid-write cannot leave a
// half-truncated journal behind.
func Save(path string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".journal-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp journal: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write journal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp journal: %w", err)
	}
	// CreateTemp uses 0600; the journal is a regular user file.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp journal: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace journal: %w", err)
	}
	return nil
}

// withLock holds an exclusive lock on a sidecar lock file for the duration
// of fn. Mutating operations use it so two concurrent invocations cannot
// interleave their load/mutate/store cycles.
func withLock(path string, fn func() error) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock journal: %w", err)
	}
	defer lock.Unlock()
	return fn()
}

func isBlank(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
