package model

import (
	"errors"
	"strings"
)

var ErrInvalidTaskID = errors.New("model: task id must be positive")

// Task is a to-do item. Tasks are never edited: they are created by add and
// destroyed on completion.
type Task struct {
	ID   int64
	Text string
}

func ParseTaskText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", validationError("model.parse_task", "task text is required")
	}
	return text, nil
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidTaskID
	}
	if _, err := ParseTaskText(t.Text); err != nil {
		return err
	}
	return nil
}
