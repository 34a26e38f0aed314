package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/focusblock/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

type TaskListFilter struct {
	Limit  int
	Offset int
}

// TaskRepository is the to-do list store used by the UI shell and the CLI.
// Tasks are listed in insertion order.
type TaskRepository interface {
	CreateTask(ctx context.Context, text string) (model.Task, error)
	ListTasks(ctx context.Context, filter TaskListFilter) ([]model.Task, error)
	RemoveTask(ctx context.Context, task model.Task) error
}
