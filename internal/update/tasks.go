package update

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/focusblock/internal/model"
	"github.com/sandeepkv93/focusblock/internal/storage"
)

func (m *Model) reloadTasks() error {
	tasks, err := m.repo.ListTasks(m.ctx, storage.TaskListFilter{})
	if err != nil {
		return err
	}
	m.Tasks = tasks
	if m.TaskCursor >= len(m.Tasks) {
		m.TaskCursor = len(m.Tasks) - 1
	}
	if m.TaskCursor < 0 {
		m.TaskCursor = 0
	}
	return nil
}

func (m Model) addTask(text string) Model {
	task, err := m.repo.CreateTask(m.ctx, text)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			m.Status = StatusBar{Text: "enter a task", IsError: true}
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("add task failed: %v", err), IsError: true}
		return m
	}
	m.Tasks = append(m.Tasks, task)
	m.taskInput.SetValue("")
	m.Status = StatusBar{Text: fmt.Sprintf("added task: %s", task.Text)}
	return m
}

func (m Model) completeSelected() Model {
	if len(m.Tasks) == 0 {
		m.Status = StatusBar{Text: "no task selected", IsError: true}
		return m
	}
	return m.completeTask(m.Tasks[m.TaskCursor])
}

// completeTask removes every task with the same text, then re-reads the list
// so the view matches the store.
func (m Model) completeTask(task model.Task) Model {
	if err := m.repo.RemoveTask(m.ctx, task); err != nil && !errors.Is(err, storage.ErrNotFound) {
		m.Status = StatusBar{Text: fmt.Sprintf("complete task failed: %v", err), IsError: true}
		return m
	}
	if err := m.reloadTasks(); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("reload tasks failed: %v", err), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", task.Text)}
	return m
}

func (m Model) findTask(text string) (model.Task, bool) {
	for _, t := range m.Tasks {
		if t.Text == text {
			return t, true
		}
	}
	return model.Task{}, false
}
