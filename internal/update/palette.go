package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusblock/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		m.commandInput = typeInto(m.commandInput, msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m *Model) closePalette() {
	m.Palette = PaletteState{}
	m.commandInput.SetValue("")
	m.applyFocus()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	// Handlers run against next so state changes survive the closures.
	next := m
	var tick tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Block: func(a commands.BlockArgs) (commands.Result, error) {
			started, tc := next.startSession(a.Domain)
			if started.Status.IsError {
				return commands.Result{}, errors.New(started.Status.Text)
			}
			next, tick = started, tc
			return commands.Result{Message: started.Status.Text}, nil
		},
		Reset: func() (commands.Result, error) {
			next = next.resetSession()
			return commands.Result{Message: next.Status.Text}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			added := next.addTask(a.Text)
			if added.Status.IsError {
				return commands.Result{}, errors.New(added.Status.Text)
			}
			next = added
			return commands.Result{Message: added.Status.Text}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			task, ok := next.findTask(a.Text)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task named %q", a.Text)}
			}
			done := next.completeTask(task)
			if done.Status.IsError {
				return commands.Result{}, errors.New(done.Status.Text)
			}
			next = done
			return commands.Result{Message: done.Status.Text}, nil
		},
	})
	m = next
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.closePalette()
	return m, tick
}
