package update

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusblock/internal/logger"
	"github.com/sandeepkv93/focusblock/internal/model"
	"github.com/sandeepkv93/focusblock/internal/timer"
)

func (m Model) startSession(domain string) (Model, tea.Cmd) {
	if err := m.engine.Start(domain); err != nil {
		m.Status = StatusBar{Text: startErrorText(err, m.hostsPath), IsError: true}
		if !errors.Is(err, model.ErrValidation) && !errors.Is(err, timer.ErrSessionActive) {
			m.notify("Block Failed", err.Error(), "error")
		}
		return m, nil
	}
	m.gen++
	m.Expired = false
	m.domainInput.SetValue("")
	snap := m.engine.Snapshot()
	m.Status = StatusBar{Text: fmt.Sprintf("blocking %s for %s", snap.Domain, snap.State.Clock())}
	return m, tickCmd(m.gen)
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.engine.Running() {
		return m, nil
	}
	if m.engine.Tick() {
		m.completeSession()
		return m, nil
	}
	return m, tickCmd(m.gen)
}

func (m Model) resetSession() Model {
	m.engine.Reset()
	m.gen++
	m.Expired = false
	m.Status = StatusBar{Text: "timer reset; websites unblocked"}
	return m
}

func (m *Model) completeSession() {
	m.Expired = true
	m.Status = StatusBar{Text: "session complete: websites unblocked"}
	m.notify("Focus session complete", "Time's up! Websites have been unblocked.", "info")
	logger.L().Info("tui.session_complete")
}

func startErrorText(err error, hostsPath string) string {
	switch {
	case errors.Is(err, timer.ErrSessionActive):
		return "timer already running; reset it to start a new session"
	case errors.Is(err, model.ErrValidation):
		return "enter a website to block"
	case errors.Is(err, model.ErrPermissionDenied):
		return fmt.Sprintf("cannot edit %s: run as Administrator/sudo to block websites", hostsPath)
	default:
		return err.Error()
	}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return TickMsg{Gen: gen} })
}
