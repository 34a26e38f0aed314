package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusblock/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case TickMsg:
		return m.handleTick(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
	case ClearStatusMsg:
		m.Status = StatusBar{}
	case AppErrorMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
	case tea.WindowSizeMsg:
		width := typed.Width/2 - 6
		if width < 20 {
			width = 20
		}
		m.taskList.SetWidth(width)
		m.helpModel.Width = typed.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m.quit()
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}

	switch k {
	case m.Keys.Next:
		m.cycleFocus()
		return m, nil
	case m.Keys.Reset:
		m = m.resetSession()
		return m, nil
	}

	// Printable shortcuts only fire when they cannot be mistaken for input.
	if m.Focus == FocusTaskList || m.focusedInputEmpty() {
		switch k {
		case m.Keys.Palette:
			m.Palette = PaletteState{Active: true}
			m.applyFocus()
			m.Status = StatusBar{Text: "command palette"}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
	}

	switch m.Focus {
	case FocusDomain:
		if k == m.Keys.Submit {
			return m.startSession(m.domainInput.Value())
		}
		m.domainInput = typeInto(m.domainInput, msg)
	case FocusTaskInput:
		if k == m.Keys.Submit {
			m = m.addTask(m.taskInput.Value())
			return m, nil
		}
		m.taskInput = typeInto(m.taskInput, msg)
	case FocusTaskList:
		return m.handleListKey(k)
	}
	return m, nil
}

func (m Model) handleListKey(k string) (Model, tea.Cmd) {
	switch k {
	case m.Keys.Quit:
		return m.quit()
	case m.Keys.Submit, m.Keys.Complete:
		m = m.completeSelected()
	case "j", "down":
		if m.TaskCursor < len(m.Tasks)-1 {
			m.TaskCursor++
		}
	case "k", "up":
		if m.TaskCursor > 0 {
			m.TaskCursor--
		}
	}
	return m, nil
}

func (m Model) focusedInputEmpty() bool {
	switch m.Focus {
	case FocusDomain:
		return m.domainInput.Value() == ""
	case FocusTaskInput:
		return m.taskInput.Value() == ""
	}
	return true
}

// quit resets the engine before exiting so no redirect outlives the program.
func (m Model) quit() (Model, tea.Cmd) {
	m.engine.Reset()
	m.gen++
	m.Quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	snap := m.engine.Snapshot()
	blocked := make([]string, 0, len(snap.Blocked))
	for _, d := range snap.Blocked {
		blocked = append(blocked, string(d))
	}
	pct := snap.Progress()
	left := views.RenderTimerPanel(views.TimerPanelData{
		Status:       string(snap.State.Status()),
		Clock:        snap.State.Clock(),
		ProgressView: m.progressBar.ViewAs(pct),
		ProgressPct:  int(pct * 100),
		DomainInput:  m.domainInput.View(),
		Blocked:      blocked,
		HostsPath:    m.hostsPath,
		Expired:      m.Expired,
	})

	right := views.RenderTasksPanel(views.TasksPanelData{
		TaskInput: m.taskInput.View(),
		ListView:  m.taskList.View(),
		Count:     len(m.Tasks),
	})
	if palette := views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()); palette != "" {
		right += "\n\n" + palette
	}
	if m.HelpVisible {
		right += "\n\n" + m.renderHelpView()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	notification := ""
	if n := len(m.Notifications); n > 0 {
		last := m.Notifications[n-1]
		notification = views.RenderNotification(last.Level, last.Title+": "+last.Body)
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("focusblock | focus: %s", strings.ReplaceAll(string(m.Focus), "_", " ")),
		LeftPane:     left,
		RightPane:    right,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Footer:       m.helpModel.ShortHelpView(m.shortBindings()),
		Notification: notification,
	})
}

// typeInto feeds a key to an input. Runes are appended directly so pasted
// text lands even before the cursor blink starts.
func typeInto(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		in.SetValue(in.Value() + string(msg.Runes))
		return in
	}
	in, _ = in.Update(msg)
	return in
}
