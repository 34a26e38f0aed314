// Package update is the bubbletea shell around the timer engine and the task
// store. All engine and store calls happen inside Update, so the core stays
// single-threaded.
package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/focusblock/internal/model"
	"github.com/sandeepkv93/focusblock/internal/storage"
	"github.com/sandeepkv93/focusblock/internal/timer"
)

type FocusArea string

const (
	FocusDomain    FocusArea = "domain"
	FocusTaskInput FocusArea = "task_input"
	FocusTaskList  FocusArea = "task_list"
)

var focusOrder = []FocusArea{FocusDomain, FocusTaskInput, FocusTaskList}

type KeyMap struct {
	Next     string
	Submit   string
	Complete string
	Reset    string
	Palette  string
	Help     string
	Quit     string
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     "tab",
		Submit:   "enter",
		Complete: "x",
		Reset:    "ctrl+r",
		Palette:  "/",
		Help:     "?",
		Quit:     "q",
	}
}

type StatusBar struct {
	Text    string
	IsError bool
}

type PaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Options struct {
	Notifier       DesktopNotifier
	DesktopEnabled bool
	HostsPath      string
	Context        context.Context
}

type Model struct {
	Focus         FocusArea
	Keys          KeyMap
	Status        StatusBar
	Palette       PaletteState
	HelpVisible   bool
	Tasks         []model.Task
	TaskCursor    int
	Expired       bool
	Quitting      bool
	Notifications []Notification

	DesktopEnabled bool

	engine    *timer.Engine
	repo      storage.TaskRepository
	notifier  DesktopNotifier
	hostsPath string
	ctx       context.Context
	gen       int

	domainInput  textinput.Model
	taskInput    textinput.Model
	commandInput textinput.Model
	taskList     list.Model
	progressBar  progress.Model
	helpModel    help.Model
}

// TickMsg is one elapsed second for session Gen. Ticks from an earlier
// session are dropped.
type TickMsg struct {
	Gen int
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel loads the task list and returns a model focused on the domain
// input. A task store that cannot be read is fatal to the caller.
func NewModel(engine *timer.Engine, repo storage.TaskRepository, opts Options) (Model, error) {
	if engine == nil {
		return Model{}, fmt.Errorf("update: timer engine is required")
	}
	if repo == nil {
		return Model{}, fmt.Errorf("update: task repository is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NoopDesktopNotifier{}
	}

	m := Model{
		Focus:          FocusDomain,
		Keys:           DefaultKeyMap(),
		Status:         StatusBar{Text: "ready"},
		DesktopEnabled: opts.DesktopEnabled,
		engine:         engine,
		repo:           repo,
		notifier:       notifier,
		hostsPath:      opts.HostsPath,
		ctx:            ctx,
	}
	m.initBubbleComponents()
	if err := m.reloadTasks(); err != nil {
		return Model{}, fmt.Errorf("update: load tasks: %w", err)
	}
	m.applyFocus()
	m.syncBubbleData()
	return m, nil
}

func (m *Model) initBubbleComponents() {
	m.domainInput = textinput.New()
	m.domainInput.Prompt = "site> "
	m.domainInput.Placeholder = "facebook.com"
	m.domainInput.CharLimit = 253
	m.domainInput.Width = 36

	m.taskInput = textinput.New()
	m.taskInput.Prompt = "task> "
	m.taskInput.Placeholder = "what needs doing?"
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 48, 12)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetShowStatusBar(false)
	m.taskList.SetFilteringEnabled(false)

	m.progressBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())
	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	items := make([]list.Item, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		items = append(items, listItem{title: t.Text, description: fmt.Sprintf("#%d", t.ID)})
	}
	m.taskList.SetItems(items)
	if len(items) > 0 {
		m.taskList.Select(m.TaskCursor)
	}
	m.commandInput.SetValue(m.Palette.Input)
}

func (m *Model) applyFocus() {
	m.domainInput.Blur()
	m.taskInput.Blur()
	m.commandInput.Blur()
	if m.Palette.Active {
		m.commandInput.Focus()
		return
	}
	switch m.Focus {
	case FocusDomain:
		m.domainInput.Focus()
	case FocusTaskInput:
		m.taskInput.Focus()
	}
}

func (m *Model) cycleFocus() {
	for i, f := range focusOrder {
		if f == m.Focus {
			m.Focus = focusOrder[(i+1)%len(focusOrder)]
			m.applyFocus()
			return
		}
	}
	m.Focus = FocusDomain
	m.applyFocus()
}
