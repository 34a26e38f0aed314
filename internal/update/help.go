package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/focusblock/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const helpMarkdown = `## Focus sessions

Type a site into the **site** input and press **enter**. The site and its
` + "`www.`" + ` variant are redirected to ` + "`127.0.0.1`" + ` until the timer
reaches zero or you reset it.

Editing the hosts file needs Administrator or sudo rights.
`

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.allBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	bindings := m.helpBindings()
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: views.RenderMarkdown(helpMarkdown),
		Bindings: plain,
		HelpView: m.helpModel.FullHelpView(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}.FullHelp()),
	})
}

func (m Model) allBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Next, Action: "cycle focus: site, task input, task list"},
		{Key: m.Keys.Submit + " (site)", Action: "start timer & block"},
		{Key: m.Keys.Submit + " (task input)", Action: "add task"},
		{Key: m.Keys.Submit + "/" + m.Keys.Complete + " (list)", Action: "complete task"},
		{Key: "j/k (list)", Action: "move selection"},
		{Key: m.Keys.Reset, Action: "reset timer and unblock"},
		{Key: m.Keys.Palette, Action: "open command palette (block, reset, add, done)"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit + " (list) / ctrl+c", Action: "quit and unblock"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.allBindings()))
	for _, kb := range m.allBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

func (m Model) shortBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(m.Keys.Next), key.WithHelp(m.Keys.Next, "focus")),
		key.NewBinding(key.WithKeys(m.Keys.Submit), key.WithHelp(m.Keys.Submit, "submit")),
		key.NewBinding(key.WithKeys(m.Keys.Reset), key.WithHelp(m.Keys.Reset, "reset")),
		key.NewBinding(key.WithKeys(m.Keys.Palette), key.WithHelp(m.Keys.Palette, "palette")),
		key.NewBinding(key.WithKeys(m.Keys.Help), key.WithHelp(m.Keys.Help, "help")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
