package views

import (
	"fmt"
	"strings"
)

type TimerPanelData struct {
	Status       string
	Clock        string
	ProgressView string
	ProgressPct  int
	DomainInput  string
	Blocked      []string
	HostsPath    string
	Expired      bool
}

type TasksPanelData struct {
	TaskInput string
	ListView  string
	Count     int
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Markdown string
}

func RenderTimerPanel(data TimerPanelData) string {
	var b strings.Builder
	b.WriteString("timer:\n")
	b.WriteString(clockStyle.Render(data.Clock) + "\n")
	b.WriteString(fmt.Sprintf("state: %s\n", strings.ToUpper(data.Status)))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString("\nwebsite to block (e.g. facebook.com):\n")
	b.WriteString(data.DomainInput + "\n")
	b.WriteString("actions: [enter]start timer & block [ctrl+r]reset timer\n")
	b.WriteString("\nblocked:\n")
	if len(data.Blocked) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, d := range data.Blocked {
		b.WriteString(fmt.Sprintf("  - %s, www.%s\n", d, d))
	}
	if data.HostsPath != "" {
		b.WriteString(fmt.Sprintf("hosts: %s\n", data.HostsPath))
	}
	if data.Expired {
		b.WriteString("prompt: session complete, websites unblocked")
	}
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("to-do list (%d):\n", data.Count))
	b.WriteString(data.TaskInput + "\n")
	b.WriteString("actions: [enter]add task | list: [enter/x]complete task [j/k]move\n")
	if data.Count == 0 {
		b.WriteString("(no tasks)")
		return b.String()
	}
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	if strings.TrimSpace(data.Markdown) != "" {
		b.WriteString(data.Markdown + "\n")
	}
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	return strings.TrimSpace(b.String())
}
