package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const baseHosts = "127.0.0.1 localhost\n"

type env struct {
	hostsPath string
	dbPath    string
}

func setupEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	e := env{
		hostsPath: filepath.Join(dir, "hosts"),
		dbPath:    filepath.Join(dir, "tasks.db"),
	}
	if err := os.WriteFile(e.hostsPath, []byte(baseHosts), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOCUSBLOCK_HOSTS_PATH", e.hostsPath)
	t.Setenv("FOCUSBLOCK_DB_PATH", e.dbPath)
	t.Setenv("FOCUSBLOCK_LOG_DIR", filepath.Join(dir, "logs"))
	t.Setenv("FOCUSBLOCK_SESSION_MINUTES", "1")
	return e
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTasksAddListDone(t *testing.T) {
	setupEnv(t)

	if _, err := execute(t, "tasks", "add", "Write", "report"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := execute(t, "tasks", "add", "Call Mom"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := execute(t, "tasks", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "1. Write report") || !strings.Contains(out, "2. Call Mom") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	if _, err := execute(t, "tasks", "done", "Write report"); err != nil {
		t.Fatalf("done: %v", err)
	}
	out, err = execute(t, "tasks", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(out, "Write report") {
		t.Fatalf("expected task removed:\n%s", out)
	}
}

func TestTasksDoneUnknown(t *testing.T) {
	setupEnv(t)
	if _, err := execute(t, "tasks", "done", "missing"); err == nil {
		t.Fatal("expected error for unknown task")
	}
}

func TestTasksListEmpty(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "tasks", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "(no tasks)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunBlocksThenRestoresHosts(t *testing.T) {
	e := setupEnv(t)
	out, err := execute(t, "run", "example.com", "--interval", "1ms")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "blocking example.com for 01:00") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "session complete") {
		t.Fatalf("expected completion:\n%s", out)
	}
	data, err := os.ReadFile(e.hostsPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != baseHosts {
		t.Fatalf("expected hosts restored, got %q", data)
	}
}

func TestRunRejectsBlankDomain(t *testing.T) {
	setupEnv(t)
	if _, err := execute(t, "run", "   "); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestHostsCommands(t *testing.T) {
	e := setupEnv(t)
	out, err := execute(t, "hosts", "path")
	if err != nil {
		t.Fatalf("hosts path: %v", err)
	}
	if strings.TrimSpace(out) != e.hostsPath {
		t.Fatalf("unexpected path: %q", out)
	}

	out, err = execute(t, "hosts", "list")
	if err != nil {
		t.Fatalf("hosts list: %v", err)
	}
	if !strings.Contains(out, "127.0.0.1 localhost") {
		t.Fatalf("unexpected entries:\n%s", out)
	}
}

func TestConfigShowAndVersion(t *testing.T) {
	e := setupEnv(t)
	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "session_minutes: 1") || !strings.Contains(out, e.dbPath) {
		t.Fatalf("unexpected config:\n%s", out)
	}

	out, err = execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "focusblock dev") {
		t.Fatalf("unexpected version: %q", out)
	}
}

func TestDebugFlagOverridesConfig(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "config", "show", "--debug")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "debug: true") {
		t.Fatalf("expected debug override:\n%s", out)
	}
}
