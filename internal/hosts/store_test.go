package hosts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/focusblock/internal/model"
)

const baseHosts = "127.0.0.1 localhost\n::1 localhost ip6-localhost\n# local dev\n10.0.0.5 nas.lan\n"

func writeHosts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hosts")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write hosts: %v", err)
	}
	return path
}

func readHosts(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read hosts: %v", err)
	}
	return string(raw)
}

func TestPathFor(t *testing.T) {
	if got := PathFor("windows"); got != `C:\Windows\System32\drivers\etc\hosts` {
		t.Fatalf("unexpected windows path: %q", got)
	}
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		if got := PathFor(goos); got != "/etc/hosts" {
			t.Fatalf("unexpected %s path: %q", goos, got)
		}
	}
	if NewStore("").Path() != ResolvePath() {
		t.Fatal("expected empty path to resolve to the platform hosts file")
	}
}

func TestBlockAppendsBareAndWWWEntries(t *testing.T) {
	path := writeHosts(t, baseHosts)
	store := NewStore(path)
	list := model.NewBlockList()

	if err := store.Block("example.com", list); err != nil {
		t.Fatalf("block: %v", err)
	}

	want := baseHosts + "127.0.0.1 example.com\n127.0.0.1 www.example.com\n"
	if got := readHosts(t, path); got != want {
		t.Fatalf("unexpected hosts content:\n%s", got)
	}
	if !list.Contains("example.com") || list.Len() != 1 {
		t.Fatalf("unexpected block list: %#v", list.Domains())
	}
}

func TestBlockTwiceKeepsSinglePair(t *testing.T) {
	path := writeHosts(t, baseHosts)
	store := NewStore(path)
	list := model.NewBlockList()

	for i := 0; i < 2; i++ {
		if err := store.Block("example.com", list); err != nil {
			t.Fatalf("block #%d: %v", i+1, err)
		}
	}

	content := readHosts(t, path)
	if n := strings.Count(content, "127.0.0.1 example.com\n"); n != 1 {
		t.Fatalf("expected one bare entry, got %d:\n%s", n, content)
	}
	if n := strings.Count(content, "127.0.0.1 www.example.com\n"); n != 1 {
		t.Fatalf("expected one www entry, got %d:\n%s", n, content)
	}
	if list.Len() != 1 {
		t.Fatalf("expected one block list member, got %#v", list.Domains())
	}
}

func TestBlockThenUnblockRoundTrip(t *testing.T) {
	inputs := []string{baseHosts, "", "127.0.0.1 localhost\r\n10.1.1.1 printer\r\n"}
	for _, original := range inputs {
		path := writeHosts(t, original)
		store := NewStore(path)
		list := model.NewBlockList()

		if err := store.Block("focus-killer.io", list); err != nil {
			t.Fatalf("block: %v", err)
		}
		if err := store.UnblockAll(list); err != nil {
			t.Fatalf("unblock: %v", err)
		}
		if got := readHosts(t, path); got != original {
			t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", original, got)
		}
		if !list.Empty() {
			t.Fatalf("expected empty block list, got %#v", list.Domains())
		}
	}
}

func TestBlockAddsSeparatorWhenFileLacksTrailingNewline(t *testing.T) {
	path := writeHosts(t, "127.0.0.1 localhost")
	store := NewStore(path)

	if err := store.Block("example.com", model.NewBlockList()); err != nil {
		t.Fatalf("block: %v", err)
	}
	want := "127.0.0.1 localhost\n127.0.0.1 example.com\n127.0.0.1 www.example.com\n"
	if got := readHosts(t, path); got != want {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestBlockSubstringMatchSkipsAppend(t *testing.T) {
	original := baseHosts + "0.0.0.0 myexample.com\n"
	path := writeHosts(t, original)
	store := NewStore(path)
	list := model.NewBlockList()

	if err := store.Block("example.com", list); err != nil {
		t.Fatalf("block: %v", err)
	}
	if got := readHosts(t, path); got != original {
		t.Fatalf("expected no append when domain is a substring of an entry, got:\n%s", got)
	}
	if !list.Contains("example.com") {
		t.Fatal("expected domain to be recorded even without append")
	}

	if err := store.UnblockAll(list); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if strings.Contains(readHosts(t, path), "myexample.com") {
		t.Fatal("expected substring filter to also drop the overlapping entry")
	}
}

func TestUnblockAllEmptyListIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-hosts")
	store := NewStore(path)
	if err := store.UnblockAll(model.NewBlockList()); err != nil {
		t.Fatalf("expected nil error for empty list, got %v", err)
	}
	if err := store.UnblockAll(nil); err != nil {
		t.Fatalf("expected nil error for nil list, got %v", err)
	}
}

func TestUnblockAllKeepsUnrelatedLines(t *testing.T) {
	path := writeHosts(t, baseHosts)
	store := NewStore(path)
	list := model.NewBlockList()
	for _, d := range []model.Domain{"a.com", "b.net"} {
		if err := store.Block(d, list); err != nil {
			t.Fatalf("block %s: %v", d, err)
		}
	}
	if err := store.UnblockAll(list); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if got := readHosts(t, path); got != baseHosts {
		t.Fatalf("unexpected content after unblock:\n%s", got)
	}
}

func TestUnblockAllFailureClearsListAndReportsIOFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone")
	store := NewStore(path)
	list := model.NewBlockList("example.com")

	err := store.UnblockAll(list)
	if !errors.Is(err, model.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}
	if !list.Empty() {
		t.Fatalf("expected list cleared after failed unblock, got %#v", list.Domains())
	}
}

func TestBlockMissingFileIsIOFailure(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"))
	list := model.NewBlockList()
	err := store.Block("example.com", list)
	if !errors.Is(err, model.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}
	if !list.Empty() {
		t.Fatal("expected block list unchanged on failure")
	}
}

func TestBlockPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	path := writeHosts(t, baseHosts)
	if err := os.Chmod(path, 0o444); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	store := NewStore(path)
	list := model.NewBlockList()

	err := store.Block("example.com", list)
	if !errors.Is(err, model.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if !list.Empty() {
		t.Fatal("expected block list unchanged on permission failure")
	}
	if got := readHosts(t, path); got != baseHosts {
		t.Fatalf("expected file untouched, got:\n%s", got)
	}
}

func TestEntriesListsRedirectLines(t *testing.T) {
	path := writeHosts(t, baseHosts+"# 127.0.0.1 commented.com\n")
	store := NewStore(path, WithRedirectIP("0.0.0.0"))
	if err := store.Block("reddit.com", model.NewBlockList()); err != nil {
		t.Fatalf("block: %v", err)
	}
	got, err := store.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(got) != 2 || got[0] != "0.0.0.0 reddit.com" || got[1] != "0.0.0.0 www.reddit.com" {
		t.Fatalf("unexpected entries: %#v", got)
	}
}
