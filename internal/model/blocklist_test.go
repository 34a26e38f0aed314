package model

import "testing"

func TestBlockListAddIsIdempotent(t *testing.T) {
	b := NewBlockList()
	if !b.Empty() {
		t.Fatal("expected empty block list")
	}
	if !b.Add("example.com") {
		t.Fatal("expected first add to insert")
	}
	if b.Add("example.com") {
		t.Fatal("expected second add to be a no-op")
	}
	b.Add("news.site")
	got := b.Domains()
	if len(got) != 2 || got[0] != "example.com" || got[1] != "news.site" {
		t.Fatalf("unexpected domains: %#v", got)
	}
}

func TestBlockListDomainsReturnsCopy(t *testing.T) {
	b := NewBlockList("a.com")
	got := b.Domains()
	got[0] = "mutated"
	if !b.Contains("a.com") {
		t.Fatal("block list mutated through returned slice")
	}
}

func TestBlockListClear(t *testing.T) {
	var b BlockList
	b.Add("a.com")
	b.Clear()
	if b.Len() != 0 || b.Contains("a.com") {
		t.Fatalf("expected cleared list, got %#v", b.Domains())
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "hosts.block", Kind: KindPermissionDenied, Path: "/etc/hosts"}
	if err.Error() != "hosts.block: permission_denied (path=/etc/hosts)" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
	if !err.Is(ErrPermissionDenied) || err.Is(ErrIOFailure) {
		t.Fatal("unexpected sentinel matching")
	}
}
