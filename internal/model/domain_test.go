package model

import (
	"errors"
	"testing"
)

func TestParseDomainTrims(t *testing.T) {
	d, err := ParseDomain("  example.com\t")
	if err != nil {
		t.Fatalf("parse domain: %v", err)
	}
	if d != "example.com" {
		t.Fatalf("unexpected domain: %q", d)
	}
}

func TestParseDomainEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n"} {
		_, err := ParseDomain(in)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseDomain(%q): expected ErrValidation, got %v", in, err)
		}
		if !IsKind(err, KindValidation) {
			t.Fatalf("ParseDomain(%q): expected validation kind, got %v", in, err)
		}
	}
}

func TestDomainEntries(t *testing.T) {
	got := Domain("example.com").Entries("")
	want := []string{"127.0.0.1 example.com", "127.0.0.1 www.example.com"}
	if len(got) != len(want) {
		t.Fatalf("unexpected entries: %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry[%d] got %q want %q", i, got[i], want[i])
		}
	}

	custom := Domain("x.org").Entries("0.0.0.0")
	if custom[1] != "0.0.0.0 www.x.org" {
		t.Fatalf("unexpected custom redirect entry: %q", custom[1])
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		1500: "25:00",
		61:   "01:01",
		0:    "00:00",
		-5:   "00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}
