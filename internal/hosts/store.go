// Package hosts edits the operating system hosts file to redirect blocked
// domains to a local address.
//
// Matching is by plain substring against the file content: a domain counts
// as present if it appears anywhere in the file, and unblocking drops every
// line that mentions a blocked domain. Overlapping names such as
// "example.com" and "myexample.com" therefore interfere with each other.
package hosts

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/sandeepkv93/focusblock/internal/logger"
	"github.com/sandeepkv93/focusblock/internal/model"
)

const (
	WindowsPath = `C:\Windows\System32\drivers\etc\hosts`
	POSIXPath   = "/etc/hosts"
)

// ResolvePath returns the well-known hosts file location for this platform.
func ResolvePath() string {
	return PathFor(runtime.GOOS)
}

func PathFor(goos string) string {
	if goos == "windows" {
		return WindowsPath
	}
	return POSIXPath
}

type Store struct {
	path       string
	redirectIP string
	log        *slog.Logger
}

type Option func(*Store)

func WithRedirectIP(ip string) Option {
	return func(s *Store) {
		if strings.TrimSpace(ip) != "" {
			s.redirectIP = strings.TrimSpace(ip)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore returns a store for the hosts file at path, or for ResolvePath()
// when path is empty.
func NewStore(path string, opts ...Option) *Store {
	if strings.TrimSpace(path) == "" {
		path = ResolvePath()
	}
	s := &Store{path: path, redirectIP: model.DefaultRedirectIP}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string { return s.path }

func (s *Store) RedirectIP() string { return s.redirectIP }

// Block appends redirect entries for domain unless the domain already
// appears in the file, then records it in list. Nothing is added to list on
// failure.
func (s *Store) Block(domain model.Domain, list *model.BlockList) error {
	const op = "hosts.block"
	f, err := os.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		return s.fail(op, err)
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return s.fail(op, err)
	}
	content := string(raw)

	if strings.Contains(content, string(domain)) {
		s.logger().Info("hosts.block.present", "domain", domain, "path", s.path)
	} else {
		var b strings.Builder
		if content != "" && !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		for _, entry := range domain.Entries(s.redirectIP) {
			b.WriteString(entry)
			b.WriteString("\n")
		}
		if _, err := f.WriteString(b.String()); err != nil {
			return s.fail(op, err)
		}
		s.logger().Info("hosts.block.appended", "domain", domain, "path", s.path)
	}

	if list != nil {
		list.Add(domain)
	}
	return nil
}

// UnblockAll removes every line mentioning a domain in list and empties the
// list. The list is emptied even when the rewrite fails; the failure is
// logged and returned as an io_failure OpError.
func (s *Store) UnblockAll(list *model.BlockList) error {
	const op = "hosts.unblock_all"
	if list == nil || list.Empty() {
		return nil
	}
	domains := list.Domains()
	defer list.Clear()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.unblockFailed(op, err, domains)
	}
	kept, removed := filterLines(string(raw), domains)
	if err := os.WriteFile(s.path, []byte(kept), 0o644); err != nil {
		return s.unblockFailed(op, err, domains)
	}
	s.logger().Info("hosts.unblock_all", "domains", domains, "removed_lines", removed, "path", s.path)
	return nil
}

// Entries lists the redirect lines currently in the file.
func (s *Store) Entries() ([]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.fail("hosts.entries", err)
	}
	out := make([]string, 0)
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == s.redirectIP {
			out = append(out, line)
		}
	}
	return out, nil
}

// filterLines drops lines containing any of domains. Line terminators of
// kept lines are preserved byte for byte.
func filterLines(content string, domains []model.Domain) (string, int) {
	var b strings.Builder
	removed := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			continue
		}
		if mentionsAny(line, domains) {
			removed++
			continue
		}
		b.WriteString(line)
	}
	return b.String(), removed
}

func mentionsAny(line string, domains []model.Domain) bool {
	for _, d := range domains {
		if strings.Contains(line, string(d)) {
			return true
		}
	}
	return false
}

func (s *Store) fail(op string, err error) error {
	kind := model.KindIOFailure
	if errors.Is(err, fs.ErrPermission) {
		kind = model.KindPermissionDenied
	}
	s.logger().Warn(op+".failed", "kind", kind, "path", s.path, "err", err)
	return &model.OpError{Op: op, Kind: kind, Path: s.path, Err: err}
}

func (s *Store) unblockFailed(op string, err error, domains []model.Domain) error {
	s.logger().Error(op+".failed", "domains", domains, "path", s.path, "err", err)
	return &model.OpError{Op: op, Kind: model.KindIOFailure, Path: s.path, Err: err}
}

func (s *Store) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return logger.L()
}
