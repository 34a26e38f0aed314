// Package timer holds the countdown state machine that blocks a domain for
// the length of one focus session.
//
// The engine has no clock of its own. Callers invoke Tick once per elapsed
// second while a session is running, either from a UI event loop or through
// Run with a scheduler.Ticker. All methods must be called from a single
// goroutine.
package timer

import (
	"errors"
	"log/slog"

	"github.com/sandeepkv93/focusblock/internal/logger"
	"github.com/sandeepkv93/focusblock/internal/model"
)

var (
	ErrSessionActive = errors.New("timer: session already running")
	ErrNotRunning    = errors.New("timer: no session running")
)

// Blocker applies and releases hosts-file redirects. *hosts.Store satisfies it.
type Blocker interface {
	Block(domain model.Domain, list *model.BlockList) error
	UnblockAll(list *model.BlockList) error
}

// Session is the complete mutable state owned by an Engine.
type Session struct {
	State    model.TimerState
	Blocked  *model.BlockList
	Domain   model.Domain
	Duration int
}

// Snapshot is a read-only copy of a Session.
type Snapshot struct {
	State    model.TimerState
	Domain   model.Domain
	Duration int
	Blocked  []model.Domain
}

func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	elapsed := s.Duration - s.State.RemainingSeconds
	return float64(elapsed) / float64(s.Duration)
}

type Engine struct {
	session Session
	blocker Blocker
	log     *slog.Logger
}

type Option func(*Engine)

// WithDuration sets the session length in seconds. Non-positive values keep
// the default of 25 minutes.
func WithDuration(seconds int) Option {
	return func(e *Engine) {
		if seconds > 0 {
			e.session.Duration = seconds
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func NewEngine(blocker Blocker, opts ...Option) *Engine {
	e := &Engine{
		blocker: blocker,
		session: Session{
			Blocked:  model.NewBlockList(),
			Duration: model.DefaultSessionSeconds,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session.State.RemainingSeconds = e.session.Duration
	return e
}

// Start blocks domain and begins a full-length countdown. It fails without
// changing state when a session is already running, when domain is blank, or
// when the hosts file cannot be edited.
func (e *Engine) Start(domain string) error {
	if e.session.State.Running {
		return ErrSessionActive
	}
	d, err := model.ParseDomain(domain)
	if err != nil {
		return err
	}
	if err := e.blocker.Block(d, e.session.Blocked); err != nil {
		e.logger().Warn("timer.start.blocked_failed", "domain", d, "err", err)
		return err
	}
	e.session.Domain = d
	e.session.State = model.TimerState{RemainingSeconds: e.session.Duration, Running: true}
	e.logger().Info("timer.start", "domain", d, "duration_sec", e.session.Duration)
	return nil
}

// Tick advances a running session by one second. It reports true exactly
// once per session: on the tick that reaches zero, after every blocked
// domain has been released.
func (e *Engine) Tick() bool {
	if !e.session.State.Running {
		return false
	}
	if e.session.State.RemainingSeconds > 0 {
		e.session.State.RemainingSeconds--
	}
	if e.session.State.RemainingSeconds > 0 {
		return false
	}
	e.release("timer.expired")
	e.session.State.Running = false
	return true
}

// Reset releases every blocked domain and restores the full duration. It is
// valid in any state.
func (e *Engine) Reset() {
	e.release("timer.reset")
	e.session.State = model.TimerState{RemainingSeconds: e.session.Duration}
}

func (e *Engine) Running() bool { return e.session.State.Running }

func (e *Engine) Duration() int { return e.session.Duration }

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:    e.session.State,
		Domain:   e.session.Domain,
		Duration: e.session.Duration,
		Blocked:  e.session.Blocked.Domains(),
	}
}

// release unblocks and clears the block list. Unblock failures are logged
// only; the session still ends.
func (e *Engine) release(event string) {
	domains := e.session.Blocked.Domains()
	err := e.blocker.UnblockAll(e.session.Blocked)
	e.session.Blocked.Clear()
	if err != nil {
		e.logger().Error(event, "domains", domains, "err", err)
		return
	}
	e.logger().Info(event, "domains", domains)
}

func (e *Engine) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return logger.L()
}
