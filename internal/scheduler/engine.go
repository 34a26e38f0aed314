package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidInterval = errors.New("scheduler: invalid tick interval")

// Tick is one wall-clock beat. Seq starts at 1 and increases by one per
// emitted or dropped tick.
type Tick struct {
	Seq uint64
	At  time.Time
}

// Ticker emits a Tick every interval on a buffered channel. Sends never
// block: when the consumer lags the tick is dropped and counted.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	out      chan Tick
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	seq      uint64
	dropped  uint64
}

func NewTicker(interval time.Duration, bufferSize int) (*Ticker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Ticker{
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
		out:      make(chan Tick, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (t *Ticker) C() <-chan Tick {
	return t.out
}

func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped {
		return
	}
	t.started = true
	go t.loop()
}

// Stop halts the loop, waits for it to exit and closes C.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	close(t.stopCh)
	started := t.started
	t.mu.Unlock()
	if !started {
		close(t.out)
		return
	}
	<-t.doneCh
}

func (t *Ticker) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

func (t *Ticker) loop() {
	defer close(t.doneCh)
	defer close(t.out)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.emit()
		case <-t.stopCh:
			return
		}
	}
}

func (t *Ticker) emit() {
	ev := Tick{Seq: atomic.AddUint64(&t.seq, 1), At: t.now()}
	select {
	case t.out <- ev:
	default:
		atomic.AddUint64(&t.dropped, 1)
	}
}
