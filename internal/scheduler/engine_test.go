package scheduler

import (
	"testing"
	"time"
)

func TestTickerEmitsIncreasingSequence(t *testing.T) {
	ticker, err := NewTicker(10*time.Millisecond, 8)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Start()
	defer ticker.Stop()

	first := waitTick(t, ticker.C(), time.Second)
	second := waitTick(t, ticker.C(), time.Second)
	if first.Seq != 1 || second.Seq <= first.Seq {
		t.Fatalf("unexpected sequence: first=%d second=%d", first.Seq, second.Seq)
	}
	if second.At.Before(first.At) {
		t.Fatalf("tick times went backwards: %s then %s", first.At, second.At)
	}
}

func TestTickerNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	ticker, err := NewTicker(2*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Start()
	defer ticker.Stop()

	time.Sleep(80 * time.Millisecond)
	if ticker.Dropped() == 0 {
		t.Fatalf("expected dropped ticks > 0, got %d", ticker.Dropped())
	}
}

func TestTickerStopClosesChannel(t *testing.T) {
	ticker, err := NewTicker(time.Hour, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Start()
	ticker.Stop()
	ticker.Stop()

	select {
	case _, ok := <-ticker.C():
		if ok {
			t.Fatal("expected closed channel after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestStopWithoutStartClosesChannel(t *testing.T) {
	ticker, err := NewTicker(time.Second, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Stop()
	if _, ok := <-ticker.C(); ok {
		t.Fatal("expected closed channel")
	}
	ticker.Start()
}

func TestNewTickerValidatesInterval(t *testing.T) {
	if _, err := NewTicker(0, 1); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func waitTick(t *testing.T, ch <-chan Tick, timeout time.Duration) Tick {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for tick")
		return Tick{}
	}
}
