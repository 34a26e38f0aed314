package timer

import (
	"context"
	"errors"

	"github.com/sandeepkv93/focusblock/internal/model"
	"github.com/sandeepkv93/focusblock/internal/scheduler"
)

var ErrTicksClosed = errors.New("timer: tick source closed")

// Run feeds ticks into a started engine until the session completes. If ctx
// is cancelled or ticks is closed first, the engine is reset, which unblocks
// every domain before Run returns. onTick may be nil.
func Run(ctx context.Context, e *Engine, ticks <-chan scheduler.Tick, onTick func(model.TimerState)) error {
	if !e.Running() {
		return ErrNotRunning
	}
	for {
		select {
		case <-ctx.Done():
			e.Reset()
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				e.Reset()
				return ErrTicksClosed
			}
			done := e.Tick()
			if onTick != nil {
				onTick(e.Snapshot().State)
			}
			if done {
				return nil
			}
		}
	}
}
