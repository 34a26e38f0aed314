package model

import "fmt"

const DefaultSessionSeconds = 25 * 60

type TimerStatus string

const (
	TimerIdle    TimerStatus = "Idle"
	TimerRunning TimerStatus = "Running"
)

type TimerState struct {
	RemainingSeconds int
	Running          bool
}

func (s TimerState) Status() TimerStatus {
	if s.Running {
		return TimerRunning
	}
	return TimerIdle
}

// Clock renders the remaining time as mm:ss.
func (s TimerState) Clock() string {
	return FormatClock(s.RemainingSeconds)
}

func FormatClock(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}
