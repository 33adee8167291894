package game

import "time"

// StopwatchState is the tri-state of a Stopwatch.
type StopwatchState int

const (
	StopwatchIdle StopwatchState = iota
	StopwatchRunning
	StopwatchStopped
)

func (s StopwatchState) String() string {
	switch s {
	case StopwatchRunning:
		return "running"
	case StopwatchStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Stopwatch tracks elapsed game time. The clock defaults to time.Now, whose
// readings carry a monotonic component.
type Stopwatch struct {
	now     func() time.Time
	state   StopwatchState
	started time.Time
	elapsed time.Duration
}

// NewStopwatch returns an idle stopwatch reading the given clock. A nil clock
// means time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// State returns the current state.
func (s *Stopwatch) State() StopwatchState { return s.state }

// Start begins timing. It only applies to an idle stopwatch.
func (s *Stopwatch) Start() bool {
	if s.state != StopwatchIdle {
		return false
	}
	s.started = s.now()
	s.state = StopwatchRunning
	return true
}

// Stop freezes the elapsed time. It only applies to a running stopwatch.
func (s *Stopwatch) Stop() bool {
	if s.state != StopwatchRunning {
		return false
	}
	s.elapsed = s.now().Sub(s.started)
	s.state = StopwatchStopped
	return true
}

// Reset returns the stopwatch to idle.
func (s *Stopwatch) Reset() {
	s.state = StopwatchIdle
	s.started = time.Time{}
	s.elapsed = 0
}

// Elapsed returns the live time while running and the captured time once
// stopped. The second result is false while idle.
func (s *Stopwatch) Elapsed() (time.Duration, bool) {
	switch s.state {
	case StopwatchRunning:
		return s.now().Sub(s.started), true
	case StopwatchStopped:
		return s.elapsed, true
	default:
		return 0, false
	}
}
