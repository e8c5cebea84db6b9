// Package stopwatch contains the stopwatch domain logic: the Elapsed counters,
// the run state machine and lap recording.
//
// Maintenance notes:
//   - The Stopwatch does not schedule anything itself. The application loop
//     owns the 10ms ticker and calls Tick; Start reports whether a ticker
//     should be created so repeated starts never stack two tickers.
//   - Mutations are expected to happen on the application loop goroutine.
//     The mutex only makes Snapshot safe to call from the UI side.
package stopwatch

import "sync"

// RunState defines the possible states of the stopwatch.
type RunState int

const (
	StateStopped RunState = iota
	StateRunning
	StatePaused
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Lap is a recorded snapshot of the elapsed time. Index starts at 1.
type Lap struct {
	Index int
	Time  Elapsed
}

// Stopwatch represents the stopwatch state.
type Stopwatch struct {
	mu      sync.RWMutex
	state   RunState
	elapsed Elapsed
	laps    []Lap
}

// New creates a stopped stopwatch at 00:00:00:00.
func New() *Stopwatch {
	return &Stopwatch{state: StateStopped}
}

// Start moves a stopped or paused stopwatch to running. It returns false when
// the stopwatch was already running.
func (s *Stopwatch) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		return false
	}
	s.state = StateRunning
	return true
}

// Pause freezes a running stopwatch. It returns false if it was not running.
func (s *Stopwatch) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return false
	}
	s.state = StatePaused
	return true
}

// Reset zeroes the counters, clears the laps and stops the stopwatch.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateStopped
	s.elapsed = Elapsed{}
	s.laps = nil
}

// Tick advances the counters by one hundredth of a second while running and
// returns the resulting elapsed time.
func (s *Stopwatch) Tick() Elapsed {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		s.elapsed = s.elapsed.Advance()
	}
	return s.elapsed
}

// RecordLap appends a lap with the current elapsed time. Nothing is recorded
// while the counters are all zero.
func (s *Stopwatch) RecordLap() (Lap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.elapsed.IsZero() {
		return Lap{}, false
	}
	lap := Lap{Index: len(s.laps) + 1, Time: s.elapsed}
	s.laps = append(s.laps, lap)
	return lap, true
}

// GetState returns the current state in a thread-safe manner.
func (s *Stopwatch) GetState() RunState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// GetElapsed returns the current counters in a thread-safe manner.
func (s *Stopwatch) GetElapsed() Elapsed {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

// Snapshot is a consistent copy of the stopwatch for rendering.
type Snapshot struct {
	State   RunState
	Elapsed Elapsed
	Laps    []Lap
}

// GetSnapshot returns a consistent snapshot of the stopwatch for UI use.
func (s *Stopwatch) GetSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	laps := make([]Lap, len(s.laps))
	copy(laps, s.laps)
	return Snapshot{State: s.state, Elapsed: s.elapsed, Laps: laps}
}
