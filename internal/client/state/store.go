package state

import (
	"sync"
	"time"
)

// Store owns the current State. It is safe for concurrent use: the REPL
// updates it while message timers clear it from their own goroutines.
type Store struct {
	mu    sync.RWMutex
	state State

	// msgGen increments on every Flash so a stale timer never clears a
	// newer message.
	msgGen uint64
	timer  *time.Timer

	afterFunc func(time.Duration, func()) *time.Timer
}

// NewStore creates a store seeded with initial.
func NewStore(initial State) *Store {
	return &Store{state: initial, afterFunc: time.AfterFunc}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies reducers in order and returns the resulting state.
func (s *Store) Update(reducers ...Reducer) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reducers {
		s.state = r(s.state)
	}
	return s.state
}

// Flash shows msg and clears it after d. A non-positive d keeps the message
// until the next Flash or ClearMessage.
func (s *Store) Flash(msg string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.msgGen++
	gen := s.msgGen
	s.state = SetMessage(msg)(s.state)

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if d <= 0 {
		return
	}
	s.timer = s.afterFunc(d, func() { s.clearIfCurrent(gen) })
}

// ClearMessage removes any message immediately.
func (s *Store) ClearMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgGen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = SetMessage("")(s.state)
}

func (s *Store) clearIfCurrent(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.msgGen {
		return
	}
	s.timer = nil
	s.state = SetMessage("")(s.state)
}
