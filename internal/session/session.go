// Package session keeps calculator sessions for the tool server. Each session
// owns one calculator state and serializes the events applied to it.
package session

import (
	"sync"
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// Session is a single calculator with its own state record
type Session struct {
	id        string
	createdAt time.Time
	now       func() time.Time

	mu       sync.Mutex
	state    calculator.State
	lastUsed time.Time
}

// Info describes a session at a point in time
type Info struct {
	ID        string
	CreatedAt time.Time
	LastUsed  time.Time
	State     calculator.State
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Apply runs one engine transition against the session state
func (s *Session) Apply(transition func(calculator.State) (calculator.State, calculator.Snapshot)) (calculator.State, calculator.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, snap := transition(s.state)
	s.state = next
	s.lastUsed = s.now()
	return next, snap
}

// ApplyEvents applies events in order as one atomic step
func (s *Session) ApplyEvents(events ...calculator.Event) (calculator.State, calculator.Snapshot) {
	return s.Apply(func(state calculator.State) (calculator.State, calculator.Snapshot) {
		return state.ApplyAll(events...)
	})
}

// State returns a copy of the current state
func (s *Session) State() calculator.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastUsed returns when an event was last applied
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Info returns a consistent view of the session
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		ID:        s.id,
		CreatedAt: s.createdAt,
		LastUsed:  s.lastUsed,
		State:     s.state,
	}
}
