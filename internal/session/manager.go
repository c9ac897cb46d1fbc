package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("session limit reached")
)

// Options configures a Manager
type Options struct {
	// MaxSessions caps the number of open sessions; 0 means no limit
	MaxSessions int
	// IdleTimeout is how long a session may go unused before Prune drops it; 0 disables pruning
	IdleTimeout time.Duration
	// Formatter is used by every new session
	Formatter calculator.Formatter
}

// Manager owns the open calculator sessions
type Manager struct {
	sessions map[string]*Session
	opts     Options
	now      func() time.Time
	mu       sync.RWMutex
}

// NewManager creates a new session manager
func NewManager(opts Options) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
		now:      time.Now,
	}
}

// Create opens a new session in its initial state
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opts.MaxSessions > 0 && len(m.sessions) >= m.opts.MaxSessions {
		return nil, fmt.Errorf("%w: %d sessions open", ErrSessionLimit, len(m.sessions))
	}

	var stateOpts []calculator.Option
	if m.opts.Formatter != (calculator.Formatter{}) {
		stateOpts = append(stateOpts, calculator.WithFormatter(m.opts.Formatter))
	}

	now := m.now()
	s := &Session{
		id:        uuid.NewString(),
		createdAt: now,
		lastUsed:  now,
		state:     calculator.New(stateOpts...),
		now:       m.now,
	}
	m.sessions[s.id] = s

	slog.Debug("Session created", "session_id", s.id, "open_sessions", len(m.sessions))
	return s, nil
}

// Get returns the session with the given id
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Close removes the session with the given id
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)

	slog.Debug("Session closed", "session_id", id, "open_sessions", len(m.sessions))
	return nil
}

// List returns information about every open session, oldest first
func (m *Manager) List() []Info {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	infos := make([]Info, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Prune closes sessions that have been idle for longer than the idle timeout
// and returns how many were closed.
func (m *Manager) Prune() int {
	if m.opts.IdleTimeout <= 0 {
		return 0
	}

	cutoff := m.now().Add(-m.opts.IdleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()

	pruned := 0
	for id, s := range m.sessions {
		if s.LastUsed().Before(cutoff) {
			delete(m.sessions, id)
			pruned++
			slog.Debug("Session pruned", "session_id", id)
		}
	}
	return pruned
}
