package session

import (
	"sync"
	"testing"
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestManager(opts Options) (*Manager, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m := NewManager(opts)
	m.now = clock.Now
	return m, clock
}

func TestNewManager(t *testing.T) {
	m := NewManager(Options{})

	require.NotNil(t, m)
	assert.NotNil(t, m.sessions)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.List())
}

func TestManagerCreate(t *testing.T) {
	m, _ := newTestManager(Options{})

	s, err := m.Create()
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, calculator.New(), s.State())
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManagerCreate_UniqueIDs(t *testing.T) {
	m, _ := newTestManager(Options{})

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := m.Create()
		require.NoError(t, err)
		assert.False(t, seen[s.ID()], "duplicate id %s", s.ID())
		seen[s.ID()] = true
	}
}

func TestManagerCreate_Limit(t *testing.T) {
	m, _ := newTestManager(Options{MaxSessions: 2})

	first, err := m.Create()
	require.NoError(t, err)
	_, err = m.Create()
	require.NoError(t, err)

	_, err = m.Create()
	assert.ErrorIs(t, err, ErrSessionLimit)

	require.NoError(t, m.Close(first.ID()))
	_, err = m.Create()
	assert.NoError(t, err)
}

func TestManagerCreate_UsesFormatter(t *testing.T) {
	m, _ := newTestManager(Options{Formatter: calculator.Formatter{MinExponent: -2, MaxExponent: 3}})

	s, err := m.Create()
	require.NoError(t, err)

	_, snap := s.ApplyEvents(
		calculator.DigitEvent('5'),
		calculator.DigitEvent('0'),
		calculator.DigitEvent('0'),
		calculator.OperatorEvent(calculator.Multiply),
		calculator.DigitEvent('2'),
		calculator.Event{Kind: calculator.EventEquals},
	)
	assert.Equal(t, "1e+3", snap.Result)
}

func TestManagerGet_NotFound(t *testing.T) {
	m, _ := newTestManager(Options{})

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerClose(t *testing.T) {
	m, _ := newTestManager(Options{})

	s, err := m.Create()
	require.NoError(t, err)

	require.NoError(t, m.Close(s.ID()))
	_, err = m.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, m.Close(s.ID()), ErrSessionNotFound)
}

func TestManagerList_OldestFirst(t *testing.T) {
	m, clock := newTestManager(Options{})

	var ids []string
	for i := 0; i < 3; i++ {
		s, err := m.Create()
		require.NoError(t, err)
		ids = append(ids, s.ID())
		clock.Advance(time.Second)
	}

	infos := m.List()
	require.Len(t, infos, 3)
	for i, info := range infos {
		assert.Equal(t, ids[i], info.ID)
	}
}

func TestManagerPrune(t *testing.T) {
	m, clock := newTestManager(Options{IdleTimeout: time.Minute})

	idle, err := m.Create()
	require.NoError(t, err)
	active, err := m.Create()
	require.NoError(t, err)

	clock.Advance(45 * time.Second)
	active.ApplyEvents(calculator.DigitEvent('1'))
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, m.Prune())

	_, err = m.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(active.ID())
	assert.NoError(t, err)
}

func TestManagerPrune_Disabled(t *testing.T) {
	m, clock := newTestManager(Options{})

	_, err := m.Create()
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)

	assert.Equal(t, 0, m.Prune())
	assert.Equal(t, 1, m.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(Options{})

	a, err := m.Create()
	require.NoError(t, err)
	b, err := m.Create()
	require.NoError(t, err)

	a.ApplyEvents(calculator.DigitEvent('7'), calculator.OperatorEvent(calculator.Add))
	b.ApplyEvents(calculator.DigitEvent('3'))

	assert.Equal(t, calculator.Some(7), a.State().Accumulator)
	assert.False(t, b.State().Accumulator.Valid)
	assert.Equal(t, "3", b.State().Input)
}

func TestSessionApply_Serialized(t *testing.T) {
	m, _ := newTestManager(Options{})

	s, err := m.Create()
	require.NoError(t, err)

	// 2 + 1 =, then every concurrent repeated equals adds 1
	s.ApplyEvents(calculator.DigitEvent('2'), calculator.OperatorEvent(calculator.Add), calculator.DigitEvent('1'))
	s.ApplyEvents(calculator.Event{Kind: calculator.EventEquals})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply(calculator.State.Equals)
		}()
	}
	wg.Wait()

	assert.Equal(t, "103", s.State().Input)
}

func TestSessionInfo(t *testing.T) {
	m, clock := newTestManager(Options{})

	s, err := m.Create()
	require.NoError(t, err)
	created := clock.Now()

	clock.Advance(time.Minute)
	s.ApplyEvents(calculator.DigitEvent('4'))

	info := s.Info()
	assert.Equal(t, s.ID(), info.ID)
	assert.Equal(t, created, info.CreatedAt)
	assert.Equal(t, created.Add(time.Minute), info.LastUsed)
	assert.Equal(t, "4", info.State.Input)
}
