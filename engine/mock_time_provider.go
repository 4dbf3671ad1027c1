package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manual clock for tests
// Sleep advances it instantly and records the request, so a FrameClock
// built with NewFrameClock(mock, mock.Sleep) runs without real delays
type MockTimeProvider struct {
	mu     sync.RWMutex
	now    time.Time
	sleeps []time.Duration
}

// NewMockTimeProvider creates a mock clock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward, simulating work done inside a frame
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleep records d and advances the clock by it
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	m.now = m.now.Add(d)
}

// Sleeps returns a copy of every recorded sleep
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.sleeps...)
}
