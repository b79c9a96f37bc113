package clock

import (
	"sync"
	"time"
)

// ManualSource is a Source whose time only moves when told to.
type ManualSource struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualSource returns a ManualSource starting at start.
func NewManualSource(start time.Time) *ManualSource {
	return &ManualSource{now: start}
}

// Now implements Source.
func (m *ManualSource) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the source to t.
func (m *ManualSource) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the source forward by d.
func (m *ManualSource) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
