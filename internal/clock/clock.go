// Package clock provides a pausable monotonic game clock.
package clock

import (
	"errors"
	"time"
)

// ErrPaused is returned when the clock is read while paused.
var ErrPaused = errors.New("clock: read while paused")

// Source supplies wall-clock readings.
type Source interface {
	Now() time.Time
}

// SystemSource reads time.Now, which carries a monotonic reading.
type SystemSource struct{}

// Now implements Source.
func (SystemSource) Now() time.Time {
	return time.Now()
}

// PausableClock reports elapsed game time with paused intervals removed.
// It is not safe for concurrent use; the session goroutine owns it.
type PausableClock struct {
	src         Source
	origin      time.Time
	paused      bool
	pauseStart  time.Time
	pausedTotal time.Duration
}

// New returns a clock backed by the system monotonic clock.
func New() *PausableClock {
	return NewWithSource(SystemSource{})
}

// NewWithSource returns a clock that starts counting at src.Now().
func NewWithSource(src Source) *PausableClock {
	return &PausableClock{src: src, origin: src.Now()}
}

// Now returns time since creation minus the total paused duration.
func (c *PausableClock) Now() (time.Duration, error) {
	if c.paused {
		return 0, ErrPaused
	}
	return c.src.Now().Sub(c.origin) - c.pausedTotal, nil
}

// Pause freezes game time. Pausing an already paused clock keeps the first pause start.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.src.Now()
}

// Unpause resumes game time; it is a no-op when the clock is running.
func (c *PausableClock) Unpause() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.src.Now().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *PausableClock) Paused() bool {
	return c.paused
}

// PausedTotal returns the accumulated duration of completed pauses.
func (c *PausableClock) PausedTotal() time.Duration {
	return c.pausedTotal
}
