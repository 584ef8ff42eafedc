// Package clock implements the evaluation clock.
package clock

import (
	"sync"
	"time"
)

// System is a ports.Clock backed by the wall clock. Times are normalized to
// UTC so value hashes never depend on the host timezone.
type System struct{}

// NewSystem creates a wall clock.
func NewSystem() *System {
	return &System{}
}

// Now returns the current time in UTC.
func (*System) Now() time.Time {
	return time.Now().UTC()
}

// Frozen is a ports.Clock pinned to a settable instant, for the evaluate
// command's --at flag and for tests.
type Frozen struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFrozen creates a clock pinned to t.
func NewFrozen(t time.Time) *Frozen {
	return &Frozen{now: t.UTC()}
}

// Now returns the pinned instant.
func (f *Frozen) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.now
}

// Set moves the pinned instant.
func (f *Frozen) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t.UTC()
}

// Advance moves the pinned instant forward by d.
func (f *Frozen) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
