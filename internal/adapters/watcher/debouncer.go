package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid event bursts into a single callback invocation.
// Each Bump resets the timer; the callback fires once the window elapses
// without further bumps.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	pending  bool
	window   time.Duration
	callback func()
}

// NewDebouncer creates a debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{window: window, callback: callback}
}

// Bump records an event and restarts the debounce window.
func (d *Debouncer) Bump() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs when the window expires without another bump.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Flush fires the callback immediately if an event is pending. It blocks
// until the callback completes, which makes it suitable for shutdown paths
// where the last change must not be dropped.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than firing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if pending && d.callback != nil {
		d.callback()
	}
}
