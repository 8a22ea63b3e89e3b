package query

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period applied to live-search input before a
// recomputation fires. Dropdown-style filter changes bypass the debouncer
// and recompute immediately.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer collapses a burst of triggers into a single invocation of fn
// after the quiet period elapses with no further triggers (trailing edge).
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a debouncer that invokes fn after delay. A
// non-positive delay falls back to DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn after the quiet period, cancelling any pending run.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
