package utils

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet window for search-as-you-type dispatch.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer defers a function until a quiet window has passed since the
// last Trigger. Each Trigger re-arms the timer and supersedes any pending
// invocation; superseded invocations are cancelled, never executed.
type Debouncer struct {
	wait  time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultDebounce
	}
	return &Debouncer{wait: wait}
}

// Trigger schedules fn to run after the quiet window, cancelling any
// previously scheduled call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Cancel drops any pending invocation.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
