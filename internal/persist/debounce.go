package persist

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of saves into a single trailing call carrying
// the latest state. There is no leading-edge call.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(State)
	timer   *time.Timer
	pending State
	stopped bool
}

// NewDebouncer wraps fn with a trailing-edge debounce window.
func NewDebouncer(fn func(State), delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call schedules fn with the given state, replacing any pending call.
func (d *Debouncer) Call(state State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = state
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	state := d.pending
	d.timer = nil
	d.mu.Unlock()
	d.fn(state)
}

// Flush runs any pending call immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	state := d.pending
	d.mu.Unlock()
	d.fn(state)
}

// Stop cancels any pending call. Further calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
