package repository

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid successive writes into one: each Schedule cancels
// the previous pending timer and starts a fresh quiet period. Writes are
// fire-and-forget; nobody awaits acknowledgement.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// DefaultSaveDelay is the quiet period between the last edit and the
// persisted write.
const DefaultSaveDelay = 500 * time.Millisecond

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &Debouncer{delay: delay}
}

// Schedule arranges for fn to run after the quiet period, superseding any
// previously scheduled call.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		fn := d.pending
		d.pending = nil
		d.timer = nil
		d.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

// Flush runs any pending write immediately. Used on shutdown so the last
// edits are not lost to a cancelled timer.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop cancels any pending write without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
