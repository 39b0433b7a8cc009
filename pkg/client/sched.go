package client

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one trailing execution: each
// Call restarts the wait, and once the burst goes quiet the most recent
// function runs. Typical use is search-as-you-type.
type Debouncer struct {
	wait time.Duration

	mu    sync.Mutex
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Call schedules fn, replacing any pending call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fn = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.fn
	d.fn = nil
	d.timer = nil
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop drops any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fn = nil
}

// Throttler runs a call immediately, then swallows further calls until
// the cooldown has passed.
type Throttler struct {
	cooldown time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewThrottler creates a throttler with the given cooldown.
func NewThrottler(cooldown time.Duration) *Throttler {
	return &Throttler{cooldown: cooldown, now: time.Now}
}

// Call runs fn if the cooldown has elapsed since the last accepted call;
// it reports whether fn ran.
func (t *Throttler) Call(fn func()) bool {
	t.mu.Lock()
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.cooldown {
		t.mu.Unlock()
		return false
	}
	t.last = now
	t.mu.Unlock()
	fn()
	return true
}

// Reset clears the cooldown so the next Call runs immediately.
func (t *Throttler) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = time.Time{}
}
