package rotation

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Handle identifies one Start of a Driver. The zero Handle is never issued.
type Handle uint64

// Driver owns a single repeating timer. It knows nothing about indexes or
// pause sources; it only starts, stops, and re-arms.
//
// Every firing carries the Handle it was armed with. A firing whose Handle is
// no longer current is dropped, so a callback already queued when Stop or a
// new Start ran can never leak through.
type Driver struct {
	clock clock.WithDelayedExecution

	mu       sync.Mutex
	seq      uint64
	current  Handle
	timer    clock.Timer
	interval time.Duration
	fn       func(Handle)
	armedAt  time.Time
}

// NewDriver creates a Driver on the given clock. A nil clock uses wall time.
func NewDriver(clk clock.WithDelayedExecution) *Driver {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Driver{clock: clk}
}

// Start schedules fn every interval and returns its Handle. Any previously
// active handle is stopped first.
func (d *Driver) Start(interval time.Duration, fn func(Handle)) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	d.seq++
	h := Handle(d.seq)
	d.current = h
	d.interval = interval
	d.fn = fn
	d.armLocked(h)
	return h
}

// Stop cancels future firings of h. Stopping a stale, unknown, or zero
// handle is a no-op.
func (d *Driver) Stop(h Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if h == 0 || h != d.current {
		return
	}
	d.stopLocked()
}

// StopAll cancels whatever handle is active.
func (d *Driver) StopAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Current returns the active handle, or zero when stopped.
func (d *Driver) Current() Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Active reports whether a handle is armed.
func (d *Driver) Active() bool {
	return d.Current() != 0
}

// ArmedAt returns when the pending interval began, or the zero time.
func (d *Driver) ArmedAt() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armedAt
}

// armLocked schedules the next firing. Fake clocks run AfterFunc callbacks
// while holding their own lock, and fire calls back into the clock, so the
// firing is handed to its own goroutine.
func (d *Driver) armLocked(h Handle) {
	d.armedAt = d.clock.Now()
	d.timer = d.clock.AfterFunc(d.interval, func() { go d.fire(h) })
}

func (d *Driver) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.current = 0
	d.fn = nil
	d.armedAt = time.Time{}
}

// fire re-arms before running fn so the next interval is measured from this
// tick, not from when fn returns.
func (d *Driver) fire(h Handle) {
	d.mu.Lock()
	if h != d.current {
		d.mu.Unlock()
		return
	}
	d.armLocked(h)
	fn := d.fn
	d.mu.Unlock()

	if fn != nil {
		fn(h)
	}
}
