package rotation

import (
	"time"

	"k8s.io/utils/clock"
)

// visibility replays enter animations: every index change hides the items
// and shows them again after a short delay. It has no lock of its own; the
// owning Controller's mutex guards it.
type visibility struct {
	clock   clock.WithDelayedExecution
	delay   time.Duration
	visible bool
	gen     uint64
	timer   clock.Timer
}

func newVisibility(clk clock.WithDelayedExecution, delay time.Duration) visibility {
	return visibility{clock: clk, delay: delay, visible: true}
}

// hide flips visible off and (re)schedules the show. A pending show is
// cancelled first so at most one timer is outstanding. It reports whether the
// flag actually flipped.
func (v *visibility) hide(show func(gen uint64)) bool {
	flipped := v.visible
	v.visible = false
	v.stopTimer()

	v.gen++
	gen := v.gen
	// show takes the controller lock and reads the clock; never run it on
	// the clock's callback stack.
	v.timer = v.clock.AfterFunc(v.delay, func() { go show(gen) })
	return flipped
}

// show completes the pulse identified by gen. Stale generations are ignored.
func (v *visibility) show(gen uint64) bool {
	if gen != v.gen || v.timer == nil {
		return false
	}
	v.timer = nil
	if v.visible {
		return false
	}
	v.visible = true
	return true
}

// cancel drops any pending show and restores the resting visible state.
// It reports whether the flag flipped back on.
func (v *visibility) cancel() bool {
	v.stopTimer()
	v.gen++
	flipped := !v.visible
	v.visible = true
	return flipped
}

func (v *visibility) pending() bool {
	return v.timer != nil
}

func (v *visibility) stopTimer() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
