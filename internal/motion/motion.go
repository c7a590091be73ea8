// Package motion holds the pure interpolation helpers behind scroll-linked
// effects and the rotation progress bar.
package motion

import (
	"math"
	"time"

	"github.com/npratt/showcase/internal/rotation"
)

// Clamp limits v to [lo, hi]. The bounds may be given in either order.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Interpolate maps progress through the piecewise-linear curve defined by
// the paired stops in and out. in must be ascending and the same length as
// out. Progress outside the first and last stop is clamped rather than
// extrapolated.
func Interpolate(progress float64, in, out []float64) float64 {
	n := min(len(in), len(out))
	switch {
	case n == 0:
		return 0
	case n == 1 || progress <= in[0]:
		return out[0]
	case progress >= in[n-1]:
		return out[n-1]
	}

	for i := 1; i < n; i++ {
		if progress > in[i] {
			continue
		}
		span := in[i] - in[i-1]
		if span == 0 {
			return out[i]
		}
		t := (progress - in[i-1]) / span
		return out[i-1] + t*(out[i]-out[i-1])
	}
	return out[n-1]
}

// IndexAt picks the item a scroll-driven carousel shows at progress in
// [0, 1] across n items. Each item owns an equal slice of the range and the
// last item keeps progress 1.
func IndexAt(progress float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(Clamp(progress, 0, 1) * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Smooth moves current toward target by factor, the per-frame step of a
// smooth-scroll wheel. factor is clamped to [0, 1]; a factor of 1 jumps
// straight to target.
func Smooth(current, target, factor float64) float64 {
	f := Clamp(factor, 0, 1)
	next := current + (target-current)*f
	if math.Abs(target-next) < 0.5 {
		return target
	}
	return next
}

// TickProgress reports how far through its current interval a controller is,
// in [0, 1]. It is 0 whenever no tick is armed.
func TickProgress(s rotation.Snapshot, now time.Time) float64 {
	if s.State != rotation.StateRunning || s.TickStarted.IsZero() || s.Interval <= 0 {
		return 0
	}
	elapsed := now.Sub(s.TickStarted)
	return Clamp(float64(elapsed)/float64(s.Interval), 0, 1)
}
