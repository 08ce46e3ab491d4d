// package ewma implements first-order exponentially-weighted moving average
// smoothing over signed fixed-point values: `old + (new-old)/damper`, with
// two ways to divide by the damper.
package ewma

import (
	"github.com/pfcm/intfp/bitops"
	"github.com/pfcm/intfp/fix"
)

// Div is the division-damped EWMA: the step size is the ceiling-divided
// |new-old|/d, which guarantees the average advances by at least 1 whenever
// new != old and d >= 2. d <= 1 skips smoothing entirely and returns new.
func Div[T bitops.Signed](new, old, floor T, d T) T {
	if d <= 1 {
		return new
	}
	new = fix.Clamp(new, floor)
	old = fix.Clamp(old, floor)
	if new == old {
		return old
	}
	absDiff := bitops.AbsDiffSigned(new, old)
	adj := T((absDiff + uint64(d) - 1) / uint64(d))
	if new > old {
		return fix.SatAddSigned(old, adj)
	}
	return fix.SatSubSigned(old, adj)
}

// Shr is the shift-damped EWMA: the step size is |new-old| >> s, faster
// than Div when the damper is a power of two, but it loses the
// minimum-advance guarantee when |new-old| < 2^s. s <= 1 skips smoothing
// entirely and returns new, the same early return Div takes for d <= 1.
func Shr[T bitops.Signed](new, old, floor T, s uint) T {
	if s <= 1 {
		return new
	}
	new = fix.Clamp(new, floor)
	old = fix.Clamp(old, floor)
	if new == old {
		return old
	}
	absDiff := bitops.AbsDiffSigned(new, old)
	adj := T(absDiff >> s)
	if new > old {
		return fix.SatAddSigned(old, adj)
	}
	return fix.SatSubSigned(old, adj)
}
