// package fix provides linear fixed-point conversions: shifting a plain
// integer into a Q-format fixed-point of a possibly wider type, and back.
// Widths are type parameters and the fractional count is a plain argument,
// the same way pul and slog take their mantissa budget, rather than one
// concrete struct per (width, fractional-bits) pair.
package fix

import (
	"golang.org/x/exp/constraints"

	"github.com/pfcm/intfp/bitops"
)

// ToFixed widens v (an L-bit plain integer) into an H-bit fixed-point value
// with f fractional bits, H >= L. Overflow of the shift is the caller's
// responsibility: this is a plain shift, not a saturating one.
func ToFixed[H, L bitops.Unsigned](v L, f int) H {
	return H(v) << uint(f)
}

// FromFixed narrows an H-bit fixed-point value with f fractional bits back
// to a plain L-bit integer, truncating (not rounding) the fractional tail.
// Callers that want rounding add 1<<(f-1) to v before calling this.
func FromFixed[H, L bitops.Unsigned](v H, f int) L {
	return L(v >> uint(f))
}

// ToFixedSigned is the signed counterpart of ToFixed.
func ToFixedSigned[H, L bitops.Signed](v L, f int) H {
	return H(v) << uint(f)
}

// FromFixedSigned is the signed counterpart of FromFixed. Go's >> on a
// signed operand is already an arithmetic (sign-extending) shift.
func FromFixedSigned[H, L bitops.Signed](v H, f int) L {
	return L(v >> uint(f))
}

// Clamp raises v to lo if it falls below it. Unlike the rest of this
// package it isn't tied to a fixed machine width, so it takes its bound
// from constraints.Ordered rather than bitops.Signed/Unsigned. ewma's
// floor clamp is the main user.
func Clamp[T constraints.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}

// Round adds the rounding bias for f fractional bits ahead of a call to
// FromFixed/FromFixedSigned, turning truncation into round-to-nearest.
func Round[H bitops.Unsigned](v H, f int) H {
	if f <= 0 {
		return v
	}
	return v + H(1)<<uint(f-1)
}

// RoundSigned is Round for the signed fixed-point types.
func RoundSigned[H bitops.Signed](v H, f int) H {
	if f <= 0 {
		return v
	}
	return v + H(1)<<uint(f-1)
}
