// package radix implements the affine rescale between this library's native
// log2 SLOG codewords and other fixed-point log radices (decibel power,
// ratio steps of 1.25, ...), via a table of multiply/shift constant pairs
// keyed by radix tag.
//
// A gain expressed in a non-log2 radix applies multiplicatively to a SLOG
// value by rescaling it into log2 and adding it, the same way two SLOG
// values already combine:
//
//	gainDB := radix.From(radix.DBPower, gainInDBRadix)
//	boosted := slog.Add(value, slog.Wrap(gainDB))
package radix

import "github.com/pfcm/intfp/bitops"

// Tag identifies a target radix in the constants table.
type Tag int

const (
	// DBPower rescales to/from a decibel-power fixed-point radix. The
	// to/from constant pair is an exact round-trip (±1 ULP).
	DBPower Tag = iota
	// Ratio125 rescales to/from a log-base-1.25 fixed-point radix. The
	// constant pair is not an exact round-trip: From(To(v)) drifts by more
	// than 1 ULP for some inputs. Kept as specified rather than re-derived.
	Ratio125
)

// entry holds one radix's multiply/shift constant pair in each direction.
type entry struct {
	to, from       uint32
	toShr, fromShr uint
}

var table = map[Tag]entry{
	DBPower:  {to: 0xC0A8C129, toShr: 30, from: 0x550A9686, fromShr: 32},
	Ratio125: {to: 0xC6CD5A3B, toShr: 30, from: 0x5269E11A, fromShr: 32},
}

// rescale is the shared multiply-and-shift step both directions use: take
// the absolute value, scale, restore the sign.
func rescale[T bitops.Signed](v T, constant uint32, shr uint) T {
	if v == 0 {
		return 0
	}
	if v == bitops.SignedMin[T]() {
		// Zero sentinel for a SLOG codeword: pass through unchanged, same
		// as the plain-zero case above.
		return v
	}
	neg := v < 0
	abs := v
	if neg {
		abs = -abs
	}
	t := T((uint64(abs) * uint64(constant)) >> shr)
	if neg {
		t = -t
	}
	return t
}

// To rescales a value out of this library's native log2 radix into the
// radix named by tag.
func To[T bitops.Signed](tag Tag, v T) T {
	e := table[tag]
	return rescale(v, e.to, e.toShr)
}

// From rescales a value in the radix named by tag back into log2.
func From[T bitops.Signed](tag Tag, v T) T {
	e := table[tag]
	return rescale(v, e.from, e.fromShr)
}
