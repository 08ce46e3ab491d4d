// package convert implements the cross-format transcoders that move a
// codeword between PUL and SLOG representations, or between two widths and
// mantissa budgets of the same format, without ever reconstructing the
// underlying linear value. Every family here is a single realigning shift
// plus sentinel remapping.
package convert

import (
	"github.com/pfcm/intfp/bitops"
	"github.com/pfcm/intfp/pul"
	"github.com/pfcm/intfp/slog"
)

// realignUnsigned shifts a raw PUL codeword left when mOut > mIn (more
// mantissa precision in the destination) or right when mOut < mIn, losing
// the low bits. The shift is logical: a 64-bit PUL codeword's exponent
// field can occupy bit 63, and PUL has no sign bit to preserve, so an
// arithmetic shift there would sign-extend garbage into the result instead
// of zero-filling it.
func realignUnsigned(raw uint64, mIn, mOut int) uint64 {
	d := mOut - mIn
	if d >= 0 {
		return raw << uint(d)
	}
	return raw >> uint(-d)
}

// realignSigned is realignUnsigned's counterpart for SLOG codewords: the
// same left/right shift, but arithmetic, so a negative codeword's sign
// carries through when narrowing the mantissa.
func realignSigned(raw int64, mIn, mOut int) int64 {
	d := mOut - mIn
	if d >= 0 {
		return raw << uint(d)
	}
	return raw >> uint(-d)
}

// PULToPUL re-encodes a PUL codeword of width LIn/mantissa mIn into one of
// width LOut/mantissa mOut, with no intermediate decode.
func PULToPUL[LIn, LOut bitops.Unsigned](v pul.Value[LIn], mIn, mOut int) pul.Value[LOut] {
	if v.IsZero() {
		return pul.Zero[LOut]()
	}
	return pul.Wrap(LOut(realignUnsigned(uint64(v.Raw()), mIn, mOut)))
}

// SLOGToSLOG re-encodes a SLOG codeword of width LIn/mantissa mIn into one
// of width LOut/mantissa mOut, preserving sign and remapping the log-zero
// sentinel.
func SLOGToSLOG[LIn, LOut bitops.Signed](v slog.Value[LIn], mIn, mOut int) slog.Value[LOut] {
	if v.IsZero() {
		return slog.Zero[LOut]()
	}
	return slog.Wrap(LOut(realignSigned(int64(v.Raw()), mIn, mOut)))
}

// PULToSLOG lifts a nonnegative PUL codeword into SLOG's signed codeword
// space. Because every PUL value is >= 1, the result is always a
// nonnegative SLOG codeword.
func PULToSLOG[LIn bitops.Unsigned, LOut bitops.Signed](v pul.Value[LIn], mIn, mOut int) slog.Value[LOut] {
	if v.IsZero() {
		return slog.Zero[LOut]()
	}
	return slog.Wrap(LOut(realignUnsigned(uint64(v.Raw()), mIn, mOut)))
}

// SLOGToPUL projects a signed SLOG codeword down into PUL's nonnegative
// space. A negative codeword encodes a value below 1.0, which PUL cannot
// represent, so it collapses to PUL-zero rather than saturating or
// wrapping.
func SLOGToPUL[LIn bitops.Signed, LOut bitops.Unsigned](v slog.Value[LIn], mIn, mOut int) pul.Value[LOut] {
	if v.IsZero() || v.Raw() < 0 {
		return pul.Zero[LOut]()
	}
	return pul.Wrap(LOut(realignSigned(int64(v.Raw()), mIn, mOut)))
}
