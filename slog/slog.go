// package slog implements the signed pseudo-logarithmic ("SLOG") codec: a
// calculable log-domain format where addition and subtraction correspond to
// multiplication and division of the underlying linear values. Unlike pul,
// SLOG can represent values below 1.0 (as negative codewords), at the cost
// of one bit of exponent range given up to the sign.
package slog

import "github.com/pfcm/intfp/bitops"

// Value is a SLOG codeword of width L, kept distinct from the plain integer
// type so it can't be added to or compared against an un-encoded integer by
// accident.
type Value[L bitops.Signed] L

// Zero is the SLOG encoding of the integer 0: the log-zero sentinel, the
// most negative value representable in L.
func Zero[L bitops.Signed]() Value[L] {
	return Value[L](bitops.SignedMin[L]())
}

// IsZero reports whether v is the log-zero sentinel.
func (v Value[L]) IsZero() bool {
	return L(v) == bitops.SignedMin[L]()
}

// Raw returns the underlying codeword bits.
func (v Value[L]) Raw() L {
	return L(v)
}

// Wrap treats an L-bit word as an already-encoded SLOG codeword.
func Wrap[L bitops.Signed](w L) Value[L] {
	return Value[L](w)
}

// Add is SLOG addition, which corresponds to multiplication of the
// underlying linear values. Neither operand's sentinel is special-cased
// here: the caller is expected to check IsZero first, since there is no
// in-band multiply-by-zero shortcut for SLOG.
func Add[L bitops.Signed](a, b Value[L]) Value[L] {
	return Value[L](L(a) + L(b))
}

// Sub is SLOG subtraction, corresponding to division of the underlying
// linear values.
func Sub[L bitops.Signed](a, b Value[L]) Value[L] {
	return Value[L](L(a) - L(b))
}

// MaxMantissa is the maximum-precision mantissa budget for encoding an
// H-bit unsigned fixed-point value into an L-bit SLOG codeword.
func MaxMantissa[H bitops.Unsigned, L bitops.Signed]() int {
	return bitops.SlogMaxMantissa(bitops.Width[H](), bitops.Width[L]())
}

// Encode converts an unsigned fixed-point value v (H bits wide, f
// fractional bits) into an uncorrected L-bit SLOG codeword with m mantissa
// bits. This is the linear-mantissa approximation e + m of log2(v); use
// EncodeCorrected for the quadratically-corrected version.
func Encode[H bitops.Unsigned, L bitops.Signed](v H, f, m int) Value[L] {
	if v == 0 {
		return Zero[L]()
	}
	h := bitops.Width[H]()
	c := bitops.CLZ(v)
	e := h - 2 - c - f
	mant := v << uint(c) >> uint(h-1-m)
	return Value[L](L(e)<<uint(m) + L(mant))
}

// Decode converts an L-bit SLOG codeword (m mantissa bits) back into an
// unsigned fixed-point value with fOut fractional bits. A negative implied
// exponent with no fractional headroom underflows to 0; an exponent past
// the target width's range saturates to that width's maximum value.
func Decode[H bitops.Unsigned, L bitops.Signed](v Value[L], m, fOut int) H {
	if v.IsZero() {
		return 0
	}
	raw := L(v)
	negative := raw < 0
	if negative {
		raw = -raw
	}
	e := int(raw) >> uint(m)
	if negative {
		e = -e
	}
	scaledE := e + fOut
	h := bitops.Width[H]()
	if scaledE < 0 {
		return 0
	}
	if scaledE >= h {
		return bitops.UnsignedMax[H]()
	}
	mant := H(uint64(raw) & uint64(bitops.BitMask[uint64](m-1)))
	norm := H(1)<<uint(h-1) | mant<<uint(h-1-m)
	return norm >> uint(h-1-scaledE)
}
