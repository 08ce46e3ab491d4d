// package pul implements the packed unsigned log ("PUL") codec: a dense,
// nonnegative pseudo-logarithmic storage format. PUL trades the ability to
// do arithmetic (that's what package slog is for) for a compact codeword:
// an exponent field packed above a mantissa field, both fit into a
// narrower word than the source integer.
package pul

import "github.com/pfcm/intfp/bitops"

// Value is a PUL codeword of width L. It is a distinct type from L itself
// so a caller can't accidentally add or compare two PUL codewords as if
// they were the plain integers they represent. Encode/decode is the only
// way in or out.
type Value[L bitops.Unsigned] L

// Zero is the PUL encoding of the integer 0.
func Zero[L bitops.Unsigned]() Value[L] {
	return Value[L](bitops.UnsignedMin[L]())
}

// IsZero reports whether v is the PUL-zero sentinel.
func (v Value[L]) IsZero() bool {
	return L(v) == bitops.UnsignedMin[L]()
}

// Raw returns the underlying codeword bits.
func (v Value[L]) Raw() L {
	return L(v)
}

// Wrap treats an L-bit word as an already-encoded PUL codeword, with no
// validation. Used by convert and by callers deserializing a codeword off
// the wire.
func Wrap[L bitops.Unsigned](w L) Value[L] {
	return Value[L](w)
}

// MaxMantissa is the maximum-precision mantissa budget for encoding an
// H-bit integer into an L-bit PUL codeword.
func MaxMantissa[H, L bitops.Unsigned]() int {
	return bitops.PulMaxMantissa(bitops.Width[H](), bitops.Width[L]())
}

// Encode packs an H-bit unsigned integer into an L-bit PUL codeword using m
// mantissa bits. m ranges from 0 (exponent only, no mantissa bits) up to
// MaxMantissa[H, L]() to use every bit of precision L can hold.
//
// Encoding is: strip leading zeros to normalize v so its top bit is the
// implicit leading 1, keep m more bits below it as the mantissa, and place
// the biased exponent above. The mantissa keeps the implicit leading 1 at
// bit m, and the addition (not OR) in the final step carries it into the
// exponent field, so the stored exponent is floor(log2(v)).
func Encode[H, L bitops.Unsigned](v H, m int) Value[L] {
	if v == 0 {
		return Value[L](1)
	}
	if v == 1 {
		return Value[L](0)
	}
	h := bitops.Width[H]()
	c := bitops.CLZ(v)
	e := h - 2 - c
	mant := L(v << uint(c) >> uint(h-1-m))
	return Value[L](L(e)<<uint(m) + mant)
}

// Decode unpacks an L-bit PUL codeword (with m mantissa bits) back into an
// H-bit unsigned integer. An exponent implying a value >= 2^H saturates to
// the maximum H-bit value rather than wrapping.
func Decode[H, L bitops.Unsigned](v Value[L], m int) H {
	if v.IsZero() {
		return 0
	}
	raw := L(v)
	h := bitops.Width[H]()
	e := int(raw >> uint(m))
	if e >= h {
		return bitops.UnsignedMax[H]()
	}
	mant := raw & bitops.BitMask[L](m-1)
	norm := H(1)<<uint(h-1) | H(mant)<<uint(h-1-m)
	return norm >> uint(h-1-e)
}
