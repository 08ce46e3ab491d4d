package slog

import "github.com/pfcm/intfp/bitops"

// Quadratic correction narrows the gap between this library's linear
// mantissa approximation log2(v) ~= e + m and the true log2(v) = e +
// log2(1+m), by adding back an estimate of the missing curvature:
// c * m * (1-m). The two tables below hold that correction for m sampled at
// 256 points (the top 8 bits of whatever mantissa field is in play), built
// once at init from the canonical rationals c_enc = 89/256 and c_dec =
// 88/256 using pure integer arithmetic: bit-exact tables, not a
// floating-point evaluation at build time.
const (
	encNumerator = 89
	decNumerator = 88
	tableDenom   = 256
)

// correctionTable builds one of the two 256-entry tables. Each entry is the
// correction value scaled to the same 1/256 units as the 8-bit index, so it
// can be shifted up or down to whatever mantissa width m the caller is
// actually using.
func correctionTable(numerator int) [tableDenom]int32 {
	var t [tableDenom]int32
	for i := 0; i < tableDenom; i++ {
		// c*m*(1-m) with m = i/256, scaled by 256 to keep the result in
		// the same units as the table index: numerator*i*(256-i)/256^2.
		t[i] = int32(numerator * i * (tableDenom - i) / (tableDenom * tableDenom))
	}
	return t
}

var (
	encTable = correctionTable(encNumerator)
	decTable = correctionTable(decNumerator)
)

// topByte extracts the top 8 bits of an m-bit mantissa fraction, padding
// with zeros below if m < 8.
func topByte(frac uint64, m int) int {
	if m >= 8 {
		return int(frac >> uint(m-8))
	}
	return int(frac << uint(8-m))
}

// scaleCorrection rescales a table entry (in 1/256 units) into the units of
// an m-bit mantissa field.
func scaleCorrection(raw int32, m int) int64 {
	if m >= 8 {
		return int64(raw) << uint(m-8)
	}
	return int64(raw) >> uint(8-m)
}

// EncodeCorrected is Encode with the quadratic correction applied: it
// approximates log2(v) as e + m + c_enc*m*(1-m) instead of the bare e + m.
// Pair it with DecodeCorrected. Mixing a corrected encode with an
// uncorrected decode (or vice versa) still round-trips, just with less
// precision than the advertised bound.
func EncodeCorrected[H bitops.Unsigned, L bitops.Signed](v H, f, m int) Value[L] {
	if v == 0 {
		return Zero[L]()
	}
	h := bitops.Width[H]()
	c := bitops.CLZ(v)
	e := h - 2 - c - f
	mant := v << uint(c) >> uint(h-1-m) // implicit leading bit at position m
	frac := uint64(mant) & (uint64(1)<<uint(m) - 1)
	corr := scaleCorrection(encTable[topByte(frac, m)], m)
	return Value[L](L(e)<<uint(m) + L(mant) + L(corr))
}

// DecodeCorrected is Decode with the quadratic correction subtracted before
// reconstructing the linear value. The correction is derived from the
// codeword's own mantissa bits rather than by algebraically undoing
// EncodeCorrected's addition. Encode and decode use different numerators
// (89 vs 88) precisely to compensate for that asymmetry.
func DecodeCorrected[H bitops.Unsigned, L bitops.Signed](v Value[L], m, fOut int) H {
	if v.IsZero() {
		return 0
	}
	raw := int64(L(v))
	negative := raw < 0
	if negative {
		raw = -raw
	}
	frac := uint64(raw) & (uint64(1)<<uint(m) - 1)
	corr := scaleCorrection(decTable[topByte(frac, m)], m)
	adjusted := raw - corr
	if adjusted < 0 {
		adjusted = 0
	}
	e := int(adjusted >> uint(m))
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
	mant := H(uint64(adjusted) & uint64(bitops.BitMask[uint64](m-1)))
	norm := H(1)<<uint(h-1) | mant<<uint(h-1-m)
	return norm >> uint(h-1-scaledE)
}
