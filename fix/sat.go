package fix

import "github.com/pfcm/intfp/bitops"

// SatAddSigned is a saturating add on any signed word width, clamping to
// SignedMin/SignedMax instead of wrapping on overflow. ewma uses this so a
// pathological floor/damper combination can't wrap the running average
// around the top of its range.
func SatAddSigned[T bitops.Signed](a, b T) T {
	max := bitops.SignedMax[T]()
	min := bitops.SignedMin[T]()
	if a > 0 && b > 0 && a > max-b {
		return max
	}
	if a < 0 && b < 0 && a < min-b {
		return min
	}
	return a + b
}

// SatSubSigned is SatAddSigned(a, -b), with a guard for the one case where
// -b itself would overflow: b == SignedMin[T](), whose negation isn't
// representable in T's two's complement range.
func SatSubSigned[T bitops.Signed](a, b T) T {
	if b == bitops.SignedMin[T]() {
		if a >= 0 {
			return bitops.SignedMax[T]()
		}
		return a + bitops.SignedMax[T]() + 1
	}
	return SatAddSigned(a, -b)
}

// AbsDiffUnsigned returns |a-b| computed without ever going negative, safe
// for any unsigned width.
func AbsDiffUnsigned[T bitops.Unsigned](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
