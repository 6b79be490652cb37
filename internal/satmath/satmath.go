// Package satmath provides saturating and overflow-checked integer
// arithmetic for point and stat calculations. Values that would overflow
// saturate at the maximum representable value instead of wrapping.
package satmath

import (
	"math"
	"math/bits"
)

// Unsigned constrains stat values to unsigned integers of at least 16 bits.
// uint8 is excluded: an 8-bit stat overflows on the first serious modifier.
type Unsigned interface {
	~uint16 | ~uint32 | ~uint64 | ~uint
}

// Max is the saturation sentinel for 64-bit point arithmetic.
const Max = math.MaxUint64

// Add returns a+b, saturating at Max.
func Add(a, b uint64) uint64 {
	if a > Max-b {
		return Max
	}
	return a + b
}

// Mul returns a*b, saturating at Max.
func Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > Max/b {
		return Max
	}
	return a * b
}

// Pow returns base^exp by squaring, saturating at Max.
// Each multiplication is checked before it happens, so a saturated
// intermediate never wraps.
func Pow(base, exp uint64) uint64 {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			if base != 0 && result > Max/base {
				return Max
			}
			result *= base
		}
		exp >>= 1
		if exp > 0 {
			if base > 1 && base > Max/base {
				return Max
			}
			base *= base
		}
	}
	return result
}

// Sqrt returns the integer square root of n (largest r with r*r <= n),
// computed by binary search.
func Sqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	var ans uint64
	left, right := uint64(1), n
	for left <= right {
		mid := left + (right-left)/2
		if mid <= n/mid {
			ans = mid
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return ans
}

// Log2 returns floor(log2(n)). Log2(0) returns 0.
func Log2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return uint64(bits.Len64(n) - 1)
}

// AddOverflows reports whether a+b overflows T.
func AddOverflows[T Unsigned](a, b T) bool {
	return a+b < a
}

// MulOverflows reports whether a*b overflows T.
func MulOverflows[T Unsigned](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}
	p := a * b
	return p/b != a
}
