package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}
)

// Pow10 returns 10^pow, or 0 if the result does not fit uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// GCD returns the greatest common divisor of a and b.
// GCD(a, 0) == a, so GCD(0, d) == d.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// AbsInt64 returns |val|. For math.MinInt64 the result is math.MinInt64,
// which converts to the correct magnitude as uint64.
func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// Magnitude returns |val| as uint64, valid for any int64 including math.MinInt64.
func Magnitude(val int64) uint64 {
	return uint64(AbsInt64(val))
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// MulInt64 returns a*b and false, if the product overflows int64.
func MulInt64(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(Magnitude(a), Magnitude(b))
	if hi > 0 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// AddInt64 returns a+b and false, if the sum overflows int64.
func AddInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

// SubInt64 returns a-b and false, if the difference overflows int64.
func SubInt64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}
	return c, true
}

// FloatFraction searches for such num/den, that |num/den - f| < epsilon,
// trying every den in [2, maxDen]. Of all acceptable candidates, the one with
// the smallest error and then the smallest denominator wins.
// f is expected to be a fractional part, that is |f| < 1.
// If nothing is found, (0, 1) is returned.
func FloatFraction(f float64, maxDen int64, epsilon float64) (num, den int64) {
	num, den = 0, 1
	best := math.Abs(f)
	for i := int64(2); i <= maxDen; i++ {
		n := math.Round(f * float64(i))
		diff := math.Abs(n/float64(i) - f)
		if diff < best && diff < epsilon {
			best = diff
			num, den = int64(n), i
		}
	}
	return num, den
}
