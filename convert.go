// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fraction

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/fraction/internal/mathutil"
)

const (
	// MaxApproxDenominator is the largest denominator FromFloat64 tries.
	MaxApproxDenominator = 10000
	// ApproxTolerance is the maximum absolute error FromFloat64 accepts
	// for the fractional part.
	ApproxTolerance = 1e-9

	// decimals with more fractional digits are rounded to fit int64.
	maxDecimalPlaces = 18
)

// Float64 returns a float64 approximation of f.
// It is always explicit, as the conversion may lose precision.
func (f Fraction) Float64() float64 {
	d := float64(f.den())
	return (float64(f.whole)*d + float64(f.num)) / d
}

// FromInt64 returns v/1.
func FromInt64(v int64) Fraction {
	return New(v, 1)
}

// FromFloat64 returns a fraction approximating v.
// The whole part is v truncated towards zero, and for the rest the denominator
// in [2, MaxApproxDenominator] with the smallest error below ApproxTolerance is chosen.
// If there is no such denominator, only the whole part is returned.
// Returns an error for infinities, not-a-numbers, and values outside int64 range.
func FromFloat64(v float64) (Fraction, error) {
	return Approximate(v, MaxApproxDenominator, ApproxTolerance)
}

// MustFromFloat64 calls FromFloat64 and panics in case of an error.
func MustFromFloat64(v float64) Fraction {
	f, err := FromFloat64(v)
	if err != nil {
		panic(err)
	}
	return f
}

// Approximate is like FromFloat64, but with custom limits.
// maxDen must not exceed math.MaxInt64.
func Approximate(v float64, maxDen uint64, tolerance float64) (Fraction, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) || !fitsInt64(v) {
		return zero, fmt.Errorf("%w: %v", ErrBadFloat, v)
	}
	if maxDen > math.MaxInt64 {
		return zero, ErrDenOverflow
	}
	whole := int64(v)
	num, den := mu.FloatFraction(v-float64(whole), int64(maxDen), tolerance)
	return normalize(whole, num, den)
}

// Decimal returns f as a decimal rounded to the given number of places.
func (f Fraction) Decimal(places int32) decimal.Decimal {
	frac := decimal.NewFromInt(f.num).DivRound(decimal.NewFromInt(f.den()), places)
	return decimal.NewFromInt(f.whole).Add(frac)
}

// FromDecimal returns d as a fraction.
// Fractional digits after the 18th are rounded.
// Returns ErrOverflow if the integer part of d does not fit int64.
func FromDecimal(d decimal.Decimal) (Fraction, error) {
	bi := d.BigInt()
	if !bi.IsInt64() {
		return zero, fmt.Errorf("decimal %s: %w", d, ErrOverflow)
	}
	whole := bi.Int64()
	frac := d.Sub(decimal.NewFromInt(whole))
	if frac.Exponent() < -maxDecimalPlaces {
		frac = frac.Round(maxDecimalPlaces)
	}
	if frac.IsZero() || frac.Exponent() >= 0 {
		return normalize(whole, 0, 1)
	}
	// |frac| <= 1 and it has at most 18 digits, so its coefficient fits int64.
	return normalize(whole, frac.Coefficient().Int64(), int64(mu.Pow10(int(-frac.Exponent()))))
}
