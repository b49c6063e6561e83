// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fraction implements a mixed-number rational value,
// stored exactly as whole + numerator/denominator.
// Whole part and numerator are int64, the denominator is a positive number
// not greater than math.MaxInt64.
//
// Every value is kept normalized:
//   - numerator/denominator is in lowest terms, zero is 0/1;
//   - |numerator| < denominator, the excess is carried into the whole part;
//   - whole part and numerator never have opposite signs.
//
// Because of that, two values representing the same number are always
// equal with the == operator.
package fraction

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mu "github.com/avdva/fraction/internal/mathutil"
)

var (
	zero Fraction
	one  = Fraction{whole: 1}
)

// Fraction is a mixed number: whole + num/den.
// The denominator is stored biased by 1, so that the zero value is 0/1 and
// thus valid and equal to 0.
//
// Fraction has value semantics, it is never modified after creation.
// All operations return new values.
type Fraction struct {
	whole int64
	num   int64
	dm1   int64 // denominator - 1
}

// New returns num/den. It panics with ErrZeroDenominator if den is zero,
// and with ErrDenOverflow if den exceeds math.MaxInt64.
func New(num int64, den uint64) Fraction {
	return NewMixed(0, num, den)
}

// TryNew is like New, but returns an error instead of panicking.
func TryNew(num int64, den uint64) (Fraction, error) {
	return TryNewMixed(0, num, den)
}

// NewMixed returns whole + num/den.
// The caller must never pass a zero denominator: NewMixed panics
// with ErrZeroDenominator in this case.
func NewMixed(whole, num int64, den uint64) Fraction {
	f, err := TryNewMixed(whole, num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// TryNewMixed is like NewMixed, but returns an error instead of panicking.
func TryNewMixed(whole, num int64, den uint64) (Fraction, error) {
	if den == 0 {
		return zero, ErrZeroDenominator
	}
	if den > math.MaxInt64 {
		return zero, ErrDenOverflow
	}
	return normalize(whole, num, int64(den))
}

// normalize reduces num/den to lowest terms and carries its integer part into whole.
// den must be positive.
func normalize(whole, num, den int64) (Fraction, error) {
	// d divides den, so it fits int64.
	d := mu.GCD(mu.Magnitude(num), uint64(den))
	num /= int64(d)
	den /= int64(d)
	if mu.Magnitude(num) >= uint64(den) {
		var ok bool
		if whole, ok = mu.AddInt64(whole, num/den); !ok {
			return zero, ErrOverflow
		}
		num %= den
	}
	// align signs, so that 1 + (-1/2) becomes 0 + 1/2.
	switch {
	case whole > 0 && num < 0:
		whole--
		num += den
	case whole < 0 && num > 0:
		whole++
		num -= den
	}
	return Fraction{whole: whole, num: num, dm1: den - 1}, nil
}

// Whole returns the integer part of f.
func (f Fraction) Whole() int64 {
	return f.whole
}

// Numerator returns the numerator of the fractional part of f.
// It has the same sign as the whole part, if the latter is not zero.
func (f Fraction) Numerator() int64 {
	return f.num
}

// Denominator returns the denominator of the fractional part of f, which is always >= 1.
func (f Fraction) Denominator() uint64 {
	return uint64(f.den())
}

func (f Fraction) den() int64 {
	return f.dm1 + 1
}

// Improper returns f as an improper fraction num/den.
// Returns ErrOverflow if the numerator does not fit int64.
func (f Fraction) Improper() (num int64, den uint64, err error) {
	n, err := f.improper()
	return n, f.Denominator(), err
}

func (f Fraction) improper() (int64, error) {
	n, ok := mu.MulInt64(f.whole, f.den())
	if ok {
		n, ok = mu.AddInt64(n, f.num)
	}
	if !ok {
		return 0, ErrOverflow
	}
	return n, nil
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f == zero
}

// Sign returns -1 if f < 0, 0 if f == 0, 1 if f > 0.
func (f Fraction) Sign() int {
	if f.whole != 0 {
		return mu.Int64Sign(f.whole)
	}
	return mu.Int64Sign(f.num)
}

// Eq returns true, if both values represent the same number.
func (f Fraction) Eq(other Fraction) bool {
	return f == other
}

// Cmp compares two values using their float64 approximations,
// so values, which differ beyond float64 precision, may compare as equal.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (f Fraction) Cmp(other Fraction) int {
	if f == other {
		return 0
	}
	a, b := f.Float64(), other.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less returns a < b. See Cmp for precision notes.
func (f Fraction) Less(other Fraction) bool {
	return f.Cmp(other) < 0
}

// Greater returns a > b. See Cmp for precision notes.
func (f Fraction) Greater(other Fraction) bool {
	return f.Cmp(other) > 0
}

// LessOrEqual returns a <= b. See Cmp for precision notes.
func (f Fraction) LessOrEqual(other Fraction) bool {
	return f.Cmp(other) <= 0
}

// GreaterOrEqual returns a >= b. See Cmp for precision notes.
func (f Fraction) GreaterOrEqual(other Fraction) bool {
	return f.Cmp(other) >= 0
}

// String returns a mixed number representation of f, like "2 1/3", "-2 1/3", "-1/2", or "0".
// Whole numbers are printed without the fractional part.
func (f Fraction) String() string {
	var builder strings.Builder
	f.toStringsBuilder(&builder)
	return builder.String()
}

// GoString returns debug string representation.
func (f Fraction) GoString() string {
	return f.String() + fmt.Sprintf(" {%d, %d, %d}", f.whole, f.num, f.den())
}

func (f Fraction) toStringsBuilder(builder *strings.Builder) {
	if f.whole == 0 && f.num == 0 {
		builder.WriteRune('0')
		return
	}
	if f.whole != 0 {
		builder.WriteString(strconv.FormatInt(f.whole, 10))
		if f.num == 0 {
			return
		}
		builder.WriteRune(' ')
		// the sign is already printed for the whole part.
		builder.WriteString(strconv.FormatUint(mu.Magnitude(f.num), 10))
	} else {
		builder.WriteString(strconv.FormatInt(f.num, 10))
	}
	builder.WriteRune('/')
	builder.WriteString(strconv.FormatInt(f.den(), 10))
}
