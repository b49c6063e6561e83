// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fraction

import (
	"math"

	mu "github.com/avdva/fraction/internal/mathutil"
)

// all the operations below work with improper fractions,
// and the result goes through normalize again.

// TryAdd returns a + b.
// Returns ErrOverflow if any intermediate value does not fit int64.
func (f Fraction) TryAdd(other Fraction) (Fraction, error) {
	return addSub(f, other, false)
}

// Add returns a + b. It panics, if the result would overflow.
func (f Fraction) Add(other Fraction) Fraction {
	return must(f.TryAdd(other))
}

// TrySub returns a - b.
// Returns ErrOverflow if any intermediate value does not fit int64.
func (f Fraction) TrySub(other Fraction) (Fraction, error) {
	return addSub(f, other, true)
}

// Sub returns a - b. It panics, if the result would overflow.
func (f Fraction) Sub(other Fraction) Fraction {
	return must(f.TrySub(other))
}

// TryMul returns a * b.
// Returns ErrOverflow if any intermediate value does not fit int64.
func (f Fraction) TryMul(other Fraction) (Fraction, error) {
	an, err := f.improper()
	if err != nil {
		return zero, err
	}
	bn, err := other.improper()
	if err != nil {
		return zero, err
	}
	return mulImproper(an, f.den(), bn, other.den())
}

// Mul returns a * b. It panics, if the result would overflow.
func (f Fraction) Mul(other Fraction) Fraction {
	return must(f.TryMul(other))
}

// TryDiv returns a / b.
// Returns ErrDivByZero if b == 0, and ErrOverflow if any intermediate value does not fit int64.
func (f Fraction) TryDiv(other Fraction) (Fraction, error) {
	if other.IsZero() {
		return zero, ErrDivByZero
	}
	an, err := f.improper()
	if err != nil {
		return zero, err
	}
	bn, err := other.improper()
	if err != nil {
		return zero, err
	}
	bn, bd, err := inverse(bn, other.den())
	if err != nil {
		return zero, err
	}
	return mulImproper(an, f.den(), bn, bd)
}

// Div returns a / b. If b == 0, Div panics with ErrDivByZero.
func (f Fraction) Div(other Fraction) Fraction {
	return must(f.TryDiv(other))
}

// TryPow returns f raised to the power of p.
// The result is calculated with math.Pow for the numerator and the denominator
// separately, so it is exact only while both of them fit float64's mantissa.
// For negative p, the inverse of f is raised to -p, so it returns ErrDivByZero if f == 0.
// Returns ErrOverflow if the result does not fit int64.
func (f Fraction) TryPow(p int) (Fraction, error) {
	if p == 0 {
		return one, nil
	}
	n, err := f.improper()
	if err != nil {
		return zero, err
	}
	d := f.den()
	if p < 0 {
		if n == 0 {
			return zero, ErrDivByZero
		}
		if n, d, err = inverse(n, d); err != nil {
			return zero, err
		}
		p = -p
	}
	pn := math.Pow(float64(n), float64(p))
	pd := math.Pow(float64(d), float64(p))
	if !fitsInt64(pn) || !fitsInt64(pd) || pd < 1 {
		return zero, ErrOverflow
	}
	return normalize(0, int64(pn), int64(pd))
}

// Pow returns f^p. It panics, if TryPow returns an error.
func (f Fraction) Pow(p int) Fraction {
	return must(f.TryPow(p))
}

// Neg returns -f. It panics with ErrOverflow if the whole part is math.MinInt64.
func (f Fraction) Neg() Fraction {
	if f.whole == math.MinInt64 {
		panic(ErrOverflow)
	}
	return Fraction{whole: -f.whole, num: -f.num, dm1: f.dm1}
}

// Abs returns |f|. See Neg for overflow notes.
func (f Fraction) Abs() Fraction {
	if f.Sign() < 0 {
		return f.Neg()
	}
	return f
}

func addSub(a, b Fraction, sub bool) (Fraction, error) {
	an, err := a.improper()
	if err != nil {
		return zero, err
	}
	bn, err := b.improper()
	if err != nil {
		return zero, err
	}
	ad, bd := a.den(), b.den()
	// scale both to lcm(ad, bd) instead of ad*bd to postpone overflows.
	g := int64(mu.GCD(uint64(ad), uint64(bd)))
	x, ok1 := mu.MulInt64(an, bd/g)
	y, ok2 := mu.MulInt64(bn, ad/g)
	d, ok3 := mu.MulInt64(ad, bd/g)
	if !ok1 || !ok2 || !ok3 {
		return zero, ErrOverflow
	}
	var n int64
	var ok bool
	if sub {
		n, ok = mu.SubInt64(x, y)
	} else {
		n, ok = mu.AddInt64(x, y)
	}
	if !ok {
		return zero, ErrOverflow
	}
	return normalize(0, n, d)
}

// mulImproper returns (an/ad) * (bn/bd), where ad and bd are positive.
func mulImproper(an, ad, bn, bd int64) (Fraction, error) {
	// the operands are in lowest terms, but their product may be not,
	// so divide out the cross gcds first.
	if g := int64(mu.GCD(mu.Magnitude(an), uint64(bd))); g > 1 {
		an, bd = an/g, bd/g
	}
	if g := int64(mu.GCD(mu.Magnitude(bn), uint64(ad))); g > 1 {
		bn, ad = bn/g, ad/g
	}
	n, ok1 := mu.MulInt64(an, bn)
	d, ok2 := mu.MulInt64(ad, bd)
	if !ok1 || !ok2 {
		return zero, ErrOverflow
	}
	return normalize(0, n, d)
}

// inverse returns d/n for a non-zero n, keeping the denominator positive.
func inverse(n, d int64) (int64, int64, error) {
	if n == math.MinInt64 {
		return 0, 0, ErrOverflow
	}
	if n < 0 {
		return -d, -n, nil
	}
	return d, n, nil
}

func fitsInt64(f float64) bool {
	return f >= math.MinInt64 && f < math.MaxInt64
}

func must(f Fraction, err error) Fraction {
	if err != nil {
		panic(err)
	}
	return f
}
