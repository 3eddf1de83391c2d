// Package fraction implements rational numbers over int64 numerators and
// denominators.
package fraction

import (
	"fmt"
	"math/big"
)

// Fraction is a numerator over a nonzero denominator.
//
// Values returned by New keep the pair as given; values returned by Reduce and
// by the arithmetic methods are in lowest terms with a positive denominator.
// The zero value is the pair 0/0 and is not valid.
type Fraction struct {
	num int64
	den int64
}

func New(numerator int64, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return Fraction{num: numerator, den: denominator}, nil
}

// MustNew is like New but panics if the denominator is zero.
func MustNew(numerator int64, denominator int64) Fraction {
	f, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

func FromInt64(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

func (f Fraction) Num() int64 {
	return f.num
}

func (f Fraction) Den() int64 {
	return f.den
}

func (f Fraction) IsValid() bool {
	return f.den != 0
}

func (f Fraction) IsZero() bool {
	return f.num == 0 && f.den != 0
}

// Reduce returns f in lowest terms with the sign carried by the numerator.
// An invalid fraction is returned unchanged.
func (f Fraction) Reduce() Fraction {
	if f.den == 0 {
		return f
	}

	g := int64(gcd(absUint64(f.num), absUint64(f.den)))
	r := Fraction{num: f.num / g, den: f.den / g}
	if r.den < 0 {
		r.num, r.den = -r.num, -r.den
	}
	return r
}

func (f Fraction) Evaluate() float64 {
	return float64(f.num) / float64(f.den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// AsBigRat returns f as an exact big.Rat, or nil if f is invalid.
func (f Fraction) AsBigRat() *big.Rat {
	if f.den == 0 {
		return nil
	}
	return new(big.Rat).SetFrac(big.NewInt(f.num), big.NewInt(f.den))
}
