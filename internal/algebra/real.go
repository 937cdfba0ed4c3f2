package algebra

import (
	"fmt"
	"math"
)

// Real is a float64 field element.
type Real float64

func (a Real) Add(b Real) Real { return a + b }
func (a Real) Sub(b Real) Real { return a - b }
func (a Real) Mul(b Real) Real { return a * b }
func (a Real) Neg() Real       { return -a }
func (Real) Zero() Real        { return 0 }
func (Real) One() Real         { return 1 }
func (a Real) IsZero() bool    { return a == 0 }
func (a Real) IsOne() bool     { return a == 1 }
func (a Real) Abs() float64    { return math.Abs(float64(a)) }
func (a Real) Conj() Real      { return a }

// Sqrt returns the square root; negative values yield NaN.
func (a Real) Sqrt() Real { return Real(math.Sqrt(float64(a))) }

// Div returns a / b.
func (a Real) Div(b Real) (Real, error) {
	if b == 0 {
		return 0, fmt.Errorf("real %g / 0: %w", float64(a), ErrDivisionByZero)
	}
	return a / b, nil
}

// Inv returns 1 / a.
func (a Real) Inv() (Real, error) {
	return Real(1).Div(a)
}

// Round rounds to the given number of decimal places, half away from zero.
func (a Real) Round(decimals int) Real {
	return Real(roundHalfUp(float64(a), decimals))
}
