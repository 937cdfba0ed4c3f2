package algebra

import (
	"fmt"
	"math/cmplx"
)

// Complex is a complex128 field element. Abs is the modulus.
type Complex complex128

// Cmplx builds a Complex from its real and imaginary parts.
func Cmplx(re, im float64) Complex {
	return Complex(complex(re, im))
}

func (a Complex) Add(b Complex) Complex { return a + b }
func (a Complex) Sub(b Complex) Complex { return a - b }
func (a Complex) Mul(b Complex) Complex { return a * b }
func (a Complex) Neg() Complex          { return -a }
func (Complex) Zero() Complex           { return 0 }
func (Complex) One() Complex            { return 1 }
func (a Complex) IsZero() bool          { return a == 0 }
func (a Complex) IsOne() bool           { return a == 1 }
func (a Complex) Abs() float64          { return cmplx.Abs(complex128(a)) }
func (a Complex) Conj() Complex         { return Complex(cmplx.Conj(complex128(a))) }
func (a Complex) Sqrt() Complex         { return Complex(cmplx.Sqrt(complex128(a))) }
func (a Complex) Re() float64           { return real(a) }
func (a Complex) Im() float64           { return imag(a) }

// Div returns a / b.
func (a Complex) Div(b Complex) (Complex, error) {
	if b == 0 {
		return 0, fmt.Errorf("complex %v / 0: %w", complex128(a), ErrDivisionByZero)
	}
	return a / b, nil
}

// Inv returns 1 / a.
func (a Complex) Inv() (Complex, error) {
	return Complex(1).Div(a)
}

// Round rounds both parts to the given number of decimal places.
func (a Complex) Round(decimals int) Complex {
	return Cmplx(roundHalfUp(real(a), decimals), roundHalfUp(imag(a), decimals))
}
