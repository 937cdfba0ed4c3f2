package algebra

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Real32 is a float32 field element.
type Real32 float32

func (a Real32) Add(b Real32) Real32 { return a + b }
func (a Real32) Sub(b Real32) Real32 { return a - b }
func (a Real32) Mul(b Real32) Real32 { return a * b }
func (a Real32) Neg() Real32         { return -a }
func (Real32) Zero() Real32          { return 0 }
func (Real32) One() Real32           { return 1 }
func (a Real32) IsZero() bool        { return a == 0 }
func (a Real32) IsOne() bool         { return a == 1 }
func (a Real32) Abs() float64        { return float64(math32.Abs(float32(a))) }
func (a Real32) Conj() Real32        { return a }
func (a Real32) Sqrt() Real32        { return Real32(math32.Sqrt(float32(a))) }

// Div returns a / b.
func (a Real32) Div(b Real32) (Real32, error) {
	if b == 0 {
		return 0, fmt.Errorf("real32 %g / 0: %w", float32(a), ErrDivisionByZero)
	}
	return a / b, nil
}

// Inv returns 1 / a.
func (a Real32) Inv() (Real32, error) {
	return Real32(1).Div(a)
}

// Round rounds to the given number of decimal places, half away from zero.
func (a Real32) Round(decimals int) Real32 {
	return Real32(roundHalfUp(float32(a), decimals))
}
