// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/linalg/internal/algebra"
)

// Semiring is the contract for element types with addition and
// multiplication.
type Semiring[T any] = algebra.Semiring[T]

// Ring adds subtraction, negation and a magnitude to Semiring.
type Ring[T any] = algebra.Ring[T]

// Field adds division, inverse, conjugate and square root to Ring.
type Field[T any] = algebra.Field[T]

// Roundable is a Field that can round to a number of decimal places.
type Roundable[T any] = algebra.Roundable[T]

// Element types.
type (
	Real     = algebra.Real
	Real32   = algebra.Real32
	Complex  = algebra.Complex
	Rational = algebra.Rational
	Bool     = algebra.Bool
)

// Cmplx returns the complex element re + im·i.
func Cmplx(re, im float64) Complex { return algebra.Cmplx(re, im) }

// NewRational returns num/den in lowest terms.
// It fails with ErrDivisionByZero when den is zero.
func NewRational(num, den int64) (Rational, error) { return algebra.NewRational(num, den) }

// Frac is like NewRational but panics on a zero denominator.
func Frac(num, den int64) Rational { return algebra.Frac(num, den) }

// Int returns the rational n/1.
func Int(n int64) Rational { return algebra.Int(n) }
