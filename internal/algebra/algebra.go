// Package algebra defines the algebraic contracts the kernels are written against
// (Semiring ⊂ Ring ⊂ Field) and the element types shipped with the library.
//
// Kernels are instantiated per element type at compile time:
//
//	func Sum[T algebra.Semiring[T]](xs []T) T
//
// works for Real, Real32, Complex, Rational and Bool alike. Element values are
// immutable; every operation returns a new value.
package algebra

// Semiring is the narrowest contract: associative, commutative addition with
// identity Zero, associative multiplication with identity One, and
// multiplication distributing over addition.
//
// Element types must be comparable so kernels can test equality with ==.
type Semiring[T any] interface {
	comparable
	Add(b T) T
	Mul(b T) T
	Zero() T
	One() T
	IsZero() bool
	IsOne() bool
}

// Ring adds an additive inverse and a real-valued magnitude used by ordering
// operations (max/min magnitude, norms, tolerance checks).
type Ring[T any] interface {
	Semiring[T]
	Sub(b T) T
	Neg() T
	Abs() float64
}

// Field adds division. Div and Inv fail with ErrDivisionByZero when the
// divisor IsZero, for every field type.
type Field[T any] interface {
	Ring[T]
	Div(b T) (T, error)
	Inv() (T, error)
	Conj() T
	Sqrt() T
}

// Roundable is a Field whose values can be rounded to a number of decimal
// places, half away from zero.
type Roundable[T any] interface {
	Field[T]
	Round(decimals int) T
}

// Zero returns the additive identity of T.
func Zero[T Semiring[T]]() T {
	var z T
	return z.Zero()
}

// One returns the multiplicative identity of T.
func One[T Semiring[T]]() T {
	var z T
	return z.One()
}
