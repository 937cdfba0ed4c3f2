package dense

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// Equal reports whether a and b have the same shape and identical elements.
func Equal[T algebra.Semiring[T]](a, b tensor.Dense[T]) bool {
	if !a.Shape.Equal(b.Shape) || len(a.Data) != len(b.Data) {
		return false
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements is within tol, either absolutely or relative to the larger
// magnitude. NaN is never close to anything.
func AllClose[T algebra.Ring[T]](a, b tensor.Dense[T], tol float64) bool {
	if !a.Shape.Equal(b.Shape) || len(a.Data) != len(b.Data) {
		return false
	}
	switch x := any(a.Data).(type) {
	case []algebra.Real:
		y := any(b.Data).([]algebra.Real)
		for i := range x {
			if !scalar.EqualWithinAbsOrRel(float64(x[i]), float64(y[i]), tol, tol) {
				return false
			}
		}
		return true
	case []algebra.Real32:
		y := any(b.Data).([]algebra.Real32)
		for i := range x {
			if !scalar.EqualWithinAbsOrRel(float64(x[i]), float64(y[i]), tol, tol) {
				return false
			}
		}
		return true
	}
	for i := range a.Data {
		if !Close(a.Data[i], b.Data[i], tol) {
			return false
		}
	}
	return true
}

// Close reports whether |x - y| <= tol or |x - y| <= tol * max(|x|, |y|).
func Close[T algebra.Ring[T]](x, y T, tol float64) bool {
	if x == y {
		return true
	}
	diff := x.Sub(y).Abs()
	if math.IsNaN(diff) {
		return false
	}
	return diff <= tol || diff <= tol*math.Max(x.Abs(), y.Abs())
}
