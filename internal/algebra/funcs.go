package algebra

import "math"

// Sum adds all elements, starting from the additive identity.
func Sum[T Semiring[T]](xs []T) T {
	s := Zero[T]()
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Dot returns Σ a[i]*b[i] over the common prefix of a and b.
func Dot[T Semiring[T]](a, b []T) T {
	n := min(len(a), len(b))
	s := Zero[T]()
	for i := 0; i < n; i++ {
		s = s.Add(a[i].Mul(b[i]))
	}
	return s
}

// MaxAbs returns the largest magnitude in xs, or 0 for an empty slice.
func MaxAbs[T Ring[T]](xs []T) float64 {
	m := 0.0
	for _, x := range xs {
		if a := x.Abs(); a > m {
			m = a
		}
	}
	return m
}

// MinAbs returns the smallest magnitude in xs, or +Inf for an empty slice.
func MinAbs[T Ring[T]](xs []T) float64 {
	m := math.Inf(1)
	for _, x := range xs {
		if a := x.Abs(); a < m {
			m = a
		}
	}
	return m
}

// ConjSlice returns the element-wise conjugate of xs in a new slice.
func ConjSlice[T Field[T]](xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = x.Conj()
	}
	return out
}
