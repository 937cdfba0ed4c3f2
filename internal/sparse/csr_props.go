package sparse

import (
	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// IsSymmetric reports whether m is square and m[i][j] == m[j][i] for every
// stored entry. An entry stored on one side only must be zero.
func IsSymmetric[T algebra.Semiring[T]](m tensor.CSRMatrix[T]) bool {
	return mirrored(m, func(v T) T { return v })
}

// IsHermitian reports whether m equals its conjugate transpose.
func IsHermitian[T algebra.Field[T]](m tensor.CSRMatrix[T]) bool {
	return mirrored(m, func(v T) T { return v.Conj() })
}

// mirrored reports whether m[j][i] == f(m[i][j]) for all i, j.
func mirrored[T algebra.Semiring[T]](m tensor.CSRMatrix[T], f func(T) T) bool {
	if m.Validate() != nil || m.Rows != m.Cols {
		return false
	}
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		for k := start; k < end; k++ {
			j, v := m.ColIndices[k], m.Values[k]
			if j < i {
				// Checked from the upper side unless the mirror is absent.
				if _, ok := m.Find(j, i); !ok && !v.IsZero() {
					return false
				}
				continue
			}
			p, ok := m.Find(j, i)
			if !ok {
				if !v.IsZero() {
					return false
				}
				continue
			}
			if m.Values[p] != f(v) {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether m is square and stores exactly its diagonal,
// every entry being one.
func IsIdentity[T algebra.Semiring[T]](m tensor.CSRMatrix[T]) bool {
	if m.Validate() != nil || m.Rows != m.Cols || m.NNZ() != m.Cols {
		return false
	}
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		if end-start != 1 || m.ColIndices[start] != i || !m.Values[start].IsOne() {
			return false
		}
	}
	return true
}

// IsUpperTriangular reports whether every non-zero entry of m lies on or
// above the diagonal.
func IsUpperTriangular[T algebra.Semiring[T]](m tensor.CSRMatrix[T]) bool {
	return allEntries(m, func(i, j int, v T) bool { return j >= i || v.IsZero() })
}

// IsLowerTriangular reports whether every non-zero entry of m lies on or
// below the diagonal.
func IsLowerTriangular[T algebra.Semiring[T]](m tensor.CSRMatrix[T]) bool {
	return allEntries(m, func(i, j int, v T) bool { return j <= i || v.IsZero() })
}

func allEntries[T any](m tensor.CSRMatrix[T], ok func(i, j int, v T) bool) bool {
	if m.Validate() != nil {
		return false
	}
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		for k := start; k < end; k++ {
			if !ok(i, m.ColIndices[k], m.Values[k]) {
				return false
			}
		}
	}
	return true
}
