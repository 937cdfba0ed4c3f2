package sparse

import (
	"cmp"
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/dense"
	"github.com/born-ml/linalg/internal/tensor"
)

// AddVectors returns a + b.
func AddVectors[T algebra.Semiring[T]](a, b tensor.COOVector[T]) (tensor.COOVector[T], error) {
	return mergeVectors("add vectors", a, b, adder[T]())
}

// SubVectors returns a - b.
func SubVectors[T algebra.Ring[T]](a, b tensor.COOVector[T]) (tensor.COOVector[T], error) {
	return mergeVectors("sub vectors", a, b, subtracter[T]())
}

// MulVectors returns the element-wise product of a and b. Only indices stored
// in both operands appear in the result.
func MulVectors[T algebra.Semiring[T]](a, b tensor.COOVector[T]) (tensor.COOVector[T], error) {
	return mergeVectors("mul vectors", a, b, multiplier[T]())
}

// DotVectors returns Σ a[i]*b[i] over the indices stored in both operands.
func DotVectors[T algebra.Semiring[T]](a, b tensor.COOVector[T]) (T, error) {
	sum := algebra.Zero[T]()
	if err := checkVectorPair("dot vectors", a, b); err != nil {
		return sum, err
	}
	merge(len(a.Indices), len(b.Indices), false,
		func(i, j int) int { return cmp.Compare(a.Indices[i], b.Indices[j]) },
		func(i, j int) { sum = sum.Add(a.Values[i].Mul(b.Values[j])) })
	return sum, nil
}

// OuterVectors returns the dense a.Size x b.Size outer product of a and b.
func OuterVectors[T algebra.Semiring[T]](a, b tensor.COOVector[T]) (tensor.Dense[T], error) {
	if err := a.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("outer vectors: %w", err)
	}
	if err := b.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("outer vectors: %w", err)
	}
	out := tensor.ZerosDense[T](tensor.Shape{a.Size, b.Size})
	for p, i := range a.Indices {
		row := out.Data[i*b.Size : (i+1)*b.Size]
		for q, j := range b.Indices {
			row[j] = row[j].Add(a.Values[p].Mul(b.Values[q]))
		}
	}
	return out, nil
}

// VectorNorm returns the Lp norm of v. Absent entries contribute nothing.
func VectorNorm[T algebra.Ring[T]](v tensor.COOVector[T], p float64) (float64, error) {
	return dense.Norm(v.Values, p)
}

func mergeVectors[T any](op string, a, b tensor.COOVector[T], c combiner[T]) (tensor.COOVector[T], error) {
	if err := checkVectorPair(op, a, b); err != nil {
		return tensor.COOVector[T]{}, err
	}
	capacity := min(len(a.Values), len(b.Values))
	if c.union {
		capacity = len(a.Values) + len(b.Values)
	}
	out := tensor.COOVector[T]{
		Size:    a.Size,
		Indices: make([]int, 0, capacity),
		Values:  make([]T, 0, capacity),
	}
	merge(len(a.Indices), len(b.Indices), c.union,
		func(i, j int) int { return cmp.Compare(a.Indices[i], b.Indices[j]) },
		func(i, j int) {
			if i >= 0 {
				out.Indices = append(out.Indices, a.Indices[i])
			} else {
				out.Indices = append(out.Indices, b.Indices[j])
			}
			out.Values = append(out.Values, c.value(a.Values, b.Values, i, j))
		})
	return out, nil
}

func checkVectorPair[T any](op string, a, b tensor.COOVector[T]) error {
	if err := checkCanonical(op, "a", a); err != nil {
		return err
	}
	if err := checkCanonical(op, "b", b); err != nil {
		return err
	}
	if a.Size != b.Size {
		return fmt.Errorf("%s: sizes %d and %d: %w", op, a.Size, b.Size, tensor.ErrShapeMismatch)
	}
	return nil
}
