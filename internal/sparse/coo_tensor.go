package sparse

import (
	"slices"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// AddTensors returns a + b.
func AddTensors[T algebra.Semiring[T]](a, b tensor.COOTensor[T]) (tensor.COOTensor[T], error) {
	return mergeTensors("add tensors", a, b, adder[T]())
}

// SubTensors returns a - b.
func SubTensors[T algebra.Ring[T]](a, b tensor.COOTensor[T]) (tensor.COOTensor[T], error) {
	return mergeTensors("sub tensors", a, b, subtracter[T]())
}

// MulTensors returns the element-wise product of a and b.
func MulTensors[T algebra.Semiring[T]](a, b tensor.COOTensor[T]) (tensor.COOTensor[T], error) {
	return mergeTensors("mul tensors", a, b, multiplier[T]())
}

func mergeTensors[T any](op string, a, b tensor.COOTensor[T], c combiner[T]) (tensor.COOTensor[T], error) {
	if err := checkCanonical(op, "a", a); err != nil {
		return tensor.COOTensor[T]{}, err
	}
	if err := checkCanonical(op, "b", b); err != nil {
		return tensor.COOTensor[T]{}, err
	}
	if err := tensor.CheckSameShape(op, a.Shape, b.Shape); err != nil {
		return tensor.COOTensor[T]{}, err
	}
	out := tensor.COOTensor[T]{
		Shape:   a.Shape.Clone(),
		Indices: [][]int{},
		Values:  []T{},
	}
	merge(len(a.Values), len(b.Values), c.union,
		func(i, j int) int { return tensor.CompareCoords(a.Indices[i], b.Indices[j]) },
		func(i, j int) {
			if i >= 0 {
				out.Indices = append(out.Indices, slices.Clone(a.Indices[i]))
			} else {
				out.Indices = append(out.Indices, slices.Clone(b.Indices[j]))
			}
			out.Values = append(out.Values, c.value(a.Values, b.Values, i, j))
		})
	return out, nil
}
