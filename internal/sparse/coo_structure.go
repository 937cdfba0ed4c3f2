package sparse

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// SortCOO returns a copy of m with entries in (row, col) order. Entries with
// equal coordinates keep their relative order.
func SortCOO[T any](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	order := sortedOrder(len(m.Values), func(p, q int) int {
		if r := cmp.Compare(m.RowIndices[p], m.RowIndices[q]); r != 0 {
			return r
		}
		return cmp.Compare(m.ColIndices[p], m.ColIndices[q])
	})
	return tensor.COOMatrix[T]{
		Rows:       m.Rows,
		Cols:       m.Cols,
		RowIndices: gather(m.RowIndices, order),
		ColIndices: gather(m.ColIndices, order),
		Values:     gather(m.Values, order),
	}
}

// SortCOOVector returns a copy of v with ascending indices.
func SortCOOVector[T any](v tensor.COOVector[T]) tensor.COOVector[T] {
	order := sortedOrder(len(v.Values), func(p, q int) int {
		return cmp.Compare(v.Indices[p], v.Indices[q])
	})
	return tensor.COOVector[T]{
		Size:    v.Size,
		Indices: gather(v.Indices, order),
		Values:  gather(v.Values, order),
	}
}

// SortCOOTensor returns a copy of t with coordinates in lexicographic order.
func SortCOOTensor[T any](t tensor.COOTensor[T]) tensor.COOTensor[T] {
	order := sortedOrder(len(t.Values), func(p, q int) int {
		return tensor.CompareCoords(t.Indices[p], t.Indices[q])
	})
	indices := make([][]int, len(order))
	for k, p := range order {
		indices[k] = slices.Clone(t.Indices[p])
	}
	return tensor.COOTensor[T]{
		Shape:   t.Shape.Clone(),
		Indices: indices,
		Values:  gather(t.Values, order),
	}
}

// Coalesce returns m sorted with duplicate coordinates summed.
func Coalesce[T algebra.Semiring[T]](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	s := SortCOO(m)
	out := tensor.COOMatrix[T]{Rows: m.Rows, Cols: m.Cols, RowIndices: []int{}, ColIndices: []int{}, Values: []T{}}
	for k := range s.Values {
		last := len(out.Values) - 1
		if last >= 0 && out.RowIndices[last] == s.RowIndices[k] && out.ColIndices[last] == s.ColIndices[k] {
			out.Values[last] = out.Values[last].Add(s.Values[k])
			continue
		}
		out.RowIndices = append(out.RowIndices, s.RowIndices[k])
		out.ColIndices = append(out.ColIndices, s.ColIndices[k])
		out.Values = append(out.Values, s.Values[k])
	}
	return out
}

// CoalesceVector returns v sorted with duplicate indices summed.
func CoalesceVector[T algebra.Semiring[T]](v tensor.COOVector[T]) tensor.COOVector[T] {
	s := SortCOOVector(v)
	out := tensor.COOVector[T]{Size: v.Size, Indices: []int{}, Values: []T{}}
	for k := range s.Values {
		last := len(out.Values) - 1
		if last >= 0 && out.Indices[last] == s.Indices[k] {
			out.Values[last] = out.Values[last].Add(s.Values[k])
			continue
		}
		out.Indices = append(out.Indices, s.Indices[k])
		out.Values = append(out.Values, s.Values[k])
	}
	return out
}

// CoalesceTensor returns t sorted with duplicate coordinates summed.
func CoalesceTensor[T algebra.Semiring[T]](t tensor.COOTensor[T]) tensor.COOTensor[T] {
	s := SortCOOTensor(t)
	out := tensor.COOTensor[T]{Shape: s.Shape, Indices: [][]int{}, Values: []T{}}
	for k := range s.Values {
		last := len(out.Values) - 1
		if last >= 0 && tensor.CompareCoords(out.Indices[last], s.Indices[k]) == 0 {
			out.Values[last] = out.Values[last].Add(s.Values[k])
			continue
		}
		out.Indices = append(out.Indices, s.Indices[k])
		out.Values = append(out.Values, s.Values[k])
	}
	return out
}

// DropZeros returns m without explicitly stored zeros.
func DropZeros[T algebra.Semiring[T]](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	out := tensor.COOMatrix[T]{Rows: m.Rows, Cols: m.Cols, RowIndices: []int{}, ColIndices: []int{}, Values: []T{}}
	for k, v := range m.Values {
		if v.IsZero() {
			continue
		}
		out.RowIndices = append(out.RowIndices, m.RowIndices[k])
		out.ColIndices = append(out.ColIndices, m.ColIndices[k])
		out.Values = append(out.Values, v)
	}
	return out
}

// DropZerosVector returns v without explicitly stored zeros.
func DropZerosVector[T algebra.Semiring[T]](v tensor.COOVector[T]) tensor.COOVector[T] {
	out := tensor.COOVector[T]{Size: v.Size, Indices: []int{}, Values: []T{}}
	for k, x := range v.Values {
		if !x.IsZero() {
			out.Indices = append(out.Indices, v.Indices[k])
			out.Values = append(out.Values, x)
		}
	}
	return out
}

// DropZerosTensor returns t without explicitly stored zeros.
func DropZerosTensor[T algebra.Semiring[T]](t tensor.COOTensor[T]) tensor.COOTensor[T] {
	out := tensor.COOTensor[T]{Shape: t.Shape.Clone(), Indices: [][]int{}, Values: []T{}}
	for k, x := range t.Values {
		if !x.IsZero() {
			out.Indices = append(out.Indices, slices.Clone(t.Indices[k]))
			out.Values = append(out.Values, x)
		}
	}
	return out
}

// COOToDense expands m into a dense rows x cols array. Duplicate coordinates
// are summed.
func COOToDense[T algebra.Semiring[T]](m tensor.COOMatrix[T]) (tensor.Dense[T], error) {
	if err := m.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("coo to dense: %w", err)
	}
	out := tensor.ZerosDense[T](m.Shape())
	for k, v := range m.Values {
		off := m.RowIndices[k]*m.Cols + m.ColIndices[k]
		out.Data[off] = out.Data[off].Add(v)
	}
	return out, nil
}

// COOVectorToDense expands v into a dense rank-1 array.
func COOVectorToDense[T algebra.Semiring[T]](v tensor.COOVector[T]) (tensor.Dense[T], error) {
	if err := v.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("coo to dense: %w", err)
	}
	out := tensor.ZerosDense[T](v.Shape())
	for k, i := range v.Indices {
		out.Data[i] = out.Data[i].Add(v.Values[k])
	}
	return out, nil
}

// COOTensorToDense expands t into a dense array of the same shape.
func COOTensorToDense[T algebra.Semiring[T]](t tensor.COOTensor[T]) (tensor.Dense[T], error) {
	if err := t.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("coo to dense: %w", err)
	}
	out := tensor.ZerosDense[T](t.Shape)
	for k, off := range t.Offsets() {
		out.Data[off] = out.Data[off].Add(t.Values[k])
	}
	return out, nil
}

// DenseToCOO returns the canonical COO form of a rank-2 array, omitting zeros.
func DenseToCOO[T algebra.Semiring[T]](d tensor.Dense[T]) (tensor.COOMatrix[T], error) {
	if err := checkDenseRank("dense to coo", d, 2); err != nil {
		return tensor.COOMatrix[T]{}, err
	}
	rows, cols := d.Shape[0], d.Shape[1]
	out := tensor.COOMatrix[T]{Rows: rows, Cols: cols, RowIndices: []int{}, ColIndices: []int{}, Values: []T{}}
	for off, v := range d.Data {
		if v.IsZero() {
			continue
		}
		out.RowIndices = append(out.RowIndices, off/cols)
		out.ColIndices = append(out.ColIndices, off%cols)
		out.Values = append(out.Values, v)
	}
	return out, nil
}

// DenseToCOOVector returns the canonical COO form of a rank-1 array.
func DenseToCOOVector[T algebra.Semiring[T]](d tensor.Dense[T]) (tensor.COOVector[T], error) {
	if err := checkDenseRank("dense to coo", d, 1); err != nil {
		return tensor.COOVector[T]{}, err
	}
	out := tensor.COOVector[T]{Size: d.Shape[0], Indices: []int{}, Values: []T{}}
	for i, v := range d.Data {
		if !v.IsZero() {
			out.Indices = append(out.Indices, i)
			out.Values = append(out.Values, v)
		}
	}
	return out, nil
}

// DenseToCOOTensor returns the canonical COO form of an array of any rank.
func DenseToCOOTensor[T algebra.Semiring[T]](d tensor.Dense[T]) (tensor.COOTensor[T], error) {
	if err := d.Validate(); err != nil {
		return tensor.COOTensor[T]{}, fmt.Errorf("dense to coo: %w", err)
	}
	strides := d.Shape.ComputeStrides()
	out := tensor.COOTensor[T]{Shape: d.Shape.Clone(), Indices: [][]int{}, Values: []T{}}
	for off, v := range d.Data {
		if v.IsZero() {
			continue
		}
		idx := make([]int, len(d.Shape))
		tensor.UnravelInto(idx, off, strides)
		out.Indices = append(out.Indices, idx)
		out.Values = append(out.Values, v)
	}
	return out, nil
}

func checkDenseRank[T any](op string, d tensor.Dense[T], rank int) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if d.Shape.Rank() != rank {
		return fmt.Errorf("%s: expected rank %d, got %d: %w", op, rank, d.Shape.Rank(), tensor.ErrInvalidRank)
	}
	return nil
}

// sortedOrder returns the stable sorting permutation of n entries.
func sortedOrder(n int, compare func(p, q int) int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, compare)
	return order
}

func gather[S any](xs []S, order []int) []S {
	out := make([]S, len(order))
	for k, p := range order {
		out[k] = xs[p]
	}
	return out
}
