package sparse

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// CSRFromCOO converts m to CSR form. Entries are sorted and duplicate
// coordinates summed on the way.
func CSRFromCOO[T algebra.Semiring[T]](m tensor.COOMatrix[T]) (tensor.CSRMatrix[T], error) {
	if err := m.Validate(); err != nil {
		return tensor.CSRMatrix[T]{}, fmt.Errorf("csr from coo: %w", err)
	}
	if !m.IsCanonical() {
		m = Coalesce(m)
	}
	out := tensor.CSRMatrix[T]{
		Rows:        m.Rows,
		Cols:        m.Cols,
		RowPointers: make([]int, m.Rows+1),
		ColIndices:  append([]int{}, m.ColIndices...),
		Values:      append([]T{}, m.Values...),
	}
	for _, r := range m.RowIndices {
		out.RowPointers[r+1]++
	}
	for i := 0; i < m.Rows; i++ {
		out.RowPointers[i+1] += out.RowPointers[i]
	}
	return out, nil
}

// CSRToCOO converts m to canonical COO form.
func CSRToCOO[T any](m tensor.CSRMatrix[T]) (tensor.COOMatrix[T], error) {
	if err := m.Validate(); err != nil {
		return tensor.COOMatrix[T]{}, fmt.Errorf("csr to coo: %w", err)
	}
	out := tensor.COOMatrix[T]{
		Rows:       m.Rows,
		Cols:       m.Cols,
		RowIndices: make([]int, 0, m.NNZ()),
		ColIndices: append([]int{}, m.ColIndices...),
		Values:     append([]T{}, m.Values...),
	}
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		for k := start; k < end; k++ {
			out.RowIndices = append(out.RowIndices, i)
		}
	}
	return out, nil
}

// CSRToDense expands m into a dense rows x cols array.
func CSRToDense[T algebra.Semiring[T]](m tensor.CSRMatrix[T]) (tensor.Dense[T], error) {
	if err := m.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("csr to dense: %w", err)
	}
	out := tensor.ZerosDense[T](m.Shape())
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		row := out.Data[i*m.Cols : (i+1)*m.Cols]
		for k := start; k < end; k++ {
			row[m.ColIndices[k]] = m.Values[k]
		}
	}
	return out, nil
}

// DenseToCSR returns the CSR form of a rank-2 array, omitting zeros.
func DenseToCSR[T algebra.Semiring[T]](d tensor.Dense[T]) (tensor.CSRMatrix[T], error) {
	if err := checkDenseRank("dense to csr", d, 2); err != nil {
		return tensor.CSRMatrix[T]{}, err
	}
	rows, cols := d.Shape[0], d.Shape[1]
	out := tensor.CSRMatrix[T]{
		Rows:        rows,
		Cols:        cols,
		RowPointers: make([]int, rows+1),
		ColIndices:  []int{},
		Values:      []T{},
	}
	for i := 0; i < rows; i++ {
		for j, v := range d.Data[i*cols : (i+1)*cols] {
			if !v.IsZero() {
				out.ColIndices = append(out.ColIndices, j)
				out.Values = append(out.Values, v)
			}
		}
		out.RowPointers[i+1] = len(out.Values)
	}
	return out, nil
}
