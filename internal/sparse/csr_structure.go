package sparse

import (
	"fmt"
	"sort"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// SwapRows exchanges rows i and j of m in place. Only the storage between the
// two rows is moved.
func SwapRows[T any](m tensor.CSRMatrix[T], i, j int) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("swap rows: %w", err)
	}
	if err := tensor.CheckIndex("swap rows", "row", i, m.Rows); err != nil {
		return err
	}
	if err := tensor.CheckIndex("swap rows", "row", j, m.Rows); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	if i > j {
		i, j = j, i
	}
	si, ei := m.Row(i)
	sj, ej := m.Row(j)

	// [si, ej) holds row i, the rows in between, then row j; rebuild it as
	// row j, the rows in between, then row i.
	cols := make([]int, 0, ej-si)
	vals := make([]T, 0, ej-si)
	cols = append(append(append(cols, m.ColIndices[sj:ej]...), m.ColIndices[ei:sj]...), m.ColIndices[si:ei]...)
	vals = append(append(append(vals, m.Values[sj:ej]...), m.Values[ei:sj]...), m.Values[si:ei]...)
	copy(m.ColIndices[si:ej], cols)
	copy(m.Values[si:ej], vals)

	delta := (ej - sj) - (ei - si)
	for r := i + 1; r <= j; r++ {
		m.RowPointers[r] += delta
	}
	return nil
}

// SwapCols exchanges columns c1 and c2 of m in place, keeping every row
// sorted by column.
func SwapCols[T any](m tensor.CSRMatrix[T], c1, c2 int) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("swap cols: %w", err)
	}
	if err := tensor.CheckIndex("swap cols", "column", c1, m.Cols); err != nil {
		return err
	}
	if err := tensor.CheckIndex("swap cols", "column", c2, m.Cols); err != nil {
		return err
	}
	if c1 == c2 {
		return nil
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for i := 0; i < m.Rows; i++ {
		p1, ok1 := m.Find(i, c1)
		p2, ok2 := m.Find(i, c2)
		switch {
		case ok1 && ok2:
			m.Values[p1], m.Values[p2] = m.Values[p2], m.Values[p1]
		case ok1:
			// The entry moves right to column c2; entries strictly between
			// the two columns shift one slot left. p2 is the insertion point.
			v := m.Values[p1]
			copy(m.ColIndices[p1:p2-1], m.ColIndices[p1+1:p2])
			copy(m.Values[p1:p2-1], m.Values[p1+1:p2])
			m.ColIndices[p2-1], m.Values[p2-1] = c2, v
		case ok2:
			// The entry moves left to column c1; entries in between shift one
			// slot right. p1 is the insertion point.
			v := m.Values[p2]
			copy(m.ColIndices[p1+1:p2+1], m.ColIndices[p1:p2])
			copy(m.Values[p1+1:p2+1], m.Values[p1:p2])
			m.ColIndices[p1], m.Values[p1] = c1, v
		}
	}
	return nil
}

// SliceCSR returns the sub-matrix of rows [r0, r1) and columns [c0, c1).
func SliceCSR[T any](m tensor.CSRMatrix[T], r0, r1, c0, c1 int) (tensor.CSRMatrix[T], error) {
	if err := m.Validate(); err != nil {
		return tensor.CSRMatrix[T]{}, fmt.Errorf("slice csr: %w", err)
	}
	if r0 < 0 || r1 < r0 || r1 > m.Rows {
		return tensor.CSRMatrix[T]{}, fmt.Errorf("slice csr: rows [%d, %d) of %d: %w", r0, r1, m.Rows, tensor.ErrIndexOutOfBounds)
	}
	if c0 < 0 || c1 < c0 || c1 > m.Cols {
		return tensor.CSRMatrix[T]{}, fmt.Errorf("slice csr: columns [%d, %d) of %d: %w", c0, c1, m.Cols, tensor.ErrIndexOutOfBounds)
	}
	out := newCSR[T](r1-r0, c1-c0)
	for i := r0; i < r1; i++ {
		start, end := m.Row(i)
		row := m.ColIndices[start:end]
		lo := start + sort.SearchInts(row, c0)
		hi := start + sort.SearchInts(row, c1)
		for k := lo; k < hi; k++ {
			out.ColIndices = append(out.ColIndices, m.ColIndices[k]-c0)
			out.Values = append(out.Values, m.Values[k])
		}
		out.RowPointers[i-r0+1] = len(out.Values)
	}
	return out, nil
}

// TransposeCSR returns the transpose of m.
func TransposeCSR[T any](m tensor.CSRMatrix[T]) (tensor.CSRMatrix[T], error) {
	if err := m.Validate(); err != nil {
		return tensor.CSRMatrix[T]{}, fmt.Errorf("transpose csr: %w", err)
	}
	nnz := m.NNZ()
	out := tensor.CSRMatrix[T]{
		Rows:        m.Cols,
		Cols:        m.Rows,
		RowPointers: make([]int, m.Cols+1),
		ColIndices:  make([]int, nnz),
		Values:      make([]T, nnz),
	}
	for _, c := range m.ColIndices {
		out.RowPointers[c+1]++
	}
	for c := 0; c < m.Cols; c++ {
		out.RowPointers[c+1] += out.RowPointers[c]
	}
	next := append([]int(nil), out.RowPointers[:m.Cols]...)
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		for k := start; k < end; k++ {
			dst := next[m.ColIndices[k]]
			next[m.ColIndices[k]]++
			out.ColIndices[dst] = i
			out.Values[dst] = m.Values[k]
		}
	}
	return out, nil
}

// ConjTransposeCSR returns the conjugate transpose of m.
func ConjTransposeCSR[T algebra.Field[T]](m tensor.CSRMatrix[T]) (tensor.CSRMatrix[T], error) {
	t, err := TransposeCSR(m)
	if err != nil {
		return tensor.CSRMatrix[T]{}, err
	}
	for k, v := range t.Values {
		t.Values[k] = v.Conj()
	}
	return t, nil
}
