package tensor

import (
	"fmt"
	"sort"
)

// COOVector is a sparse vector in coordinate form. Indices are sorted
// ascending without duplicates once canonical; absent entries are zero.
type COOVector[T any] struct {
	Size    int
	Indices []int
	Values  []T
}

// COOMatrix is a sparse matrix in coordinate form, sorted by (row, col)
// once canonical.
type COOMatrix[T any] struct {
	Rows, Cols int
	RowIndices []int
	ColIndices []int
	Values     []T
}

// COOTensor is a sparse rank-N tensor; Indices[k] is the coordinate tuple of
// Values[k]. Entries are sorted lexicographically once canonical.
type COOTensor[T any] struct {
	Shape   Shape
	Indices [][]int
	Values  []T
}

// CSRMatrix is a sparse matrix in compressed sparse row form. Row i occupies
// [RowPointers[i], RowPointers[i+1]) of ColIndices and Values, sorted by column.
type CSRMatrix[T any] struct {
	Rows, Cols  int
	RowPointers []int
	ColIndices  []int
	Values      []T
}

// NNZ returns the number of stored entries.
func (v COOVector[T]) NNZ() int { return len(v.Values) }

// Shape returns the vector's shape.
func (v COOVector[T]) Shape() Shape { return Shape{v.Size} }

// Validate checks array lengths and index bounds.
func (v COOVector[T]) Validate() error {
	if v.Size < 0 {
		return fmt.Errorf("coo vector size %d: %w", v.Size, ErrInvalidArgument)
	}
	if len(v.Indices) != len(v.Values) {
		return fmt.Errorf("coo vector: %d indices for %d values: %w", len(v.Indices), len(v.Values), ErrShapeMismatch)
	}
	for _, i := range v.Indices {
		if err := CheckIndex("coo vector", "index", i, v.Size); err != nil {
			return err
		}
	}
	return nil
}

// IsCanonical reports whether indices are strictly ascending.
func (v COOVector[T]) IsCanonical() bool {
	for k := 1; k < len(v.Indices); k++ {
		if v.Indices[k-1] >= v.Indices[k] {
			return false
		}
	}
	return true
}

// NNZ returns the number of stored entries.
func (m COOMatrix[T]) NNZ() int { return len(m.Values) }

// Shape returns the matrix shape.
func (m COOMatrix[T]) Shape() Shape { return Shape{m.Rows, m.Cols} }

// Validate checks array lengths and index bounds.
func (m COOMatrix[T]) Validate() error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("coo matrix %dx%d: %w", m.Rows, m.Cols, ErrInvalidArgument)
	}
	if len(m.RowIndices) != len(m.Values) || len(m.ColIndices) != len(m.Values) {
		return fmt.Errorf("coo matrix: %d row indices, %d col indices, %d values: %w",
			len(m.RowIndices), len(m.ColIndices), len(m.Values), ErrShapeMismatch)
	}
	for k := range m.Values {
		if err := CheckIndex("coo matrix", "row", m.RowIndices[k], m.Rows); err != nil {
			return err
		}
		if err := CheckIndex("coo matrix", "column", m.ColIndices[k], m.Cols); err != nil {
			return err
		}
	}
	return nil
}

// IsCanonical reports whether entries are strictly ascending by (row, col).
func (m COOMatrix[T]) IsCanonical() bool {
	for k := 1; k < len(m.Values); k++ {
		r0, r1 := m.RowIndices[k-1], m.RowIndices[k]
		if r0 > r1 || (r0 == r1 && m.ColIndices[k-1] >= m.ColIndices[k]) {
			return false
		}
	}
	return true
}

// NNZ returns the number of stored entries.
func (t COOTensor[T]) NNZ() int { return len(t.Values) }

// Validate checks array lengths, coordinate rank, and bounds.
func (t COOTensor[T]) Validate() error {
	if err := t.Shape.Validate(); err != nil {
		return err
	}
	if len(t.Indices) != len(t.Values) {
		return fmt.Errorf("coo tensor: %d coordinates for %d values: %w", len(t.Indices), len(t.Values), ErrShapeMismatch)
	}
	for _, idx := range t.Indices {
		if len(idx) != len(t.Shape) {
			return fmt.Errorf("coo tensor: coordinate %v has rank %d, want %d: %w", idx, len(idx), len(t.Shape), ErrInvalidRank)
		}
		for d, i := range idx {
			if err := CheckIndex("coo tensor", fmt.Sprintf("axis %d index", d), i, t.Shape[d]); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsCanonical reports whether coordinates are strictly ascending.
func (t COOTensor[T]) IsCanonical() bool {
	for k := 1; k < len(t.Indices); k++ {
		if CompareCoords(t.Indices[k-1], t.Indices[k]) >= 0 {
			return false
		}
	}
	return true
}

// NNZ returns the number of stored entries.
func (m CSRMatrix[T]) NNZ() int { return len(m.Values) }

// Shape returns the matrix shape.
func (m CSRMatrix[T]) Shape() Shape { return Shape{m.Rows, m.Cols} }

// Row returns the bounds of row i within ColIndices and Values.
func (m CSRMatrix[T]) Row(i int) (start, end int) {
	return m.RowPointers[i], m.RowPointers[i+1]
}

// Find returns the storage position of (i, j) using a binary search over row i.
func (m CSRMatrix[T]) Find(i, j int) (int, bool) {
	start, end := m.Row(i)
	pos := start + sort.SearchInts(m.ColIndices[start:end], j)
	return pos, pos < end && m.ColIndices[pos] == j
}

// Validate checks the CSR invariants: row pointer length and monotonicity,
// RowPointers[0] == 0, RowPointers[Rows] == nnz, and strictly ascending
// in-range columns within each row.
func (m CSRMatrix[T]) Validate() error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("csr matrix %dx%d: %w", m.Rows, m.Cols, ErrInvalidArgument)
	}
	if len(m.RowPointers) != m.Rows+1 {
		return fmt.Errorf("csr: %d row pointers for %d rows: %w", len(m.RowPointers), m.Rows, ErrShapeMismatch)
	}
	if len(m.ColIndices) != len(m.Values) {
		return fmt.Errorf("csr: %d column indices for %d values: %w", len(m.ColIndices), len(m.Values), ErrShapeMismatch)
	}
	if m.RowPointers[0] != 0 || m.RowPointers[m.Rows] != len(m.Values) {
		return fmt.Errorf("csr: row pointers must span [0, %d]: %w", len(m.Values), ErrInvalidArgument)
	}
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		if start > end {
			return fmt.Errorf("csr: row pointers decrease at row %d: %w", i, ErrInvalidArgument)
		}
		if end > len(m.Values) {
			return fmt.Errorf("csr: row %d ends at %d past %d entries: %w", i, end, len(m.Values), ErrInvalidArgument)
		}
	}
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		for k := start; k < end; k++ {
			if err := CheckIndex("csr", "column", m.ColIndices[k], m.Cols); err != nil {
				return err
			}
			if k > start && m.ColIndices[k-1] >= m.ColIndices[k] {
				return fmt.Errorf("csr: columns not ascending in row %d: %w", i, ErrInvalidArgument)
			}
		}
	}
	return nil
}

// Sparse is the flat view shared by every sparse format: the dense shape it
// describes, the row-major offset of each stored entry, and the stored values.
// S is the implementing type itself.
//
// Offsets assumes the value passed Validate.
type Sparse[T, S any] interface {
	Validate() error
	DenseShape() Shape
	Offsets() []int
	Entries() []T
	WithEntries(values []T) S
}

// COO is the set of coordinate formats.
type COO[T, S any] interface {
	COOVector[T] | COOMatrix[T] | COOTensor[T]
	Sparse[T, S]
}

func (v COOVector[T]) DenseShape() Shape { return v.Shape() }
func (v COOVector[T]) Entries() []T      { return v.Values }

func (v COOVector[T]) Offsets() []int {
	return append([]int{}, v.Indices...)
}

// WithEntries returns a copy of v's structure holding values.
func (v COOVector[T]) WithEntries(values []T) COOVector[T] {
	return COOVector[T]{Size: v.Size, Indices: append([]int{}, v.Indices...), Values: values}
}

func (m COOMatrix[T]) DenseShape() Shape { return m.Shape() }
func (m COOMatrix[T]) Entries() []T      { return m.Values }

func (m COOMatrix[T]) Offsets() []int {
	out := make([]int, len(m.Values))
	for k := range out {
		out[k] = m.RowIndices[k]*m.Cols + m.ColIndices[k]
	}
	return out
}

// WithEntries returns a copy of m's structure holding values.
func (m COOMatrix[T]) WithEntries(values []T) COOMatrix[T] {
	return COOMatrix[T]{
		Rows:       m.Rows,
		Cols:       m.Cols,
		RowIndices: append([]int{}, m.RowIndices...),
		ColIndices: append([]int{}, m.ColIndices...),
		Values:     values,
	}
}

func (t COOTensor[T]) DenseShape() Shape { return t.Shape }
func (t COOTensor[T]) Entries() []T      { return t.Values }

func (t COOTensor[T]) Offsets() []int {
	strides := t.Shape.ComputeStrides()
	out := make([]int, len(t.Indices))
	for k, idx := range t.Indices {
		for d, i := range idx {
			out[k] += i * strides[d]
		}
	}
	return out
}

// WithEntries returns a copy of t's structure holding values.
func (t COOTensor[T]) WithEntries(values []T) COOTensor[T] {
	indices := make([][]int, len(t.Indices))
	for k, idx := range t.Indices {
		indices[k] = append([]int{}, idx...)
	}
	return COOTensor[T]{Shape: t.Shape.Clone(), Indices: indices, Values: values}
}

func (m CSRMatrix[T]) DenseShape() Shape { return m.Shape() }
func (m CSRMatrix[T]) Entries() []T      { return m.Values }

func (m CSRMatrix[T]) Offsets() []int {
	out := make([]int, 0, len(m.Values))
	for i := 0; i < m.Rows; i++ {
		start, end := m.Row(i)
		for k := start; k < end; k++ {
			out = append(out, i*m.Cols+m.ColIndices[k])
		}
	}
	return out
}

// WithEntries returns a copy of m's structure holding values.
func (m CSRMatrix[T]) WithEntries(values []T) CSRMatrix[T] {
	return CSRMatrix[T]{
		Rows:        m.Rows,
		Cols:        m.Cols,
		RowPointers: append([]int{}, m.RowPointers...),
		ColIndices:  append([]int{}, m.ColIndices...),
		Values:      values,
	}
}
