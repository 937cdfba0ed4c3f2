package sparse

import (
	"cmp"
	"fmt"
	"sort"
	"sync"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// AddMatrices returns a + b.
func AddMatrices[T algebra.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	return mergeMatrices("add matrices", a, b, adder[T]())
}

// SubMatrices returns a - b.
func SubMatrices[T algebra.Ring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	return mergeMatrices("sub matrices", a, b, subtracter[T]())
}

// MulMatrices returns the element-wise product of a and b.
func MulMatrices[T algebra.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	return mergeMatrices("mul matrices", a, b, multiplier[T]())
}

// MatMulCOO returns the dense product a @ b.
//
// The entries of b are indexed by row, so every entry (i, k) of a is paired
// only with the entries of row k of b instead of with all of b.
func MatMulCOO[T algebra.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.Dense[T], error) {
	if err := checkMatMulCOO("matmul coo", a, b); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := tensor.ZerosDense[T](tensor.Shape{a.Rows, b.Cols})
	byRow := rowIndex(b)
	for p := range a.Values {
		row := out.Data[a.RowIndices[p]*b.Cols:]
		for _, q := range byRow[a.ColIndices[p]] {
			j := b.ColIndices[q]
			row[j] = row[j].Add(a.Values[p].Mul(b.Values[q]))
		}
	}
	return out, nil
}

// MatMulCOOSparse returns a @ b in COO form. a must be canonical; the result
// is canonical.
func MatMulCOOSparse[T algebra.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	if err := checkMatMulCOO("matmul coo sparse", a, b); err != nil {
		return tensor.COOMatrix[T]{}, err
	}
	if !a.IsCanonical() {
		return tensor.COOMatrix[T]{}, fmt.Errorf("matmul coo sparse: a is not sorted and coalesced: %w", tensor.ErrInvalidArgument)
	}
	out := tensor.COOMatrix[T]{
		Rows:       a.Rows,
		Cols:       b.Cols,
		RowIndices: []int{},
		ColIndices: []int{},
		Values:     []T{},
	}
	byRow := rowIndex(b)
	acc := newAccumulator[T](b.Cols)
	for start := 0; start < len(a.Values); {
		i := a.RowIndices[start]
		end := start
		for end < len(a.Values) && a.RowIndices[end] == i {
			for _, q := range byRow[a.ColIndices[end]] {
				acc.add(b.ColIndices[q], a.Values[end].Mul(b.Values[q]))
			}
			end++
		}
		n := len(out.ColIndices)
		out.ColIndices, out.Values = acc.flush(out.ColIndices, out.Values)
		for range out.ColIndices[n:] {
			out.RowIndices = append(out.RowIndices, i)
		}
		start = end
	}
	return out, nil
}

// MatVecCOO returns the dense product a @ x.
func MatVecCOO[T algebra.Semiring[T]](a tensor.COOMatrix[T], x tensor.COOVector[T]) (tensor.Dense[T], error) {
	if err := checkMatVecCOO("matvec coo", a, x); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := tensor.ZerosDense[T](tensor.Shape{a.Rows})
	for p := range a.Values {
		if xv, ok := lookup(x, a.ColIndices[p]); ok {
			i := a.RowIndices[p]
			out.Data[i] = out.Data[i].Add(a.Values[p].Mul(xv))
		}
	}
	return out, nil
}

// MatVecCOOConcurrent is MatVecCOO with the stored entries of a partitioned
// across workers. Partitions may contribute to the same output row, so every
// update of the result takes one lock guarding the whole destination. It is
// rarely faster than MatVecCOO, and floating-point sums may differ from it
// in the last bits because the update order is not fixed.
func MatVecCOOConcurrent[T algebra.Semiring[T]](a tensor.COOMatrix[T], x tensor.COOVector[T], cfg parallel.Config) (tensor.Dense[T], error) {
	if err := checkMatVecCOO("matvec coo", a, x); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := tensor.ZerosDense[T](tensor.Shape{a.Rows})
	var mu sync.Mutex
	parallel.ForRange(len(a.Values), cfg, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			xv, ok := lookup(x, a.ColIndices[p])
			if !ok {
				continue
			}
			prod := a.Values[p].Mul(xv)
			i := a.RowIndices[p]
			mu.Lock()
			out.Data[i] = out.Data[i].Add(prod)
			mu.Unlock()
		}
	})
	return out, nil
}

// TransposeCOO returns the canonical transpose of m.
func TransposeCOO[T any](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	t := tensor.COOMatrix[T]{
		Rows:       m.Cols,
		Cols:       m.Rows,
		RowIndices: append([]int(nil), m.ColIndices...),
		ColIndices: append([]int(nil), m.RowIndices...),
		Values:     append([]T(nil), m.Values...),
	}
	return SortCOO(t)
}

func mergeMatrices[T any](op string, a, b tensor.COOMatrix[T], c combiner[T]) (tensor.COOMatrix[T], error) {
	if err := checkCanonical(op, "a", a); err != nil {
		return tensor.COOMatrix[T]{}, err
	}
	if err := checkCanonical(op, "b", b); err != nil {
		return tensor.COOMatrix[T]{}, err
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return tensor.COOMatrix[T]{}, fmt.Errorf("%s: shapes %v and %v: %w", op, a.Shape(), b.Shape(), tensor.ErrShapeMismatch)
	}
	capacity := min(len(a.Values), len(b.Values))
	if c.union {
		capacity = len(a.Values) + len(b.Values)
	}
	out := tensor.COOMatrix[T]{
		Rows:       a.Rows,
		Cols:       a.Cols,
		RowIndices: make([]int, 0, capacity),
		ColIndices: make([]int, 0, capacity),
		Values:     make([]T, 0, capacity),
	}
	merge(len(a.Values), len(b.Values), c.union,
		func(i, j int) int {
			if r := cmp.Compare(a.RowIndices[i], b.RowIndices[j]); r != 0 {
				return r
			}
			return cmp.Compare(a.ColIndices[i], b.ColIndices[j])
		},
		func(i, j int) {
			if i >= 0 {
				out.RowIndices = append(out.RowIndices, a.RowIndices[i])
				out.ColIndices = append(out.ColIndices, a.ColIndices[i])
			} else {
				out.RowIndices = append(out.RowIndices, b.RowIndices[j])
				out.ColIndices = append(out.ColIndices, b.ColIndices[j])
			}
			out.Values = append(out.Values, c.value(a.Values, b.Values, i, j))
		})
	return out, nil
}

// rowIndex maps each row of m to the storage positions of its entries.
func rowIndex[T any](m tensor.COOMatrix[T]) map[int][]int {
	idx := make(map[int][]int)
	for q, r := range m.RowIndices {
		idx[r] = append(idx[r], q)
	}
	return idx
}

// lookup returns the stored value of x at index i.
func lookup[T any](x tensor.COOVector[T], i int) (T, bool) {
	k := sort.SearchInts(x.Indices, i)
	if k < len(x.Indices) && x.Indices[k] == i {
		return x.Values[k], true
	}
	var zero T
	return zero, false
}

func checkMatMulCOO[T any](op string, a, b tensor.COOMatrix[T]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if a.Cols != b.Rows {
		return fmt.Errorf("%s: shapes %v and %v: %w", op, a.Shape(), b.Shape(), tensor.ErrShapeMismatch)
	}
	return nil
}

func checkMatVecCOO[T any](op string, a tensor.COOMatrix[T], x tensor.COOVector[T]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := checkCanonical(op, "x", x); err != nil {
		return err
	}
	if a.Cols != x.Size {
		return fmt.Errorf("%s: matrix %v and vector of size %d: %w", op, a.Shape(), x.Size, tensor.ErrShapeMismatch)
	}
	return nil
}
