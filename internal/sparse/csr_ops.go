package sparse

import (
	"cmp"
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// AddCSR returns a + b.
func AddCSR[T algebra.Semiring[T]](a, b tensor.CSRMatrix[T], cfg parallel.Config) (tensor.CSRMatrix[T], error) {
	return mergeCSR("add csr", a, b, adder[T](), cfg)
}

// SubCSR returns a - b.
func SubCSR[T algebra.Ring[T]](a, b tensor.CSRMatrix[T], cfg parallel.Config) (tensor.CSRMatrix[T], error) {
	return mergeCSR("sub csr", a, b, subtracter[T](), cfg)
}

// MulCSR returns the element-wise product of a and b.
func MulCSR[T algebra.Semiring[T]](a, b tensor.CSRMatrix[T], cfg parallel.Config) (tensor.CSRMatrix[T], error) {
	return mergeCSR("mul csr", a, b, multiplier[T](), cfg)
}

// mergeCSR merges a and b row by row. Above the sparse threshold rows are
// merged concurrently into per-row buffers and stitched together afterwards.
func mergeCSR[T any](op string, a, b tensor.CSRMatrix[T], c combiner[T], cfg parallel.Config) (tensor.CSRMatrix[T], error) {
	if err := checkCSRPair(op, a, b); err != nil {
		return tensor.CSRMatrix[T]{}, err
	}
	mergeRow := func(i int, cols []int, vals []T) ([]int, []T) {
		as, ae := a.Row(i)
		bs, be := b.Row(i)
		merge(ae-as, be-bs, c.union,
			func(p, q int) int { return cmp.Compare(a.ColIndices[as+p], b.ColIndices[bs+q]) },
			func(p, q int) {
				if p >= 0 {
					cols = append(cols, a.ColIndices[as+p])
				} else {
					cols = append(cols, b.ColIndices[bs+q])
				}
				vals = append(vals, c.value(a.Values[as:ae], b.Values[bs:be], p, q))
			})
		return cols, vals
	}

	if !cfg.Concurrent(a.NNZ()+b.NNZ(), cfg.SparseThreshold) {
		out := newCSR[T](a.Rows, a.Cols)
		for i := 0; i < a.Rows; i++ {
			out.ColIndices, out.Values = mergeRow(i, out.ColIndices, out.Values)
			out.RowPointers[i+1] = len(out.Values)
		}
		return out, nil
	}

	rows := make([]csrRow[T], a.Rows)
	parallel.ForRange(a.Rows, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			rows[i].cols, rows[i].vals = mergeRow(i, nil, nil)
		}
	})
	return stitch(a.Rows, a.Cols, rows), nil
}

// csrRow holds one computed output row.
type csrRow[T any] struct {
	cols []int
	vals []T
}

// stitch concatenates per-row results into one CSR matrix.
func stitch[T any](rows, cols int, parts []csrRow[T]) tensor.CSRMatrix[T] {
	nnz := 0
	for _, p := range parts {
		nnz += len(p.vals)
	}
	out := tensor.CSRMatrix[T]{
		Rows:        rows,
		Cols:        cols,
		RowPointers: make([]int, rows+1),
		ColIndices:  make([]int, 0, nnz),
		Values:      make([]T, 0, nnz),
	}
	for i, p := range parts {
		out.ColIndices = append(out.ColIndices, p.cols...)
		out.Values = append(out.Values, p.vals...)
		out.RowPointers[i+1] = len(out.Values)
	}
	return out
}

func newCSR[T any](rows, cols int) tensor.CSRMatrix[T] {
	return tensor.CSRMatrix[T]{
		Rows:        rows,
		Cols:        cols,
		RowPointers: make([]int, rows+1),
		ColIndices:  []int{},
		Values:      []T{},
	}
}

func checkCSRPair[T any](op string, a, b tensor.CSRMatrix[T]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return fmt.Errorf("%s: shapes %v and %v: %w", op, a.Shape(), b.Shape(), tensor.ErrShapeMismatch)
	}
	return nil
}
