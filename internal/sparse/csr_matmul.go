package sparse

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// MatMulCSRToDense returns a @ b as a dense array. For every entry (i, k) of
// a, row k of b is scanned and accumulated into row i of the result. Rows
// are split across workers above the sparse threshold.
func MatMulCSRToDense[T algebra.Semiring[T]](a, b tensor.CSRMatrix[T], cfg parallel.Config) (tensor.Dense[T], error) {
	if err := checkCSRMatMul("matmul csr", a, b); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := tensor.ZerosDense[T](tensor.Shape{a.Rows, b.Cols})
	rowRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := out.Data[i*b.Cols : (i+1)*b.Cols]
			as, ae := a.Row(i)
			for p := as; p < ae; p++ {
				av := a.Values[p]
				bs, be := b.Row(a.ColIndices[p])
				for q := bs; q < be; q++ {
					j := b.ColIndices[q]
					row[j] = row[j].Add(av.Mul(b.Values[q]))
				}
			}
		}
	}
	if cfg.Concurrent(a.NNZ()+b.NNZ(), cfg.SparseThreshold) {
		parallel.ForRange(a.Rows, cfg, rowRange)
	} else {
		rowRange(0, a.Rows)
	}
	return out, nil
}

// MatMulCSR returns a @ b in CSR form. Each output row is gathered in a
// sparse accumulator and flushed in ascending column order.
func MatMulCSR[T algebra.Semiring[T]](a, b tensor.CSRMatrix[T], cfg parallel.Config) (tensor.CSRMatrix[T], error) {
	if err := checkCSRMatMul("matmul csr", a, b); err != nil {
		return tensor.CSRMatrix[T]{}, err
	}
	accumulate := func(acc *accumulator[T], i int) {
		as, ae := a.Row(i)
		for p := as; p < ae; p++ {
			av := a.Values[p]
			bs, be := b.Row(a.ColIndices[p])
			for q := bs; q < be; q++ {
				acc.add(b.ColIndices[q], av.Mul(b.Values[q]))
			}
		}
	}

	if !cfg.Concurrent(a.NNZ()+b.NNZ(), cfg.SparseThreshold) {
		out := newCSR[T](a.Rows, b.Cols)
		acc := newAccumulator[T](b.Cols)
		for i := 0; i < a.Rows; i++ {
			accumulate(acc, i)
			out.ColIndices, out.Values = acc.flush(out.ColIndices, out.Values)
			out.RowPointers[i+1] = len(out.Values)
		}
		return out, nil
	}

	rows := make([]csrRow[T], a.Rows)
	parallel.ForRange(a.Rows, cfg, func(lo, hi int) {
		acc := newAccumulator[T](b.Cols)
		for i := lo; i < hi; i++ {
			accumulate(acc, i)
			rows[i].cols, rows[i].vals = acc.flush(nil, nil)
		}
	})
	return stitch(a.Rows, b.Cols, rows), nil
}

// MatVecCSR returns a @ x for a dense vector x holding a.Cols elements. The
// result has shape (a.Rows).
func MatVecCSR[T algebra.Semiring[T]](a tensor.CSRMatrix[T], x tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	if err := a.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("matvec csr: %w", err)
	}
	if err := x.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("matvec csr: %w", err)
	}
	if err := tensor.CheckLen("matvec csr", "vector", len(x.Data), a.Cols); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := make([]T, a.Rows)
	rowRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sum := algebra.Zero[T]()
			start, end := a.Row(i)
			for p := start; p < end; p++ {
				sum = sum.Add(a.Values[p].Mul(x.Data[a.ColIndices[p]]))
			}
			out[i] = sum
		}
	}
	if cfg.Concurrent(a.NNZ(), cfg.SparseThreshold) {
		parallel.ForRange(a.Rows, cfg, rowRange)
	} else {
		rowRange(0, a.Rows)
	}
	return tensor.Dense[T]{Shape: tensor.Shape{a.Rows}, Data: out}, nil
}

func checkCSRMatMul[T any](op string, a, b tensor.CSRMatrix[T]) error {
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
