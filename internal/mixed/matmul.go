package mixed

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// MatMulDenseCOO returns d @ s for a dense rows x k matrix d and a k x n
// COO matrix s. Each entry (p, j) of s scales column p of d into column j
// of the result.
func MatMulDenseCOO[T algebra.Semiring[T]](d tensor.Dense[T], s tensor.COOMatrix[T]) (tensor.Dense[T], error) {
	rows, k, err := denseDims("matmul dense coo", d)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	if err := checkInner("matmul dense coo", s, k, s.Rows); err != nil {
		return tensor.Dense[T]{}, err
	}
	n := s.Cols
	out := tensor.ZerosDense[T](tensor.Shape{rows, n})
	for e, v := range s.Values {
		p, j := s.RowIndices[e], s.ColIndices[e]
		for i := 0; i < rows; i++ {
			out.Data[i*n+j] = out.Data[i*n+j].Add(d.Data[i*k+p].Mul(v))
		}
	}
	return out, nil
}

// MatMulCOODense returns s @ d for an m x k COO matrix s and a dense k x n
// matrix d. Each entry (i, p) of s scales row p of d into row i of the
// result.
func MatMulCOODense[T algebra.Semiring[T]](s tensor.COOMatrix[T], d tensor.Dense[T]) (tensor.Dense[T], error) {
	k, n, err := denseDims("matmul coo dense", d)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	if err := checkInner("matmul coo dense", s, s.Cols, k); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := tensor.ZerosDense[T](tensor.Shape{s.Rows, n})
	for e, v := range s.Values {
		i, p := s.RowIndices[e], s.ColIndices[e]
		axpy(out.Data[i*n:(i+1)*n], v, d.Data[p*n:(p+1)*n])
	}
	return out, nil
}

// MatMulDenseCSR returns d @ m for a dense rows x k matrix d and a k x n CSR
// matrix m. Rows of d are split across workers above the sparse threshold.
func MatMulDenseCSR[T algebra.Semiring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T], cfg parallel.Config) (tensor.Dense[T], error) {
	rows, k, err := denseDims("matmul dense csr", d)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	if err := checkInner("matmul dense csr", m, k, m.Rows); err != nil {
		return tensor.Dense[T]{}, err
	}
	n := m.Cols
	out := tensor.ZerosDense[T](tensor.Shape{rows, n})
	rowRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := out.Data[i*n : (i+1)*n]
			for p := 0; p < k; p++ {
				x := d.Data[i*k+p]
				start, end := m.Row(p)
				for q := start; q < end; q++ {
					j := m.ColIndices[q]
					row[j] = row[j].Add(x.Mul(m.Values[q]))
				}
			}
		}
	}
	if cfg.Concurrent(rows*m.NNZ(), cfg.SparseThreshold) {
		parallel.ForRange(rows, cfg, rowRange)
	} else {
		rowRange(0, rows)
	}
	return out, nil
}

// MatMulCSRDense returns m @ d for an m x k CSR matrix m and a dense k x n
// matrix d. Rows of m are split across workers above the sparse threshold.
func MatMulCSRDense[T algebra.Semiring[T]](m tensor.CSRMatrix[T], d tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	k, n, err := denseDims("matmul csr dense", d)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	if err := checkInner("matmul csr dense", m, m.Cols, k); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := tensor.ZerosDense[T](tensor.Shape{m.Rows, n})
	rowRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := out.Data[i*n : (i+1)*n]
			start, end := m.Row(i)
			for q := start; q < end; q++ {
				p := m.ColIndices[q]
				axpy(row, m.Values[q], d.Data[p*n:(p+1)*n])
			}
		}
	}
	if cfg.Concurrent(m.NNZ()*n, cfg.SparseThreshold) {
		parallel.ForRange(m.Rows, cfg, rowRange)
	} else {
		rowRange(0, m.Rows)
	}
	return out, nil
}

// axpy adds a*x to y.
func axpy[T algebra.Semiring[T]](y []T, a T, x []T) {
	for j, v := range x {
		y[j] = y[j].Add(a.Mul(v))
	}
}

func denseDims[T any](op string, d tensor.Dense[T]) (rows, cols int, err error) {
	if err := d.Validate(); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if d.Shape.Rank() != 2 {
		return 0, 0, fmt.Errorf("%s: dense operand has rank %d, want 2: %w", op, d.Shape.Rank(), tensor.ErrInvalidRank)
	}
	return d.Shape[0], d.Shape[1], nil
}

// checkInner validates s and requires the inner dimensions to agree.
func checkInner(op string, s interface{ Validate() error }, left, right int) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if left != right {
		return fmt.Errorf("%s: inner dimensions %d and %d: %w", op, left, right, tensor.ErrShapeMismatch)
	}
	return nil
}
