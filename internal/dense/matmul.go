package dense

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// MatMulStrategy identifies a matrix-multiplication implementation.
type MatMulStrategy int

// Matrix-multiplication strategies. Every strategy accumulates each output
// cell in ascending k order, so all of them produce bit-identical results.
const (
	Standard MatMulStrategy = iota
	Blocked
	Concurrent
	BlockedConcurrent
	MatVecSequential
	MatVecParallel
)

// String returns the strategy name.
func (s MatMulStrategy) String() string {
	switch s {
	case Standard:
		return "standard"
	case Blocked:
		return "blocked"
	case Concurrent:
		return "concurrent"
	case BlockedConcurrent:
		return "blocked-concurrent"
	case MatVecSequential:
		return "matvec"
	case MatVecParallel:
		return "matvec-concurrent"
	default:
		return "unknown"
	}
}

// SelectMatMul picks a strategy for an (m x k) @ (k x n) product from the
// shape class of the left operand and the per-class thresholds of cfg.
func SelectMatMul(m, k, n, block int, cfg parallel.Config) MatMulStrategy {
	work := m * k * n
	if n == 1 {
		if cfg.Concurrent(m*k, cfg.MatVecThreshold) {
			return MatVecParallel
		}
		return MatVecSequential
	}
	if work < cfg.SmallProblemThreshold {
		return Standard
	}
	concurrent := cfg.Concurrent(work, cfg.MatMulThreshold(cfg.ClassifyShape(m, k)))
	blocked := k > block && n > block
	switch {
	case concurrent && blocked:
		return BlockedConcurrent
	case concurrent:
		return Concurrent
	case blocked:
		return Blocked
	default:
		return Standard
	}
}

// MatMul returns the product of two rank-2 arrays.
func MatMul[T algebra.Semiring[T]](a, b tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	m, k, n, err := matMulDims(a, b)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	block := blockSize[T](cfg)
	return MatMulWith(SelectMatMul(m, k, n, block, cfg), a, b, cfg)
}

// MatMulWith returns the product of two rank-2 arrays using strategy s.
func MatMulWith[T algebra.Semiring[T]](s MatMulStrategy, a, b tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	m, k, n, err := matMulDims(a, b)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	c := make([]T, m*n)
	switch s {
	case Standard:
		MatMulStandard(c, a.Data, b.Data, m, k, n)
	case Blocked:
		MatMulBlocked(c, a.Data, b.Data, m, k, n, blockSize[T](cfg))
	case Concurrent:
		MatMulConcurrent(c, a.Data, b.Data, m, k, n, cfg)
	case BlockedConcurrent:
		MatMulBlockedConcurrent(c, a.Data, b.Data, m, k, n, blockSize[T](cfg), cfg)
	case MatVecSequential, MatVecParallel:
		if n != 1 {
			return tensor.Dense[T]{}, fmt.Errorf("matmul: %s needs a single column, got %d: %w", s, n, tensor.ErrShapeMismatch)
		}
		if s == MatVecParallel {
			MatVecConcurrent(c, a.Data, b.Data, m, k, cfg)
		} else {
			MatVec(c, a.Data, b.Data, m, k)
		}
	default:
		return tensor.Dense[T]{}, fmt.Errorf("matmul: unknown strategy %d: %w", s, tensor.ErrInvalidArgument)
	}
	return tensor.Dense[T]{Shape: tensor.Shape{m, n}, Data: c}, nil
}

// MatMulStandard computes C = A @ B for row-major A (m x k), B (k x n) and
// C (m x n) using the i-k-j loop order. C is overwritten.
func MatMulStandard[T algebra.Semiring[T]](c, a, b []T, m, k, n int) {
	matMulRows(c, a, b, k, n, 0, m)
}

// MatMulBlocked is MatMulStandard over square tiles of edge block.
func MatMulBlocked[T algebra.Semiring[T]](c, a, b []T, m, k, n, block int) {
	matMulTiles(c, a, b, k, n, max(block, 1), 0, m)
}

// MatMulConcurrent partitions the rows of C across workers.
func MatMulConcurrent[T algebra.Semiring[T]](c, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.ForRange(m, cfg, func(lo, hi int) {
		matMulRows(c, a, b, k, n, lo, hi)
	})
}

// MatMulBlockedConcurrent partitions row blocks of C across workers and
// multiplies each partition tile by tile.
func MatMulBlockedConcurrent[T algebra.Semiring[T]](c, a, b []T, m, k, n, block int, cfg parallel.Config) {
	block = max(block, 1)
	parallel.ForBlocks(m, block, cfg, func(lo, hi int) {
		matMulTiles(c, a, b, k, n, block, lo, hi)
	})
}

// MatVec computes y = A @ x for row-major A (m x n).
func MatVec[T algebra.Semiring[T]](y, a, x []T, m, n int) {
	matVecRows(y, a, x, n, 0, m)
}

// MatVecConcurrent partitions the rows of y across workers.
func MatVecConcurrent[T algebra.Semiring[T]](y, a, x []T, m, n int, cfg parallel.Config) {
	parallel.ForRange(m, cfg, func(lo, hi int) {
		matVecRows(y, a, x, n, lo, hi)
	})
}

func matMulRows[T algebra.Semiring[T]](c, a, b []T, k, n, r0, r1 int) {
	zero := algebra.Zero[T]()
	for i := r0; i < r1; i++ {
		ci := c[i*n : (i+1)*n]
		tensor.Fill(ci, zero)
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			bp := b[p*n : (p+1)*n]
			for j := range ci {
				ci[j] = ci[j].Add(aip.Mul(bp[j]))
			}
		}
	}
}

func matMulTiles[T algebra.Semiring[T]](c, a, b []T, k, n, block, r0, r1 int) {
	tensor.Fill(c[r0*n:r1*n], algebra.Zero[T]())
	for ii := r0; ii < r1; ii += block {
		iEnd := min(ii+block, r1)
		for kk := 0; kk < k; kk += block {
			kEnd := min(kk+block, k)
			for jj := 0; jj < n; jj += block {
				jEnd := min(jj+block, n)
				for i := ii; i < iEnd; i++ {
					ci := c[i*n : (i+1)*n]
					for p := kk; p < kEnd; p++ {
						aip := a[i*k+p]
						bp := b[p*n : (p+1)*n]
						for j := jj; j < jEnd; j++ {
							ci[j] = ci[j].Add(aip.Mul(bp[j]))
						}
					}
				}
			}
		}
	}
}

func matVecRows[T algebra.Semiring[T]](y, a, x []T, n, r0, r1 int) {
	for i := r0; i < r1; i++ {
		y[i] = algebra.Dot(a[i*n:(i+1)*n], x)
	}
}

func matMulDims[T any](a, b tensor.Dense[T]) (m, k, n int, err error) {
	m, k, err = matrixDims("matmul", a)
	if err != nil {
		return 0, 0, 0, err
	}
	kb, n, err := matrixDims("matmul", b)
	if err != nil {
		return 0, 0, 0, err
	}
	if k != kb {
		return 0, 0, 0, fmt.Errorf("matmul: shape mismatch [%d,%d] @ [%d,%d]: %w", m, k, kb, n, tensor.ErrShapeMismatch)
	}
	return m, k, n, nil
}
