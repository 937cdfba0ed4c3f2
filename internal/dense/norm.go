package dense

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// Norm returns the Lp norm (Σ|x|^p)^(1/p) of xs. p = +Inf gives the largest
// magnitude and p = -Inf the smallest; p = 0 fails with
// tensor.ErrInvalidArgument.
//
// Absent sparse entries contribute nothing for any p, so the same function
// serves the stored values of a sparse vector.
func Norm[T algebra.Ring[T]](xs []T, p float64) (float64, error) {
	if p == 0 || math.IsNaN(p) {
		return 0, fmt.Errorf("norm: order %g: %w", p, tensor.ErrInvalidArgument)
	}
	if math.IsInf(p, -1) {
		return algebra.MinAbs(xs), nil
	}
	return floats.Norm(magnitudes(xs), p), nil
}

// MaxAbs returns the largest element magnitude.
func MaxAbs[T algebra.Ring[T]](xs []T) float64 { return algebra.MaxAbs(xs) }

// MinAbs returns the smallest element magnitude.
func MinAbs[T algebra.Ring[T]](xs []T) float64 { return algebra.MinAbs(xs) }

// MatrixNorm returns the L(p,q) norm of a rank-2 array: the q norm of the
// vector of column p norms. p = q = 2 is the Frobenius norm.
func MatrixNorm[T algebra.Ring[T]](m tensor.Dense[T], p, q float64) (float64, error) {
	rows, cols, err := matrixDims("matrix norm", m)
	if err != nil {
		return 0, err
	}
	if p == 0 || q == 0 || math.IsNaN(p) || math.IsNaN(q) {
		return 0, fmt.Errorf("matrix norm: orders (%g, %g): %w", p, q, tensor.ErrInvalidArgument)
	}
	if p == 2 && q == 2 {
		return floats.Norm(magnitudes(m.Data), 2), nil
	}
	col := make([]float64, rows)
	colNorms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = m.Data[i*cols+j].Abs()
		}
		colNorms[j] = lpNorm(col, p)
	}
	return lpNorm(colNorms, q), nil
}

func lpNorm(mags []float64, p float64) float64 {
	if math.IsInf(p, -1) {
		if len(mags) == 0 {
			return math.Inf(1)
		}
		return floats.Min(mags)
	}
	return floats.Norm(mags, p)
}

func magnitudes[T algebra.Ring[T]](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Abs()
	}
	return out
}
