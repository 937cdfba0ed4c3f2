package dense

import (
	"math/rand"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

func reals(xs ...float64) []algebra.Real {
	out := make([]algebra.Real, len(xs))
	for i, x := range xs {
		out[i] = algebra.Real(x)
	}
	return out
}

func realDense(shape tensor.Shape, xs ...float64) tensor.Dense[algebra.Real] {
	return tensor.Dense[algebra.Real]{Shape: shape, Data: reals(xs...)}
}

func randomReals(rng *rand.Rand, shape tensor.Shape) tensor.Dense[algebra.Real] {
	data := make([]algebra.Real, shape.NumElements())
	for i := range data {
		data[i] = algebra.Real(rng.NormFloat64())
	}
	return tensor.Dense[algebra.Real]{Shape: shape, Data: data}
}

func randomRationals(rng *rand.Rand, shape tensor.Shape) tensor.Dense[algebra.Rational] {
	data := make([]algebra.Rational, shape.NumElements())
	for i := range data {
		data[i] = algebra.Frac(rng.Int63n(19)-9, rng.Int63n(5)+1)
	}
	return tensor.Dense[algebra.Rational]{Shape: shape, Data: data}
}

// forceConcurrent returns a configuration under which every kernel takes its
// concurrent path.
func forceConcurrent() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4
	cfg.MinChunkSize = 1
	cfg.BlockSize = 4
	cfg.SmallProblemThreshold = 0
	cfg.ElemWiseThreshold = 0
	cfg.ElemWiseObjectThreshold = 0
	cfg.TransposeThreshold = 0
	cfg.MatMulSquareThreshold = 0
	cfg.MatMulWideThreshold = 0
	cfg.MatMulTallThreshold = 0
	cfg.MatVecThreshold = 0
	cfg.SparseThreshold = 0
	return cfg
}
