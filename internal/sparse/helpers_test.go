package sparse

import (
	"math/rand"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// randomDense returns a rows x cols array with small integer values, about
// density of them non-zero. Integer values keep floating sums exact.
func randomDense(rng *rand.Rand, rows, cols int, density float64) tensor.Dense[algebra.Real] {
	d := tensor.ZerosDense[algebra.Real](tensor.Shape{rows, cols})
	for i := range d.Data {
		if rng.Float64() < density {
			d.Data[i] = algebra.Real(rng.Intn(9) - 4)
		}
	}
	return d
}

func randomCOO(rng *rand.Rand, rows, cols int, density float64) tensor.COOMatrix[algebra.Real] {
	m, err := DenseToCOO(randomDense(rng, rows, cols, density))
	if err != nil {
		panic(err)
	}
	return m
}

func randomCSR(rng *rand.Rand, rows, cols int, density float64) tensor.CSRMatrix[algebra.Real] {
	m, err := DenseToCSR(randomDense(rng, rows, cols, density))
	if err != nil {
		panic(err)
	}
	return m
}

func randomVector(rng *rand.Rand, size int, density float64) tensor.COOVector[algebra.Real] {
	v := tensor.COOVector[algebra.Real]{Size: size, Indices: []int{}, Values: []algebra.Real{}}
	for i := 0; i < size; i++ {
		if rng.Float64() < density {
			v.Indices = append(v.Indices, i)
			v.Values = append(v.Values, algebra.Real(rng.Intn(9)-4))
		}
	}
	return v
}

func csrOf(rows, cols int, entries ...[3]float64) tensor.CSRMatrix[algebra.Real] {
	coo := tensor.COOMatrix[algebra.Real]{Rows: rows, Cols: cols}
	for _, e := range entries {
		coo.RowIndices = append(coo.RowIndices, int(e[0]))
		coo.ColIndices = append(coo.ColIndices, int(e[1]))
		coo.Values = append(coo.Values, algebra.Real(e[2]))
	}
	m, err := CSRFromCOO(coo)
	if err != nil {
		panic(err)
	}
	return m
}

func forceConcurrent() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4
	cfg.MinChunkSize = 1
	cfg.SparseThreshold = 0
	return cfg
}
