package mixed

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/dense"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/sparse"
	"github.com/born-ml/linalg/internal/tensor"
)

// randomDense returns an array of small integers, about density of them
// non-zero, so floating sums stay exact.
func randomDense(rng *rand.Rand, shape tensor.Shape, density float64) tensor.Dense[algebra.Real] {
	d := tensor.ZerosDense[algebra.Real](shape)
	for i := range d.Data {
		if rng.Float64() < density {
			d.Data[i] = algebra.Real(rng.Intn(9) - 4)
		}
	}
	return d
}

func forceConcurrent() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4
	cfg.MinChunkSize = 1
	cfg.SparseThreshold = 0
	cfg.ElemWiseThreshold = 0
	cfg.ElemWiseObjectThreshold = 0
	return cfg
}

func TestAddDenseCOO_MatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seq := parallel.Sequential()

	for trial := 0; trial < 10; trial++ {
		d := randomDense(rng, tensor.Shape{5, 7}, 0.8)
		s, err := sparse.DenseToCOO(randomDense(rng, tensor.Shape{5, 7}, 0.3))
		require.NoError(t, err)
		sd, err := sparse.COOToDense(s)
		require.NoError(t, err)

		want, err := dense.Add(sd, d, seq)
		require.NoError(t, err)
		got, err := AddDenseCOO(d, s)
		require.NoError(t, err)
		assert.True(t, dense.Equal(want, got))

		want, err = dense.Sub(d, sd, seq)
		require.NoError(t, err)
		got, err = SubDenseCOO(d, s)
		require.NoError(t, err)
		assert.True(t, dense.Equal(want, got))

		want, err = dense.Sub(sd, d, seq)
		require.NoError(t, err)
		got, err = SubCOODense(s, d)
		require.NoError(t, err)
		assert.True(t, dense.Equal(want, got))
	}
}

func TestAddDenseCOO_DoesNotMutateOperand(t *testing.T) {
	d := tensor.Dense[algebra.Real]{Shape: tensor.Shape{2, 2}, Data: []algebra.Real{1, 2, 3, 4}}
	s := tensor.COOMatrix[algebra.Real]{Rows: 2, Cols: 2, RowIndices: []int{1}, ColIndices: []int{0}, Values: []algebra.Real{10}}

	got, err := AddDenseCOO(d, s)
	require.NoError(t, err)
	assert.Equal(t, []algebra.Real{1, 2, 13, 4}, got.Data)
	assert.Equal(t, []algebra.Real{1, 2, 3, 4}, d.Data)
}

func TestAddDenseCOO_Duplicates(t *testing.T) {
	d := tensor.Dense[algebra.Real]{Shape: tensor.Shape{3}, Data: []algebra.Real{1, 1, 1}}
	v := tensor.COOVector[algebra.Real]{Size: 3, Indices: []int{2, 0, 2}, Values: []algebra.Real{1, 5, 2}}

	got, err := AddDenseCOO(d, v)
	require.NoError(t, err)
	assert.Equal(t, []algebra.Real{6, 1, 4}, got.Data)
}

func TestBridgeTensor(t *testing.T) {
	d := tensor.Dense[algebra.Real]{
		Shape: tensor.Shape{2, 2, 2},
		Data:  []algebra.Real{1, 2, 3, 4, 5, 6, 7, 8},
	}
	s := tensor.COOTensor[algebra.Real]{
		Shape:   tensor.Shape{2, 2, 2},
		Indices: [][]int{{0, 0, 1}, {1, 1, 0}},
		Values:  []algebra.Real{10, 20},
	}

	sum, err := AddDenseCOO(d, s)
	require.NoError(t, err)
	assert.Equal(t, []algebra.Real{1, 12, 3, 4, 5, 6, 27, 8}, sum.Data)

	prod, err := MulDenseCOO(d, s, parallel.Sequential())
	require.NoError(t, err)
	assert.Equal(t, []algebra.Real{20, 140}, prod.Values)
	assert.Equal(t, s.Indices, prod.Indices)

	prod.Indices[0][0] = 1
	assert.Equal(t, 0, s.Indices[0][0], "result owns its coordinates")
}

func TestBridge_ShapeMismatch(t *testing.T) {
	d := tensor.ZerosDense[algebra.Real](tensor.Shape{2, 3})
	s := tensor.COOMatrix[algebra.Real]{Rows: 3, Cols: 2}
	v := tensor.COOVector[algebra.Real]{Size: 6}
	m := tensor.CSRMatrix[algebra.Real]{Rows: 3, Cols: 2, RowPointers: []int{0, 0, 0, 0}}

	_, err := AddDenseCOO(d, s)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = SubCOODense(v, d)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch, "element counts agree but shapes differ")
	_, err = MulDenseCOO(d, s, parallel.Sequential())
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = AddDenseCSR(d, m)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = DivCSRDense(m, d, parallel.Sequential())
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	bad := tensor.COOMatrix[algebra.Real]{Rows: 2, Cols: 3, RowIndices: []int{2}, ColIndices: []int{0}, Values: []algebra.Real{1}}
	_, err = AddDenseCOO(d, bad)
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
}

func TestMulDenseCOO_KeepsStructure(t *testing.T) {
	d := tensor.Dense[algebra.Real]{Shape: tensor.Shape{2, 3}, Data: []algebra.Real{1, 0, 2, 3, 4, 5}}
	s := tensor.COOMatrix[algebra.Real]{
		Rows: 2, Cols: 3,
		RowIndices: []int{0, 1, 1},
		ColIndices: []int{1, 0, 2},
		Values:     []algebra.Real{7, 2, -1},
	}

	for _, cfg := range []parallel.Config{parallel.Sequential(), forceConcurrent()} {
		got, err := MulDenseCOO(d, s, cfg)
		require.NoError(t, err)
		want := s.WithEntries([]algebra.Real{0, 6, -5})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("MulDenseCOO (-want +got):\n%s", diff)
		}
	}
}

func TestDivCOODense_IEEE(t *testing.T) {
	d := tensor.Dense[algebra.Real]{Shape: tensor.Shape{4}, Data: []algebra.Real{2, 0, 0, 4}}
	v := tensor.COOVector[algebra.Real]{Size: 4, Indices: []int{0, 1, 3}, Values: []algebra.Real{1, -3, 8}}

	got, err := DivCOODense(v, d, parallel.Sequential())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, got.Indices, "implicit zero over a dense zero is not stored")
	assert.Equal(t, algebra.Real(0.5), got.Values[0])
	assert.True(t, math.IsInf(float64(got.Values[1]), -1))
	assert.Equal(t, algebra.Real(2), got.Values[2])
}

func TestDivCOODense_ExactZero(t *testing.T) {
	d := tensor.Dense[algebra.Rational]{
		Shape: tensor.Shape{2, 2},
		Data:  []algebra.Rational{algebra.Int(2), algebra.Int(0), algebra.Int(0), algebra.Int(3)},
	}
	ok := tensor.COOMatrix[algebra.Rational]{
		Rows: 2, Cols: 2,
		RowIndices: []int{0, 1},
		ColIndices: []int{0, 1},
		Values:     []algebra.Rational{algebra.Int(1), algebra.Int(1)},
	}
	got, err := DivCOODense(ok, d, parallel.Sequential())
	require.NoError(t, err)
	assert.Equal(t, []algebra.Rational{algebra.Frac(1, 2), algebra.Frac(1, 3)}, got.Values)

	bad := tensor.COOMatrix[algebra.Rational]{
		Rows: 2, Cols: 2,
		RowIndices: []int{0},
		ColIndices: []int{1},
		Values:     []algebra.Rational{algebra.Int(1)},
	}
	_, err = DivCOODense(bad, d, parallel.Sequential())
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
}

func TestCSRBridge_MatchesCOO(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seq, conc := parallel.Sequential(), forceConcurrent()

	for trial := 0; trial < 10; trial++ {
		d := randomDense(rng, tensor.Shape{6, 4}, 0.9)
		sd := randomDense(rng, tensor.Shape{6, 4}, 0.4)
		coo, err := sparse.DenseToCOO(sd)
		require.NoError(t, err)
		csr, err := sparse.DenseToCSR(sd)
		require.NoError(t, err)

		wantAdd, _ := AddDenseCOO(d, coo)
		gotAdd, err := AddDenseCSR(d, csr)
		require.NoError(t, err)
		assert.True(t, dense.Equal(wantAdd, gotAdd))

		wantSub, _ := SubDenseCOO(d, coo)
		gotSub, err := SubDenseCSR(d, csr)
		require.NoError(t, err)
		assert.True(t, dense.Equal(wantSub, gotSub))

		wantRev, _ := SubCOODense(coo, d)
		gotRev, err := SubCSRDense(csr, d)
		require.NoError(t, err)
		assert.True(t, dense.Equal(wantRev, gotRev))

		wantMul, _ := MulDenseCOO(d, coo, seq)
		gotMul, err := MulDenseCSR(d, csr, conc)
		require.NoError(t, err)
		assert.Equal(t, csr.RowPointers, gotMul.RowPointers)
		assert.Equal(t, wantMul.Values, gotMul.Values)

		wantDiv, _ := DivCOODense(coo, d, seq)
		gotDiv, err := DivCSRDense(csr, d, conc)
		require.NoError(t, err)
		assert.Equal(t, wantDiv.Values, gotDiv.Values)
	}
}

func TestMixedMatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seq, conc := parallel.Sequential(), forceConcurrent()

	for trial := 0; trial < 10; trial++ {
		a := randomDense(rng, tensor.Shape{5, 6}, 0.9)
		b := randomDense(rng, tensor.Shape{6, 3}, 0.4)
		c := randomDense(rng, tensor.Shape{4, 5}, 0.4)

		bCOO, _ := sparse.DenseToCOO(b)
		bCSR, _ := sparse.DenseToCSR(b)
		cCOO, _ := sparse.DenseToCOO(c)
		cCSR, _ := sparse.DenseToCSR(c)

		ab, err := dense.MatMul(a, b, seq)
		require.NoError(t, err)
		ca, err := dense.MatMul(c, a, seq)
		require.NoError(t, err)

		got, err := MatMulDenseCOO(a, bCOO)
		require.NoError(t, err)
		assert.True(t, dense.Equal(ab, got), "dense @ coo")

		got, err = MatMulCOODense(cCOO, a)
		require.NoError(t, err)
		assert.True(t, dense.Equal(ca, got), "coo @ dense")

		for _, cfg := range []parallel.Config{seq, conc} {
			got, err = MatMulDenseCSR(a, bCSR, cfg)
			require.NoError(t, err)
			assert.True(t, dense.Equal(ab, got), "dense @ csr")

			got, err = MatMulCSRDense(cCSR, a, cfg)
			require.NoError(t, err)
			assert.True(t, dense.Equal(ca, got), "csr @ dense")
		}
	}
}

func TestMixedMatMul_Errors(t *testing.T) {
	a := tensor.ZerosDense[algebra.Real](tensor.Shape{2, 3})
	s := tensor.COOMatrix[algebra.Real]{Rows: 2, Cols: 2}
	m := tensor.CSRMatrix[algebra.Real]{Rows: 2, Cols: 2, RowPointers: []int{0, 0, 0}}

	_, err := MatMulDenseCOO(a, s)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = MatMulDenseCSR(a, m, parallel.Sequential())
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = MatMulCOODense(s, a)
	assert.NoError(t, err)
	_, err = MatMulCSRDense(m, tensor.ZerosDense[algebra.Real](tensor.Shape{3, 2}), parallel.Sequential())
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = MatMulCOODense(s, tensor.ZerosDense[algebra.Real](tensor.Shape{4}))
	assert.ErrorIs(t, err, tensor.ErrInvalidRank)
}

func BenchmarkMatMulCSRDense(b *testing.B) {
	rng := rand.New(rand.NewSource(4))
	m, _ := sparse.DenseToCSR(randomDense(rng, tensor.Shape{256, 256}, 0.05))
	d := randomDense(rng, tensor.Shape{256, 64}, 1)
	for _, c := range []struct {
		name string
		cfg  parallel.Config
	}{{"sequential", parallel.Sequential()}, {"concurrent", forceConcurrent()}} {
		b.Run(c.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = MatMulCSRDense(m, d, c.cfg)
			}
		})
	}
}
