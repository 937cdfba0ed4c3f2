// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/linalg/linalg"
	"github.com/born-ml/linalg/tensor"
)

func mustDense[T any](t *testing.T, shape tensor.Shape, data []T) tensor.Dense[T] {
	t.Helper()
	d, err := tensor.NewDense(shape, data)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	return d
}

// TestCSRMatMul checks the public CSR product against a known result.
func TestCSRMatMul(t *testing.T) {
	cfg := tensor.Sequential()
	a, err := linalg.DenseToCSR(mustDense(t, tensor.Shape{2, 2}, []tensor.Real{1, 0, 0, 2}))
	if err != nil {
		t.Fatalf("DenseToCSR failed: %v", err)
	}
	b, err := linalg.DenseToCSR(mustDense(t, tensor.Shape{2, 2}, []tensor.Real{3, 0, 0, 4}))
	if err != nil {
		t.Fatalf("DenseToCSR failed: %v", err)
	}

	got, err := linalg.MatMulCSRToDense(a, b, cfg)
	if err != nil {
		t.Fatalf("MatMulCSRToDense failed: %v", err)
	}
	want := mustDense(t, tensor.Shape{2, 2}, []tensor.Real{3, 0, 0, 8})
	if !linalg.Equal(want, got) {
		t.Errorf("MatMulCSRToDense = %v, want %v", got.Data, want.Data)
	}
}

func TestIsSymmetric(t *testing.T) {
	build := func(v tensor.Real) tensor.CSRMatrix[tensor.Real] {
		m, err := linalg.CSRFromCOO(tensor.COOMatrix[tensor.Real]{
			Rows: 2, Cols: 2,
			RowIndices: []int{0, 1},
			ColIndices: []int{1, 0},
			Values:     []tensor.Real{5, v},
		})
		if err != nil {
			t.Fatalf("CSRFromCOO failed: %v", err)
		}
		return m
	}
	if !linalg.IsSymmetric(build(5)) {
		t.Error("{(0,1,5),(1,0,5)} should be symmetric")
	}
	if linalg.IsSymmetric(build(6)) {
		t.Error("{(0,1,5),(1,0,6)} should not be symmetric")
	}
}

func TestNorms(t *testing.T) {
	tests := []struct {
		name string
		xs   []tensor.Real
		p    float64
		want float64
	}{
		{"L2 of [3, 4]", []tensor.Real{3, 4}, 2, 5},
		{"L1 of ones", []tensor.Real{1, 1, 1, 1}, 1, 4},
		{"max of ones", []tensor.Real{1, 1, 1, 1}, math.Inf(1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := linalg.Norm(tt.xs, tt.p)
			if err != nil {
				t.Fatalf("Norm failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Norm = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := linalg.Norm([]tensor.Real{1}, 0); !errors.Is(err, tensor.ErrInvalidArgument) {
		t.Errorf("Norm(p=0) error = %v, want ErrInvalidArgument", err)
	}
}

// TestDivisionPolicy checks IEEE division for floats and a hard failure for
// exact elements.
func TestDivisionPolicy(t *testing.T) {
	cfg := tensor.Sequential()

	reals, err := linalg.Div(
		mustDense(t, tensor.Shape{2}, []tensor.Real{1, -1}),
		mustDense(t, tensor.Shape{2}, []tensor.Real{0, 0}), cfg)
	if err != nil {
		t.Fatalf("Div on reals failed: %v", err)
	}
	if reals.Data[0] != tensor.Real(math.Inf(1)) || reals.Data[1] != tensor.Real(math.Inf(-1)) {
		t.Errorf("Div on reals = %v, want [+Inf -Inf]", reals.Data)
	}

	a := mustDense(t, tensor.Shape{1}, []tensor.Rational{tensor.Int(1)})
	z := mustDense(t, tensor.Shape{1}, []tensor.Rational{tensor.Int(0)})
	if _, err := linalg.Div(a, z, cfg); !errors.Is(err, tensor.ErrDivisionByZero) {
		t.Errorf("Div on rationals error = %v, want ErrDivisionByZero", err)
	}
}

// TestBridgeAdd checks that adding a COO matrix to a dense array matches
// adding its dense form.
func TestBridgeAdd(t *testing.T) {
	cfg := tensor.Sequential()
	d := mustDense(t, tensor.Shape{2, 3}, []tensor.Real{1, 2, 3, 4, 5, 6})
	s, err := linalg.DenseToCOO(mustDense(t, tensor.Shape{2, 3}, []tensor.Real{0, 7, 0, 0, 0, -1}))
	if err != nil {
		t.Fatalf("DenseToCOO failed: %v", err)
	}

	got, err := linalg.AddDenseCOO(d, s)
	if err != nil {
		t.Fatalf("AddDenseCOO failed: %v", err)
	}
	sd, err := linalg.COOToDense(s)
	if err != nil {
		t.Fatalf("COOToDense failed: %v", err)
	}
	want, err := linalg.Add(sd, d, cfg)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !linalg.Equal(want, got) {
		t.Errorf("AddDenseCOO = %v, want %v", got.Data, want.Data)
	}
}

// TestCanonicalize checks that unsorted operands with duplicates can be
// brought into canonical form through the public API.
func TestCanonicalize(t *testing.T) {
	v := tensor.COOVector[tensor.Real]{Size: 4, Indices: []int{3, 1, 3}, Values: []tensor.Real{1, 2, 4}}
	w := tensor.COOVector[tensor.Real]{Size: 4, Indices: []int{0, 3}, Values: []tensor.Real{1, 1}}

	if _, err := linalg.AddCOOVectors(v, w); !errors.Is(err, tensor.ErrInvalidArgument) {
		t.Fatalf("AddCOOVectors on unsorted operand: got %v", err)
	}
	sum, err := linalg.AddCOOVectors(linalg.CoalesceVector(v), w)
	if err != nil {
		t.Fatalf("AddCOOVectors failed: %v", err)
	}
	got, err := linalg.COOVectorToDense(sum)
	if err != nil {
		t.Fatalf("COOVectorToDense failed: %v", err)
	}
	want := []tensor.Real{1, 2, 0, 6}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Errorf("sum[%d] = %v, want %v", i, got.Data[i], want[i])
		}
	}

	x := tensor.COOTensor[tensor.Real]{
		Shape:   tensor.Shape{2, 2, 2},
		Indices: [][]int{{1, 1, 1}, {0, 0, 1}, {1, 1, 1}},
		Values:  []tensor.Real{1, 2, 3},
	}
	c := linalg.CoalesceTensor(x)
	if c.NNZ() != 2 || c.Values[0] != 2 || c.Values[1] != 4 {
		t.Fatalf("CoalesceTensor = %v %v", c.Indices, c.Values)
	}
	d, err := linalg.COOTensorToDense(c)
	if err != nil {
		t.Fatalf("COOTensorToDense failed: %v", err)
	}
	if d.Data[1] != 2 || d.Data[7] != 4 {
		t.Errorf("COOTensorToDense = %v", d.Data)
	}
	back, err := linalg.DenseToCOOTensor(d)
	if err != nil {
		t.Fatalf("DenseToCOOTensor failed: %v", err)
	}
	if back.NNZ() != 2 || !back.IsCanonical() {
		t.Errorf("DenseToCOOTensor = %v %v", back.Indices, back.Values)
	}

	dropped := linalg.DropZerosVector(tensor.COOVector[tensor.Real]{Size: 3, Indices: []int{0, 2}, Values: []tensor.Real{0, 5}})
	if dropped.NNZ() != 1 || dropped.Indices[0] != 2 {
		t.Errorf("DropZerosVector = %v %v", dropped.Indices, dropped.Values)
	}
}

func TestScalarIntoAliased(t *testing.T) {
	cfg := tensor.Sequential()
	a := mustDense(t, tensor.Shape{3}, []tensor.Real{1, 2, 4})
	if err := linalg.MulScalarInto(a.Data, a, 3, cfg); err != nil {
		t.Fatalf("MulScalarInto failed: %v", err)
	}
	if err := linalg.SubScalarInto(a.Data, a, 1, cfg); err != nil {
		t.Fatalf("SubScalarInto failed: %v", err)
	}
	want := []tensor.Real{2, 5, 11}
	for i := range want {
		if a.Data[i] != want[i] {
			t.Errorf("a[%d] = %v, want %v", i, a.Data[i], want[i])
		}
	}

	bad := tensor.Dense[tensor.Real]{Shape: tensor.Shape{2, 2}, Data: []tensor.Real{1}}
	if _, err := linalg.AddScalar(bad, 1, cfg); !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("AddScalar on malformed array: got %v", err)
	}
}

func TestMatMulStrategies(t *testing.T) {
	cfg := tensor.Sequential()
	a := mustDense(t, tensor.Shape{2, 3}, []tensor.Real{1, 2, 3, 4, 5, 6})
	b := mustDense(t, tensor.Shape{3, 2}, []tensor.Real{7, 8, 9, 10, 11, 12})
	want := mustDense(t, tensor.Shape{2, 2}, []tensor.Real{58, 64, 139, 154})

	for _, s := range []linalg.MatMulStrategy{linalg.Standard, linalg.Blocked, linalg.Concurrent, linalg.BlockedConcurrent} {
		got, err := linalg.MatMulWith(s, a, b, cfg)
		if err != nil {
			t.Fatalf("MatMulWith(%s) failed: %v", s, err)
		}
		if !linalg.Equal(want, got) {
			t.Errorf("MatMulWith(%s) = %v", s, got.Data)
		}
	}
	if s := linalg.SelectMatMul(2, 3, 2, 64, cfg); s != linalg.Standard {
		t.Errorf("SelectMatMul = %s, want standard", s)
	}

	src := []tensor.Real{1, 2, 3, 4, 5, 6}
	dst := make([]tensor.Real, 6)
	if err := linalg.TransposeBlocked(dst, src, 2, 3, 2); err != nil {
		t.Fatalf("TransposeBlocked failed: %v", err)
	}
	if dst[1] != 4 || dst[2] != 2 {
		t.Errorf("TransposeBlocked = %v", dst)
	}
	if got := linalg.MaxAbs([]tensor.Real{-7, 3}); got != 7 {
		t.Errorf("MaxAbs = %v", got)
	}
}
