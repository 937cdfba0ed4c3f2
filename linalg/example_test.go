// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg_test

import (
	"fmt"

	"github.com/born-ml/linalg/linalg"
	"github.com/born-ml/linalg/tensor"
)

func ExampleMatMul() {
	a, _ := tensor.NewDense(tensor.Shape{2, 2}, []tensor.Real{1, 0, 0, 2})
	b, _ := tensor.NewDense(tensor.Shape{2, 2}, []tensor.Real{3, 0, 0, 4})

	c, err := linalg.MatMul(a, b, tensor.Sequential())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Shape, c.Data)
	// Output: [2 2] [3 0 0 8]
}

func ExampleMulCSR() {
	a, _ := linalg.CSRFromCOO(tensor.COOMatrix[tensor.Rational]{
		Rows: 2, Cols: 2,
		RowIndices: []int{0, 1},
		ColIndices: []int{0, 1},
		Values:     []tensor.Rational{tensor.Frac(1, 2), tensor.Int(3)},
	})
	b, _ := linalg.CSRFromCOO(tensor.COOMatrix[tensor.Rational]{
		Rows: 2, Cols: 2,
		RowIndices: []int{0, 0},
		ColIndices: []int{0, 1},
		Values:     []tensor.Rational{tensor.Frac(2, 3), tensor.Int(5)},
	})

	c, err := linalg.MulCSR(a, b, tensor.Sequential())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.RowPointers, c.ColIndices, c.Values)
	// Output: [0 1 1] [0] [1/3]
}
