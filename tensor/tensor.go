// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/linalg/internal/tensor"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a rank-3 array with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a row-major array. Data holds exactly Shape.NumElements() values.
//
// Example:
//
//	m, err := tensor.NewDense(tensor.Shape{2, 3}, []tensor.Real{1, 2, 3, 4, 5, 6})
type Dense[T any] = tensor.Dense[T]

// COOVector is a sparse vector in coordinate form.
type COOVector[T any] = tensor.COOVector[T]

// COOMatrix is a sparse matrix in coordinate form.
type COOMatrix[T any] = tensor.COOMatrix[T]

// COOTensor is a sparse rank-N array in coordinate form.
type COOTensor[T any] = tensor.COOTensor[T]

// CSRMatrix is a sparse matrix in compressed sparse row form.
type CSRMatrix[T any] = tensor.CSRMatrix[T]

// Sparse is the flat view shared by all sparse formats.
type Sparse[T, S any] = tensor.Sparse[T, S]

// COO is the constraint satisfied by the coordinate formats.
type COO[T, S any] = tensor.COO[T, S]

// Kernel errors.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrInvalidArgument  = tensor.ErrInvalidArgument
	ErrInvalidRank      = tensor.ErrInvalidRank
	ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds
	ErrDivisionByZero   = tensor.ErrDivisionByZero
)

// NewDense wraps data with shape without copying it.
func NewDense[T any](shape Shape, data []T) (Dense[T], error) {
	return tensor.NewDense(shape, data)
}

// ZerosDense allocates an array filled with the additive identity.
func ZerosDense[T Semiring[T]](shape Shape) Dense[T] {
	return tensor.ZerosDense[T](shape)
}
