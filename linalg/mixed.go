// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/linalg/internal/mixed"
	"github.com/born-ml/linalg/tensor"
)

// Dense and sparse operands together. The COO kernels take vectors,
// matrices and rank-N tensors alike.

// AddDenseCOO returns d + s.
func AddDenseCOO[T tensor.Semiring[T], S tensor.COO[T, S]](d tensor.Dense[T], s S) (tensor.Dense[T], error) {
	return mixed.AddDenseCOO(d, s)
}

// SubDenseCOO returns d - s.
func SubDenseCOO[T tensor.Ring[T], S tensor.COO[T, S]](d tensor.Dense[T], s S) (tensor.Dense[T], error) {
	return mixed.SubDenseCOO(d, s)
}

// SubCOODense returns s - d.
func SubCOODense[T tensor.Ring[T], S tensor.COO[T, S]](s S, d tensor.Dense[T]) (tensor.Dense[T], error) {
	return mixed.SubCOODense(s, d)
}

// MulDenseCOO returns s with every stored entry multiplied by the matching
// element of d.
func MulDenseCOO[T tensor.Semiring[T], S tensor.COO[T, S]](d tensor.Dense[T], s S, cfg tensor.Config) (S, error) {
	return mixed.MulDenseCOO(d, s, cfg)
}

// DivCOODense divides each stored entry of s by the matching element of d.
func DivCOODense[T tensor.Field[T], S tensor.COO[T, S]](s S, d tensor.Dense[T], cfg tensor.Config) (S, error) {
	return mixed.DivCOODense(s, d, cfg)
}

// AddDenseCSR returns d + m.
func AddDenseCSR[T tensor.Semiring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T]) (tensor.Dense[T], error) {
	return mixed.AddDenseCSR(d, m)
}

// SubDenseCSR returns d - m.
func SubDenseCSR[T tensor.Ring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T]) (tensor.Dense[T], error) {
	return mixed.SubDenseCSR(d, m)
}

// SubCSRDense returns m - d.
func SubCSRDense[T tensor.Ring[T]](m tensor.CSRMatrix[T], d tensor.Dense[T]) (tensor.Dense[T], error) {
	return mixed.SubCSRDense(m, d)
}

// MulDenseCSR returns m with every stored entry multiplied by the matching
// element of d.
func MulDenseCSR[T tensor.Semiring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T], cfg tensor.Config) (tensor.CSRMatrix[T], error) {
	return mixed.MulDenseCSR(d, m, cfg)
}

// DivCSRDense divides each stored entry of m by the matching element of d.
func DivCSRDense[T tensor.Field[T]](m tensor.CSRMatrix[T], d tensor.Dense[T], cfg tensor.Config) (tensor.CSRMatrix[T], error) {
	return mixed.DivCSRDense(m, d, cfg)
}

// MatMulDenseCOO returns d @ s.
func MatMulDenseCOO[T tensor.Semiring[T]](d tensor.Dense[T], s tensor.COOMatrix[T]) (tensor.Dense[T], error) {
	return mixed.MatMulDenseCOO(d, s)
}

// MatMulCOODense returns s @ d.
func MatMulCOODense[T tensor.Semiring[T]](s tensor.COOMatrix[T], d tensor.Dense[T]) (tensor.Dense[T], error) {
	return mixed.MatMulCOODense(s, d)
}

// MatMulDenseCSR returns d @ m.
func MatMulDenseCSR[T tensor.Semiring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return mixed.MatMulDenseCSR(d, m, cfg)
}

// MatMulCSRDense returns m @ d.
func MatMulCSRDense[T tensor.Semiring[T]](m tensor.CSRMatrix[T], d tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return mixed.MatMulCSRDense(m, d, cfg)
}
