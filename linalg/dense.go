// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/linalg/internal/dense"
	"github.com/born-ml/linalg/tensor"
)

// Element-wise arithmetic on equally shaped dense arrays.

// Add returns a + b element-wise.
func Add[T tensor.Semiring[T]](a, b tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Add(a, b, cfg)
}

// Sub returns a - b element-wise.
func Sub[T tensor.Ring[T]](a, b tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Sub(a, b, cfg)
}

// Mul returns the Hadamard product of a and b.
func Mul[T tensor.Semiring[T]](a, b tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Mul(a, b, cfg)
}

// Div returns a / b element-wise. Floating types follow IEEE semantics;
// exact types fail with ErrDivisionByZero.
func Div[T tensor.Field[T]](a, b tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Div(a, b, cfg)
}

// AddInto writes a + b into dst, which may alias either operand.
func AddInto[T tensor.Semiring[T]](dst []T, a, b tensor.Dense[T], cfg tensor.Config) error {
	return dense.AddInto(dst, a, b, cfg)
}

// SubInto writes a - b into dst, which may alias either operand.
func SubInto[T tensor.Ring[T]](dst []T, a, b tensor.Dense[T], cfg tensor.Config) error {
	return dense.SubInto(dst, a, b, cfg)
}

// MulInto writes the Hadamard product of a and b into dst.
func MulInto[T tensor.Semiring[T]](dst []T, a, b tensor.Dense[T], cfg tensor.Config) error {
	return dense.MulInto(dst, a, b, cfg)
}

// DivInto writes a / b into dst. dst is untouched when an exact divisor is zero.
func DivInto[T tensor.Field[T]](dst []T, a, b tensor.Dense[T], cfg tensor.Config) error {
	return dense.DivInto(dst, a, b, cfg)
}

// Scalar and unary kernels. Every ...Into form writes into a borrowed dst
// that may alias a.Data.

// AddScalar returns a + s.
func AddScalar[T tensor.Semiring[T]](a tensor.Dense[T], s T, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.AddScalar(a, s, cfg)
}

// AddScalarInto writes a + s into dst.
func AddScalarInto[T tensor.Semiring[T]](dst []T, a tensor.Dense[T], s T, cfg tensor.Config) error {
	return dense.AddScalarInto(dst, a, s, cfg)
}

// SubScalar returns a - s.
func SubScalar[T tensor.Ring[T]](a tensor.Dense[T], s T, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.SubScalar(a, s, cfg)
}

// SubScalarInto writes a - s into dst.
func SubScalarInto[T tensor.Ring[T]](dst []T, a tensor.Dense[T], s T, cfg tensor.Config) error {
	return dense.SubScalarInto(dst, a, s, cfg)
}

// ScalarSub returns s - a.
func ScalarSub[T tensor.Ring[T]](s T, a tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.ScalarSub(s, a, cfg)
}

// ScalarSubInto writes s - a into dst.
func ScalarSubInto[T tensor.Ring[T]](dst []T, s T, a tensor.Dense[T], cfg tensor.Config) error {
	return dense.ScalarSubInto(dst, s, a, cfg)
}

// MulScalar returns a * s.
func MulScalar[T tensor.Semiring[T]](a tensor.Dense[T], s T, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.MulScalar(a, s, cfg)
}

// MulScalarInto writes a * s into dst.
func MulScalarInto[T tensor.Semiring[T]](dst []T, a tensor.Dense[T], s T, cfg tensor.Config) error {
	return dense.MulScalarInto(dst, a, s, cfg)
}

// DivScalar returns a / s.
func DivScalar[T tensor.Field[T]](a tensor.Dense[T], s T, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.DivScalar(a, s, cfg)
}

// DivScalarInto writes a / s into dst.
func DivScalarInto[T tensor.Field[T]](dst []T, a tensor.Dense[T], s T, cfg tensor.Config) error {
	return dense.DivScalarInto(dst, a, s, cfg)
}

// ScalarDiv returns s / a.
func ScalarDiv[T tensor.Field[T]](s T, a tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.ScalarDiv(s, a, cfg)
}

// ScalarDivInto writes s / a into dst.
func ScalarDivInto[T tensor.Field[T]](dst []T, s T, a tensor.Dense[T], cfg tensor.Config) error {
	return dense.ScalarDivInto(dst, s, a, cfg)
}

// Reciprocal returns 1 / a.
func Reciprocal[T tensor.Field[T]](a tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Reciprocal(a, cfg)
}

// ReciprocalInto writes 1 / a into dst.
func ReciprocalInto[T tensor.Field[T]](dst []T, a tensor.Dense[T], cfg tensor.Config) error {
	return dense.ReciprocalInto(dst, a, cfg)
}

// Neg returns -a.
func Neg[T tensor.Ring[T]](a tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Neg(a, cfg)
}

// NegInto writes -a into dst.
func NegInto[T tensor.Ring[T]](dst []T, a tensor.Dense[T], cfg tensor.Config) error {
	return dense.NegInto(dst, a, cfg)
}

// Sqrt returns the element-wise principal square root of a.
func Sqrt[T tensor.Field[T]](a tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Sqrt(a, cfg)
}

// SqrtInto writes the element-wise square root of a into dst.
func SqrtInto[T tensor.Field[T]](dst []T, a tensor.Dense[T], cfg tensor.Config) error {
	return dense.SqrtInto(dst, a, cfg)
}

// Conj returns the element-wise conjugate of a.
func Conj[T tensor.Field[T]](a tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Conj(a, cfg)
}

// ConjInto writes the element-wise conjugate of a into dst.
func ConjInto[T tensor.Field[T]](dst []T, a tensor.Dense[T], cfg tensor.Config) error {
	return dense.ConjInto(dst, a, cfg)
}

// Round rounds half away from zero to decimals places.
func Round[T tensor.Roundable[T]](a tensor.Dense[T], decimals int, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Round(a, decimals, cfg)
}

// RoundInto writes a rounded to decimals places into dst.
func RoundInto[T tensor.Roundable[T]](dst []T, a tensor.Dense[T], decimals int, cfg tensor.Config) error {
	return dense.RoundInto(dst, a, decimals, cfg)
}

// RoundToZero replaces every element with magnitude below threshold by zero.
func RoundToZero[T tensor.Ring[T]](a tensor.Dense[T], threshold float64, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.RoundToZero(a, threshold, cfg)
}

// RoundToZeroInto writes a into dst with small magnitudes replaced by zero.
func RoundToZeroInto[T tensor.Ring[T]](dst []T, a tensor.Dense[T], threshold float64, cfg tensor.Config) error {
	return dense.RoundToZeroInto(dst, a, threshold, cfg)
}

// Shape manipulation.

// Transpose returns the transpose of a rank-2 array.
func Transpose[T any](m tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Transpose(m, cfg)
}

// TransposeNaive writes the transpose of the rows x cols matrix src into dst.
// dst must not alias src.
func TransposeNaive[T any](dst, src []T, rows, cols int) error {
	return dense.TransposeNaive(dst, src, rows, cols)
}

// TransposeBlocked is TransposeNaive over square tiles of edge block.
func TransposeBlocked[T any](dst, src []T, rows, cols, block int) error {
	return dense.TransposeBlocked(dst, src, rows, cols, block)
}

// TransposeConcurrent is TransposeNaive with columns split across workers.
func TransposeConcurrent[T any](dst, src []T, rows, cols int, cfg tensor.Config) error {
	return dense.TransposeConcurrent(dst, src, rows, cols, cfg)
}

// TransposeBlockedConcurrent is TransposeBlocked with column blocks split
// across workers.
func TransposeBlockedConcurrent[T any](dst, src []T, rows, cols, block int, cfg tensor.Config) error {
	return dense.TransposeBlockedConcurrent(dst, src, rows, cols, block, cfg)
}

// ConjTranspose returns the conjugate transpose of a rank-2 array.
func ConjTranspose[T tensor.Field[T]](m tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.ConjTranspose(m, cfg)
}

// SwapAxes exchanges axes i and j of an array of rank 2 or more.
func SwapAxes[T any](a tensor.Dense[T], i, j int, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.SwapAxes(a, i, j, cfg)
}

// Permute reorders the axes of a so that axis k of the result is axis axes[k] of a.
func Permute[T any](a tensor.Dense[T], axes []int, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.Permute(a, axes, cfg)
}

// Products.

// MatMulStrategy identifies a matrix-multiplication implementation.
type MatMulStrategy = dense.MatMulStrategy

// Matrix-multiplication strategies; all of them give bit-identical results.
const (
	Standard          = dense.Standard
	Blocked           = dense.Blocked
	Concurrent        = dense.Concurrent
	BlockedConcurrent = dense.BlockedConcurrent
	MatVecSequential  = dense.MatVecSequential
	MatVecParallel    = dense.MatVecParallel
)

// MatMul returns a @ b, picking a strategy from the problem shape and cfg.
func MatMul[T tensor.Semiring[T]](a, b tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.MatMul(a, b, cfg)
}

// MatMulWith returns a @ b computed with strategy s.
func MatMulWith[T tensor.Semiring[T]](s MatMulStrategy, a, b tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.MatMulWith(s, a, b, cfg)
}

// SelectMatMul reports the strategy MatMul uses for an (m x k) @ (k x n)
// product with tiles of edge block.
func SelectMatMul(m, k, n, block int, cfg tensor.Config) MatMulStrategy {
	return dense.SelectMatMul(m, k, n, block, cfg)
}

// TensorDot contracts aAxes of a against bAxes of b.
func TensorDot[T tensor.Semiring[T]](a, b tensor.Dense[T], aAxes, bAxes []int, cfg tensor.Config) (tensor.Dense[T], error) {
	return dense.TensorDot(a, b, aAxes, bAxes, cfg)
}

// Norms and comparison.

// Norm returns the p-norm of xs. p may be ±Inf; p == 0 is rejected.
func Norm[T tensor.Ring[T]](xs []T, p float64) (float64, error) {
	return dense.Norm(xs, p)
}

// MaxAbs returns the largest magnitude in xs.
func MaxAbs[T tensor.Ring[T]](xs []T) float64 {
	return dense.MaxAbs(xs)
}

// MinAbs returns the smallest magnitude in xs.
func MinAbs[T tensor.Ring[T]](xs []T) float64 {
	return dense.MinAbs(xs)
}

// MatrixNorm returns the L_{p,q} norm of a rank-2 array.
func MatrixNorm[T tensor.Ring[T]](m tensor.Dense[T], p, q float64) (float64, error) {
	return dense.MatrixNorm(m, p, q)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T tensor.Semiring[T]](a, b tensor.Dense[T]) bool {
	return dense.Equal(a, b)
}

// AllClose reports whether a and b agree within tol, absolutely or relatively.
func AllClose[T tensor.Ring[T]](a, b tensor.Dense[T], tol float64) bool {
	return dense.AllClose(a, b, tol)
}
