// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/linalg/internal/sparse"
	"github.com/born-ml/linalg/tensor"
)

// COO kernels. Element-wise operands must be sorted and free of duplicate
// coordinates; use Coalesce, CoalesceVector or CoalesceTensor first otherwise.

// AddCOO returns a + b.
func AddCOO[T tensor.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	return sparse.AddMatrices(a, b)
}

// SubCOO returns a - b.
func SubCOO[T tensor.Ring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	return sparse.SubMatrices(a, b)
}

// MulCOO returns the element-wise product; only coordinates stored in both
// operands appear in the result.
func MulCOO[T tensor.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	return sparse.MulMatrices(a, b)
}

// AddCOOVectors returns a + b.
func AddCOOVectors[T tensor.Semiring[T]](a, b tensor.COOVector[T]) (tensor.COOVector[T], error) {
	return sparse.AddVectors(a, b)
}

// SubCOOVectors returns a - b.
func SubCOOVectors[T tensor.Ring[T]](a, b tensor.COOVector[T]) (tensor.COOVector[T], error) {
	return sparse.SubVectors(a, b)
}

// MulCOOVectors returns the element-wise product of a and b.
func MulCOOVectors[T tensor.Semiring[T]](a, b tensor.COOVector[T]) (tensor.COOVector[T], error) {
	return sparse.MulVectors(a, b)
}

// DotCOO returns the inner product of a and b.
func DotCOO[T tensor.Semiring[T]](a, b tensor.COOVector[T]) (T, error) {
	return sparse.DotVectors(a, b)
}

// OuterCOO returns the dense outer product of two sparse vectors.
func OuterCOO[T tensor.Semiring[T]](a, b tensor.COOVector[T]) (tensor.Dense[T], error) {
	return sparse.OuterVectors(a, b)
}

// NormCOO returns the p-norm of the stored values of v.
func NormCOO[T tensor.Ring[T]](v tensor.COOVector[T], p float64) (float64, error) {
	return sparse.VectorNorm(v, p)
}

// AddCOOTensors returns a + b.
func AddCOOTensors[T tensor.Semiring[T]](a, b tensor.COOTensor[T]) (tensor.COOTensor[T], error) {
	return sparse.AddTensors(a, b)
}

// SubCOOTensors returns a - b.
func SubCOOTensors[T tensor.Ring[T]](a, b tensor.COOTensor[T]) (tensor.COOTensor[T], error) {
	return sparse.SubTensors(a, b)
}

// MulCOOTensors returns the element-wise product of a and b.
func MulCOOTensors[T tensor.Semiring[T]](a, b tensor.COOTensor[T]) (tensor.COOTensor[T], error) {
	return sparse.MulTensors(a, b)
}

// MatMulCOO returns a @ b as a dense array.
func MatMulCOO[T tensor.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.Dense[T], error) {
	return sparse.MatMulCOO(a, b)
}

// MatMulCOOSparse returns a @ b in canonical COO form.
func MatMulCOOSparse[T tensor.Semiring[T]](a, b tensor.COOMatrix[T]) (tensor.COOMatrix[T], error) {
	return sparse.MatMulCOOSparse(a, b)
}

// MatVecCOO returns a @ x as a dense vector.
func MatVecCOO[T tensor.Semiring[T]](a tensor.COOMatrix[T], x tensor.COOVector[T]) (tensor.Dense[T], error) {
	return sparse.MatVecCOO(a, x)
}

// MatVecCOOConcurrent is MatVecCOO with the entries of a split across
// workers. All workers share one lock on the result, so it rarely beats the
// sequential kernel; for non-associative floating sums the result may differ
// in the last bits.
func MatVecCOOConcurrent[T tensor.Semiring[T]](a tensor.COOMatrix[T], x tensor.COOVector[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return sparse.MatVecCOOConcurrent(a, x, cfg)
}

// TransposeCOO returns the canonical transpose of m.
func TransposeCOO[T any](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	return sparse.TransposeCOO(m)
}

// COO structure and conversions.

// SortCOO returns m with entries in (row, col) order.
func SortCOO[T any](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	return sparse.SortCOO(m)
}

// SortCOOVector returns v with ascending indices.
func SortCOOVector[T any](v tensor.COOVector[T]) tensor.COOVector[T] {
	return sparse.SortCOOVector(v)
}

// SortCOOTensor returns t with coordinates in lexicographic order.
func SortCOOTensor[T any](t tensor.COOTensor[T]) tensor.COOTensor[T] {
	return sparse.SortCOOTensor(t)
}

// Coalesce sorts m and sums duplicate coordinates.
func Coalesce[T tensor.Semiring[T]](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	return sparse.Coalesce(m)
}

// CoalesceVector sorts v and sums duplicate indices.
func CoalesceVector[T tensor.Semiring[T]](v tensor.COOVector[T]) tensor.COOVector[T] {
	return sparse.CoalesceVector(v)
}

// CoalesceTensor sorts t and sums duplicate coordinates.
func CoalesceTensor[T tensor.Semiring[T]](t tensor.COOTensor[T]) tensor.COOTensor[T] {
	return sparse.CoalesceTensor(t)
}

// DropZeros removes explicitly stored zeros.
func DropZeros[T tensor.Semiring[T]](m tensor.COOMatrix[T]) tensor.COOMatrix[T] {
	return sparse.DropZeros(m)
}

// DropZerosVector removes explicitly stored zeros from v.
func DropZerosVector[T tensor.Semiring[T]](v tensor.COOVector[T]) tensor.COOVector[T] {
	return sparse.DropZerosVector(v)
}

// DropZerosTensor removes explicitly stored zeros from t.
func DropZerosTensor[T tensor.Semiring[T]](t tensor.COOTensor[T]) tensor.COOTensor[T] {
	return sparse.DropZerosTensor(t)
}

// COOToDense expands m; duplicate coordinates are summed.
func COOToDense[T tensor.Semiring[T]](m tensor.COOMatrix[T]) (tensor.Dense[T], error) {
	return sparse.COOToDense(m)
}

// COOVectorToDense expands v into a rank-1 array.
func COOVectorToDense[T tensor.Semiring[T]](v tensor.COOVector[T]) (tensor.Dense[T], error) {
	return sparse.COOVectorToDense(v)
}

// COOTensorToDense expands t into an array of the same shape.
func COOTensorToDense[T tensor.Semiring[T]](t tensor.COOTensor[T]) (tensor.Dense[T], error) {
	return sparse.COOTensorToDense(t)
}

// DenseToCOO returns the canonical COO form of a rank-2 array.
func DenseToCOO[T tensor.Semiring[T]](d tensor.Dense[T]) (tensor.COOMatrix[T], error) {
	return sparse.DenseToCOO(d)
}

// DenseToCOOVector returns the canonical COO form of a rank-1 array.
func DenseToCOOVector[T tensor.Semiring[T]](d tensor.Dense[T]) (tensor.COOVector[T], error) {
	return sparse.DenseToCOOVector(d)
}

// DenseToCOOTensor returns the canonical COO form of an array of any rank.
func DenseToCOOTensor[T tensor.Semiring[T]](d tensor.Dense[T]) (tensor.COOTensor[T], error) {
	return sparse.DenseToCOOTensor(d)
}

// CSR kernels.

// CSRFromCOO compresses m; duplicates are summed.
func CSRFromCOO[T tensor.Semiring[T]](m tensor.COOMatrix[T]) (tensor.CSRMatrix[T], error) {
	return sparse.CSRFromCOO(m)
}

// CSRToCOO returns the canonical COO form of m.
func CSRToCOO[T any](m tensor.CSRMatrix[T]) (tensor.COOMatrix[T], error) {
	return sparse.CSRToCOO(m)
}

// CSRToDense expands m into a rank-2 array.
func CSRToDense[T tensor.Semiring[T]](m tensor.CSRMatrix[T]) (tensor.Dense[T], error) {
	return sparse.CSRToDense(m)
}

// DenseToCSR compresses a rank-2 array, omitting zeros.
func DenseToCSR[T tensor.Semiring[T]](d tensor.Dense[T]) (tensor.CSRMatrix[T], error) {
	return sparse.DenseToCSR(d)
}

// AddCSR returns a + b.
func AddCSR[T tensor.Semiring[T]](a, b tensor.CSRMatrix[T], cfg tensor.Config) (tensor.CSRMatrix[T], error) {
	return sparse.AddCSR(a, b, cfg)
}

// SubCSR returns a - b.
func SubCSR[T tensor.Ring[T]](a, b tensor.CSRMatrix[T], cfg tensor.Config) (tensor.CSRMatrix[T], error) {
	return sparse.SubCSR(a, b, cfg)
}

// MulCSR returns the element-wise product of a and b.
func MulCSR[T tensor.Semiring[T]](a, b tensor.CSRMatrix[T], cfg tensor.Config) (tensor.CSRMatrix[T], error) {
	return sparse.MulCSR(a, b, cfg)
}

// MatMulCSR returns a @ b in CSR form.
func MatMulCSR[T tensor.Semiring[T]](a, b tensor.CSRMatrix[T], cfg tensor.Config) (tensor.CSRMatrix[T], error) {
	return sparse.MatMulCSR(a, b, cfg)
}

// MatMulCSRToDense returns a @ b as a dense array.
func MatMulCSRToDense[T tensor.Semiring[T]](a, b tensor.CSRMatrix[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return sparse.MatMulCSRToDense(a, b, cfg)
}

// MatVecCSR returns a @ x for a dense vector x.
func MatVecCSR[T tensor.Semiring[T]](a tensor.CSRMatrix[T], x tensor.Dense[T], cfg tensor.Config) (tensor.Dense[T], error) {
	return sparse.MatVecCSR(a, x, cfg)
}

// SwapRows exchanges two rows of m in place.
func SwapRows[T any](m tensor.CSRMatrix[T], i, j int) error {
	return sparse.SwapRows(m, i, j)
}

// SwapCols exchanges two columns of m in place.
func SwapCols[T any](m tensor.CSRMatrix[T], i, j int) error {
	return sparse.SwapCols(m, i, j)
}

// SliceCSR returns rows [r0, r1) and columns [c0, c1) of m.
func SliceCSR[T any](m tensor.CSRMatrix[T], r0, r1, c0, c1 int) (tensor.CSRMatrix[T], error) {
	return sparse.SliceCSR(m, r0, r1, c0, c1)
}

// TransposeCSR returns the transpose of m.
func TransposeCSR[T any](m tensor.CSRMatrix[T]) (tensor.CSRMatrix[T], error) {
	return sparse.TransposeCSR(m)
}

// ConjTransposeCSR returns the conjugate transpose of m.
func ConjTransposeCSR[T tensor.Field[T]](m tensor.CSRMatrix[T]) (tensor.CSRMatrix[T], error) {
	return sparse.ConjTransposeCSR(m)
}

// IsSymmetric reports whether m equals its transpose.
func IsSymmetric[T tensor.Semiring[T]](m tensor.CSRMatrix[T]) bool { return sparse.IsSymmetric(m) }

// IsHermitian reports whether m equals its conjugate transpose.
func IsHermitian[T tensor.Field[T]](m tensor.CSRMatrix[T]) bool { return sparse.IsHermitian(m) }

// IsIdentity reports whether m is a square identity matrix.
func IsIdentity[T tensor.Semiring[T]](m tensor.CSRMatrix[T]) bool { return sparse.IsIdentity(m) }

// IsUpperTriangular reports whether m stores nothing below the diagonal.
func IsUpperTriangular[T tensor.Semiring[T]](m tensor.CSRMatrix[T]) bool {
	return sparse.IsUpperTriangular(m)
}

// IsLowerTriangular reports whether m stores nothing above the diagonal.
func IsLowerTriangular[T tensor.Semiring[T]](m tensor.CSRMatrix[T]) bool {
	return sparse.IsLowerTriangular(m)
}
