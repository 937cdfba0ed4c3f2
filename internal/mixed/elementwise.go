// Package mixed implements kernels with one dense and one sparse operand.
//
// Addition and subtraction return dense arrays, since every implicit zero of
// the sparse operand takes the dense value. Multiplication and division only
// visit stored sparse coordinates and keep the sparse structure; an implicit
// zero divided by a dense zero is never computed and stays zero.
//
// The COO kernels accept vectors, matrices and rank-N tensors alike, mapping
// each stored coordinate to its row-major offset in the dense operand.
package mixed

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/dense"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// AddDenseCOO returns d + s as a dense array.
func AddDenseCOO[T algebra.Semiring[T], S tensor.COO[T, S]](d tensor.Dense[T], s S) (tensor.Dense[T], error) {
	return scatter("add dense coo", d, s, add[T])
}

// SubDenseCOO returns d - s as a dense array.
func SubDenseCOO[T algebra.Ring[T], S tensor.COO[T, S]](d tensor.Dense[T], s S) (tensor.Dense[T], error) {
	return scatter("sub dense coo", d, s, sub[T])
}

// SubCOODense returns s - d as a dense array.
func SubCOODense[T algebra.Ring[T], S tensor.COO[T, S]](s S, d tensor.Dense[T]) (tensor.Dense[T], error) {
	return scatter("sub coo dense", negate(d), s, add[T])
}

// MulDenseCOO returns the element-wise product of d and s with the
// structure of s.
func MulDenseCOO[T algebra.Semiring[T], S tensor.COO[T, S]](d tensor.Dense[T], s S, cfg parallel.Config) (S, error) {
	return mul("mul dense coo", d, s, cfg)
}

// DivCOODense returns s / d at every stored coordinate of s. Floating
// element types follow IEEE semantics; exact types fail with
// tensor.ErrDivisionByZero when a stored coordinate meets a dense zero.
func DivCOODense[T algebra.Field[T], S tensor.COO[T, S]](s S, d tensor.Dense[T], cfg parallel.Config) (S, error) {
	return div("div coo dense", s, d, cfg)
}

// AddDenseCSR returns d + m as a dense array.
func AddDenseCSR[T algebra.Semiring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T]) (tensor.Dense[T], error) {
	return scatter("add dense csr", d, m, add[T])
}

// SubDenseCSR returns d - m as a dense array.
func SubDenseCSR[T algebra.Ring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T]) (tensor.Dense[T], error) {
	return scatter("sub dense csr", d, m, sub[T])
}

// SubCSRDense returns m - d as a dense array.
func SubCSRDense[T algebra.Ring[T]](m tensor.CSRMatrix[T], d tensor.Dense[T]) (tensor.Dense[T], error) {
	return scatter("sub csr dense", negate(d), m, add[T])
}

// MulDenseCSR returns the element-wise product of d and m with the
// structure of m.
func MulDenseCSR[T algebra.Semiring[T]](d tensor.Dense[T], m tensor.CSRMatrix[T], cfg parallel.Config) (tensor.CSRMatrix[T], error) {
	return mul("mul dense csr", d, m, cfg)
}

// DivCSRDense returns m / d at every stored entry of m, with the division
// policy of DivCOODense.
func DivCSRDense[T algebra.Field[T]](m tensor.CSRMatrix[T], d tensor.Dense[T], cfg parallel.Config) (tensor.CSRMatrix[T], error) {
	return div("div csr dense", m, d, cfg)
}

func add[T algebra.Semiring[T]](x, v T) T { return x.Add(v) }
func sub[T algebra.Ring[T]](x, v T) T     { return x.Sub(v) }

// scatter copies d and folds every stored entry of s into the copy.
// Duplicate coordinates are folded in storage order.
func scatter[T any, S tensor.Sparse[T, S]](op string, d tensor.Dense[T], s S, f func(x, v T) T) (tensor.Dense[T], error) {
	if err := check(op, d, s); err != nil {
		return tensor.Dense[T]{}, err
	}
	out := d.Clone()
	values := s.Entries()
	for k, off := range s.Offsets() {
		out.Data[off] = f(out.Data[off], values[k])
	}
	return out, nil
}

func mul[T algebra.Semiring[T], S tensor.Sparse[T, S]](op string, d tensor.Dense[T], s S, cfg parallel.Config) (S, error) {
	var zero S
	if err := check(op, d, s); err != nil {
		return zero, err
	}
	values := s.Entries()
	out := make([]T, len(values))
	if err := dense.MulInto(out, flat(gather(d, s)), flat(values), cfg); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return s.WithEntries(out), nil
}

func div[T algebra.Field[T], S tensor.Sparse[T, S]](op string, s S, d tensor.Dense[T], cfg parallel.Config) (S, error) {
	var zero S
	if err := check(op, d, s); err != nil {
		return zero, err
	}
	values := s.Entries()
	out := make([]T, len(values))
	if err := dense.DivInto(out, flat(values), flat(gather(d, s)), cfg); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return s.WithEntries(out), nil
}

// gather returns the dense values at the stored coordinates of s.
func gather[T any, S tensor.Sparse[T, S]](d tensor.Dense[T], s S) []T {
	offsets := s.Offsets()
	out := make([]T, len(offsets))
	for k, off := range offsets {
		out[k] = d.Data[off]
	}
	return out
}

func negate[T algebra.Ring[T]](d tensor.Dense[T]) tensor.Dense[T] {
	out := tensor.Dense[T]{Shape: d.Shape, Data: make([]T, len(d.Data))}
	for i, x := range d.Data {
		out.Data[i] = x.Neg()
	}
	return out
}

func flat[T any](xs []T) tensor.Dense[T] {
	return tensor.Dense[T]{Shape: tensor.Shape{len(xs)}, Data: xs}
}

func check[T any, S tensor.Sparse[T, S]](op string, d tensor.Dense[T], s S) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return tensor.CheckSameShape(op, d.Shape, s.DenseShape())
}
