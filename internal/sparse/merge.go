// Package sparse implements kernels over coordinate (COO) and compressed
// sparse row (CSR) storage.
//
// Element-wise kernels expect canonical operands (sorted, no duplicate
// coordinates; see Coalesce) and combine them with a single merge-join pass.
// Entries that an operation leaves out are implicitly the additive identity,
// so multiplication keeps only coordinates stored in both operands.
package sparse

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/tensor"
)

// merge walks two sorted entry lists in step. cmp(i, j) orders entry i of the
// left list against entry j of the right. visit receives matched pairs as
// (i, j) and, when union is set, unmatched entries as (i, -1) or (-1, j), in
// ascending coordinate order.
func merge(na, nb int, union bool, cmp func(i, j int) int, visit func(i, j int)) {
	i, j := 0, 0
	for i < na && j < nb {
		switch c := cmp(i, j); {
		case c == 0:
			visit(i, j)
			i++
			j++
		case c < 0:
			if union {
				visit(i, -1)
			}
			i++
		default:
			if union {
				visit(-1, j)
			}
			j++
		}
	}
	if !union {
		return
	}
	for ; i < na; i++ {
		visit(i, -1)
	}
	for ; j < nb; j++ {
		visit(-1, j)
	}
}

// combiner describes how merged values combine. union keeps entries present
// in one operand only, passing them through left or right.
type combiner[T any] struct {
	union bool
	both  func(a, b T) T
	left  func(a T) T
	right func(b T) T
}

// value combines entry i of a with entry j of b; a negative index marks the
// side as absent.
func (c combiner[T]) value(a, b []T, i, j int) T {
	switch {
	case j < 0:
		return c.left(a[i])
	case i < 0:
		return c.right(b[j])
	default:
		return c.both(a[i], b[j])
	}
}

func identity[T any](x T) T { return x }

func adder[T algebra.Semiring[T]]() combiner[T] {
	return combiner[T]{
		union: true,
		both:  func(a, b T) T { return a.Add(b) },
		left:  identity[T],
		right: identity[T],
	}
}

func subtracter[T algebra.Ring[T]]() combiner[T] {
	return combiner[T]{
		union: true,
		both:  func(a, b T) T { return a.Sub(b) },
		left:  identity[T],
		right: func(b T) T { return b.Neg() },
	}
}

func multiplier[T algebra.Semiring[T]]() combiner[T] {
	return combiner[T]{
		both: func(a, b T) T { return a.Mul(b) },
	}
}

type validator interface {
	Validate() error
	IsCanonical() bool
}

// checkCanonical validates x and requires canonical ordering.
func checkCanonical(op, what string, x validator) error {
	if err := x.Validate(); err != nil {
		return fmt.Errorf("%s: %s: %w", op, what, err)
	}
	if !x.IsCanonical() {
		return fmt.Errorf("%s: %s is not sorted and coalesced: %w", op, what, tensor.ErrInvalidArgument)
	}
	return nil
}
