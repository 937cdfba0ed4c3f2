package tensor

import (
	"errors"
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
)

// Kernel errors. Kernels wrap these with operation context, so callers match
// them with errors.Is.
var (
	ErrShapeMismatch    = errors.New("tensor: shape mismatch")
	ErrInvalidArgument  = errors.New("tensor: invalid argument")
	ErrInvalidRank      = errors.New("tensor: invalid rank")
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrDivisionByZero is the algebra sentinel, re-exported so callers of the
	// kernels need a single import for the whole taxonomy.
	ErrDivisionByZero = algebra.ErrDivisionByZero
)

// CheckSameShape fails with ErrShapeMismatch unless a and b are equal.
func CheckSameShape(op string, a, b Shape) error {
	if !a.Equal(b) {
		return fmt.Errorf("%s: shapes %v and %v: %w", op, a, b, ErrShapeMismatch)
	}
	return nil
}

// CheckLen fails with ErrShapeMismatch when a buffer does not hold exactly n elements.
func CheckLen(op, what string, got, n int) error {
	if got != n {
		return fmt.Errorf("%s: %s has %d elements, want %d: %w", op, what, got, n, ErrShapeMismatch)
	}
	return nil
}

// CheckIndex fails with ErrIndexOutOfBounds unless 0 <= i < n.
func CheckIndex(op, what string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s: %s %d out of range [0, %d): %w", op, what, i, n, ErrIndexOutOfBounds)
	}
	return nil
}
