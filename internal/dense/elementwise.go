// Package dense implements kernels over row-major dense arrays: element-wise
// and scalar arithmetic, transposes, matrix multiplication, tensor
// contraction, norms and comparisons.
//
// Kernels validate every operand before touching a destination, then run
// either a sequential loop or a partitioned loop on the parallel worker pool
// depending on the problem size and the supplied parallel.Config.
//
// Element types backed by machine numbers (algebra.Real, Real32, Complex)
// take a native fast path with IEEE division semantics; every other type goes
// through its algebra contract methods.
package dense

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

// native is the set of element representations with hardware arithmetic.
type native interface {
	~float32 | ~float64 | ~complex128
}

// Add returns a + b element-wise.
func Add[T algebra.Semiring[T]](a, b tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return AddInto(dst, a, b, cfg) })
}

// AddInto writes a + b into dst, which may alias a.Data or b.Data.
func AddInto[T algebra.Semiring[T]](dst []T, a, b tensor.Dense[T], cfg parallel.Config) error {
	if err := checkBinary("add", dst, a, b); err != nil {
		return err
	}
	if nativeBinary(dst, a.Data, b.Data, opAdd, cfg) {
		return nil
	}
	run[T](len(dst), cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = a.Data[i].Add(b.Data[i])
		}
	})
	return nil
}

// Sub returns a - b element-wise.
func Sub[T algebra.Ring[T]](a, b tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return SubInto(dst, a, b, cfg) })
}

// SubInto writes a - b into dst, which may alias a.Data or b.Data.
func SubInto[T algebra.Ring[T]](dst []T, a, b tensor.Dense[T], cfg parallel.Config) error {
	if err := checkBinary("sub", dst, a, b); err != nil {
		return err
	}
	if nativeBinary(dst, a.Data, b.Data, opSub, cfg) {
		return nil
	}
	run[T](len(dst), cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = a.Data[i].Sub(b.Data[i])
		}
	})
	return nil
}

// Mul returns the Hadamard product of a and b.
func Mul[T algebra.Semiring[T]](a, b tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return MulInto(dst, a, b, cfg) })
}

// MulInto writes the Hadamard product of a and b into dst, which may alias
// a.Data or b.Data.
func MulInto[T algebra.Semiring[T]](dst []T, a, b tensor.Dense[T], cfg parallel.Config) error {
	if err := checkBinary("mul", dst, a, b); err != nil {
		return err
	}
	if nativeBinary(dst, a.Data, b.Data, opMul, cfg) {
		return nil
	}
	run[T](len(dst), cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = a.Data[i].Mul(b.Data[i])
		}
	})
	return nil
}

// Div returns a / b element-wise. Floating element types follow IEEE
// semantics; for any other field a zero divisor fails with
// tensor.ErrDivisionByZero.
func Div[T algebra.Field[T]](a, b tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return DivInto(dst, a, b, cfg) })
}

// DivInto writes a / b into dst, which may alias a.Data or b.Data. On a zero
// divisor of a non-floating type dst is left untouched.
func DivInto[T algebra.Field[T]](dst []T, a, b tensor.Dense[T], cfg parallel.Config) error {
	if err := checkBinary("div", dst, a, b); err != nil {
		return err
	}
	if nativeBinary(dst, a.Data, b.Data, opDiv, cfg) {
		return nil
	}
	if err := checkDivisors("div", b.Data); err != nil {
		return err
	}
	run[T](len(dst), cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i], _ = a.Data[i].Div(b.Data[i]) // divisors checked above
		}
	})
	return nil
}

func checkBinary[T any](op string, dst []T, a, b tensor.Dense[T]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tensor.CheckSameShape(op, a.Shape, b.Shape); err != nil {
		return err
	}
	return tensor.CheckLen(op, "destination", len(dst), len(a.Data))
}

func checkDivisors[T algebra.Field[T]](op string, xs []T) error {
	for i, x := range xs {
		if x.IsZero() {
			return fmt.Errorf("%s: zero divisor at %d: %w", op, i, tensor.ErrDivisionByZero)
		}
	}
	return nil
}

// alloc runs an Into kernel against a fresh buffer shaped like a.
func alloc[T any](a tensor.Dense[T], into func(dst []T) error) (tensor.Dense[T], error) {
	dst := make([]T, len(a.Data))
	if err := into(dst); err != nil {
		return tensor.Dense[T]{}, err
	}
	return tensor.Dense[T]{Shape: a.Shape.Clone(), Data: dst}, nil
}

// elemWiseThreshold returns the concurrency threshold for element-wise work
// over T. Types without a native representation pay more per element and
// switch to the worker pool earlier.
func elemWiseThreshold[T any](cfg parallel.Config) int {
	if algebra.KindOf[T]().Primitive() {
		return cfg.ElemWiseThreshold
	}
	return cfg.ElemWiseObjectThreshold
}

// run executes f over [0, n), partitioned across workers when n reaches the
// element-wise threshold for T.
func run[T any](n int, cfg parallel.Config, f func(lo, hi int)) {
	if cfg.Concurrent(n, elemWiseThreshold[T](cfg)) {
		parallel.ForRange(n, cfg, f)
		return
	}
	f(0, n)
}

// nativeBinary applies op with hardware arithmetic when T has a native
// representation and reports whether it did.
func nativeBinary[T any](dst, a, b []T, op binaryOp, cfg parallel.Config) bool {
	switch d := any(dst).(type) {
	case []algebra.Real:
		binaryNative(d, any(a).([]algebra.Real), any(b).([]algebra.Real), op, cfg)
	case []algebra.Real32:
		binaryNative(d, any(a).([]algebra.Real32), any(b).([]algebra.Real32), op, cfg)
	case []algebra.Complex:
		binaryNative(d, any(a).([]algebra.Complex), any(b).([]algebra.Complex), op, cfg)
	default:
		return false
	}
	return true
}

func binaryNative[F native](dst, a, b []F, op binaryOp, cfg parallel.Config) {
	f := func(lo, hi int) {
		switch op {
		case opAdd:
			for i := lo; i < hi; i++ {
				dst[i] = a[i] + b[i]
			}
		case opSub:
			for i := lo; i < hi; i++ {
				dst[i] = a[i] - b[i]
			}
		case opMul:
			for i := lo; i < hi; i++ {
				dst[i] = a[i] * b[i]
			}
		case opDiv:
			for i := lo; i < hi; i++ {
				dst[i] = a[i] / b[i]
			}
		}
	}
	if cfg.Concurrent(len(dst), cfg.ElemWiseThreshold) {
		parallel.ForRange(len(dst), cfg, f)
		return
	}
	f(0, len(dst))
}
