package dense

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// AddScalar returns x + s for every element x of a.
func AddScalar[T algebra.Semiring[T]](a tensor.Dense[T], s T, cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return AddScalarInto(dst, a, s, cfg) })
}

// AddScalarInto writes x + s for every element x of a into dst, which may
// alias a.Data.
func AddScalarInto[T algebra.Semiring[T]](dst []T, a tensor.Dense[T], s T, cfg parallel.Config) error {
	return mapInto("add scalar", dst, a, cfg, func(x T) T { return x.Add(s) })
}

// SubScalar returns x - s for every element x of a.
func SubScalar[T algebra.Ring[T]](a tensor.Dense[T], s T, cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return SubScalarInto(dst, a, s, cfg) })
}

// SubScalarInto writes x - s for every element x of a into dst.
func SubScalarInto[T algebra.Ring[T]](dst []T, a tensor.Dense[T], s T, cfg parallel.Config) error {
	return mapInto("sub scalar", dst, a, cfg, func(x T) T { return x.Sub(s) })
}

// ScalarSub returns s - x for every element x of a.
func ScalarSub[T algebra.Ring[T]](s T, a tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return ScalarSubInto(dst, s, a, cfg) })
}

// ScalarSubInto writes s - x for every element x of a into dst.
func ScalarSubInto[T algebra.Ring[T]](dst []T, s T, a tensor.Dense[T], cfg parallel.Config) error {
	return mapInto("scalar sub", dst, a, cfg, func(x T) T { return s.Sub(x) })
}

// MulScalar returns x * s for every element x of a.
func MulScalar[T algebra.Semiring[T]](a tensor.Dense[T], s T, cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return MulScalarInto(dst, a, s, cfg) })
}

// MulScalarInto writes x * s for every element x of a into dst.
func MulScalarInto[T algebra.Semiring[T]](dst []T, a tensor.Dense[T], s T, cfg parallel.Config) error {
	return mapInto("mul scalar", dst, a, cfg, func(x T) T { return x.Mul(s) })
}

// DivScalar returns x / s for every element x of a. A zero s fails with
// tensor.ErrDivisionByZero unless T is a floating type.
func DivScalar[T algebra.Field[T]](a tensor.Dense[T], s T, cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return DivScalarInto(dst, a, s, cfg) })
}

// DivScalarInto writes x / s for every element x of a into dst. On a zero s
// of a non-floating type dst is left untouched.
func DivScalarInto[T algebra.Field[T]](dst []T, a tensor.Dense[T], s T, cfg parallel.Config) error {
	if err := checkUnary("div scalar", dst, a); err != nil {
		return err
	}
	if nativeScalarDiv(dst, a.Data, s, false, cfg) {
		return nil
	}
	if s.IsZero() {
		return fmt.Errorf("div scalar: %w", tensor.ErrDivisionByZero)
	}
	apply(dst, a.Data, cfg, func(x T) T {
		q, _ := x.Div(s) // s is non-zero
		return q
	})
	return nil
}

// ScalarDiv returns s / x for every element x of a.
func ScalarDiv[T algebra.Field[T]](s T, a tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return ScalarDivInto(dst, s, a, cfg) })
}

// ScalarDivInto writes s / x for every element x of a into dst. On a zero x
// of a non-floating type dst is left untouched.
func ScalarDivInto[T algebra.Field[T]](dst []T, s T, a tensor.Dense[T], cfg parallel.Config) error {
	if err := checkUnary("scalar div", dst, a); err != nil {
		return err
	}
	if nativeScalarDiv(dst, a.Data, s, true, cfg) {
		return nil
	}
	if err := checkDivisors("scalar div", a.Data); err != nil {
		return err
	}
	apply(dst, a.Data, cfg, func(x T) T {
		q, _ := s.Div(x) // divisors checked above
		return q
	})
	return nil
}

// Reciprocal returns 1 / x for every element x of a.
func Reciprocal[T algebra.Field[T]](a tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return ScalarDiv(algebra.One[T](), a, cfg)
}

// ReciprocalInto writes 1 / x for every element x of a into dst.
func ReciprocalInto[T algebra.Field[T]](dst []T, a tensor.Dense[T], cfg parallel.Config) error {
	return ScalarDivInto(dst, algebra.One[T](), a, cfg)
}

// Neg returns the additive inverse of every element.
func Neg[T algebra.Ring[T]](a tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return NegInto(dst, a, cfg) })
}

// NegInto writes the additive inverse of every element of a into dst.
func NegInto[T algebra.Ring[T]](dst []T, a tensor.Dense[T], cfg parallel.Config) error {
	return mapInto("neg", dst, a, cfg, func(x T) T { return x.Neg() })
}

// Sqrt returns the principal square root of every element.
func Sqrt[T algebra.Field[T]](a tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return SqrtInto(dst, a, cfg) })
}

// SqrtInto writes the principal square root of every element of a into dst.
func SqrtInto[T algebra.Field[T]](dst []T, a tensor.Dense[T], cfg parallel.Config) error {
	return mapInto("sqrt", dst, a, cfg, func(x T) T { return x.Sqrt() })
}

// Conj returns the conjugate of every element.
func Conj[T algebra.Field[T]](a tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return ConjInto(dst, a, cfg) })
}

// ConjInto writes the conjugate of every element of a into dst.
func ConjInto[T algebra.Field[T]](dst []T, a tensor.Dense[T], cfg parallel.Config) error {
	return mapInto("conj", dst, a, cfg, func(x T) T { return x.Conj() })
}

// Round rounds every element to the given number of decimal places, half
// away from zero.
func Round[T algebra.Roundable[T]](a tensor.Dense[T], decimals int, cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return RoundInto(dst, a, decimals, cfg) })
}

// RoundInto writes every element of a rounded to decimals places into dst.
func RoundInto[T algebra.Roundable[T]](dst []T, a tensor.Dense[T], decimals int, cfg parallel.Config) error {
	if decimals < 0 {
		return fmt.Errorf("round: negative precision %d: %w", decimals, tensor.ErrInvalidArgument)
	}
	return mapInto("round", dst, a, cfg, func(x T) T { return x.Round(decimals) })
}

// RoundToZero replaces every element whose magnitude is below threshold with
// zero.
func RoundToZero[T algebra.Ring[T]](a tensor.Dense[T], threshold float64, cfg parallel.Config) (tensor.Dense[T], error) {
	return alloc(a, func(dst []T) error { return RoundToZeroInto(dst, a, threshold, cfg) })
}

// RoundToZeroInto writes a into dst with every element whose magnitude is
// below threshold replaced by zero.
func RoundToZeroInto[T algebra.Ring[T]](dst []T, a tensor.Dense[T], threshold float64, cfg parallel.Config) error {
	if threshold < 0 {
		return fmt.Errorf("round to zero: negative threshold %g: %w", threshold, tensor.ErrInvalidArgument)
	}
	zero := algebra.Zero[T]()
	return mapInto("round to zero", dst, a, cfg, func(x T) T {
		if x.Abs() < threshold {
			return zero
		}
		return x
	})
}

// mapInto validates a and dst, then writes f(x) for every element x of a.
func mapInto[T any](op string, dst []T, a tensor.Dense[T], cfg parallel.Config, f func(T) T) error {
	if err := checkUnary(op, dst, a); err != nil {
		return err
	}
	apply(dst, a.Data, cfg, f)
	return nil
}

func apply[T any](dst, src []T, cfg parallel.Config, f func(T) T) {
	run[T](len(dst), cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(src[i])
		}
	})
}

func checkUnary[T any](op string, dst []T, a tensor.Dense[T]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return tensor.CheckLen(op, "destination", len(dst), len(a.Data))
}

// nativeScalarDiv computes src/s (or s/src when reverse) with IEEE semantics
// when T has a native representation and reports whether it did.
func nativeScalarDiv[T any](dst, src []T, s T, reverse bool, cfg parallel.Config) bool {
	switch d := any(dst).(type) {
	case []algebra.Real:
		scalarDivNative(d, any(src).([]algebra.Real), any(s).(algebra.Real), reverse, cfg)
	case []algebra.Real32:
		scalarDivNative(d, any(src).([]algebra.Real32), any(s).(algebra.Real32), reverse, cfg)
	case []algebra.Complex:
		scalarDivNative(d, any(src).([]algebra.Complex), any(s).(algebra.Complex), reverse, cfg)
	default:
		return false
	}
	return true
}

func scalarDivNative[F native](dst, src []F, s F, reverse bool, cfg parallel.Config) {
	f := func(lo, hi int) {
		if reverse {
			for i := lo; i < hi; i++ {
				dst[i] = s / src[i]
			}
			return
		}
		for i := lo; i < hi; i++ {
			dst[i] = src[i] / s
		}
	}
	if cfg.Concurrent(len(dst), cfg.ElemWiseThreshold) {
		parallel.ForRange(len(dst), cfg, f)
		return
	}
	f(0, len(dst))
}
