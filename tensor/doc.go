// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public storage types and element types of the
// linalg kernels.
//
// # Overview
//
// Arrays come in two families:
//   - Dense[T]: a row-major buffer with a Shape
//   - sparse formats: COOVector[T], COOMatrix[T], COOTensor[T] and CSRMatrix[T]
//
// Element types implement one of the algebraic contracts Semiring, Ring,
// Field or Roundable, and every kernel in package linalg is written against
// the narrowest contract it needs:
//   - Real, Real32: machine floats with IEEE semantics
//   - Complex: complex128
//   - Rational: exact fractions
//   - Bool: the boolean semiring (OR, AND)
//
// # Basic Usage
//
//	a, _ := tensor.NewDense(tensor.Shape{2, 2}, []tensor.Real{1, 2, 3, 4})
//	b := tensor.ZerosDense[tensor.Real](tensor.Shape{2, 2})
//	c, err := linalg.Add(a, b, tensor.DefaultConfig())
//
// # Errors
//
// Kernels fail with one of ErrShapeMismatch, ErrInvalidArgument,
// ErrInvalidRank, ErrIndexOutOfBounds or ErrDivisionByZero, wrapped with the
// failing operation; match them with errors.Is.
//
// # Concurrency
//
// Every kernel that may split work across goroutines takes a Config. The
// kernel returns only after all partitions finish. DefaultParallel returns
// the process-wide configuration, loaded once from $LINALG_CONFIG or the user
// config directory.
package tensor
