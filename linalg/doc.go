// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg exposes the dense, sparse and mixed kernels over the
// storage types of package tensor.
//
// Kernels are plain functions: they validate their operands, allocate or
// fill the result, and return it. Every kernel that can split work across
// goroutines takes a tensor.Config and blocks until all of it is done.
//
// Example:
//
//	cfg := tensor.DefaultParallel()
//	a, _ := tensor.NewDense(tensor.Shape{2, 2}, []tensor.Real{1, 0, 0, 2})
//	b, _ := tensor.NewDense(tensor.Shape{2, 2}, []tensor.Real{3, 0, 0, 4})
//	c, err := linalg.MatMul(a, b, cfg) // [[3 0] [0 8]]
//
// Floating element types divide with IEEE semantics; exact types such as
// tensor.Rational fail with tensor.ErrDivisionByZero before writing anything.
package linalg
