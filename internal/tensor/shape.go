// Package tensor provides the shape/index model, the dense and sparse storage
// descriptors the kernels consume, and the error taxonomy shared by all kernels.
package tensor

import "fmt"

// Shape represents the dimensions of a tensor. Shapes are treated as immutable
// once constructed and may be shared between descriptors.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that all dimensions are non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0): %w", i, dim, ErrInvalidArgument)
		}
	}
	return nil
}

// Equal checks if two shapes have the same rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Broadcastable reports whether other holds the same number of elements, i.e.
// whether data laid out for s can be reinterpreted with other.
func (s Shape) Broadcastable(other Shape) bool {
	return s.NumElements() == other.NumElements()
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex maps a multi-index to its row-major offset.
func (s Shape) FlatIndex(idx ...int) (int, error) {
	if len(idx) != len(s) {
		return 0, fmt.Errorf("expected %d indices, got %d: %w", len(s), len(idx), ErrInvalidRank)
	}
	offset, stride := 0, 1
	for d := len(s) - 1; d >= 0; d-- {
		if idx[d] < 0 || idx[d] >= s[d] {
			return 0, fmt.Errorf("index %d out of bounds for dimension %d (size %d): %w", idx[d], d, s[d], ErrIndexOutOfBounds)
		}
		offset += idx[d] * stride
		stride *= s[d]
	}
	return offset, nil
}

// Unravel maps a row-major offset back to its multi-index.
func (s Shape) Unravel(flat int) ([]int, error) {
	n := s.NumElements()
	if flat < 0 || flat >= n {
		return nil, fmt.Errorf("flat index %d out of bounds for %v: %w", flat, s, ErrIndexOutOfBounds)
	}
	idx := make([]int, len(s))
	UnravelInto(idx, flat, s.ComputeStrides())
	return idx, nil
}

// UnravelInto writes the multi-index of flat into dst using precomputed strides.
// It performs no bounds checks.
func UnravelInto(dst []int, flat int, strides []int) {
	for d, st := range strides {
		if st == 0 {
			dst[d] = 0
			continue
		}
		dst[d] = flat / st
		flat %= st
	}
}

// SwapAxes returns the shape with axes i and j exchanged.
func (s Shape) SwapAxes(i, j int) (Shape, error) {
	if len(s) < 2 {
		return nil, fmt.Errorf("swap axes on rank %d shape: %w", len(s), ErrInvalidRank)
	}
	if i < 0 || i >= len(s) || j < 0 || j >= len(s) {
		return nil, fmt.Errorf("axes (%d, %d) out of range for rank %d: %w", i, j, len(s), ErrIndexOutOfBounds)
	}
	out := s.Clone()
	out[i], out[j] = out[j], out[i]
	return out, nil
}

// Permute returns the shape whose i-th dimension is s[axes[i]].
func (s Shape) Permute(axes []int) (Shape, error) {
	if err := ValidatePermutation(axes, len(s)); err != nil {
		return nil, err
	}
	out := make(Shape, len(s))
	for i, ax := range axes {
		out[i] = s[ax]
	}
	return out, nil
}

// ValidatePermutation checks that axes is a permutation of {0, ..., rank-1}.
func ValidatePermutation(axes []int, rank int) error {
	if len(axes) != rank {
		return fmt.Errorf("axes length %d != rank %d: %w", len(axes), rank, ErrInvalidArgument)
	}
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return fmt.Errorf("invalid axis %d for rank %d: %w", ax, rank, ErrInvalidArgument)
		}
		if seen[ax] {
			return fmt.Errorf("duplicate axis %d: %w", ax, ErrInvalidArgument)
		}
		seen[ax] = true
	}
	return nil
}

// CompareCoords orders two coordinates lexicographically.
func CompareCoords(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
