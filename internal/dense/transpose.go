package dense

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// Permute returns src with its axes reordered so that axis i of the result is
// axis axes[i] of src. Requires rank >= 2.
func Permute[T any](src tensor.Dense[T], axes []int, cfg parallel.Config) (tensor.Dense[T], error) {
	if err := src.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("permute: %w", err)
	}
	if src.Shape.Rank() < 2 {
		return tensor.Dense[T]{}, fmt.Errorf("permute: rank %d: %w", src.Shape.Rank(), tensor.ErrInvalidRank)
	}
	return permute(src, axes, cfg)
}

// SwapAxes returns src with axes i and j exchanged. Requires rank >= 2.
func SwapAxes[T any](src tensor.Dense[T], i, j int, cfg parallel.Config) (tensor.Dense[T], error) {
	if err := src.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("swap axes: %w", err)
	}
	if _, err := src.Shape.SwapAxes(i, j); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("swap axes: %w", err)
	}
	axes := make([]int, src.Shape.Rank())
	for d := range axes {
		axes[d] = d
	}
	axes[i], axes[j] = j, i
	return permute(src, axes, cfg)
}

// permute is the index-remap transpose: every source offset is unravelled
// into coordinates, the coordinates are permuted and re-flattened against the
// destination strides. Rank 0 and 1 are accepted.
func permute[T any](src tensor.Dense[T], axes []int, cfg parallel.Config) (tensor.Dense[T], error) {
	dstShape, err := src.Shape.Permute(axes)
	if err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("permute: %w", err)
	}
	ndim := len(axes)
	srcStrides := src.Shape.ComputeStrides()
	dstStrides := dstShape.ComputeStrides()
	dst := make([]T, len(src.Data))

	remap := func(lo, hi int) {
		coords := make([]int, ndim)
		for i := lo; i < hi; i++ {
			tensor.UnravelInto(coords, i, srcStrides)
			dstIdx := 0
			for dstDim, srcDim := range axes {
				dstIdx += coords[srcDim] * dstStrides[dstDim]
			}
			dst[dstIdx] = src.Data[i]
		}
	}
	if cfg.Concurrent(len(dst), cfg.TransposeThreshold) {
		parallel.ForRange(len(dst), cfg, remap)
	} else {
		remap(0, len(dst))
	}
	return tensor.Dense[T]{Shape: dstShape, Data: dst}, nil
}

// Transpose returns the transpose of a rank-2 array, choosing between the
// naive, blocked and concurrent strategies by size.
func Transpose[T any](m tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	rows, cols, err := matrixDims("transpose", m)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	dst := make([]T, len(m.Data))
	block := blockSize[T](cfg)
	n := rows * cols
	bytes := n * int(unsafe.Sizeof(*new(T)))

	switch {
	case cfg.Concurrent(n, cfg.TransposeThreshold) && min(rows, cols) >= 2*block:
		err = TransposeBlockedConcurrent(dst, m.Data, rows, cols, block, cfg)
	case cfg.Concurrent(n, cfg.TransposeThreshold):
		err = TransposeConcurrent(dst, m.Data, rows, cols, cfg)
	case bytes > cfg.CacheSize && min(rows, cols) >= block:
		err = TransposeBlocked(dst, m.Data, rows, cols, block)
	default:
		err = TransposeNaive(dst, m.Data, rows, cols)
	}
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	return tensor.Dense[T]{Shape: tensor.Shape{cols, rows}, Data: dst}, nil
}

// ConjTranspose returns the conjugate transpose of a rank-2 array.
func ConjTranspose[T algebra.Field[T]](m tensor.Dense[T], cfg parallel.Config) (tensor.Dense[T], error) {
	t, err := Transpose(m, cfg)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	for i, x := range t.Data {
		t.Data[i] = x.Conj()
	}
	return t, nil
}

// TransposeNaive writes the transpose of the rows x cols matrix src into dst
// with a strided copy. dst must not alias src.
func TransposeNaive[T any](dst, src []T, rows, cols int) error {
	if err := checkTranspose(dst, src, rows, cols); err != nil {
		return err
	}
	transposeRange(dst, src, rows, cols, 0, cols)
	return nil
}

// TransposeBlocked is TransposeNaive over square tiles of edge block.
func TransposeBlocked[T any](dst, src []T, rows, cols, block int) error {
	if err := checkTranspose(dst, src, rows, cols); err != nil {
		return err
	}
	if block < 1 {
		return fmt.Errorf("transpose: block size %d: %w", block, tensor.ErrInvalidArgument)
	}
	transposeTiles(dst, src, rows, cols, block, 0, cols)
	return nil
}

// TransposeConcurrent partitions the columns of src across workers.
func TransposeConcurrent[T any](dst, src []T, rows, cols int, cfg parallel.Config) error {
	if err := checkTranspose(dst, src, rows, cols); err != nil {
		return err
	}
	parallel.ForRange(cols, cfg, func(lo, hi int) {
		transposeRange(dst, src, rows, cols, lo, hi)
	})
	return nil
}

// TransposeBlockedConcurrent partitions column blocks of src across workers
// and transposes each partition tile by tile.
func TransposeBlockedConcurrent[T any](dst, src []T, rows, cols, block int, cfg parallel.Config) error {
	if err := checkTranspose(dst, src, rows, cols); err != nil {
		return err
	}
	if block < 1 {
		return fmt.Errorf("transpose: block size %d: %w", block, tensor.ErrInvalidArgument)
	}
	parallel.ForBlocks(cols, block, cfg, func(lo, hi int) {
		transposeTiles(dst, src, rows, cols, block, lo, hi)
	})
	return nil
}

// transposeRange transposes source columns [c0, c1).
func transposeRange[T any](dst, src []T, rows, cols, c0, c1 int) {
	for i := 0; i < rows; i++ {
		row := src[i*cols : (i+1)*cols]
		for j := c0; j < c1; j++ {
			dst[j*rows+i] = row[j]
		}
	}
}

// transposeTiles transposes source columns [c0, c1) tile by tile.
func transposeTiles[T any](dst, src []T, rows, cols, block, c0, c1 int) {
	for ii := 0; ii < rows; ii += block {
		iEnd := min(ii+block, rows)
		for jj := c0; jj < c1; jj += block {
			jEnd := min(jj+block, c1)
			for i := ii; i < iEnd; i++ {
				for j := jj; j < jEnd; j++ {
					dst[j*rows+i] = src[i*cols+j]
				}
			}
		}
	}
}

func checkTranspose[T any](dst, src []T, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("transpose: dims %dx%d: %w", rows, cols, tensor.ErrInvalidArgument)
	}
	if err := tensor.CheckLen("transpose", "source", len(src), rows*cols); err != nil {
		return err
	}
	return tensor.CheckLen("transpose", "destination", len(dst), rows*cols)
}

// matrixDims validates m as a rank-2 array and returns its dimensions.
func matrixDims[T any](op string, m tensor.Dense[T]) (rows, cols int, err error) {
	if err := m.Validate(); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if m.Shape.Rank() != 2 {
		return 0, 0, fmt.Errorf("%s: expected rank 2, got %d: %w", op, m.Shape.Rank(), tensor.ErrInvalidRank)
	}
	return m.Shape[0], m.Shape[1], nil
}

// blockSize returns the tile edge for T under cfg.
func blockSize[T any](cfg parallel.Config) int {
	return cfg.BlockFor(int(unsafe.Sizeof(*new(T))))
}
