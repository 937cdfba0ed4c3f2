package parallel

import (
	"fmt"
	"runtime"

	"github.com/born-ml/linalg/internal/tensor"
)

// Config controls dispatch between sequential and concurrent kernels.
//
// Thresholds are compared against the amount of work of a call (array cells,
// multiply-adds, or stored entries depending on the family); at or above the
// threshold the concurrent implementation is used.
type Config struct {
	Enabled      bool `toml:"enabled" yaml:"enabled"`               // Whether parallel execution is enabled.
	NumWorkers   int  `toml:"num_workers" yaml:"num_workers"`       // Number of worker goroutines to use.
	MinChunkSize int  `toml:"min_chunk_size" yaml:"min_chunk_size"` // Minimum items per goroutine to avoid overhead.

	CacheSize       int     `toml:"cache_size" yaml:"cache_size"` // Bytes of per-core cache blocking targets.
	BlockSize       int     `toml:"block_size" yaml:"block_size"` // Tile edge for blocked transpose/matmul.
	AspectThreshold float64 `toml:"aspect_threshold" yaml:"aspect_threshold"`

	SmallProblemThreshold   int `toml:"small_problem_threshold" yaml:"small_problem_threshold"`
	ElemWiseThreshold       int `toml:"elem_wise_threshold" yaml:"elem_wise_threshold"`
	ElemWiseObjectThreshold int `toml:"elem_wise_object_threshold" yaml:"elem_wise_object_threshold"`
	TransposeThreshold      int `toml:"transpose_threshold" yaml:"transpose_threshold"`
	MatMulSquareThreshold   int `toml:"matmul_square_threshold" yaml:"matmul_square_threshold"`
	MatMulWideThreshold     int `toml:"matmul_wide_threshold" yaml:"matmul_wide_threshold"`
	MatMulTallThreshold     int `toml:"matmul_tall_threshold" yaml:"matmul_tall_threshold"`
	MatVecThreshold         int `toml:"matvec_threshold" yaml:"matvec_threshold"`
	SparseThreshold         int `toml:"sparse_threshold" yaml:"sparse_threshold"`
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.

		CacheSize:       64 * 1024,
		BlockSize:       64,
		AspectThreshold: 8,

		SmallProblemThreshold:   50 * 50 * 50,
		ElemWiseThreshold:       30_000_000,
		ElemWiseObjectThreshold: 500_000,
		TransposeThreshold:      1 << 20,
		MatMulSquareThreshold:   1 << 21,
		MatMulWideThreshold:     1 << 22,
		MatMulTallThreshold:     1 << 20,
		MatVecThreshold:         1 << 18,
		SparseThreshold:         50_000,
	}
}

// Sequential returns a configuration that never runs concurrently.
func Sequential() Config {
	cfg := DefaultConfig()
	cfg.Enabled = false
	return cfg
}

// Validate checks worker counts, block sizes and thresholds.
func (cfg Config) Validate() error {
	if cfg.NumWorkers < 1 {
		return fmt.Errorf("parallel: num_workers %d must be >= 1: %w", cfg.NumWorkers, tensor.ErrInvalidArgument)
	}
	if cfg.BlockSize < 1 {
		return fmt.Errorf("parallel: block_size %d must be >= 1: %w", cfg.BlockSize, tensor.ErrInvalidArgument)
	}
	if cfg.AspectThreshold < 1 {
		return fmt.Errorf("parallel: aspect_threshold %g must be >= 1: %w", cfg.AspectThreshold, tensor.ErrInvalidArgument)
	}
	for name, v := range map[string]int{
		"min_chunk_size":             cfg.MinChunkSize,
		"cache_size":                 cfg.CacheSize,
		"small_problem_threshold":    cfg.SmallProblemThreshold,
		"elem_wise_threshold":        cfg.ElemWiseThreshold,
		"elem_wise_object_threshold": cfg.ElemWiseObjectThreshold,
		"transpose_threshold":        cfg.TransposeThreshold,
		"matmul_square_threshold":    cfg.MatMulSquareThreshold,
		"matmul_wide_threshold":      cfg.MatMulWideThreshold,
		"matmul_tall_threshold":      cfg.MatMulTallThreshold,
		"matvec_threshold":           cfg.MatVecThreshold,
		"sparse_threshold":           cfg.SparseThreshold,
	} {
		if v < 0 {
			return fmt.Errorf("parallel: %s %d must be >= 0: %w", name, v, tensor.ErrInvalidArgument)
		}
	}
	return nil
}

// Concurrent reports whether work of the given size should take the
// concurrent path under threshold.
func (cfg Config) Concurrent(size, threshold int) bool {
	return cfg.Enabled && cfg.NumWorkers > 1 && size >= threshold
}

// ShapeClass groups matrix-multiplication problems by the aspect ratio of
// the left operand.
type ShapeClass int

// Shape classes used to select matrix-multiplication thresholds.
const (
	Square ShapeClass = iota
	Wide
	Tall
	Vector
)

// String returns the class name.
func (c ShapeClass) String() string {
	switch c {
	case Square:
		return "square"
	case Wide:
		return "wide"
	case Tall:
		return "tall"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// ClassifyShape classifies an m x n operand by aspect ratio.
func (cfg Config) ClassifyShape(rows, cols int) ShapeClass {
	switch {
	case rows <= 1 || cols <= 1:
		return Vector
	case float64(rows)/float64(cols) >= cfg.AspectThreshold:
		return Tall
	case float64(cols)/float64(rows) >= cfg.AspectThreshold:
		return Wide
	default:
		return Square
	}
}

// MatMulThreshold returns the concurrency threshold for a shape class.
func (cfg Config) MatMulThreshold(c ShapeClass) int {
	switch c {
	case Wide:
		return cfg.MatMulWideThreshold
	case Tall:
		return cfg.MatMulTallThreshold
	case Vector:
		return cfg.MatVecThreshold
	default:
		return cfg.MatMulSquareThreshold
	}
}

// BlockFor returns the tile edge for elements of elemBytes bytes: the
// configured BlockSize, shrunk so that three tiles fit in CacheSize.
func (cfg Config) BlockFor(elemBytes int) int {
	b := max(cfg.BlockSize, 1)
	if cfg.CacheSize <= 0 || elemBytes <= 0 {
		return b
	}
	for b > 8 && 3*b*b*elemBytes > cfg.CacheSize {
		b /= 2
	}
	return b
}
