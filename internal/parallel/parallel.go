// Package parallel provides the dispatch configuration and the parallel-for
// primitives kernels use to split work across a bounded pool of goroutines.
//
// Every primitive blocks until all partitions have finished. Partitions are
// contiguous, disjoint index ranges, so kernels writing to disjoint slices of a
// destination need no further synchronisation.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	})
}

// ForRange splits [0, n) into contiguous chunks and calls f(lo, hi) for each,
// at most cfg.NumWorkers at a time.
func ForRange(n int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if !cfg.parallel(n) {
		f(0, n)
		return
	}
	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	run(n, chunk, cfg.NumWorkers, f)
}

// ForBlocks is like ForRange but every chunk boundary is a multiple of block,
// so blocked kernels never split a tile across workers.
func ForBlocks(n, block int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	block = max(block, 1)
	if !cfg.parallel(n) {
		f(0, n)
		return
	}
	blocks := (n + block - 1) / block
	perWorker := (blocks + cfg.NumWorkers - 1) / cfg.NumWorkers
	minBlocks := (cfg.MinChunkSize + block - 1) / block
	run(n, max(perWorker, minBlocks, 1)*block, cfg.NumWorkers, f)
}

// For2D executes f(i, j) for every pair in [0, n1) x [0, n2).
// Used for tiled kernels where each (i, j) owns a disjoint output tile.
func For2D(n1, n2 int, f func(i, j int), cfg Config) {
	if n2 <= 0 {
		return
	}
	For(n1*n2, func(k int) {
		f(k/n2, k%n2)
	}, cfg)
}

func (cfg Config) parallel(n int) bool {
	return cfg.Enabled && cfg.NumWorkers > 1 && n >= cfg.MinChunkSize
}

func run(n, chunk, workers int, f func(lo, hi int)) {
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			f(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // partitions never fail
}
