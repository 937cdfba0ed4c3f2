package sparse

import (
	"slices"

	"github.com/born-ml/linalg/internal/algebra"
)

// accumulator is a sparse accumulator for one output row: a dense value row
// as wide as the output plus the list of columns touched so far. flush clears
// only the touched slots, so one accumulator serves every row of a product
// without reallocating.
type accumulator[T algebra.Semiring[T]] struct {
	values  []T
	used    []bool
	touched []int
}

func newAccumulator[T algebra.Semiring[T]](width int) *accumulator[T] {
	values := make([]T, width)
	zero := algebra.Zero[T]()
	for i := range values {
		values[i] = zero
	}
	return &accumulator[T]{
		values:  values,
		used:    make([]bool, width),
		touched: make([]int, 0, 16),
	}
}

// add accumulates v into column col.
func (a *accumulator[T]) add(col int, v T) {
	if !a.used[col] {
		a.used[col] = true
		a.touched = append(a.touched, col)
	}
	a.values[col] = a.values[col].Add(v)
}

// flush appends the accumulated row to cols and vals in ascending column
// order and resets the accumulator.
func (a *accumulator[T]) flush(cols []int, vals []T) ([]int, []T) {
	slices.Sort(a.touched)
	zero := algebra.Zero[T]()
	for _, c := range a.touched {
		cols = append(cols, c)
		vals = append(vals, a.values[c])
		a.values[c] = zero
		a.used[c] = false
	}
	a.touched = a.touched[:0]
	return cols, vals
}
