package tensor

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
)

// Dense is a row-major array of elements with a shape. Data has exactly
// Shape.NumElements() entries.
type Dense[T any] struct {
	Shape Shape
	Data  []T
}

// NewDense wraps data with shape. The slice is not copied.
func NewDense[T any](shape Shape, data []T) (Dense[T], error) {
	d := Dense[T]{Shape: shape, Data: data}
	if err := d.Validate(); err != nil {
		return Dense[T]{}, err
	}
	return d, nil
}

// ZerosDense allocates a dense array filled with the additive identity.
func ZerosDense[T algebra.Semiring[T]](shape Shape) Dense[T] {
	data := make([]T, shape.NumElements())
	Fill(data, algebra.Zero[T]())
	return Dense[T]{Shape: shape.Clone(), Data: data}
}

// Validate checks the shape and that Data matches it.
func (d Dense[T]) Validate() error {
	if err := d.Shape.Validate(); err != nil {
		return err
	}
	if len(d.Data) != d.Shape.NumElements() {
		return fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			d.Shape, d.Shape.NumElements(), len(d.Data), ErrShapeMismatch)
	}
	return nil
}

// At returns the element at the given multi-index.
func (d Dense[T]) At(idx ...int) (T, error) {
	off, err := d.Shape.FlatIndex(idx...)
	if err != nil {
		var zero T
		return zero, err
	}
	return d.Data[off], nil
}

// Clone returns a deep copy.
func (d Dense[T]) Clone() Dense[T] {
	data := make([]T, len(d.Data))
	copy(data, d.Data)
	return Dense[T]{Shape: d.Shape.Clone(), Data: data}
}

// Fill sets every element of xs to v.
func Fill[T any](xs []T, v T) {
	for i := range xs {
		xs[i] = v
	}
}
