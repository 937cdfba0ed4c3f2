package dense

import (
	"fmt"

	"github.com/born-ml/linalg/internal/algebra"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// TensorDot contracts a and b over the paired axes aAxes[i] <-> bAxes[i].
//
// Both operands are permuted so the contracted axes are trailing in a and
// leading in b, flattened to matrices and multiplied. The result has the free
// dimensions of a followed by those of b; a rank-0 result is returned as 1x1
// and a rank-1 result as 1xN.
func TensorDot[T algebra.Semiring[T]](a, b tensor.Dense[T], aAxes, bAxes []int, cfg parallel.Config) (tensor.Dense[T], error) {
	if err := a.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("tensordot: %w", err)
	}
	if err := b.Validate(); err != nil {
		return tensor.Dense[T]{}, fmt.Errorf("tensordot: %w", err)
	}
	if len(aAxes) != len(bAxes) {
		return tensor.Dense[T]{}, fmt.Errorf("tensordot: %d axes for a but %d for b: %w",
			len(aAxes), len(bAxes), tensor.ErrInvalidArgument)
	}
	aFree, err := freeAxes(a.Shape.Rank(), aAxes)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	bFree, err := freeAxes(b.Shape.Rank(), bAxes)
	if err != nil {
		return tensor.Dense[T]{}, err
	}

	k := 1
	for i := range aAxes {
		da, db := a.Shape[aAxes[i]], b.Shape[bAxes[i]]
		if da != db {
			return tensor.Dense[T]{}, fmt.Errorf("tensordot: axis %d of a has size %d but axis %d of b has %d: %w",
				aAxes[i], da, bAxes[i], db, tensor.ErrShapeMismatch)
		}
		k *= da
	}

	outShape := make(tensor.Shape, 0, len(aFree)+len(bFree))
	m, n := 1, 1
	for _, ax := range aFree {
		outShape = append(outShape, a.Shape[ax])
		m *= a.Shape[ax]
	}
	for _, ax := range bFree {
		outShape = append(outShape, b.Shape[ax])
		n *= b.Shape[ax]
	}

	at, err := permute(a, append(append([]int{}, aFree...), aAxes...), cfg)
	if err != nil {
		return tensor.Dense[T]{}, err
	}
	bt, err := permute(b, append(append([]int{}, bAxes...), bFree...), cfg)
	if err != nil {
		return tensor.Dense[T]{}, err
	}

	prod, err := MatMul(
		tensor.Dense[T]{Shape: tensor.Shape{m, k}, Data: at.Data},
		tensor.Dense[T]{Shape: tensor.Shape{k, n}, Data: bt.Data},
		cfg)
	if err != nil {
		return tensor.Dense[T]{}, err
	}

	switch len(outShape) {
	case 0:
		outShape = tensor.Shape{1, 1}
	case 1:
		outShape = tensor.Shape{1, outShape[0]}
	}
	prod.Shape = outShape
	return prod, nil
}

// freeAxes validates the contracted axes of a rank-r operand and returns the
// remaining axes in ascending order.
func freeAxes(rank int, axes []int) ([]int, error) {
	contracted := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return nil, fmt.Errorf("tensordot: axis %d out of range for rank %d: %w", ax, rank, tensor.ErrInvalidArgument)
		}
		if contracted[ax] {
			return nil, fmt.Errorf("tensordot: duplicate axis %d: %w", ax, tensor.ErrInvalidArgument)
		}
		contracted[ax] = true
	}
	free := make([]int, 0, rank-len(axes))
	for ax, c := range contracted {
		if !c {
			free = append(free, ax)
		}
	}
	return free, nil
}
