package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// transposeOp permutes the axes of its input. The backward pass applies the
// inverse permutation to route each gradient element back to its source.
type transposeOp struct {
	operation
	axes []int
}

func (op *transposeOp) Forward(inputs ...*Tensor) (*ndarray.Array, error) {
	op.bind(inputs)
	return ndarray.Transpose(inputs[0].data, op.axes...)
}

func (op *transposeOp) BackwardVar(grad *ndarray.Array, _ int) (*ndarray.Array, error) {
	ndim := op.inputs[0].Ndim()
	if len(op.axes) == 0 {
		// Reversal is its own inverse.
		return ndarray.Transpose(grad)
	}
	inverse := make([]int, ndim)
	for i, ax := range op.axes {
		if ax < 0 {
			ax += ndim
		}
		inverse[ax] = i
	}
	return ndarray.Transpose(grad, inverse...)
}
