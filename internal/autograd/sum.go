package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// sumOp is the summation reduction: out = sum(x, axes, keepDims).
//
// Each input element contributes 1 to its reduction slot, so the backward
// pass broadcasts the incoming gradient back to the pre-reduction shape.
// When keepDims was false the reduced axes are reinserted first so the
// broadcast lines up.
type sumOp struct {
	operation
	axes     []int
	keepDims bool
}

func (op *sumOp) Forward(inputs ...*Tensor) (*ndarray.Array, error) {
	op.bind(inputs)
	return ndarray.Sum(inputs[0].data, op.axes, op.keepDims), nil
}

func (op *sumOp) BackwardVar(grad *ndarray.Array, _ int) (*ndarray.Array, error) {
	x := op.inputs[0]
	if len(op.axes) > 0 && !op.keepDims {
		grad = ndarray.ExpandAxes(grad, op.axes, x.Ndim())
	}
	return ndarray.BroadcastTo(grad, x.Shape())
}
