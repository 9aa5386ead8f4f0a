package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// addOp is element-wise addition: out = a + b.
//
// d(a+b)/da = d(a+b)/db = 1, so the incoming gradient passes through to both
// inputs, summed back down wherever broadcasting expanded an input during
// the forward pass.
type addOp struct {
	operation
}

func (op *addOp) Forward(inputs ...*Tensor) (*ndarray.Array, error) {
	op.bind(inputs)
	return ndarray.Add(inputs[0].data, inputs[1].data)
}

func (op *addOp) BackwardVar(grad *ndarray.Array, index int) (*ndarray.Array, error) {
	return ndarray.ReduceTo(grad, op.inputs[index].Shape()), nil
}
