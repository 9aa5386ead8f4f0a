package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// subOp is element-wise subtraction: out = a - b.
//
// d(a-b)/da = 1 and d(a-b)/db = -1.
type subOp struct {
	operation
}

func (op *subOp) Forward(inputs ...*Tensor) (*ndarray.Array, error) {
	op.bind(inputs)
	return ndarray.Sub(inputs[0].data, inputs[1].data)
}

func (op *subOp) BackwardVar(grad *ndarray.Array, index int) (*ndarray.Array, error) {
	if index == 1 {
		grad = ndarray.Neg(grad)
	}
	return ndarray.ReduceTo(grad, op.inputs[index].Shape()), nil
}
