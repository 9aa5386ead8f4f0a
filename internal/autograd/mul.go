package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// mulOp is element-wise multiplication: out = a * b.
//
// d(a*b)/da = b and d(a*b)/db = a.
type mulOp struct {
	operation
}

func (op *mulOp) Forward(inputs ...*Tensor) (*ndarray.Array, error) {
	op.bind(inputs)
	return ndarray.Mul(inputs[0].data, inputs[1].data)
}

func (op *mulOp) BackwardVar(grad *ndarray.Array, index int) (*ndarray.Array, error) {
	other := op.inputs[1-index]
	g, err := ndarray.Mul(grad, other.data)
	if err != nil {
		return nil, err
	}
	return ndarray.ReduceTo(g, op.inputs[index].Shape()), nil
}
