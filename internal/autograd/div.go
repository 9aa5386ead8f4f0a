package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// divOp is element-wise true division: out = a / b.
//
// d(a/b)/da = 1/b and d(a/b)/db = -a/b².
type divOp struct {
	operation
}

func (op *divOp) Forward(inputs ...*Tensor) (*ndarray.Array, error) {
	op.bind(inputs)
	return ndarray.Div(inputs[0].data, inputs[1].data)
}

func (op *divOp) BackwardVar(grad *ndarray.Array, index int) (*ndarray.Array, error) {
	a, b := op.inputs[0], op.inputs[1]

	var g *ndarray.Array
	var err error
	if index == 0 {
		g, err = ndarray.Div(grad, b.data)
	} else {
		bSquared, mulErr := ndarray.Mul(b.data, b.data)
		if mulErr != nil {
			return nil, mulErr
		}
		numerator, mulErr := ndarray.Mul(grad, a.data)
		if mulErr != nil {
			return nil, mulErr
		}
		g, err = ndarray.Div(numerator, bSquared)
		if err == nil {
			g = ndarray.Neg(g)
		}
	}
	if err != nil {
		return nil, err
	}
	return ndarray.ReduceTo(g, op.inputs[index].Shape()), nil
}
