// Package autograd implements a reverse-mode automatic differentiation
// engine. Tensors wrap ndarray values and record the Operation that produced
// them, forming a directed acyclic computational graph; calling Backward on
// any tensor walks the creator chain depth-first, distributing and
// accumulating gradients via the chain rule.
package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// Operation is one node of the computational graph. An operation owns its
// input tensors (bound during Forward), computes the forward value, and
// answers per-input vector-Jacobian products during backpropagation.
type Operation interface {
	// Forward binds the coerced input tensors to the operation and
	// computes the raw result array.
	Forward(inputs ...*Tensor) (*ndarray.Array, error)

	// BackwardVar computes the gradient contribution for input `index`
	// given the gradient flowing into the operation's output. The result
	// matches the input's shape, with any broadcasting performed during
	// the forward pass summed back down.
	BackwardVar(grad *ndarray.Array, index int) (*ndarray.Array, error)

	// Inputs returns the operation's input tensors in call order.
	// Duplicates are allowed (e.g. x + x).
	Inputs() []*Tensor

	// ScalarOnly reports whether this operation's backward rule is only
	// well-defined when differentiation starts from a scalar output.
	ScalarOnly() bool
}

// operation is the shared base embedded by every concrete op. It holds the
// bound inputs and declares the default (non scalar-only) backward contract.
type operation struct {
	inputs []*Tensor
}

func (op *operation) bind(inputs []*Tensor) {
	op.inputs = inputs
}

// Inputs returns the bound input tensors.
func (op *operation) Inputs() []*Tensor {
	return op.inputs
}

// ScalarOnly is false for element-wise operations.
func (op *operation) ScalarOnly() bool {
	return false
}

// backprop distributes grad through an operation: each non-constant input
// receives its vector-Jacobian product and continues the walk through its
// own creator. Depth-first, input order; a tensor reachable along several
// paths accumulates one contribution per path, which is exactly the
// multivariable chain rule's sum over paths.
func backprop(op Operation, grad *ndarray.Array) error {
	for i, in := range op.Inputs() {
		if in.constant {
			continue
		}
		contrib, err := op.BackwardVar(grad, i)
		if err != nil {
			return err
		}
		if err := in.backprop(contrib); err != nil {
			return err
		}
	}
	return nil
}

// nullGradients clears the gradient buffer of every tensor reachable
// upstream of op, constants included.
func nullGradients(op Operation) {
	for _, in := range op.Inputs() {
		in.NullGradients()
	}
}
