package autograd

import (
	"fmt"

	"github.com/nabla-ml/nabla/internal/ndarray"
)

// InvalidDataTypeError reports an attempt to construct a Tensor from data
// whose element type is not numeric.
type InvalidDataTypeError struct {
	Kind string
}

func (e *InvalidDataTypeError) Error() string {
	return fmt.Sprintf("tensor data must be a numeric type, got %s", e.Kind)
}

// NonScalarBackpropError reports a Backward call with no explicit gradient
// on a non-scalar tensor whose graph requires a scalar output.
type NonScalarBackpropError struct {
	Shape ndarray.Shape
}

func (e *NonScalarBackpropError) Error() string {
	return fmt.Sprintf("backward on a non-scalar tensor of shape %v requires an explicit gradient: "+
		"an operation in this graph is only differentiable through a scalar output", e.Shape)
}
