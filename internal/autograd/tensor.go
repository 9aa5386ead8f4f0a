package autograd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nabla-ml/nabla/internal/ndarray"
)

// Tensor is a value node in the computational graph. It wraps a numeric
// array, carries an optional gradient buffer, and records the Operation that
// produced it. Leaf tensors (user-supplied inputs and constants) have no
// creator.
//
// The graph is append-only: data, flags and the creator link never change
// after construction. The gradient buffer is the only mutable field; it is
// written during Backward and cleared by NullGradients, both guarded so each
// node's accumulation is atomic.
type Tensor struct {
	data       *ndarray.Array
	constant   bool
	scalarOnly bool
	creator    Operation

	mu   sync.Mutex
	grad *ndarray.Array
}

// Option configures Tensor construction.
type Option func(*tensorConfig)

type tensorConfig struct {
	constant   bool
	scalarOnly bool
	creator    Operation
}

// Constant marks the tensor as a non-differentiable constant: it never
// accumulates gradient, and operations fed only constants produce constants.
func Constant() Option {
	return func(c *tensorConfig) { c.constant = true }
}

// WithScalarOnly marks the tensor as only differentiable from a 0-D value
// without an explicit incoming gradient. Advanced construction; ordinarily
// the flag is derived by the dispatch routine.
func WithScalarOnly() Option {
	return func(c *tensorConfig) { c.scalarOnly = true }
}

// WithCreator records the operation whose forward pass produced the tensor.
// Internal construction; user-built leaves have no creator.
func WithCreator(op Operation) Option {
	return func(c *tensorConfig) { c.creator = op }
}

// New creates a Tensor from array-like data: numeric Go scalars, (nested)
// slices of them, an *ndarray.Array, or another *Tensor. Passing a Tensor
// copies its underlying array, not its graph identity — the result is a
// fresh leaf. Construction fails with *InvalidDataTypeError when the coerced
// element type is not numeric.
func New(data any, opts ...Option) (*Tensor, error) {
	var cfg tensorConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var arr *ndarray.Array
	switch v := data.(type) {
	case *Tensor:
		arr = v.data.Clone()
	case *ndarray.Array:
		arr = v
	default:
		var err error
		arr, err = ndarray.FromAny(data)
		if err != nil {
			if errors.Is(err, ndarray.ErrUnsupportedElem) {
				return nil, &InvalidDataTypeError{Kind: fmt.Sprintf("%T", data)}
			}
			return nil, err
		}
	}
	if !arr.DType().IsNumeric() {
		return nil, &InvalidDataTypeError{Kind: arr.DType().String()}
	}

	return &Tensor{
		data:       arr,
		constant:   cfg.constant,
		scalarOnly: cfg.scalarOnly,
		creator:    cfg.creator,
	}, nil
}

// MustNew is like New but panics on failure. Intended for literals.
func MustNew(data any, opts ...Option) *Tensor {
	t, err := New(data, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Data returns the tensor's underlying array.
func (t *Tensor) Data() *ndarray.Array { return t.data }

// Grad returns the accumulated gradient, or nil if no backward pass has
// reached this tensor since the last reset. Constants always return nil.
func (t *Tensor) Grad() *ndarray.Array {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.grad
}

// Constant reports whether this tensor is excluded from differentiation.
func (t *Tensor) Constant() bool { return t.constant }

// ScalarOnly reports whether Backward requires an explicit gradient unless
// this tensor is 0-dimensional.
func (t *Tensor) ScalarOnly() bool { return t.scalarOnly }

// Creator returns the Operation whose forward pass produced this tensor, or
// nil for leaf tensors.
func (t *Tensor) Creator() Operation { return t.creator }

// Shape returns the tensor's shape.
func (t *Tensor) Shape() ndarray.Shape { return t.data.Shape() }

// Ndim returns the number of dimensions.
func (t *Tensor) Ndim() int { return t.data.Ndim() }

// Size returns the total number of elements.
func (t *Tensor) Size() int { return t.data.Size() }

// DType returns the element type of the underlying array.
func (t *Tensor) DType() ndarray.DataType { return t.data.DType() }

// Item returns the value of a 0-D tensor.
func (t *Tensor) Item() float64 { return t.data.Item() }

// Contains reports whether any element equals v.
func (t *Tensor) Contains(v float64) bool { return t.data.Contains(v) }

// Copy produces a detached snapshot: a fresh leaf with an independent copy
// of the array, the same constant and scalar-only flags, and no creator.
func (t *Tensor) Copy() *Tensor {
	return &Tensor{
		data:       t.data.Clone(),
		constant:   t.constant,
		scalarOnly: t.scalarOnly,
	}
}

// String formats the tensor, distinguishing 0-D, 1-D and N-D values.
func (t *Tensor) String() string {
	switch t.Ndim() {
	case 0, 1:
		return fmt.Sprintf("Tensor(%s)", t.data)
	default:
		return fmt.Sprintf("Tensor(\n%s\n)", t.data)
	}
}

// Backward propagates derivatives from this tensor through the creator
// chain, accumulating each ancestor's contribution into its gradient buffer.
//
// With no argument the seed gradient is the scalar 1 for a 0-D tensor and an
// all-ones array of the tensor's shape otherwise; the implicit ones seed
// assumes a sum-reduction loss convention. An explicit gradient may be a
// raw Go value, an *ndarray.Array, or a *Tensor, and must match the
// tensor's shape.
//
// Calling Backward with no argument on a non-scalar tensor flagged
// scalar-only returns *NonScalarBackpropError: somewhere in this graph an
// operation's backward rule is only defined through a scalar output.
func (t *Tensor) Backward(grad ...any) error {
	if len(grad) > 1 {
		return fmt.Errorf("backward accepts at most one gradient, got %d", len(grad))
	}
	if t.constant {
		return nil
	}

	var g *ndarray.Array
	if len(grad) == 1 && grad[0] != nil {
		var err error
		g, err = coerceGrad(grad[0])
		if err != nil {
			return err
		}
		if !g.Shape().Equal(t.data.Shape()) {
			return fmt.Errorf("gradient shape %v does not match tensor shape %v", g.Shape(), t.data.Shape())
		}
	} else {
		if t.scalarOnly && t.Ndim() != 0 {
			return &NonScalarBackpropError{Shape: t.Shape()}
		}
		if t.Ndim() == 0 {
			g = ndarray.Scalar(1)
		} else {
			g = ndarray.OnesLike(t.data)
		}
	}

	return t.backprop(g)
}

// backprop accumulates an incoming gradient and continues the depth-first
// walk through the creator, if any.
func (t *Tensor) backprop(g *ndarray.Array) error {
	if err := t.accumulate(g); err != nil {
		return err
	}
	if t.creator != nil {
		return backprop(t.creator, g)
	}
	return nil
}

// accumulate folds an incoming gradient contribution into the buffer: set
// when absent, sum otherwise. This is the engine's single mutation point.
func (t *Tensor) accumulate(g *ndarray.Array) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.grad == nil {
		t.grad = g.Clone()
		return nil
	}
	sum, err := ndarray.Add(t.grad, g)
	if err != nil {
		return fmt.Errorf("accumulating gradient: %w", err)
	}
	t.grad = sum
	return nil
}

// NullGradients clears this tensor's gradient buffer and recursively those
// of every ancestor in the graph, constants included. Idempotent.
func (t *Tensor) NullGradients() {
	t.mu.Lock()
	t.grad = nil
	t.mu.Unlock()
	if t.creator != nil {
		nullGradients(t.creator)
	}
}

func coerceGrad(v any) (*ndarray.Array, error) {
	if t, ok := v.(*Tensor); ok {
		return t.data, nil
	}
	return ndarray.FromAny(v)
}
