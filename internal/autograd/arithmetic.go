package autograd

import "github.com/nabla-ml/nabla/internal/ndarray"

// Add computes a + b through the graph. Either operand may be a *Tensor or
// any tensor-like value; raw values become constant leaves, which covers the
// reflected (raw left operand) form.
func Add(a, b any) *Tensor { return mustApply(&addOp{}, a, b) }

// Sub computes a - b through the graph.
func Sub(a, b any) *Tensor { return mustApply(&subOp{}, a, b) }

// Mul computes a * b element-wise through the graph.
func Mul(a, b any) *Tensor { return mustApply(&mulOp{}, a, b) }

// Div computes a / b element-wise through the graph.
func Div(a, b any) *Tensor { return mustApply(&divOp{}, a, b) }

// Add computes t + other.
func (t *Tensor) Add(other any) *Tensor { return Add(t, other) }

// Sub computes t - other.
func (t *Tensor) Sub(other any) *Tensor { return Sub(t, other) }

// Mul computes t * other element-wise.
func (t *Tensor) Mul(other any) *Tensor { return Mul(t, other) }

// Div computes t / other element-wise.
func (t *Tensor) Div(other any) *Tensor { return Div(t, other) }

// Neg computes -t, expressed as -1 * t so the derivative flows through the
// multiplication rule.
func (t *Tensor) Neg() *Tensor { return Mul(-1.0, t) }

// Pos is the identity.
func (t *Tensor) Pos() *Tensor { return t }

// Invert is defined as negation, preserving a historical quirk of the
// original operator surface.
func (t *Tensor) Invert() *Tensor { return t.Neg() }

// Sum reduces the tensor by summation over the given axes (all axes when nil),
// keeping reduced axes as size 1 when keepDims is true.
func (t *Tensor) Sum(axes []int, keepDims bool) *Tensor {
	return mustApply(&sumOp{axes: axes, keepDims: keepDims}, t)
}

// Transpose permutes the tensor's axes; with no axes the order of all
// dimensions is reversed.
func (t *Tensor) Transpose(axes ...int) *Tensor {
	return mustApply(&transposeOp{axes: axes}, t)
}

// T reverses the order of all axes.
func (t *Tensor) T() *Tensor { return t.Transpose() }

// Eq compares t == other element-wise, delegating to the underlying arrays.
// The result is a raw Bool array; comparisons do not join the graph.
func (t *Tensor) Eq(other any) (*ndarray.Array, error) { return t.compare(other, ndarray.Eq) }

// Ne compares t != other element-wise.
func (t *Tensor) Ne(other any) (*ndarray.Array, error) { return t.compare(other, ndarray.Ne) }

// Lt compares t < other element-wise.
func (t *Tensor) Lt(other any) (*ndarray.Array, error) { return t.compare(other, ndarray.Lt) }

// Le compares t <= other element-wise.
func (t *Tensor) Le(other any) (*ndarray.Array, error) { return t.compare(other, ndarray.Le) }

// Gt compares t > other element-wise.
func (t *Tensor) Gt(other any) (*ndarray.Array, error) { return t.compare(other, ndarray.Gt) }

// Ge compares t >= other element-wise.
func (t *Tensor) Ge(other any) (*ndarray.Array, error) { return t.compare(other, ndarray.Ge) }

func (t *Tensor) compare(other any, cmp func(a, b *ndarray.Array) (*ndarray.Array, error)) (*ndarray.Array, error) {
	var b *ndarray.Array
	switch v := other.(type) {
	case *Tensor:
		b = v.data
	case *ndarray.Array:
		b = v
	default:
		var err error
		b, err = ndarray.FromAny(other)
		if err != nil {
			return nil, err
		}
	}
	return cmp(t.data, b)
}
