package autograd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabla-ml/nabla/internal/autograd"
	"github.com/nabla-ml/nabla/internal/ndarray"
)

func TestBackward_ScalarSeed(t *testing.T) {
	x := autograd.MustNew(3.0)
	require.NoError(t, x.Backward())
	require.NotNil(t, x.Grad())
	assert.Equal(t, ndarray.Shape{}, x.Grad().Shape())
	assert.Equal(t, 1.0, x.Grad().Item())
}

func TestBackward_OnesSeed(t *testing.T) {
	x := autograd.MustNew([][]float64{{1, 2}, {3, 4}})
	y := x.Mul(2.0)
	require.NoError(t, y.Backward())
	assert.Equal(t, []float64{2, 2, 2, 2}, x.Grad().Data())
}

func TestBackward_ExplicitGradient(t *testing.T) {
	x := autograd.MustNew([]float64{1, 2, 3})
	y := x.Mul(x) // dy/dx = 2x
	require.NoError(t, y.Backward([]float64{1, 10, 100}))
	assert.Equal(t, []float64{2, 40, 600}, x.Grad().Data())
}

func TestBackward_ExplicitTensorGradient(t *testing.T) {
	x := autograd.MustNew([]float64{1, 2})
	y := x.Add(0.0)
	g := autograd.MustNew([]float64{5, 7})
	require.NoError(t, y.Backward(g))
	assert.Equal(t, []float64{5, 7}, x.Grad().Data())
}

func TestBackward_ExplicitGradientShapeMismatch(t *testing.T) {
	a := autograd.MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := autograd.MustNew([][]float64{{1, 1, 1}, {1, 1, 1}})
	y := a.Add(b)

	err := y.Backward([]float64{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape")
	assert.Nil(t, a.Grad())
	assert.Nil(t, b.Grad())
}

func TestBackward_SharedInputAccumulates(t *testing.T) {
	// y = x + x: both branches contribute, so dy/dx = 2.
	x := autograd.MustNew(3.0)
	y := x.Add(x)
	require.NoError(t, y.Backward())
	assert.Equal(t, 2.0, x.Grad().Item())
}

func TestBackward_ChainRule(t *testing.T) {
	// f = a*b + a with a=2, b=3: df/da = b+1 = 4, df/db = a = 2.
	a := autograd.MustNew(2.0)
	b := autograd.MustNew(3.0)
	f := a.Mul(b).Add(a)

	require.NoError(t, f.Backward())
	assert.Equal(t, 7.0, f.Data().Item())
	assert.Equal(t, 4.0, a.Grad().Item())
	assert.Equal(t, 2.0, b.Grad().Item())
}

func TestBackward_DiamondGraph(t *testing.T) {
	// x feeds two distinct consumers that rejoin: y = (x*2) + (x*3).
	x := autograd.MustNew(5.0)
	y := x.Mul(2.0).Add(x.Mul(3.0))
	require.NoError(t, y.Backward())
	assert.Equal(t, 5.0, x.Grad().Item())
}

func TestBackward_ConstantPropagation(t *testing.T) {
	c1 := autograd.MustNew(1.0, autograd.Constant())
	c2 := autograd.MustNew(2.0, autograd.Constant())
	v := autograd.MustNew(3.0)

	assert.True(t, c1.Add(c2).Constant(), "constant + constant is constant")
	assert.False(t, c1.Add(v).Constant(), "constant + variable is not constant")

	// Raw operands become constant leaves: const op raw stays constant.
	assert.True(t, c1.Mul(4.0).Constant())
}

func TestBackward_ConstantReceivesNoGradient(t *testing.T) {
	c := autograd.MustNew(2.0, autograd.Constant())
	v := autograd.MustNew(3.0)
	y := c.Mul(v)

	require.NoError(t, y.Backward())
	assert.Equal(t, 2.0, v.Grad().Item())
	assert.Nil(t, c.Grad())
}

func TestBackward_ConstantResultKeepsCreator(t *testing.T) {
	c1 := autograd.MustNew(1.0, autograd.Constant())
	c2 := autograd.MustNew(2.0, autograd.Constant())
	y := c1.Add(c2)

	// The creator link is stored for structural symmetry even though
	// backpropagation never traverses it.
	assert.True(t, y.Constant())
	assert.NotNil(t, y.Creator())
	require.NoError(t, y.Backward())
	assert.Nil(t, y.Grad())
	assert.Nil(t, c1.Grad())
}

func TestBackward_ScalarOnlyError(t *testing.T) {
	x := autograd.MustNew([]float64{1, 2}, autograd.WithScalarOnly())

	var nsErr *autograd.NonScalarBackpropError
	err := x.Backward()
	require.ErrorAs(t, err, &nsErr)
	assert.Equal(t, ndarray.Shape{2}, nsErr.Shape)

	// An explicit gradient sidesteps the safeguard.
	require.NoError(t, x.Backward([]float64{1, 1}))
	assert.Equal(t, []float64{1, 1}, x.Grad().Data())
}

func TestBackward_ScalarOnlyScalarIsFine(t *testing.T) {
	x := autograd.MustNew(4.0, autograd.WithScalarOnly())
	require.NoError(t, x.Backward())
	assert.Equal(t, 1.0, x.Grad().Item())
}

func TestScalarOnly_Propagation(t *testing.T) {
	x := autograd.MustNew([]float64{1, 2}, autograd.WithScalarOnly())
	y := x.Mul(2.0)
	assert.True(t, y.ScalarOnly(), "scalar-only propagates through non-constant inputs")

	c := autograd.MustNew([]float64{1, 2}, autograd.Constant(), autograd.WithScalarOnly())
	z := c.Mul(autograd.MustNew([]float64{3, 4}))
	assert.False(t, z.ScalarOnly(), "a constant input's scalar-only flag does not propagate")
}

func TestBackward_RepeatedCallsAccumulate(t *testing.T) {
	x := autograd.MustNew(1.0)
	y := x.Mul(3.0)
	require.NoError(t, y.Backward())
	require.NoError(t, y.Backward())
	assert.Equal(t, 6.0, x.Grad().Item(), "each backward pass adds into the buffer")
}

func TestNullGradients(t *testing.T) {
	a := autograd.MustNew(2.0)
	b := autograd.MustNew(3.0)
	f := a.Mul(b).Add(a)
	require.NoError(t, f.Backward())
	require.NotNil(t, a.Grad())
	require.NotNil(t, b.Grad())

	f.NullGradients()
	assert.Nil(t, f.Grad())
	assert.Nil(t, a.Grad())
	assert.Nil(t, b.Grad())

	// Idempotent, and safe on a fresh graph.
	f.NullGradients()
	assert.Nil(t, a.Grad())
	autograd.MustNew(1.0).NullGradients()
}

func TestNullGradients_ThenBackwardAgain(t *testing.T) {
	x := autograd.MustNew(2.0)
	y := x.Mul(x)
	require.NoError(t, y.Backward())
	assert.Equal(t, 4.0, x.Grad().Item())

	y.NullGradients()
	require.NoError(t, y.Backward())
	assert.Equal(t, 4.0, x.Grad().Item(), "reset clears accumulation state")
}

func TestBackward_IntermediateGradients(t *testing.T) {
	// Gradients accumulate on interior nodes too, not just leaves.
	x := autograd.MustNew(2.0)
	u := x.Mul(3.0)
	y := u.Mul(4.0)
	require.NoError(t, y.Backward())
	assert.Equal(t, 4.0, u.Grad().Item())
	assert.Equal(t, 12.0, x.Grad().Item())
}
