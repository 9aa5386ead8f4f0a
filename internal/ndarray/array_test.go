package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabla-ml/nabla/internal/ndarray"
)

func TestFromAny_Scalars(t *testing.T) {
	a, err := ndarray.FromAny(3)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Int64, a.DType())
	assert.Equal(t, 0, a.Ndim())
	assert.Equal(t, 3.0, a.Item())

	a, err = ndarray.FromAny(2.5)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float64, a.DType())
	assert.Equal(t, 2.5, a.Item())

	a, err = ndarray.FromAny(true)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Bool, a.DType())
}

func TestFromAny_NestedSlices(t *testing.T) {
	a, err := ndarray.FromAny([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 3}, a.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())
	assert.Equal(t, 5.0, a.At(1, 1))
}

func TestFromAny_IntSlicePromotion(t *testing.T) {
	a, err := ndarray.FromAny([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Int64, a.DType())

	// Mixed int/float inputs promote to float64.
	b, err := ndarray.FromAny([]any{1, 2.5})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float64, b.DType())
}

func TestFromAny_Ragged(t *testing.T) {
	_, err := ndarray.FromAny([][]float64{{1, 2}, {3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ragged")
}

func TestFromAny_UnsupportedKind(t *testing.T) {
	_, err := ndarray.FromAny([]string{"a", "b"})
	require.ErrorIs(t, err, ndarray.ErrUnsupportedElem)
}

func TestFromAny_ExistingArray(t *testing.T) {
	a := ndarray.Ones(ndarray.Shape{2})
	b, err := ndarray.FromAny(a)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestArray_Clone(t *testing.T) {
	a, err := ndarray.FromAny([]float64{1, 2})
	require.NoError(t, err)
	b := a.Clone()
	b.Data()[0] = 99
	assert.Equal(t, 1.0, a.Data()[0])
	assert.True(t, a.Shape().Equal(b.Shape()))
}

func TestArray_String(t *testing.T) {
	scalar := ndarray.Scalar(5)
	assert.Equal(t, "5", scalar.String())

	vec, err := ndarray.FromAny([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3]", vec.String())

	mat, err := ndarray.FromAny([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1 2]\n[3 4]", mat.String())
}

func TestArray_Equal(t *testing.T) {
	a, err := ndarray.FromAny([]float64{1, 2})
	require.NoError(t, err)
	b, err := ndarray.FromAny([]float64{1, 2})
	require.NoError(t, err)
	c, err := ndarray.FromAny([]int{1, 2})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c)) // dtype differs
}

func TestNew_ShapeMismatch(t *testing.T) {
	_, err := ndarray.New([]float64{1, 2, 3}, ndarray.Shape{2, 2})
	require.Error(t, err)
}
