package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabla-ml/nabla/internal/ndarray"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, ndarray.Shape{}.NumElements())
	assert.Equal(t, 4, ndarray.Shape{4}.NumElements())
	assert.Equal(t, 24, ndarray.Shape{2, 3, 4}.NumElements())
}

func TestShape_ComputeStrides(t *testing.T) {
	assert.Empty(t, ndarray.Shape{}.ComputeStrides())
	assert.Equal(t, []int{1}, ndarray.Shape{5}.ComputeStrides())
	assert.Equal(t, []int{12, 4, 1}, ndarray.Shape{2, 3, 4}.ComputeStrides())
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name string
		a, b ndarray.Shape
		want ndarray.Shape
	}{
		{"equal", ndarray.Shape{3, 4}, ndarray.Shape{3, 4}, ndarray.Shape{3, 4}},
		{"stretch right", ndarray.Shape{3, 1}, ndarray.Shape{3, 5}, ndarray.Shape{3, 5}},
		{"stretch left", ndarray.Shape{1, 5}, ndarray.Shape{3, 5}, ndarray.Shape{3, 5}},
		{"missing dims", ndarray.Shape{5}, ndarray.Shape{3, 5}, ndarray.Shape{3, 5}},
		{"scalar", ndarray.Shape{}, ndarray.Shape{2, 2}, ndarray.Shape{2, 2}},
		{"outer", ndarray.Shape{3, 1}, ndarray.Shape{4}, ndarray.Shape{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ndarray.Broadcast(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBroadcast_Incompatible(t *testing.T) {
	_, err := ndarray.Broadcast(ndarray.Shape{3, 4}, ndarray.Shape{3, 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not compatible")
}
