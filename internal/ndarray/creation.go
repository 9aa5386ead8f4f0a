package ndarray

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Array {
	return &Array{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
		dtype: Float64,
	}
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return Full(shape, 1)
}

// Full creates an array filled with a specific value.
func Full(shape Shape, value float64) *Array {
	a := Zeros(shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Scalar creates a 0-D array holding a single value.
func Scalar(value float64) *Array {
	return &Array{data: []float64{value}, shape: Shape{}, dtype: Float64}
}

// OnesLike creates an all-ones Float64 array with the same shape as a.
func OnesLike(a *Array) *Array {
	return Ones(a.shape)
}
