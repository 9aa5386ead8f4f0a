package ndarray

import "fmt"

// Sum reduces the array by summation over the given axes. With no axes every
// element is summed into a 0-D result. When keepDims is true the reduced
// axes remain in the result with size 1, so the result broadcasts correctly
// against the input. Negative axes count from the end; an out-of-range or
// repeated axis panics.
func Sum(a *Array, axes []int, keepDims bool) *Array {
	ndim := len(a.shape)

	if len(axes) == 0 {
		var total float64
		for _, v := range a.data {
			total += v
		}
		shape := Shape{}
		if keepDims {
			shape = make(Shape, ndim)
			for i := range shape {
				shape[i] = 1
			}
		}
		return &Array{data: []float64{total}, shape: shape, dtype: a.dtype}
	}

	reduced := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 {
			ax += ndim
		}
		if ax < 0 || ax >= ndim || reduced[ax] {
			panic(fmt.Sprintf("invalid sum axes %v for shape %v", axes, a.shape))
		}
		reduced[ax] = true
	}

	outShape := make(Shape, 0, ndim)
	for d := 0; d < ndim; d++ {
		switch {
		case !reduced[d]:
			outShape = append(outShape, a.shape[d])
		case keepDims:
			outShape = append(outShape, 1)
		}
	}

	out := Zeros(outShape)
	out.dtype = a.dtype

	// mult[d] is the output stride contributed by source dimension d;
	// reduced dimensions contribute nothing.
	outStrides := outShape.ComputeStrides()
	mult := make([]int, ndim)
	od := 0
	for d := 0; d < ndim; d++ {
		if reduced[d] {
			if keepDims {
				od++
			}
			continue
		}
		mult[d] = outStrides[od]
		od++
	}

	srcStrides := a.shape.ComputeStrides()
	for i, v := range a.data {
		temp := i
		oi := 0
		for d := 0; d < ndim; d++ {
			coord := temp / srcStrides[d]
			temp %= srcStrides[d]
			oi += coord * mult[d]
		}
		out.data[oi] += v
	}
	return out
}

// ExpandAxes reinserts size-1 dimensions at the given positions of an
// outNdim-dimensional result. It is the inverse of a keepDims=false
// reduction: ExpandAxes(Sum(a, axes, false), axes, a.Ndim()) restores a
// shape that broadcasts against a.
func ExpandAxes(a *Array, axes []int, outNdim int) *Array {
	inserted := make([]bool, outNdim)
	for _, ax := range axes {
		if ax < 0 {
			ax += outNdim
		}
		if ax < 0 || ax >= outNdim || inserted[ax] {
			panic(fmt.Sprintf("invalid expand axes %v for %d dimension(s)", axes, outNdim))
		}
		inserted[ax] = true
	}

	newShape := make(Shape, 0, outNdim)
	sd := 0
	for d := 0; d < outNdim; d++ {
		if inserted[d] {
			newShape = append(newShape, 1)
			continue
		}
		if sd >= len(a.shape) {
			panic(fmt.Sprintf("expand axes %v incompatible with shape %v", axes, a.shape))
		}
		newShape = append(newShape, a.shape[sd])
		sd++
	}

	out := a.Clone()
	out.shape = newShape
	return out
}

// BroadcastTo materializes the broadcast of a to the target shape.
func BroadcastTo(a *Array, target Shape) (*Array, error) {
	if a.shape.Equal(target) {
		return a.Clone(), nil
	}
	shape, err := Broadcast(a.shape, target)
	if err != nil || !shape.Equal(target) {
		return nil, fmt.Errorf("cannot broadcast shape %v to %v", a.shape, target)
	}

	out := Zeros(target)
	out.dtype = a.dtype
	outStrides := target.ComputeStrides()
	srcStrides := a.shape.ComputeStrides()
	for i := range out.data {
		out.data[i] = a.data[broadcastIndex(i, target, outStrides, a.shape, srcStrides)]
	}
	return out, nil
}

// ReduceTo sums a gradient back down to the target shape, undoing the
// expansion that broadcasting performed in a forward pass: leading
// dimensions absent from the target are summed away, and dimensions the
// target holds at size 1 are summed in place.
func ReduceTo(grad *Array, target Shape) *Array {
	if grad.shape.Equal(target) {
		return grad.Clone()
	}

	lead := len(grad.shape) - len(target)
	var axes []int
	for d := 0; d < len(grad.shape); d++ {
		if d < lead {
			axes = append(axes, d)
			continue
		}
		if target[d-lead] == 1 && grad.shape[d] > 1 {
			axes = append(axes, d)
		}
	}

	out := Sum(grad, axes, true)
	// Element counts now match; collapse the kept size-1 dimensions into
	// the target shape directly (row-major layout is unchanged).
	out.shape = target.Clone()
	return out
}
