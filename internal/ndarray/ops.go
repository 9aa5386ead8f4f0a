package ndarray

import "fmt"

// resultDType follows NumPy promotion for element-wise arithmetic:
// int64 op int64 stays int64, anything involving float64 is float64.
// True division always produces float64.
func resultDType(a, b DataType) DataType {
	if a == Int64 && b == Int64 {
		return Int64
	}
	return Float64
}

// binaryOp evaluates fn element-wise over the broadcast of a and b.
func binaryOp(a, b *Array, dtype func(x, y DataType) DataType, fn func(x, y float64) float64) (*Array, error) {
	shape, err := Broadcast(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	out := Zeros(shape)
	out.dtype = dtype(a.dtype, b.dtype)

	outStrides := shape.ComputeStrides()
	aStrides := a.shape.ComputeStrides()
	bStrides := b.shape.ComputeStrides()
	for i := range out.data {
		ai := broadcastIndex(i, shape, outStrides, a.shape, aStrides)
		bi := broadcastIndex(i, shape, outStrides, b.shape, bStrides)
		out.data[i] = fn(a.data[ai], b.data[bi])
	}
	return out, nil
}

// broadcastIndex maps a flat index in the output to the corresponding flat
// index in a source array broadcast to the output shape. Source dimensions
// of size 1 pin their coordinate to 0; missing leading dimensions are
// ignored.
func broadcastIndex(i int, outShape Shape, outStrides []int, srcShape Shape, srcStrides []int) int {
	srcIdx := 0
	temp := i
	lead := len(outShape) - len(srcShape)
	for d := 0; d < len(outShape); d++ {
		coord := temp / outStrides[d]
		temp %= outStrides[d]
		srcDim := d - lead
		if srcDim < 0 {
			continue
		}
		if srcShape[srcDim] == 1 {
			coord = 0
		}
		srcIdx += coord * srcStrides[srcDim]
	}
	return srcIdx
}

// Add computes a + b element-wise with broadcasting.
func Add(a, b *Array) (*Array, error) {
	return binaryOp(a, b, resultDType, func(x, y float64) float64 { return x + y })
}

// Sub computes a - b element-wise with broadcasting.
func Sub(a, b *Array) (*Array, error) {
	return binaryOp(a, b, resultDType, func(x, y float64) float64 { return x - y })
}

// Mul computes a * b element-wise with broadcasting.
func Mul(a, b *Array) (*Array, error) {
	return binaryOp(a, b, resultDType, func(x, y float64) float64 { return x * y })
}

// Div computes a / b element-wise with broadcasting. The result is always
// float64 (true division).
func Div(a, b *Array) (*Array, error) {
	return binaryOp(a, b,
		func(DataType, DataType) DataType { return Float64 },
		func(x, y float64) float64 { return x / y })
}

// Neg returns -a.
func Neg(a *Array) *Array {
	return Scale(a, -1)
}

// Scale returns a * s without going through broadcasting.
func Scale(a *Array, s float64) *Array {
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

func compare(a, b *Array, pred func(x, y float64) bool) (*Array, error) {
	return binaryOp(a, b,
		func(DataType, DataType) DataType { return Bool },
		func(x, y float64) float64 {
			if pred(x, y) {
				return 1
			}
			return 0
		})
}

// Eq compares a == b element-wise, producing a Bool array.
func Eq(a, b *Array) (*Array, error) {
	return compare(a, b, func(x, y float64) bool { return x == y })
}

// Ne compares a != b element-wise, producing a Bool array.
func Ne(a, b *Array) (*Array, error) {
	return compare(a, b, func(x, y float64) bool { return x != y })
}

// Lt compares a < b element-wise, producing a Bool array.
func Lt(a, b *Array) (*Array, error) {
	return compare(a, b, func(x, y float64) bool { return x < y })
}

// Le compares a <= b element-wise, producing a Bool array.
func Le(a, b *Array) (*Array, error) {
	return compare(a, b, func(x, y float64) bool { return x <= y })
}

// Gt compares a > b element-wise, producing a Bool array.
func Gt(a, b *Array) (*Array, error) {
	return compare(a, b, func(x, y float64) bool { return x > y })
}

// Ge compares a >= b element-wise, producing a Bool array.
func Ge(a, b *Array) (*Array, error) {
	return compare(a, b, func(x, y float64) bool { return x >= y })
}

// Contains reports whether any element of a equals v.
func (a *Array) Contains(v float64) bool {
	for _, x := range a.data {
		if x == v {
			return true
		}
	}
	return false
}

// Transpose permutes the axes of the array. With no axes given the order of
// all dimensions is reversed. The permutation must name every axis exactly
// once; negative axes count from the end.
func Transpose(a *Array, axes ...int) (*Array, error) {
	ndim := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, fmt.Errorf("transpose axes %v do not match array of %d dimension(s)", axes, ndim)
	}
	perm := make([]int, ndim)
	seen := make([]bool, ndim)
	for i, ax := range axes {
		if ax < 0 {
			ax += ndim
		}
		if ax < 0 || ax >= ndim || seen[ax] {
			return nil, fmt.Errorf("invalid transpose axes %v for %d dimension(s)", axes, ndim)
		}
		seen[ax] = true
		perm[i] = ax
	}

	outShape := make(Shape, ndim)
	for i, ax := range perm {
		outShape[i] = a.shape[ax]
	}
	out := Zeros(outShape)
	out.dtype = a.dtype

	srcStrides := a.shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	for i := range out.data {
		temp := i
		srcIdx := 0
		for d := 0; d < ndim; d++ {
			coord := temp / outStrides[d]
			temp %= outStrides[d]
			srcIdx += coord * srcStrides[perm[d]]
		}
		out.data[i] = a.data[srcIdx]
	}
	return out, nil
}
