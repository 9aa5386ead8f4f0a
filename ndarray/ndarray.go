// Copyright 2026 The Nabla Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the dense N-dimensional numeric array used by the
// autograd engine.
//
// Arrays hold their elements row-major in a flat buffer and support
// NumPy-style broadcasting for element-wise arithmetic, summation reductions
// over arbitrary axes, axis permutation, and comparisons.
//
// Example:
//
//	a, _ := ndarray.FromAny([][]float64{{1, 2}, {3, 4}})
//	b := ndarray.Ones(ndarray.Shape{2})
//	sum, _ := ndarray.Add(a, b)        // broadcasting (2,2) + (2,)
//	total := ndarray.Sum(sum, nil, false)
package ndarray

import (
	"github.com/nabla-ml/nabla/internal/ndarray"
)

// Array is a dense N-dimensional array.
type Array = ndarray.Array

// Shape represents the dimensions of an array. An empty Shape is 0-D.
type Shape = ndarray.Shape

// DataType represents runtime element type information.
type DataType = ndarray.DataType

// Supported element types.
const (
	Float64 = ndarray.Float64
	Int64   = ndarray.Int64
	Bool    = ndarray.Bool
)

// ErrUnsupportedElem reports a coercion from an unsupported element kind.
var ErrUnsupportedElem = ndarray.ErrUnsupportedElem

// New creates an Array over the given float64 data with the given shape.
func New(data []float64, shape Shape) (*Array, error) {
	return ndarray.New(data, shape)
}

// FromAny coerces numeric Go scalars, bools, and nested slices of them into
// an Array.
func FromAny(v any) (*Array, error) {
	return ndarray.FromAny(v)
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Array { return ndarray.Zeros(shape) }

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array { return ndarray.Ones(shape) }

// Full creates an array filled with a specific value.
func Full(shape Shape, value float64) *Array { return ndarray.Full(shape, value) }

// Scalar creates a 0-D array holding a single value.
func Scalar(value float64) *Array { return ndarray.Scalar(value) }

// OnesLike creates an all-ones array with the same shape as a.
func OnesLike(a *Array) *Array { return ndarray.OnesLike(a) }

// Broadcast applies NumPy broadcasting rules to a pair of shapes.
func Broadcast(a, b Shape) (Shape, error) { return ndarray.Broadcast(a, b) }

// Add computes a + b element-wise with broadcasting.
func Add(a, b *Array) (*Array, error) { return ndarray.Add(a, b) }

// Sub computes a - b element-wise with broadcasting.
func Sub(a, b *Array) (*Array, error) { return ndarray.Sub(a, b) }

// Mul computes a * b element-wise with broadcasting.
func Mul(a, b *Array) (*Array, error) { return ndarray.Mul(a, b) }

// Div computes a / b element-wise with broadcasting.
func Div(a, b *Array) (*Array, error) { return ndarray.Div(a, b) }

// Neg returns -a.
func Neg(a *Array) *Array { return ndarray.Neg(a) }

// Scale returns a * s.
func Scale(a *Array, s float64) *Array { return ndarray.Scale(a, s) }

// Sum reduces the array by summation over the given axes.
func Sum(a *Array, axes []int, keepDims bool) *Array { return ndarray.Sum(a, axes, keepDims) }

// Transpose permutes the axes of the array.
func Transpose(a *Array, axes ...int) (*Array, error) { return ndarray.Transpose(a, axes...) }

// BroadcastTo materializes the broadcast of a to the target shape.
func BroadcastTo(a *Array, target Shape) (*Array, error) { return ndarray.BroadcastTo(a, target) }

// ReduceTo sums a gradient back down to the target shape.
func ReduceTo(grad *Array, target Shape) *Array { return ndarray.ReduceTo(grad, target) }

// ExpandAxes reinserts size-1 dimensions at the given positions.
func ExpandAxes(a *Array, axes []int, outNdim int) *Array {
	return ndarray.ExpandAxes(a, axes, outNdim)
}

// Eq compares a == b element-wise, producing a Bool array.
func Eq(a, b *Array) (*Array, error) { return ndarray.Eq(a, b) }

// Ne compares a != b element-wise, producing a Bool array.
func Ne(a, b *Array) (*Array, error) { return ndarray.Ne(a, b) }

// Lt compares a < b element-wise, producing a Bool array.
func Lt(a, b *Array) (*Array, error) { return ndarray.Lt(a, b) }

// Le compares a <= b element-wise, producing a Bool array.
func Le(a, b *Array) (*Array, error) { return ndarray.Le(a, b) }

// Gt compares a > b element-wise, producing a Bool array.
func Gt(a, b *Array) (*Array, error) { return ndarray.Gt(a, b) }

// Ge compares a >= b element-wise, producing a Bool array.
func Ge(a, b *Array) (*Array, error) { return ndarray.Ge(a, b) }
