package ndarray

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrUnsupportedElem reports a coercion from a Go value whose element kind
// cannot be represented in an Array.
var ErrUnsupportedElem = errors.New("unsupported element kind")

// Array is a dense N-dimensional array. Elements are stored row-major in a
// flat float64 buffer regardless of dtype; the dtype records the element kind
// the array was built from and drives formatting and numeric checks.
type Array struct {
	data  []float64
	shape Shape
	dtype DataType
}

// New creates an Array over the given float64 data with the given shape.
// The data slice is used directly, not copied.
func New(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array{data: data, shape: shape.Clone(), dtype: Float64}, nil
}

// FromAny coerces a Go value into an Array.
//
// Accepted inputs: numeric scalars, bools, and arbitrarily nested slices or
// arrays of them. Integer inputs produce an Int64 array, floating-point
// inputs a Float64 array, bool inputs a Bool array. An existing *Array is
// returned as-is. Ragged nested slices and unsupported element kinds (e.g.
// strings) are rejected.
func FromAny(v any) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a, nil
	}

	shape, err := inferShape(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}

	out := &Array{
		data:  make([]float64, 0, shape.NumElements()),
		shape: shape,
		dtype: Float64,
	}
	first := true
	if err := flatten(reflect.ValueOf(v), shape, out, &first); err != nil {
		return nil, err
	}
	return out, nil
}

// inferShape walks the leading element of each nesting level.
func inferShape(v reflect.Value) (Shape, error) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return Shape{}, nil
	}
	if v.Len() == 0 {
		return nil, fmt.Errorf("cannot build array from empty slice")
	}
	inner, err := inferShape(v.Index(0))
	if err != nil {
		return nil, err
	}
	return append(Shape{v.Len()}, inner...), nil
}

// flatten appends elements in row-major order, checking that every
// sub-slice matches the inferred shape.
func flatten(v reflect.Value, shape Shape, out *Array, first *bool) error {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if len(shape) == 0 {
		dt, x, err := scalarValue(v)
		if err != nil {
			return err
		}
		if *first {
			out.dtype = dt
			*first = false
		} else if out.dtype != dt {
			// Mixed int/float promotes to float; bool never mixes.
			if out.dtype == Bool || dt == Bool {
				return fmt.Errorf("cannot mix bool and numeric elements")
			}
			out.dtype = Float64
		}
		out.data = append(out.data, x)
		return nil
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return fmt.Errorf("ragged nested sequence: expected %d more dimension(s), got %s", len(shape), v.Kind())
	}
	if v.Len() != shape[0] {
		return fmt.Errorf("ragged nested sequence: expected length %d, got %d", shape[0], v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if err := flatten(v.Index(i), shape[1:], out, first); err != nil {
			return err
		}
	}
	return nil
}

func scalarValue(v reflect.Value) (DataType, float64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64, float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int64, float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float64, v.Float(), nil
	case reflect.Bool:
		if v.Bool() {
			return Bool, 1, nil
		}
		return Bool, 0, nil
	default:
		return 0, 0, fmt.Errorf("%w %s", ErrUnsupportedElem, v.Kind())
	}
}

// Data returns the flat float64 buffer. Mutations are visible to the array.
func (a *Array) Data() []float64 { return a.data }

// Shape returns the array's shape.
func (a *Array) Shape() Shape { return a.shape }

// DType returns the array's data type.
func (a *Array) DType() DataType { return a.dtype }

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Item returns the value of a 0-D (or single-element) array.
func (a *Array) Item() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("Item() only works for single-element arrays, got shape %v", a.shape))
	}
	return a.data[0]
}

// At returns the element at the given indices.
func (a *Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	offset := 0
	strides := a.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * strides[i]
	}
	return a.data[offset]
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{data: data, shape: a.shape.Clone(), dtype: a.dtype}
}

// Equal reports whether two arrays have the same dtype, shape and elements.
func (a *Array) Equal(other *Array) bool {
	if a.dtype != other.dtype || !a.shape.Equal(other.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String formats the array. 0-D arrays print as the bare element, 1-D as a
// flat list, and N-D row by row over the last axis.
func (a *Array) String() string {
	switch len(a.shape) {
	case 0:
		return a.formatElem(0)
	case 1:
		return a.formatRow(0, len(a.data))
	default:
		var sb strings.Builder
		rowLen := a.shape[len(a.shape)-1]
		for i := 0; i < len(a.data); i += rowLen {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(a.formatRow(i, i+rowLen))
		}
		return sb.String()
	}
}

func (a *Array) formatRow(start, end int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := start; i < end; i++ {
		if i > start {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.formatElem(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array) formatElem(i int) string {
	switch a.dtype {
	case Int64:
		return strconv.FormatInt(int64(a.data[i]), 10)
	case Bool:
		return strconv.FormatBool(a.data[i] != 0)
	default:
		return strconv.FormatFloat(a.data[i], 'g', -1, 64)
	}
}
