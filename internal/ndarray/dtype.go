// Package ndarray provides the dense N-dimensional numeric array that backs
// the autograd engine.
package ndarray

// DataType represents runtime type information for arrays.
type DataType int

// Supported element types.
const (
	Float64 DataType = iota
	Int64
	Bool
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the data type participates in arithmetic.
// Bool arrays exist only as the result of comparison operations.
func (dt DataType) IsNumeric() bool {
	return dt == Float64 || dt == Int64
}
