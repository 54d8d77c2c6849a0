package checker

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/doccheck/ndarray"
	"github.com/ygrebnov/doccheck/types"
)

// Shape accepts array-like values with exactly len(axes) dimensions. Axis labels
// only count dimensions; their sizes are never compared. shapeText is echoed in
// error messages.
func Shape(param string, axes []string, shapeText string) Checker {
	return func(value any) error {
		if !types.Array.IsInstance(value) {
			if IsScalar(value) {
				return newTypeError(param, "array", value,
					fmt.Sprintf("parameter `%s` should be a NumPy array, but got a scalar value (%v) instead.", param, value))
			}
			return newTypeError(param, "array", value,
				fmt.Sprintf("parameter `%s` should be a NumPy array, but got %s instead.", param, Repr(value)))
		}
		arr := value.(ndarray.ArrayLike)
		if arr.Ndim() != len(axes) {
			return newTypeError(param, "array, shape ("+shapeText+")", value,
				fmt.Sprintf("parameter `%s` should have %d dimensions (%s), but given array has %d %s.",
					param, len(axes), shapeText, arr.Ndim(), ndarray.FormatShape(arr.Shape())))
		}
		return nil
	}
}

// IsScalar reports bare numbers, booleans and strings. Arrays, including 0-d
// arrays, are never scalars.
func IsScalar(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
