// Package ndarray provides a minimal n-dimensional numeric array used as the
// array-like value accepted by the `array` and `array, shape (...)` type descriptions.
package ndarray

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	ErrRagged       = stderrors.New("ndarray: ragged nested sequence")
	ErrNotNumeric   = stderrors.New("ndarray: element is not numeric")
	ErrInvalidShape = stderrors.New("ndarray: invalid shape")
	ErrOutOfBounds  = stderrors.New("ndarray: index out of bounds")
)

// ArrayLike is implemented by multi-dimensional numeric containers.
type ArrayLike interface {
	Ndim() int
	Shape() []int
}

// Array is a dense row-major float64 array.
type Array struct {
	shape []int
	data  []float64
}

// New returns a zero-filled array with the given shape. No dimensions yields a 0-d array.
func New(shape ...int) (*Array, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d", ErrInvalidShape, d)
		}
		size *= d
	}
	return &Array{shape: append([]int(nil), shape...), data: make([]float64, size)}, nil
}

// Scalar returns a 0-d array holding x.
func Scalar(x float64) *Array {
	return &Array{shape: []int{}, data: []float64{x}}
}

// FromNested builds an array from a scalar or nested slices of numbers,
// e.g. []any{[]any{1, 2}} or [][]float64{{1, 2}}.
func FromNested(v any) (*Array, error) {
	shape, err := nestedShape(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	a.data = a.data[:0]
	if err := a.fill(reflect.ValueOf(v), 0); err != nil {
		return nil, err
	}
	return a, nil
}

func nestedShape(rv reflect.Value) ([]int, error) {
	rv = indirect(rv)
	if !isSequence(rv) {
		if _, ok := number(rv); !ok {
			return nil, fmt.Errorf("%w: %v", ErrNotNumeric, rv)
		}
		return []int{}, nil
	}
	if rv.Len() == 0 {
		return []int{0}, nil
	}
	inner, err := nestedShape(rv.Index(0))
	if err != nil {
		return nil, err
	}
	return append([]int{rv.Len()}, inner...), nil
}

func (a *Array) fill(rv reflect.Value, depth int) error {
	rv = indirect(rv)
	if depth == len(a.shape) {
		x, ok := number(rv)
		if !ok {
			if isSequence(rv) {
				return ErrRagged
			}
			return fmt.Errorf("%w: %v", ErrNotNumeric, rv)
		}
		a.data = append(a.data, x)
		return nil
	}
	if !isSequence(rv) || rv.Len() != a.shape[depth] {
		return ErrRagged
	}
	for i := 0; i < rv.Len(); i++ {
		if err := a.fill(rv.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr) && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

func isSequence(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func number(rv reflect.Value) (float64, bool) {
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AtLeast3D views a as an array with at least three dimensions:
// 0-d -> (1, 1, 1), 1-d (N) -> (1, N, 1), 2-d (M, N) -> (M, N, 1).
func AtLeast3D(a *Array) *Array {
	var shape []int
	switch len(a.shape) {
	case 0:
		shape = []int{1, 1, 1}
	case 1:
		shape = []int{1, a.shape[0], 1}
	case 2:
		shape = []int{a.shape[0], a.shape[1], 1}
	default:
		shape = append([]int(nil), a.shape...)
	}
	return &Array{shape: shape, data: a.data}
}

func (a *Array) Ndim() int { return len(a.shape) }

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int { return append([]int{}, a.shape...) }

func (a *Array) Size() int { return len(a.data) }

// At returns the element at the given index, one entry per dimension.
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: got %d indices for %d dimensions", ErrOutOfBounds, len(idx), len(a.shape))
	}
	off := 0
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d on axis %d with size %d", ErrOutOfBounds, j, i, a.shape[i])
		}
		off = off*a.shape[i] + j
	}
	return a.data[off], nil
}

// String renders the array as nested brackets, e.g. array([[1 2]]).
func (a *Array) String() string {
	var b strings.Builder
	b.WriteString("array(")
	if len(a.shape) == 0 {
		b.WriteString(formatFloat(a.data[0]))
	} else {
		a.writeAxis(&b, 0, 0)
	}
	b.WriteString(")")
	return b.String()
}

func (a *Array) writeAxis(b *strings.Builder, axis, off int) {
	b.WriteByte('[')
	stride := 1
	for _, d := range a.shape[axis+1:] {
		stride *= d
	}
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if axis == len(a.shape)-1 {
			b.WriteString(formatFloat(a.data[off+i]))
		} else {
			a.writeAxis(b, axis+1, off+i*stride)
		}
	}
	b.WriteByte(']')
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// FormatShape renders dimensions as a tuple: (), (2,), (1, 2).
func FormatShape(shape []int) string {
	switch len(shape) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.Itoa(shape[0]) + ",)"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
