// Package checker builds unary argument checkers: a Checker returns nil when the
// value is acceptable and a *TypeError describing the mismatch otherwise.
package checker

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ygrebnov/doccheck/types"
)

// Checker validates a single argument value.
type Checker func(value any) error

// Untyped accepts every value.
func Untyped() Checker {
	return func(any) error { return nil }
}

// Instance accepts values that are instances of t.
func Instance(param string, t types.Type) Checker {
	return func(value any) error {
		if t.IsInstance(value) {
			return nil
		}
		return newTypeError(param, t.Name(), value,
			fmt.Sprintf("parameter `%s` should be of type %s, but got %s instead.", param, t.Name(), Repr(value)))
	}
}

// TypeName accepts values whose runtime type name equals the last dotted
// component of name. It stands in for Instance when name cannot be resolved.
func TypeName(param, name string) Checker {
	want := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		want = name[i+1:]
	}
	return func(value any) error {
		if RuntimeTypeName(value) == want {
			return nil
		}
		return newTypeError(param, name, value,
			fmt.Sprintf("parameter `%s` should be of type %s, but got %s instead.", param, name, Repr(value)))
	}
}

// RuntimeTypeName returns the name of the dynamic type of v, looking through
// pointers: both T and *T report "T". Unnamed types report their literal form
// and nil reports "nil".
func RuntimeTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	rt := reflect.TypeOf(v)
	for rt.Kind() == reflect.Ptr && rt.Name() == "" {
		rt = rt.Elem()
	}
	if n := rt.Name(); n != "" {
		return n
	}
	return rt.String()
}
