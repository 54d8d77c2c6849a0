package checker

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/ygrebnov/doccheck/errors"
)

// TypeError reports an argument that failed its checker.
// It unwraps to errors.ErrTypeMismatch.
type TypeError struct {
	Param    string // parameter name
	Expected string // expected type description
	Value    any    // offending value
	msg      string
}

func newTypeError(param, expected string, value any, msg string) *TypeError {
	return &TypeError{Param: param, Expected: expected, Value: value, msg: msg}
}

func (e *TypeError) Error() string { return e.msg }

func (e *TypeError) Unwrap() error { return errors.ErrTypeMismatch }

// Repr renders a value for error messages: strings are quoted, nil is "nil",
// fmt.Stringer values use String and everything else uses the Go syntax form.
func Repr(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return fmt.Sprintf("(%T)(nil)", v)
	}
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%#v", v)
	}
}
