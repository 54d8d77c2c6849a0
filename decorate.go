package doccheck

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/errors"
)

// Func describes a Go function together with the metadata Go does not keep at
// runtime: its name, documentation and declared parameter names.
type Func struct {
	Name string
	Doc  string
	// Params are the declared parameter names, one per input of Fn, in order.
	Params []string
	// Defaults supply values for parameters left out of a call. Defaults are not checked.
	Defaults map[string]any
	// Fn is the function to call. It must not be variadic.
	Fn any
}

// Decorated is a function whose arguments are checked before every call.
type Decorated struct {
	name      string
	doc       string
	params    []string
	defaults  map[string]any
	fn        reflect.Value
	validator *Validator
}

// Decorate compiles params and wraps f. The documented parameter names must
// equal f.Params exactly, in order; otherwise the error wraps
// errors.ErrSignatureMismatch and no type description is compiled.
func Decorate(f Func, params []Parameter, opts ...Option) (*Decorated, error) {
	fv, err := funcValue(f)
	if err != nil {
		return nil, err
	}

	documented := make([]string, len(params))
	for i, p := range params {
		documented[i] = p.Name
	}
	if !slices.Equal(documented, f.Params) {
		return nil, errorc.With(
			errors.ErrSignatureMismatch,
			errorc.String(errors.ErrorFieldFuncName, f.Name),
			errorc.String(errors.ErrorFieldDocumented, strings.Join(documented, ", ")),
			errorc.String(errors.ErrorFieldDeclared, strings.Join(f.Params, ", ")),
		)
	}

	v, err := Compile(f.Name, params, opts...)
	if err != nil {
		return nil, err
	}

	return &Decorated{
		name:      f.Name,
		doc:       f.Doc,
		params:    slices.Clone(f.Params),
		defaults:  f.Defaults,
		fn:        fv,
		validator: v,
	}, nil
}

func funcValue(f Func) (reflect.Value, error) {
	fv := reflect.ValueOf(f.Fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		goType := "nil"
		if fv.IsValid() {
			goType = fv.Type().String()
		}
		return reflect.Value{}, errorc.With(
			errors.ErrInvalidFunc,
			errorc.String(errors.ErrorFieldFuncName, f.Name),
			errorc.String(errors.ErrorFieldFuncType, goType),
		)
	}
	ft := fv.Type()
	if ft.IsVariadic() || ft.NumIn() != len(f.Params) {
		return reflect.Value{}, errorc.With(
			errors.ErrInvalidFunc,
			errorc.String(errors.ErrorFieldFuncName, f.Name),
			errorc.String(errors.ErrorFieldFuncType, ft.String()),
			errorc.String(errors.ErrorFieldArgumentCount, strconv.Itoa(len(f.Params))),
		)
	}
	return fv, nil
}

func (d *Decorated) Name() string { return d.name }

func (d *Decorated) Doc() string { return d.doc }

// Params returns the declared parameter names.
func (d *Decorated) Params() []string { return slices.Clone(d.params) }

func (d *Decorated) Validator() *Validator { return d.validator }

// Call checks the arguments, then calls the function with positional arguments
// first, keyword arguments at their declared positions and defaults for the
// rest. It returns the function results unchanged. A failed check returns the
// checker's error and the function is not called.
func (d *Decorated) Call(args []any, kwargs map[string]any) ([]any, error) {
	if err := d.validator.Validate(args, kwargs); err != nil {
		return nil, err
	}
	in, err := d.bind(args, kwargs)
	if err != nil {
		return nil, err
	}
	out := d.fn.Call(in)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

func (d *Decorated) bind(args []any, kwargs map[string]any) ([]reflect.Value, error) {
	if len(args) > len(d.params) {
		return nil, errorc.With(
			errors.ErrTooManyArguments,
			errorc.String(errors.ErrorFieldFuncName, d.name),
			errorc.String(errors.ErrorFieldArgumentCount, strconv.Itoa(len(args))),
		)
	}

	values := make([]any, len(d.params))
	bound := make([]bool, len(d.params))
	for i, a := range args {
		values[i], bound[i] = a, true
	}
	for name, v := range kwargs {
		i, ok := d.validator.registry.Index(name)
		if !ok {
			return nil, d.argError(errors.ErrUnknownParameter, name)
		}
		if bound[i] {
			return nil, d.argError(errors.ErrDuplicateArgument, name)
		}
		values[i], bound[i] = v, true
	}

	ft := d.fn.Type()
	in := make([]reflect.Value, len(d.params))
	for i, name := range d.params {
		if !bound[i] {
			dv, ok := d.defaults[name]
			if !ok {
				return nil, d.argError(errors.ErrMissingArgument, name)
			}
			values[i] = dv
		}
		rv, ok := argValue(values[i], ft.In(i))
		if !ok {
			return nil, errorc.With(
				errors.ErrNotAssignable,
				errorc.String(errors.ErrorFieldFuncName, d.name),
				errorc.String(errors.ErrorFieldParamName, name),
				errorc.String(errors.ErrorFieldParamGoType, ft.In(i).String()),
				errorc.String(errors.ErrorFieldValueType, fmt.Sprintf("%T", values[i])),
			)
		}
		in[i] = rv
	}
	return in, nil
}

func (d *Decorated) argError(sentinel error, param string) error {
	return errorc.With(
		sentinel,
		errorc.String(errors.ErrorFieldFuncName, d.name),
		errorc.String(errors.ErrorFieldParamName, param),
	)
}

// argValue converts v for a parameter of type t. nil becomes the zero value of
// nillable types.
func argValue(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	if rv.Type() != t {
		converted := reflect.New(t).Elem()
		converted.Set(rv)
		return converted, true
	}
	return rv, true
}
