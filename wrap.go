package doccheck

import "reflect"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Wrap returns a function of the same type as fn that checks its arguments
// against params before calling fn. names are fn's declared parameter names.
//
// When a check fails and F's last result is an error, the wrapper returns zero
// values and the *checker.TypeError; otherwise it panics with that error.
func Wrap[F any](fn F, name string, names []string, params []Parameter, opts ...Option) (F, error) {
	var zero F
	d, err := Decorate(Func{Name: name, Params: names, Fn: fn}, params, opts...)
	if err != nil {
		return zero, err
	}

	ft := d.fn.Type()
	wrapped := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		args := make([]any, len(in))
		for i, v := range in {
			args[i] = v.Interface()
		}
		if err := d.validator.Validate(args, nil); err != nil {
			return failure(ft, err)
		}
		return d.fn.Call(in)
	})
	return wrapped.Interface().(F), nil
}

func failure(ft reflect.Type, err error) []reflect.Value {
	n := ft.NumOut()
	if n == 0 || ft.Out(n-1) != errorType {
		panic(err)
	}
	out := make([]reflect.Value, n)
	for i := 0; i < n-1; i++ {
		out[i] = reflect.Zero(ft.Out(i))
	}
	out[n-1] = reflect.New(errorType).Elem()
	out[n-1].Set(reflect.ValueOf(err))
	return out
}
