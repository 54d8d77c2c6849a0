package types

import (
	"reflect"

	"github.com/ygrebnov/doccheck/ndarray"
)

// Type is a resolved type object: something a value can be an instance of.
type Type interface {
	// Name is the canonical type name reported in error messages.
	Name() string
	IsInstance(v any) bool
}

// reflectType is a concrete Go type.
type reflectType struct {
	rt reflect.Type
}

// Of returns the Type for T. Interface types are captured as well.
func Of[T any]() Type {
	return reflectType{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// FromReflect returns the Type for rt.
func FromReflect(rt reflect.Type) Type {
	return reflectType{rt: rt}
}

func (t reflectType) Name() string {
	if n := t.rt.Name(); n != "" {
		return n
	}
	return t.rt.String()
}

// IsInstance reports whether v has type rt, is a pointer to rt, or implements rt
// when rt is an interface.
func (t reflectType) IsInstance(v any) bool {
	if v == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	switch {
	case vt == t.rt:
		return true
	case t.rt.Kind() == reflect.Interface:
		return vt.Implements(t.rt)
	default:
		return vt.Kind() == reflect.Ptr && vt.Elem() == t.rt
	}
}

// ReflectType returns the underlying Go type.
func (t reflectType) ReflectType() reflect.Type { return t.rt }

// kindType matches values by reflect kind rather than by exact type.
type kindType struct {
	name      string
	acceptNil bool
	match     func(reflect.Type) bool
}

func (t kindType) Name() string { return t.name }

func (t kindType) IsInstance(v any) bool {
	if v == nil {
		return t.acceptNil
	}
	return t.match(reflect.TypeOf(v))
}

var arrayLikeType = reflect.TypeOf((*ndarray.ArrayLike)(nil)).Elem()

// Special types with fixed mappings, independent of any lookup.
var (
	Function Type = kindType{
		name: "function",
		match: func(rt reflect.Type) bool {
			return rt.Kind() == reflect.Func
		},
	}
	Generator Type = kindType{name: "generator", match: isGenerator}
	Array     Type = arrayType{}
)

// isGenerator accepts receive-capable channels and range-over-func iterators:
// func(yield func(...) bool).
func isGenerator(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Chan:
		return rt.ChanDir()&reflect.RecvDir != 0
	case reflect.Func:
		if rt.NumIn() != 1 || rt.NumOut() != 0 || rt.IsVariadic() {
			return false
		}
		yield := rt.In(0)
		return yield.Kind() == reflect.Func && yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
	default:
		return false
	}
}

type arrayType struct{}

func (arrayType) Name() string { return "ndarray" }

func (arrayType) IsInstance(v any) bool {
	if v == nil {
		return false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return false
	}
	return reflect.TypeOf(v).Implements(arrayLikeType)
}
