package types

import "reflect"

// builtins returns the ambient namespace consulted for unqualified names.
func builtins() map[string]Type {
	str := kindType{name: "str", match: kindIs(reflect.String)}
	return map[string]Type{
		"int":     kindType{name: "int", match: isInteger},
		"float":   kindType{name: "float", match: kindIs(reflect.Float32, reflect.Float64)},
		"complex": kindType{name: "complex", match: kindIs(reflect.Complex64, reflect.Complex128)},
		"bool":    kindType{name: "bool", match: kindIs(reflect.Bool)},
		"str":     str,
		"bytes":   kindType{name: "bytes", match: isBytes},
		"list": kindType{name: "list", match: func(rt reflect.Type) bool {
			return rt.Kind() == reflect.Slice && !isBytes(rt)
		}},
		"tuple": kindType{name: "tuple", match: kindIs(reflect.Array)},
		"dict": kindType{name: "dict", match: func(rt reflect.Type) bool {
			return rt.Kind() == reflect.Map && !isSet(rt)
		}},
		"set":    kindType{name: "set", match: isSet},
		"object": kindType{name: "object", acceptNil: true, match: func(reflect.Type) bool { return true }},
		"None":   kindType{name: "None", acceptNil: true, match: func(reflect.Type) bool { return false }},

		"string": str,
		"any":    kindType{name: "any", acceptNil: true, match: func(reflect.Type) bool { return true }},
		"error":  Of[error](),
	}
}

func kindIs(kinds ...reflect.Kind) func(reflect.Type) bool {
	return func(rt reflect.Type) bool {
		for _, k := range kinds {
			if rt.Kind() == k {
				return true
			}
		}
		return false
	}
}

var isInteger = kindIs(
	reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
	reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
)

func isBytes(rt reflect.Type) bool {
	return rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
}

// isSet reports maps with empty-struct values, e.g. map[string]struct{}.
func isSet(rt reflect.Type) bool {
	return rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.Struct && rt.Elem().NumField() == 0
}
