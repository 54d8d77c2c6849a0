package types

import (
	"bytes"
	"context"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ygrebnov/doccheck/ndarray"
)

// Default is the universe used when no other is configured.
var Default = newDefault()

func newDefault() *Universe {
	u := NewUniverse(zerolog.Nop())
	for path, rts := range standardModules() {
		// Paths are unique within the map, so registration cannot fail.
		_ = u.RegisterLoader(path, func() (*Module, error) {
			return moduleOf(path, rts...)
		})
	}
	return u
}

// standardModules lists the packages importable by qualified name out of the box.
func standardModules() map[string][]reflect.Type {
	return map[string][]reflect.Type{
		"time": {
			reflect.TypeOf(time.Time{}),
			reflect.TypeOf(time.Duration(0)),
			reflect.TypeOf(time.Month(0)),
			reflect.TypeOf(time.Weekday(0)),
			reflect.TypeOf(time.Location{}),
		},
		"bytes":   {reflect.TypeOf(bytes.Buffer{}), reflect.TypeOf(bytes.Reader{})},
		"strings": {reflect.TypeOf(strings.Builder{}), reflect.TypeOf(strings.Reader{})},
		"regexp":  {reflect.TypeOf(regexp.Regexp{})},
		"os":      {reflect.TypeOf(os.File{})},
		"io": {
			reflect.TypeOf((*io.Reader)(nil)).Elem(),
			reflect.TypeOf((*io.Writer)(nil)).Elem(),
			reflect.TypeOf((*io.Closer)(nil)).Elem(),
			reflect.TypeOf((*io.ReadWriter)(nil)).Elem(),
		},
		"context": {reflect.TypeOf((*context.Context)(nil)).Elem()},
		reflect.TypeOf(ndarray.Array{}).PkgPath(): {
			reflect.TypeOf(ndarray.Array{}),
			reflect.TypeOf((*ndarray.ArrayLike)(nil)).Elem(),
		},
	}
}

func moduleOf(path string, rts ...reflect.Type) (*Module, error) {
	m := NewModule(path)
	for _, rt := range rts {
		if err := m.Add(rt.Name(), FromReflect(rt)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Define adds an unqualified name to the Default universe.
func Define(name string, t Type) error { return Default.Define(name, t) }

// RegisterModule makes m importable from the Default universe.
func RegisterModule(m *Module) error { return Default.RegisterModule(m) }

// RegisterLoader makes path importable from the Default universe.
func RegisterLoader(path string, l Loader) error { return Default.RegisterLoader(path, l) }

// RegisterTypes adds named Go types to the Default universe.
func RegisterTypes(rts ...reflect.Type) error { return Default.RegisterTypes(rts...) }

// Find resolves name in the Default universe.
func Find(name string) (Resolution, error) { return Default.Find(name) }
