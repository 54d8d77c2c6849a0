package core

import (
	"bytes"
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ygrebnov/doccheck/checker"
	"github.com/ygrebnov/doccheck/errors"
	"github.com/ygrebnov/doccheck/ndarray"
	"github.com/ygrebnov/doccheck/typedesc"
	"github.com/ygrebnov/doccheck/types"
)

type NumpyDocString struct{}

type SomeClass struct{}

func newTestService(t *testing.T) *Service {
	t.Helper()
	u := types.NewUniverse(zerolog.Nop())
	m := types.NewModule("numpydoc.docscrape")
	if err := m.Add("NumpyDocString", types.Of[NumpyDocString]()); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := u.RegisterModule(m); err != nil {
		t.Fatalf("RegisterModule error: %v", err)
	}
	return NewService(u, zerolog.Nop())
}

func TestService_Resolve(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	gen := func(yield func(int) bool) {}
	arr3, _ := ndarray.New(1, 2, 3)

	tests := []struct {
		name    string
		desc    string
		accepts []any
		rejects []any
		wantMsg string
	}{
		{name: "untyped", desc: "", accepts: []any{nil, "plain string", 1}},
		{name: "untyped separator", desc: ":", accepts: []any{nil, 1}},
		{name: "builtin", desc: "int", accepts: []any{1}, rejects: []any{"x", 1.1}, wantMsg: "parameter `p` should be of type int"},
		{name: "union", desc: "int | float", accepts: []any{1, 1.5}, rejects: []any{"bar"}, wantMsg: "should be one of int | float"},
		{
			name:    "union with qualified branch",
			desc:    "int | float | numpydoc.docscrape.NumpyDocString",
			accepts: []any{1, 1.1, NumpyDocString{}},
			rejects: []any{"bar"},
			wantMsg: "int | float | numpydoc.docscrape.NumpyDocString",
		},
		{name: "function", desc: "function", accepts: []any{func() {}}, rejects: []any{1}, wantMsg: "should be of type function"},
		{name: "generator", desc: "generator", accepts: []any{gen, make(chan int)}, rejects: []any{1}, wantMsg: "should be of type generator"},
		{name: "array", desc: "array", accepts: []any{ndarray.Scalar(1)}, rejects: []any{"bar"}, wantMsg: "should be of type ndarray"},
		{name: "shape", desc: "array, shape (a, b, c)", accepts: []any{arr3}, rejects: []any{1}, wantMsg: "scalar value"},
		{name: "qualified", desc: "numpydoc.docscrape.NumpyDocString", accepts: []any{NumpyDocString{}}, rejects: []any{1}, wantMsg: "NumpyDocString"},
		{name: "unknown name falls back", desc: "SomeClass", accepts: []any{SomeClass{}}, rejects: []any{1}, wantMsg: "should be of type SomeClass"},
		{name: "unknown module falls back", desc: "missing.mod.SomeClass", accepts: []any{SomeClass{}}, rejects: []any{1}, wantMsg: "should be of type missing.mod.SomeClass"},
		{name: "unknown attribute falls back", desc: "numpydoc.docscrape.SomeClass", accepts: []any{&SomeClass{}}, rejects: []any{NumpyDocString{}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := s.Resolve("p", tc.desc)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tc.desc, err)
			}
			for _, v := range tc.accepts {
				if err := c(v); err != nil {
					t.Fatalf("check(%#v) = %v, want nil", v, err)
				}
			}
			for _, v := range tc.rejects {
				err := c(v)
				if !stderrors.Is(err, errors.ErrTypeMismatch) {
					t.Fatalf("check(%#v) = %v, want ErrTypeMismatch", v, err)
				}
				if tc.wantMsg != "" && !strings.Contains(err.Error(), tc.wantMsg) {
					t.Fatalf("error %q does not contain %q", err.Error(), tc.wantMsg)
				}
			}
		})
	}
}

func TestService_Resolve_Errors(t *testing.T) {
	t.Parallel()

	u := types.NewUniverse(zerolog.Nop())
	_ = u.RegisterLoader("broken", func() (*types.Module, error) { return nil, stderrors.New("boom") })
	s := NewService(u, zerolog.Nop())

	if _, err := s.Resolve("p", "array, shape a, b"); !stderrors.Is(err, errors.ErrInvalidDescription) {
		t.Fatalf("malformed shape error = %v, want ErrInvalidDescription", err)
	}
	if _, err := s.Resolve("p", "broken.T"); !stderrors.Is(err, errors.ErrModuleLoad) {
		t.Fatalf("broken module error = %v, want ErrModuleLoad", err)
	}
	if _, err := s.Resolve("p", "int | broken.T"); !stderrors.Is(err, errors.ErrModuleLoad) {
		t.Fatalf("broken union branch error = %v, want ErrModuleLoad", err)
	}
}

func TestService_Resolve_LogsFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewService(types.NewUniverse(zerolog.Nop()), zerolog.New(&buf).Level(zerolog.DebugLevel))
	if _, err := s.Resolve("a", "missing.T"); err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"param":"a"`, `"type":"missing.T"`, "falling back"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q does not contain %q", out, want)
		}
	}
}

func TestService_Compile(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	params := []typedesc.Param{{Name: "b", Type: "str"}, {Name: "a", Type: "int"}, {Name: "c", Type: ""}}
	r, err := s.Compile(params)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("Names() = %v, want [b a c]", got)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if i, ok := r.Index("a"); !ok || i != 1 {
		t.Fatalf("Index(a) = %d, %v; want 1, true", i, ok)
	}

	_, err = s.Compile([]typedesc.Param{{Name: "a", Type: "int"}, {Name: "a", Type: "str"}})
	if !stderrors.Is(err, errors.ErrDuplicateParameter) {
		t.Fatalf("duplicate parameter error = %v, want ErrDuplicateParameter", err)
	}
}

func TestRegistry_Validate(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	r, err := s.Compile([]typedesc.Param{{Name: "a", Type: "int"}, {Name: "b", Type: "str"}, {Name: "c", Type: "array"}})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	arr := ndarray.Scalar(1)

	tests := []struct {
		name      string
		args      []any
		kwargs    map[string]any
		wantParam string
		wantErr   error
	}{
		{name: "all positional", args: []any{1, "hello", arr}},
		{name: "mixed", args: []any{1}, kwargs: map[string]any{"b": "hello", "c": arr}},
		{name: "all keyword", kwargs: map[string]any{"b": "hello", "a": 1}},
		{name: "extra positional is not checked", args: []any{1, "hello", arr, "extra"}},
		{name: "positional mismatch", args: []any{1, 2, arr}, wantParam: "b", wantErr: errors.ErrTypeMismatch},
		{name: "first failure wins", args: []any{"foo", 2}, wantParam: "a", wantErr: errors.ErrTypeMismatch},
		{name: "keyword mismatch", args: []any{"foo"}, kwargs: map[string]any{"b": "hello"}, wantParam: "a", wantErr: errors.ErrTypeMismatch},
		{name: "keyword order", kwargs: map[string]any{"b": 1, "a": "foo"}, wantParam: "a", wantErr: errors.ErrTypeMismatch},
		{name: "unknown keyword", kwargs: map[string]any{"z": 1}, wantErr: errors.ErrUnknownParameter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := r.Validate(tc.args, tc.kwargs)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate = %v, want nil", err)
				}
				return
			}
			if !stderrors.Is(err, tc.wantErr) {
				t.Fatalf("Validate = %v, want %v", err, tc.wantErr)
			}
			if tc.wantParam != "" {
				var te *checker.TypeError
				if !stderrors.As(err, &te) || te.Param != tc.wantParam {
					t.Fatalf("failing parameter = %v, want %q", err, tc.wantParam)
				}
			}
		})
	}
}

func TestRegistry_ValidateAll(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	r, err := s.Compile([]typedesc.Param{{Name: "a", Type: "int"}, {Name: "b", Type: "str"}})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	report := &checker.Report{}
	r.ValidateAll([]any{"x"}, map[string]any{"b": 2, "z": 3}, report)
	if got := report.Params(); !reflect.DeepEqual(got, []string{"a", "b", "z"}) {
		t.Fatalf("Params() = %v, want [a b z]", got)
	}
	if !stderrors.Is(report, errors.ErrUnknownParameter) {
		t.Fatalf("report should include ErrUnknownParameter")
	}

	clean := &checker.Report{}
	r.ValidateAll([]any{1, "x"}, nil, clean)
	if !clean.Empty() {
		t.Fatalf("clean arguments produced issues: %v", clean)
	}
}
