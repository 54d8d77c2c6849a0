package doccheck

import (
	"testing"
	"time"

	"github.com/ygrebnov/doccheck/ndarray"
)

// benchParams mixes every kind of type description.
var benchParams = []Parameter{
	{Name: "a", Type: "int"},
	{Name: "b", Type: "int | float | str"},
	{Name: "c", Type: "array, shape (n, m, k)"},
	{Name: "d", Type: "SomeClass"},
	{Name: "e", Type: "time.Duration"},
	{Name: "f", Type: ""},
}

func BenchmarkValidate(b *testing.B) {
	v, err := Compile("bench", benchParams)
	if err != nil {
		b.Fatalf("Compile error: %v", err)
	}
	args := []any{1, "x", ndarray.AtLeast3D(ndarray.Scalar(1)), SomeClass{}}
	kwargs := map[string]any{"e": time.Second, "f": struct{}{}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Validate(args, kwargs); err != nil {
			b.Fatalf("Validate error: %v", err)
		}
	}
}

func BenchmarkCall(b *testing.B) {
	d, err := Decorate(Func{
		Name:   "bench",
		Params: []string{"a", "b", "c", "d", "e", "f"},
		Fn:     func(a int, b, c, d, e, f any) int { return a },
	}, benchParams)
	if err != nil {
		b.Fatalf("Decorate error: %v", err)
	}
	args := []any{1, 2.5, ndarray.AtLeast3D(ndarray.Scalar(1)), &SomeClass{}}
	kwargs := map[string]any{"e": time.Second, "f": "anything"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Call(args, kwargs); err != nil {
			b.Fatalf("Call error: %v", err)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile("bench", benchParams); err != nil {
			b.Fatalf("Compile error: %v", err)
		}
	}
}
