package doccheck

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ygrebnov/doccheck/checker"
	"github.com/ygrebnov/doccheck/errors"
	"github.com/ygrebnov/doccheck/types"
)

type NumpyDocString struct{ Text string }

type SomeClass struct{}

// newTestUniverse returns a universe with a "numpydoc.docscrape" module.
func newTestUniverse(t *testing.T) *types.Universe {
	t.Helper()
	u := types.NewUniverse(zerolog.Nop())
	m := types.NewModule("numpydoc.docscrape")
	if err := m.Add("NumpyDocString", types.Of[NumpyDocString]()); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := u.RegisterModule(m); err != nil {
		t.Fatalf("RegisterModule error: %v", err)
	}
	return u
}

func mustDecorate(t *testing.T, f Func, params []Parameter, opts ...Option) *Decorated {
	t.Helper()
	d, err := Decorate(f, params, opts...)
	if err != nil {
		t.Fatalf("Decorate(%s) error: %v", f.Name, err)
	}
	return d
}

func assertTypeError(t *testing.T, err error, wantParam, wantSubstr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !stderrors.Is(err, errors.ErrTypeMismatch) {
		t.Fatalf("errors.Is(%v, ErrTypeMismatch) = false", err)
	}
	var te *checker.TypeError
	if !stderrors.As(err, &te) {
		t.Fatalf("expected *checker.TypeError, got %T", err)
	}
	if te.Param != wantParam {
		t.Fatalf("Param = %q, want %q (%v)", te.Param, wantParam, err)
	}
	if wantSubstr != "" && !strings.Contains(err.Error(), wantSubstr) {
		t.Fatalf("error %q does not contain %q", err.Error(), wantSubstr)
	}
}
