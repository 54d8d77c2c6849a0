package checker

import (
	"encoding/json"
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ygrebnov/doccheck/errors"
	"github.com/ygrebnov/doccheck/types"
)

func TestReport_Add_Len_Empty_nilReceiverSafe(t *testing.T) {
	t.Parallel()

	var nilReport *Report
	nilReport.Add("a", stderrors.New("x")) // must not panic
	if nilReport.Len() != 0 || !nilReport.Empty() {
		t.Fatalf("nil receiver Len/Empty wrong: Len=%d Empty=%v", nilReport.Len(), nilReport.Empty())
	}
	if nilReport.Error() != "" || nilReport.Unwrap() != nil {
		t.Fatalf("nil receiver Error/Unwrap should be zero values")
	}

	r := &Report{}
	r.Add("a", nil)
	if !r.Empty() {
		t.Fatalf("nil error should not be recorded")
	}
	r.Add("a", stderrors.New("x"))
	r.Add("b", stderrors.New("y"))
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}

func TestReport_Error(t *testing.T) {
	t.Parallel()

	r := &Report{}
	r.Add("a", stderrors.New("first"))
	if got := r.Error(); got != "first" {
		t.Fatalf("single issue Error() = %q, want %q", got, "first")
	}
	r.Add("b", stderrors.New("second"))
	want := "argument check failed (\n  first\n  second\n)"
	if got := r.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestReport_UnwrapAndQueries(t *testing.T) {
	t.Parallel()

	r := &Report{}
	r.Add("a", Instance("a", types.Of[int]())("x"))
	r.Add("b", stderrors.New("plain"))
	r.Add("a", stderrors.New("again"))

	if !stderrors.Is(r, errors.ErrTypeMismatch) {
		t.Fatalf("errors.Is(report, ErrTypeMismatch) = false")
	}
	var te *TypeError
	if !stderrors.As(r, &te) || te.Param != "a" {
		t.Fatalf("errors.As(report, *TypeError) failed: %v", te)
	}
	if got := r.Params(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Params() = %v, want [a b]", got)
	}
	if got := r.ForParam("a"); len(got) != 2 {
		t.Fatalf("ForParam(a) len = %d, want 2", len(got))
	}
	if got := r.Issues(); len(got) != 3 || got[1].Param != "b" {
		t.Fatalf("Issues() = %v", got)
	}
	if got := r.Issues()[1].Error(); got != "b: plain" {
		t.Fatalf("Issue.Error() = %q, want %q", got, "b: plain")
	}
}

func TestReport_MarshalJSON(t *testing.T) {
	t.Parallel()

	r := &Report{}
	r.Add("a", stderrors.New("m1"))
	r.Add("a", stderrors.New("m2"))
	r.Add("b", stderrors.New("m3"))

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got map[string][]string
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	want := map[string][]string{"a": {"m1", "m2"}, "b": {"m3"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MarshalJSON = %v, want %v", got, want)
	}

	ib, err := json.Marshal(Issue{Param: "a", Err: stderrors.New("m")})
	if err != nil {
		t.Fatalf("Marshal(Issue) error: %v", err)
	}
	if !strings.Contains(string(ib), `"param":"a"`) || !strings.Contains(string(ib), `"message":"m"`) {
		t.Fatalf("Issue JSON = %s", ib)
	}

	var nilReport *Report
	nb, _ := nilReport.MarshalJSON()
	if string(nb) != "null" {
		t.Fatalf("nil MarshalJSON = %s, want null", nb)
	}
}
