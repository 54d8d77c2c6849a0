package checker

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
)

// Issue is a single failed check for a named parameter.
type Issue struct {
	Param string
	Err   error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Param, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }

// MarshalJSON exports Issue as an object with param and message fields.
func (i Issue) MarshalJSON() ([]byte, error) {
	msg := ""
	if i.Err != nil {
		msg = i.Err.Error()
	}
	return json.Marshal(struct {
		Param   string `json:"param"`
		Message string `json:"message"`
	}{
		Param:   i.Param,
		Message: msg,
	})
}

// Report accumulates issues when every checker runs instead of stopping at the
// first failure. It unwraps to errors.Join of the underlying causes.
type Report struct {
	mu     sync.Mutex
	issues []Issue
}

// Add appends an issue. Nil errors are ignored.
func (r *Report) Add(param string, err error) {
	if r == nil || err == nil {
		return
	}
	r.mu.Lock()
	r.issues = append(r.issues, Issue{Param: param, Err: err})
	r.mu.Unlock()
}

// Len returns the number of accumulated issues.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.issues)
}

// Empty reports whether there are no issues.
func (r *Report) Empty() bool { return r.Len() == 0 }

// Issues returns a copy of the accumulated issues in insertion order.
func (r *Report) Issues() []Issue {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Issue(nil), r.issues...)
}

// Error returns the single issue message, or a multi-line description of all issues.
func (r *Report) Error() string {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	switch len(r.issues) {
	case 0:
		return ""
	case 1:
		return r.issues[0].Err.Error()
	default:
		var b strings.Builder
		b.WriteString("argument check failed (\n")
		for i, is := range r.issues {
			b.WriteString("  ")
			b.WriteString(is.Err.Error())
			if i < len(r.issues)-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n)")
		return b.String()
	}
}

// Unwrap joins underlying causes so errors.Is/As keep working on the combined error.
func (r *Report) Unwrap() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	errs := make([]error, 0, len(r.issues))
	for _, is := range r.issues {
		if is.Err != nil {
			errs = append(errs, is.Err)
		}
	}
	return stderrors.Join(errs...)
}

// ForParam returns all issues recorded for a parameter.
func (r *Report) ForParam(param string) []Issue {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Issue
	for _, is := range r.issues {
		if is.Param == param {
			out = append(out, is)
		}
	}
	return out
}

// Params returns the parameters that have issues (unique, order of first occurrence).
func (r *Report) Params() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, is := range r.issues {
		if _, ok := seen[is.Param]; !ok {
			seen[is.Param] = struct{}{}
			out = append(out, is.Param)
		}
	}
	return out
}

// MarshalJSON exports Report as a map of parameter name -> list of messages.
//
//	{
//	  "a": ["parameter `a` should be of type int, but got \"x\" instead."]
//	}
func (r *Report) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	by := make(map[string][]string, len(r.issues))
	for _, is := range r.issues {
		msg := ""
		if is.Err != nil {
			msg = is.Err.Error()
		}
		by[is.Param] = append(by[is.Param], msg)
	}
	return json.Marshal(by)
}
