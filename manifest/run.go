package manifest

import (
	"github.com/ygrebnov/doccheck"
)

// Outcome is the result of checking one sample call.
type Outcome struct {
	Function string
	Index    int
	Expect   Expectation
	// Err is the check failure, nil when the call passed.
	Err error
}

// Met reports whether the call behaved as expected.
func (o Outcome) Met() bool {
	return (o.Err == nil) == (o.Expect == ExpectPass)
}

// Run compiles every function and checks its calls in order. With all set,
// each call is checked in report-all mode and Err is a *checker.Report.
// A function that fails to compile stops the run.
func Run(m Manifest, all bool, opts ...doccheck.Option) ([]Outcome, error) {
	var outcomes []Outcome
	for _, f := range m.Functions {
		v, err := f.Compile(opts...)
		if err != nil {
			return outcomes, err
		}
		for i, c := range f.Calls {
			args, kwargs := c.Arguments()
			if all {
				err = v.ValidateAll(args, kwargs)
			} else {
				err = v.Validate(args, kwargs)
			}
			outcomes = append(outcomes, Outcome{Function: f.Name, Index: i, Expect: c.Expectation(), Err: err})
		}
	}
	return outcomes, nil
}
