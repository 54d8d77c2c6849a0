// Package doccheck checks function arguments against the parameter types listed
// in the function's documentation. Each documented type description, such as
// "int | float" or "array, shape (n, m)", is compiled once into a checker, and
// every call is checked before the function body runs.
package doccheck

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/checker"
	"github.com/ygrebnov/doccheck/errors"
	"github.com/ygrebnov/doccheck/internal/core"
	"github.com/ygrebnov/doccheck/typedesc"
)

// Parameter is a documented parameter: its name and its type description, e.g.
// {Name: "a", Type: "int | float"}.
type Parameter = typedesc.Param

// Validator checks call arguments against the checkers compiled from a list of
// documented parameters. It is immutable and safe for concurrent use.
type Validator struct {
	name     string
	registry *core.Registry
}

// Compile resolves one checker per parameter, in order. Unknown type names do
// not fail compilation: they degrade to comparing runtime type names.
func Compile(name string, params []Parameter, opts ...Option) (*Validator, error) {
	cfg := newConfig(opts)
	registry, err := core.NewService(cfg.universe, cfg.logger).Compile(params)
	if err != nil {
		return nil, errorc.With(err, errorc.String(errors.ErrorFieldFuncName, name))
	}
	cfg.logger.Debug().Str("func", name).Strs("params", registry.Names()).Msg("validator compiled")
	return &Validator{name: name, registry: registry}, nil
}

func (v *Validator) Name() string { return v.name }

// Params returns the documented parameter names in order.
func (v *Validator) Params() []string { return v.registry.Names() }

func (v *Validator) Len() int { return v.registry.Len() }

// Validate checks positional arguments by position and keyword arguments by
// name. It returns the first failure: a *checker.TypeError for a mismatched
// value, or an error wrapping errors.ErrUnknownParameter for an undocumented
// keyword. Positional arguments beyond the documented ones are not checked.
func (v *Validator) Validate(args []any, kwargs map[string]any) error {
	return v.registry.Validate(args, kwargs)
}

// ValidateAll runs every applicable checker and returns a *checker.Report
// listing all failures, or nil.
func (v *Validator) ValidateAll(args []any, kwargs map[string]any) error {
	report := &checker.Report{}
	v.registry.ValidateAll(args, kwargs, report)
	if report.Empty() {
		return nil
	}
	return report
}
