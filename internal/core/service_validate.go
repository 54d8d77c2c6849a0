package core

import (
	"slices"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/checker"
	"github.com/ygrebnov/doccheck/errors"
	"github.com/ygrebnov/doccheck/typedesc"
)

type entry struct {
	name  string
	check checker.Checker
}

// Registry maps parameter names to checkers in documented order. It is built
// once and never modified afterwards.
type Registry struct {
	entries []entry
	index   map[string]int
}

// Compile resolves one checker per parameter, keeping the documented order.
func (s *Service) Compile(params []typedesc.Param) (*Registry, error) {
	r := &Registry{
		entries: make([]entry, 0, len(params)),
		index:   make(map[string]int, len(params)),
	}
	for _, p := range params {
		if _, exists := r.index[p.Name]; exists {
			return nil, errorc.With(errors.ErrDuplicateParameter, errorc.String(errors.ErrorFieldParamName, p.Name))
		}
		c, err := s.Resolve(p.Name, p.Type)
		if err != nil {
			return nil, err
		}
		r.index[p.Name] = len(r.entries)
		r.entries = append(r.entries, entry{name: p.Name, check: c})
	}
	return r, nil
}

// Names returns the parameter names in documented order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *Registry) Len() int { return len(r.entries) }

// Index returns the documented position of a parameter.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Validate pairs positional arguments with checkers by position, then checks
// keyword arguments by name in sorted key order. Positional arguments beyond
// the documented parameters are not checked. The first failure is returned.
func (r *Registry) Validate(args []any, kwargs map[string]any) error {
	for i, arg := range args {
		if i >= len(r.entries) {
			break
		}
		if err := r.entries[i].check(arg); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(kwargs) {
		i, ok := r.index[name]
		if !ok {
			return unknownParameter(name)
		}
		if err := r.entries[i].check(kwargs[name]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll runs every applicable checker and records each failure in report.
func (r *Registry) ValidateAll(args []any, kwargs map[string]any, report *checker.Report) {
	for i, arg := range args {
		if i >= len(r.entries) {
			break
		}
		report.Add(r.entries[i].name, r.entries[i].check(arg))
	}
	for _, name := range sortedKeys(kwargs) {
		i, ok := r.index[name]
		if !ok {
			report.Add(name, unknownParameter(name))
			continue
		}
		report.Add(name, r.entries[i].check(kwargs[name]))
	}
}

func unknownParameter(name string) error {
	return errorc.With(errors.ErrUnknownParameter, errorc.String(errors.ErrorFieldParamName, name))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
