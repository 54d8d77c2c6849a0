package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/ygrebnov/errorc"
	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/doccheck/errors"
)

// ParseFile parses a manifest from a YAML file.
func ParseFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errorc.With(
			errors.ErrInvalidManifest,
			errorc.String(errors.ErrorFieldPath, path),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}

	m, err := Parse(data)
	if err != nil {
		return Manifest{}, errorc.With(err, errorc.String(errors.ErrorFieldPath, path))
	}
	return m, nil
}

// Parse parses a manifest from YAML bytes and validates it.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errorc.With(errors.ErrInvalidManifest, errorc.Error(errors.ErrorFieldCause, err))
	}

	if err := Validate(m); err != nil {
		return Manifest{}, err
	}

	return m, nil
}

// Validate checks that function and parameter names are present and unique
// and that every expectation is known. Type descriptions are checked when a
// function is compiled.
func Validate(m Manifest) error {
	var errs []string

	if len(m.Functions) == 0 {
		errs = append(errs, "manifest must list at least one function")
	}

	seen := make(map[string]struct{}, len(m.Functions))
	for i, f := range m.Functions {
		if f.Name == "" {
			errs = append(errs, fmt.Sprintf("function #%d: name is required", i+1))
		} else if _, dup := seen[f.Name]; dup {
			errs = append(errs, fmt.Sprintf("function %q is listed more than once", f.Name))
		}
		seen[f.Name] = struct{}{}

		params := make(map[string]struct{}, len(f.Parameters))
		for _, p := range f.Parameters {
			if p.Name == "" {
				errs = append(errs, fmt.Sprintf("function %q: parameter name is required", f.Name))
				continue
			}
			if _, dup := params[p.Name]; dup {
				errs = append(errs, fmt.Sprintf("function %q: parameter %q is listed more than once", f.Name, p.Name))
			}
			params[p.Name] = struct{}{}
		}

		for j, c := range f.Calls {
			if e := c.Expectation(); e != ExpectPass && e != ExpectFail {
				errs = append(errs, fmt.Sprintf("function %q: call #%d: unknown expectation %q", f.Name, j+1, c.Expect))
			}
		}
	}

	if len(errs) > 0 {
		return errorc.With(errors.ErrInvalidManifest, errorc.String(errors.ErrorFieldReason, strings.Join(errs, "; ")))
	}
	return nil
}
