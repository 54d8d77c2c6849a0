// Package manifest reads YAML documents that describe functions by their
// documented parameters, together with sample calls and the expected outcome
// of checking each call.
//
//	functions:
//	  - name: foo
//	    parameters: |
//	      a : int
//	      b : array, shape (n, m)
//	    calls:
//	      - args: [1, !array [[1, 2]]]
//	      - kwargs: {a: "x"}
//	        expect: fail
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/doccheck"
	"github.com/ygrebnov/doccheck/ndarray"
	"github.com/ygrebnov/doccheck/typedesc"
)

// ArrayTag marks a YAML sequence or number that decodes to *ndarray.Array.
const ArrayTag = "!array"

type Manifest struct {
	Functions []Function `yaml:"functions"`
}

type Function struct {
	Name       string     `yaml:"name"`
	Doc        string     `yaml:"doc,omitempty"`
	Parameters Parameters `yaml:"parameters"`
	Calls      []Call     `yaml:"calls,omitempty"`
}

// Compile builds the validator for the function's documented parameters.
func (f Function) Compile(opts ...doccheck.Option) (*doccheck.Validator, error) {
	return doccheck.Compile(f.Name, []doccheck.Parameter(f.Parameters), opts...)
}

// Parameters accepts either a list of {name, type} mappings or a literal block
// with one "name : type" line per parameter.
type Parameters []typedesc.Param

func (p *Parameters) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		params, err := typedesc.ParseParameters(node.Value)
		if err != nil {
			return err
		}
		*p = params
	case yaml.SequenceNode:
		var params []typedesc.Param
		if err := node.Decode(&params); err != nil {
			return err
		}
		*p = params
	default:
		return fmt.Errorf("line %d: parameters must be a list or a text block", node.Line)
	}
	return nil
}

type Expectation string

const (
	ExpectPass Expectation = "pass"
	ExpectFail Expectation = "fail"
)

// Call is a sample invocation. An empty Expect means ExpectPass.
type Call struct {
	Args   Args             `yaml:"args,omitempty"`
	Kwargs map[string]Value `yaml:"kwargs,omitempty"`
	Expect Expectation      `yaml:"expect,omitempty"`
}

func (c Call) Expectation() Expectation {
	if c.Expect == "" {
		return ExpectPass
	}
	return c.Expect
}

// Arguments returns the decoded positional and keyword arguments.
func (c Call) Arguments() ([]any, map[string]any) {
	args := make([]any, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.v
	}
	var kwargs map[string]any
	if len(c.Kwargs) > 0 {
		kwargs = make(map[string]any, len(c.Kwargs))
		for k, v := range c.Kwargs {
			kwargs[k] = v.v
		}
	}
	return args, kwargs
}

// Args are positional arguments. A null item stays in place as a nil argument.
type Args []Value

func (a *Args) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: args must be a list", node.Line)
	}
	args := make(Args, len(node.Content))
	for i, n := range node.Content {
		v, err := decodeValue(n)
		if err != nil {
			return err
		}
		args[i] = Value{v: v}
	}
	*a = args
	return nil
}

// Value is an argument decoded from YAML: nil, bool, int, float64, string,
// []any, map[string]any or *ndarray.Array.
type Value struct {
	v any
}

func NewValue(v any) Value { return Value{v: v} }

func (v Value) Interface() any { return v.v }

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeValue(node)
	if err != nil {
		return err
	}
	v.v = decoded
	return nil
}

func decodeValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		return decodeValue(node.Alias)
	}
	if node.Tag == ArrayTag {
		return decodeArray(node)
	}
	switch node.Kind {
	case yaml.SequenceNode:
		out := make([]any, len(node.Content))
		for i, n := range node.Content {
			v, err := decodeValue(n)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := decodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[node.Content[i].Value] = v
		}
		return out, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func decodeArray(node *yaml.Node) (any, error) {
	plain := *node
	plain.Tag = ""
	if plain.Kind == yaml.ScalarNode {
		var x float64
		if err := plain.Decode(&x); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", node.Line, ArrayTag, err)
		}
		return ndarray.Scalar(x), nil
	}
	nested, err := decodeValue(&plain)
	if err != nil {
		return nil, err
	}
	a, err := ndarray.FromNested(nested)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", node.Line, ArrayTag, err)
	}
	return a, nil
}
