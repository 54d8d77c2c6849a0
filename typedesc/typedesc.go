// Package typedesc classifies textual type descriptions such as "int | float",
// "array, shape (n, m)" or "pkg.mod.ClassName" before any checker is built.
package typedesc

import (
	"regexp"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/constants"
	"github.com/ygrebnov/doccheck/errors"
)

// Kind is the grammar case a description falls into.
type Kind int

const (
	Untyped Kind = iota
	Union
	Special
	ShapeArray
	Explicit
)

func (k Kind) String() string {
	switch k {
	case Untyped:
		return "untyped"
	case Union:
		return "union"
	case Special:
		return "special"
	case ShapeArray:
		return "shape-array"
	case Explicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// Descriptor is a classified type description. Which fields are set depends on Kind:
// Branches for Union, Token for Special, Axes and ShapeText for ShapeArray, and
// Name for Explicit. Text always holds the description verbatim.
type Descriptor struct {
	Kind      Kind
	Text      string
	Branches  []string
	Token     string
	Axes      []string
	ShapeText string
	Name      string
}

var shapePattern = regexp.MustCompile(`^array, shape \((.*)\)$`)

// Classify determines the case of text. The checks run in priority order:
// untyped, union, special token, array shape, explicit name.
func Classify(text string) (Descriptor, error) {
	d := Descriptor{Text: text}
	switch {
	case text == "" || text == constants.UntypedSeparator:
		d.Kind = Untyped

	case strings.Contains(text, constants.UnionSeparator):
		d.Kind = Union
		for _, b := range strings.Split(text, constants.UnionSeparator) {
			d.Branches = append(d.Branches, strings.TrimSpace(b))
		}

	case text == constants.TokenFunction || text == constants.TokenGenerator || text == constants.TokenArray:
		d.Kind = Special
		d.Token = text

	case strings.HasPrefix(text, constants.ShapePrefix):
		m := shapePattern.FindStringSubmatch(text)
		if m == nil {
			return Descriptor{}, errorc.With(
				errors.ErrInvalidDescription,
				errorc.String(errors.ErrorFieldDescription, text),
			)
		}
		d.Kind = ShapeArray
		d.ShapeText = m[1]
		d.Axes = SplitAxes(m[1])

	default:
		d.Kind = Explicit
		d.Name = strings.TrimSpace(text)
	}
	return d, nil
}

// SplitAxes splits a comma separated axis list and trims every label. Every
// piece counts as one axis, empty ones included: "" is one axis and "n," is two.
func SplitAxes(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
