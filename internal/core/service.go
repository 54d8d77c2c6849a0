package core

import (
	"github.com/rs/zerolog"

	"github.com/ygrebnov/doccheck/checker"
	"github.com/ygrebnov/doccheck/constants"
	"github.com/ygrebnov/doccheck/typedesc"
	"github.com/ygrebnov/doccheck/types"
)

// Service turns type descriptions into checkers using the names reachable
// from its universe.
type Service struct {
	universe *types.Universe
	logger   zerolog.Logger
}

// NewService creates a Service resolving names through u.
func NewService(u *types.Universe, logger zerolog.Logger) *Service {
	return &Service{universe: u, logger: logger}
}

// Resolve builds the checker for parameter param documented with description.
// Names that cannot be located degrade to a name-only checker; only malformed
// descriptions and modules that fail to load are errors.
func (s *Service) Resolve(param, description string) (checker.Checker, error) {
	d, err := typedesc.Classify(description)
	if err != nil {
		return nil, err
	}

	switch d.Kind {
	case typedesc.Untyped:
		return checker.Untyped(), nil

	case typedesc.Union:
		branches := make([]checker.Checker, 0, len(d.Branches))
		for _, b := range d.Branches {
			c, err := s.Resolve(param, b)
			if err != nil {
				return nil, err
			}
			branches = append(branches, c)
		}
		return checker.Union(param, d.Text, branches...), nil

	case typedesc.Special:
		return checker.Instance(param, specialType(d.Token)), nil

	case typedesc.ShapeArray:
		return checker.Shape(param, d.Axes, d.ShapeText), nil

	default:
		return s.resolveExplicit(param, d.Name)
	}
}

func (s *Service) resolveExplicit(param, name string) (checker.Checker, error) {
	res, err := s.universe.Find(name)
	if err != nil {
		return nil, err
	}
	if !res.Found() {
		s.logger.Debug().
			Str("param", param).
			Str("type", name).
			AnErr("reason", res.Reason).
			Msg("type not resolved, falling back to type name comparison")
		return checker.TypeName(param, name), nil
	}
	return checker.Instance(param, res.Type), nil
}

func specialType(token string) types.Type {
	switch token {
	case constants.TokenFunction:
		return types.Function
	case constants.TokenGenerator:
		return types.Generator
	default:
		return types.Array
	}
}
