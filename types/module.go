package types

import (
	"slices"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/errors"
)

// Module is a named namespace of types addressed by a dotted or slashed path,
// e.g. "time" or "github.com/ygrebnov/doccheck/ndarray".
type Module struct {
	path    string
	mu      sync.RWMutex
	members map[string]Type
}

func NewModule(path string) *Module {
	return &Module{path: path, members: make(map[string]Type)}
}

func (m *Module) Path() string { return m.path }

// Add defines name inside the module. Redefining a name is an error.
func (m *Module) Add(name string, t Type) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.members[name]; exists {
		return errorc.With(
			errors.ErrDuplicateType,
			errorc.String(errors.ErrorFieldModulePath, m.path),
			errorc.String(errors.ErrorFieldTypeName, name),
		)
	}
	m.members[name] = t
	return nil
}

func (m *Module) Lookup(name string) (Type, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.members[name]
	return t, ok
}

// Names returns the member names in sorted order.
func (m *Module) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.members))
	for n := range m.members {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
