package types

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/errors"
)

// Loader loads a module on first import. Returning an error wrapping
// errors.ErrModuleNotFound marks the module as absent rather than broken.
type Loader func() (*Module, error)

// Status tells whether a name resolved to a concrete type.
type Status int

const (
	StatusNotFound Status = iota
	StatusFound
)

func (s Status) String() string {
	if s == StatusFound {
		return "found"
	}
	return "not found"
}

// Resolution is the outcome of looking up a type name. A NotFound resolution
// is not a failure: Reason tells why the name could not be located.
type Resolution struct {
	Type   Type
	Status Status
	Reason error
}

func (r Resolution) Found() bool { return r.Status == StatusFound }

func found(t Type) Resolution { return Resolution{Type: t, Status: StatusFound} }

func notFound(reason error) Resolution { return Resolution{Status: StatusNotFound, Reason: reason} }

// Universe holds the ambient namespace for unqualified names and the modules
// reachable through qualified names. It is safe for concurrent use.
type Universe struct {
	mu      sync.RWMutex
	names   map[string]Type
	loaders map[string]*lazyModule
	modules map[string]*Module
	logger  zerolog.Logger
}

// NewUniverse returns a universe whose ambient namespace holds the builtin types.
func NewUniverse(logger zerolog.Logger) *Universe {
	return &Universe{
		names:   builtins(),
		loaders: make(map[string]*lazyModule),
		modules: make(map[string]*Module),
		logger:  logger,
	}
}

// Define adds an unqualified name to the ambient namespace.
func (u *Universe) Define(name string, t Type) error {
	if name == "" || strings.Contains(name, ".") {
		return errorc.With(errors.ErrInvalidDescription, errorc.String(errors.ErrorFieldTypeName, name))
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.names[name]; exists {
		return errorc.With(errors.ErrDuplicateType, errorc.String(errors.ErrorFieldTypeName, name))
	}
	u.names[name] = t
	return nil
}

// RegisterModule makes an already built module importable.
func (u *Universe) RegisterModule(m *Module) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.known(m.Path()) {
		return errorc.With(errors.ErrDuplicateModule, errorc.String(errors.ErrorFieldModulePath, m.Path()))
	}
	u.modules[m.Path()] = m
	return nil
}

// RegisterLoader makes path importable; l runs on the first import only.
func (u *Universe) RegisterLoader(path string, l Loader) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.known(path) {
		return errorc.With(errors.ErrDuplicateModule, errorc.String(errors.ErrorFieldModulePath, path))
	}
	u.loaders[path] = &lazyModule{load: l}
	return nil
}

// lazyModule runs its loader at most once.
type lazyModule struct {
	once sync.Once
	load Loader
	m    *Module
	err  error
}

func (l *lazyModule) get() (*Module, error) {
	l.once.Do(func() { l.m, l.err = l.load() })
	return l.m, l.err
}

// known must be called with u.mu held.
func (u *Universe) known(path string) bool {
	_, loaded := u.modules[path]
	_, loadable := u.loaders[path]
	return loaded || loadable
}

// RegisterTypes adds named Go types to the modules of their package paths,
// creating the modules as needed. time.Duration becomes "time.Duration".
func (u *Universe) RegisterTypes(rts ...reflect.Type) error {
	for _, rt := range rts {
		if rt.Name() == "" || rt.PkgPath() == "" {
			return errorc.With(errors.ErrInvalidDescription, errorc.String(errors.ErrorFieldTypeName, rt.String()))
		}
		m, err := u.Import(rt.PkgPath())
		if stderrors.Is(err, errors.ErrModuleNotFound) {
			m = NewModule(rt.PkgPath())
			if err = u.RegisterModule(m); stderrors.Is(err, errors.ErrDuplicateModule) {
				m, err = u.Import(rt.PkgPath())
			}
		}
		if err != nil {
			return err
		}
		if err := m.Add(rt.Name(), FromReflect(rt)); err != nil {
			return err
		}
	}
	return nil
}

// Import returns the module at path, running its loader if it has not been
// loaded yet. Importing is idempotent.
func (u *Universe) Import(path string) (*Module, error) {
	u.mu.RLock()
	m, loaded := u.modules[path]
	lazy, loadable := u.loaders[path]
	u.mu.RUnlock()

	if loaded {
		return m, nil
	}
	if !loadable {
		u.logger.Debug().Str("module", path).Msg("module not found")
		return nil, errorc.With(errors.ErrModuleNotFound, errorc.String(errors.ErrorFieldModulePath, path))
	}

	// The loader runs without the lock so it may import other modules.
	m, err := lazy.get()
	switch {
	case stderrors.Is(err, errors.ErrModuleNotFound):
		return nil, err
	case err != nil:
		return nil, errorc.With(
			errors.ErrModuleLoad,
			errorc.String(errors.ErrorFieldModulePath, path),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	case m == nil:
		return nil, errorc.With(errors.ErrModuleLoad, errorc.String(errors.ErrorFieldModulePath, path))
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if existing, ok := u.modules[path]; ok {
		return existing, nil
	}
	u.modules[path] = m
	delete(u.loaders, path)
	u.logger.Debug().Str("module", path).Int("types", len(m.Names())).Msg("module loaded")
	return m, nil
}

// Find resolves a type name. Unqualified names are looked up in the ambient
// namespace; qualified names are split at the last dot into a module path and
// a member name. Names that cannot be located yield a NotFound resolution; the
// returned error is reserved for modules that exist but fail to load.
func (u *Universe) Find(name string) (Resolution, error) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		u.mu.RLock()
		t, ok := u.names[name]
		u.mu.RUnlock()
		if !ok {
			return notFound(errorc.With(errors.ErrNameNotFound, errorc.String(errors.ErrorFieldTypeName, name))), nil
		}
		return found(t), nil
	}

	modulePath, member := name[:i], name[i+1:]
	m, err := u.Import(modulePath)
	if stderrors.Is(err, errors.ErrModuleNotFound) {
		return notFound(err), nil
	}
	if err != nil {
		return Resolution{}, err
	}
	t, ok := m.Lookup(member)
	if !ok {
		return notFound(errorc.With(
			errors.ErrAttributeNotFound,
			errorc.String(errors.ErrorFieldTypeName, name),
			errorc.String(errors.ErrorFieldModulePath, modulePath),
		)), nil
	}
	return found(t), nil
}
