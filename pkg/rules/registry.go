package rules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-validate/pkg/constraints"
)

// Registry stores validator factories by name. Unlike most registries in this
// module family, registering an existing name does not error: the newest
// factory wins, which is how callers override a built-in validator.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry constructs a registry pre-seeded with the built-in validator
// factories.
func NewRegistry() *Registry {
	reg := &Registry{
		factories: make(map[string]Factory),
	}
	reg.RegisterMany(builtinFactories())
	return reg
}

// Register stores a factory under its Name, replacing any previous factory
// with the same name. Nil factories and empty names are ignored.
func (r *Registry) Register(factory Factory) {
	if factory == nil {
		return
	}
	name := factory.Name()
	if name == "" {
		return
	}
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

// RegisterMany registers each factory in order; later entries win on a name
// collision.
func (r *Registry) RegisterMany(factories []Factory) {
	for _, factory := range factories {
		r.Register(factory)
	}
}

// Resolve returns the factory registered under name. A name with no factory
// is a configuration error (typically a typo in a constraint document) and is
// reported immediately rather than silently disabling validation.
func (r *Registry) Resolve(name string) (Factory, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("rules: validator %q is not registered", name)
	}
	return factory, nil
}

// Has reports whether a factory is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}

// List returns the sorted names of every registered factory.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateValidators resolves name and invokes its factory against cfg. It
// wraps both failure modes (unknown name, malformed config) with the
// validator name so callers can locate the offending constraint entry.
func (r *Registry) CreateValidators(name string, cfg constraints.Config) ([]Func, error) {
	factory, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	funcs, err := factory.CreateValidator(cfg)
	if err != nil {
		return nil, fmt.Errorf("rules: validator %q: %w", name, err)
	}
	return funcs, nil
}
