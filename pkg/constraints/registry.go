// Package constraints stores the declarative validation specification that
// drives the engine: which validators apply to which field of which type, and
// with what configuration. Documents load from JSON or YAML and are held in a
// Registry that swaps the whole spec atomically, so concurrent readers never
// observe a partially-updated specification.
package constraints

import "sync"

// Registry holds the current constraint specification. Replace installs a new
// spec wholesale; there is no merging of partial documents.
type Registry struct {
	mu   sync.RWMutex
	spec Spec
}

// NewRegistry creates an empty registry. Get on an empty registry resolves
// every field to an empty validator set.
func NewRegistry() *Registry {
	return &Registry{}
}

// Replace swaps in the supplied specification as a single atomic update. The
// spec is deep-copied so later caller mutations cannot leak into the registry.
func (r *Registry) Replace(spec Spec) {
	clone := spec.Clone()
	r.mu.Lock()
	r.spec = clone
	r.mu.Unlock()
}

// Get returns the validator configurations for one field of one type. Absent
// types or fields yield an empty map, never an error: a field with no
// constraints is simply always valid.
func (r *Registry) Get(typeName, fieldName string) Fields {
	r.mu.RLock()
	spec := r.spec
	r.mu.RUnlock()

	fields, ok := spec[typeName]
	if !ok {
		return Fields{}
	}
	validators, ok := fields[fieldName]
	if !ok {
		return Fields{}
	}
	return validators
}

// Types lists the type names present in the current spec.
func (r *Registry) Types() []string {
	r.mu.RLock()
	spec := r.spec
	r.mu.RUnlock()

	names := make([]string, 0, len(spec))
	for name := range spec {
		names = append(names, name)
	}
	return names
}

// FieldNames lists the constrained fields of one type.
func (r *Registry) FieldNames(typeName string) []string {
	r.mu.RLock()
	spec := r.spec
	r.mu.RUnlock()

	fields, ok := spec[typeName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}
