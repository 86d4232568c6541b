// Package engine wires the constraint registry, the factory registry, the
// builder, the attacher, and the manual validator into a single entry point.
// An Engine is the long-lived object a host constructs once at startup and
// injects wherever validation happens; there is no hidden package-level
// state.
package engine

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-validate/pkg/constraints"
	"github.com/goliatone/go-validate/pkg/controls"
	"github.com/goliatone/go-validate/pkg/rules"
)

// Engine resolves constraint specifications against validator factories and
// exposes the three consumption styles: building fresh control descriptors,
// attaching to an existing control tree, and one-off manual validation.
type Engine struct {
	constraints *constraints.Registry
	factories   *rules.Registry
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithConstraintRegistry installs a pre-built constraint registry, useful
// when several engines should share one spec.
func WithConstraintRegistry(reg *constraints.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.constraints = reg
		}
	}
}

// WithFactoryRegistry installs a pre-built factory registry.
func WithFactoryRegistry(reg *rules.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.factories = reg
		}
	}
}

// WithConstraints loads an initial constraint specification.
func WithConstraints(spec constraints.Spec) Option {
	return func(e *Engine) {
		e.constraints.Replace(spec)
	}
}

// WithFactories registers custom validator factories on top of the built-ins.
func WithFactories(factories ...rules.Factory) Option {
	return func(e *Engine) {
		e.factories.RegisterMany(factories)
	}
}

// New constructs an Engine with an empty constraint spec and the built-in
// validator factories, then applies options in order.
func New(options ...Option) *Engine {
	e := &Engine{
		constraints: constraints.NewRegistry(),
		factories:   rules.NewRegistry(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// SetConstraints replaces the entire constraint specification atomically.
func (e *Engine) SetConstraints(spec constraints.Spec) {
	e.constraints.Replace(spec)
}

// RegisterValidatorFactories adds factories to the registry in order; a
// factory re-using an existing name (including a built-in's) replaces it.
func (e *Engine) RegisterValidatorFactories(factories ...rules.Factory) {
	e.factories.RegisterMany(factories)
}

// Constraints exposes the underlying constraint registry.
func (e *Engine) Constraints() *constraints.Registry {
	return e.constraints
}

// Factories exposes the underlying factory registry.
func (e *Engine) Factories() *rules.Registry {
	return e.factories
}

// FieldValidator composes the validator for one field of one type. Fields
// without constraints compose to an always-passing function. Validator names
// are resolved in sorted order so the composed merge is deterministic, and an
// unknown name or malformed configuration fails here, identifying the exact
// constraint entry.
func (e *Engine) FieldValidator(typeName, fieldName string) (rules.Func, error) {
	fieldConstraints := e.constraints.Get(typeName, fieldName)

	names := make([]string, 0, len(fieldConstraints))
	for name := range fieldConstraints {
		names = append(names, name)
	}
	sort.Strings(names)

	var funcs []rules.Func
	for _, name := range names {
		created, err := e.factories.CreateValidators(name, fieldConstraints[name])
		if err != nil {
			return nil, fmt.Errorf("engine: type %q field %q: %w", typeName, fieldName, err)
		}
		funcs = append(funcs, created...)
	}
	return rules.Combine(funcs), nil
}

// CreateFormGroupControls builds a control descriptor for every own field of
// the model under the given type name.
func (e *Engine) CreateFormGroupControls(model any, typeName string) (map[string]controls.Descriptor, error) {
	return controls.Build(e, model, typeName)
}

// CreateFormGroup is CreateFormGroupControls materialized into the reference
// FormGroup implementation.
func (e *Engine) CreateFormGroup(model any, typeName string) (*controls.FormGroup, error) {
	descriptors, err := e.CreateFormGroupControls(model, typeName)
	if err != nil {
		return nil, err
	}
	return controls.GroupFromDescriptors(descriptors), nil
}

// AddValidators attaches composed validators to the fields of an existing
// control tree that carry constraints under typeName, combining with any
// validator a control already has. Control values are not modified.
func (e *Engine) AddValidators(group controls.Group, typeName string) error {
	return controls.Attach(e, group, typeName, func(field string) bool {
		return len(e.constraints.Get(typeName, field)) > 0
	})
}

// Validate checks a single value against the constraints of one field,
// without any control object. It returns the same Errors-or-nil shape a
// control-bound validator produces; the non-nil error is reserved for
// configuration problems (unknown validator name, malformed config).
func (e *Engine) Validate(typeName, fieldName string, value any) (rules.Errors, error) {
	validator, err := e.FieldValidator(typeName, fieldName)
	if err != nil {
		return nil, err
	}
	return validator(value), nil
}
