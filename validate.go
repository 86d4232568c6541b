// Package validate turns a declarative, JSON-shaped constraint specification
// into executable validation logic. Constraints are declared per type, per
// field, per named validator; the engine resolves each name through a
// registry of validator factories, composes the resulting functions into one
// validator per field, and exposes three consumption styles: building fresh
// control descriptors from a model instance, attaching validators onto an
// existing control tree, and one-off manual validation of a single value.
//
// This file re-exports the public surface from the pkg packages so most
// callers only import the module root.
package validate

import (
	"github.com/goliatone/go-validate/pkg/constraints"
	"github.com/goliatone/go-validate/pkg/controls"
	"github.com/goliatone/go-validate/pkg/engine"
	"github.com/goliatone/go-validate/pkg/rules"
)

// Spec is the constraint specification: type → field → validator → config.
type Spec = constraints.Spec

// Config carries one validator's configuration, conventionally including a
// `message` string.
type Config = constraints.Config

// Errors maps failing validator names to their failure details; nil means
// the value passed.
type Errors = rules.Errors

// Func is a pure validation function.
type Func = rules.Func

// Factory converts a validator configuration into validation functions.
type Factory = rules.Factory

// Control and Group form the minimal contract a host form framework exposes.
type Control = controls.Control

// Group enumerates a control tree's fields.
type Group = controls.Group

// Descriptor pairs a field's value with its composed validator.
type Descriptor = controls.Descriptor

// Engine is the long-lived validation engine.
type Engine = engine.Engine

// Option configures an Engine during construction.
type Option = engine.Option

// Re-exported engine options.
var (
	WithConstraints        = engine.WithConstraints
	WithFactories          = engine.WithFactories
	WithConstraintRegistry = engine.WithConstraintRegistry
	WithFactoryRegistry    = engine.WithFactoryRegistry
)

// New constructs an Engine seeded with the built-in validator factories.
func New(options ...Option) *Engine {
	return engine.New(options...)
}

// NewFactory wraps a plain function as a validator Factory.
func NewFactory(name string, create func(cfg Config) ([]Func, error)) Factory {
	return rules.NewFactory(name, create)
}

// Combine merges validation functions into one that reports every violation.
func Combine(funcs []Func) Func {
	return rules.Combine(funcs)
}
