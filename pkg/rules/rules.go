package rules

import (
	"sort"

	"github.com/goliatone/go-validate/pkg/constraints"
)

// Func checks a single candidate value. It returns nil when the value is
// acceptable and an Errors map describing every violation otherwise. Funcs
// must be pure: no observable side effects, safe for concurrent use.
type Func func(value any) Errors

// Detail carries the failure payload for one validator: the configured
// message plus every configuration parameter other than `message`.
type Detail map[string]any

// Errors maps validator names to their failure details. A nil Errors means
// the value passed.
type Errors map[string]Detail

// Keys returns the failing validator names in sorted order so rendered error
// lists are stable across runs.
func (e Errors) Keys() []string {
	if len(e) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Message returns the configured message for one failing validator, or the
// empty string when that validator did not fail or carried no message.
func (e Errors) Message(name string) string {
	detail, ok := e[name]
	if !ok {
		return ""
	}
	msg, _ := detail["message"].(string)
	return msg
}

// merge folds other into e, later entries winning on a shared name.
func (e Errors) merge(other Errors) Errors {
	if len(other) == 0 {
		return e
	}
	if e == nil {
		e = make(Errors, len(other))
	}
	for name, detail := range other {
		e[name] = detail
	}
	return e
}

// Fail builds the canonical single-validator failure: the detail holds the
// configured message under `message` and every other configuration key as-is.
// Factories use this so all built-in and custom failures share one shape.
func Fail(name string, cfg constraints.Config) Errors {
	detail := make(Detail, len(cfg))
	for key, value := range cfg {
		if key == "message" {
			continue
		}
		detail[key] = value
	}
	detail["message"] = cfg.Message()
	return Errors{name: detail}
}

// Factory converts one validator's configuration into executable validation
// functions. CreateValidator reports malformed configurations (missing or
// mistyped parameters) as errors at resolution time rather than letting them
// surface as confusing failures mid-validation.
type Factory interface {
	Name() string
	CreateValidator(cfg constraints.Config) ([]Func, error)
}

type factoryFunc struct {
	name   string
	create func(cfg constraints.Config) ([]Func, error)
}

func (f factoryFunc) Name() string { return f.name }

func (f factoryFunc) CreateValidator(cfg constraints.Config) ([]Func, error) {
	return f.create(cfg)
}

// NewFactory wraps a plain function as a Factory, the quickest way to supply
// a custom validator without defining a type.
func NewFactory(name string, create func(cfg constraints.Config) ([]Func, error)) Factory {
	return factoryFunc{name: name, create: create}
}
